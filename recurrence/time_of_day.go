package recurrence

import (
	"fmt"
	"time"
)

// TimeOfDay is an offset since midnight with second precision.
type TimeOfDay time.Duration

// NewTimeOfDay returns the time of day for the given clock reading.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// TimeAt returns a pointer to the time of day for the given clock reading,
// for use in the optional fields of a [DailyFrequency].
func TimeAt(hour, minute, second int) *TimeOfDay {
	t := NewTimeOfDay(hour, minute, second)
	return &t
}

// Duration returns the offset since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

// String returns the time of day as hh:mm:ss.
func (t TimeOfDay) String() string {
	total := int(time.Duration(t) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

// Format renders the time of day with a time.Format layout.
func (t TimeOfDay) Format(layout string) string {
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(t)).Format(layout)
}
