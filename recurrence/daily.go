package recurrence

import (
	"time"

	"github.com/reugn/go-recurrence/internal/calendar"
)

// resolveDaily resolves the time of day of t according to the daily
// frequency.
//
// A time before the window start snaps to the start and is definitive. A
// fixed time replaces the clock and proceeds. A recurring step that stays
// inside the window on the same day is definitive; past the window the
// clock snaps back to the window start on the same date and the pipeline
// proceeds to advance the date.
func resolveDaily(f *DailyFrequency, t time.Time) resolution {
	if f.StartsAt != nil && calendar.Clock(t) < f.StartsAt.Duration() {
		return definitive(calendar.WithClock(t, f.StartsAt.Duration()))
	}

	switch f.Kind {
	case FrequencyRecurring:
		if f.EndsAt == nil {
			return proceed(t)
		}
		// step on the wall clock; a step past midnight is past the window
		clock := calendar.Clock(t) + f.step()
		if clock < 24*time.Hour && clock <= f.EndsAt.Duration() {
			return definitive(calendar.WithClock(t, clock))
		}
		if f.StartsAt == nil {
			return proceed(t)
		}
		return proceed(calendar.WithClock(t, f.StartsAt.Duration()))
	default:
		if f.At == nil {
			return proceed(t)
		}
		return proceed(calendar.WithClock(t, f.At.Duration()))
	}
}
