package calendar

import "time"

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfMonth moves t to the last day of its month, keeping the clock.
func EndOfMonth(t time.Time) time.Time {
	return withDay(t, LastDayOfMonth(t.Year(), t.Month()))
}

// AddDays moves t by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMonths moves t by the given number of months. Unlike time.AddDate, the
// day of month is clamped to the length of the target month, so January 31
// plus one month is the last day of February.
func AddMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := LastDayOfMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return withDay(first, day)
}

// FirstOfMonthAfter returns day one of the month that lies the given number
// of months after t, keeping the clock.
func FirstOfMonthAfter(t time.Time, months int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Clock returns the elapsed time since midnight of t.
func Clock(t time.Time) time.Duration {
	hour, minute, second := t.Clock()
	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(t.Nanosecond())
}

// WithClock replaces the time of day of t with the given offset since
// midnight.
func WithClock(t time.Time, clock time.Duration) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, int(clock), t.Location())
}

// BeforeDay reports whether the calendar date of a precedes that of b.
func BeforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func withDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
