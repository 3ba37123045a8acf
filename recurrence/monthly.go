package recurrence

import (
	"time"

	"github.com/reugn/go-recurrence/internal/calendar"
)

// resolveMonthlyDay resolves the date of t according to the monthly rule.
// The returned flag reports whether the daily frequency has already been
// applied by the some-day search.
func (g *Generator) resolveMonthlyDay(cfg *Configuration, t time.Time) (resolution, bool, error) {
	rule, err := monthlyRule(cfg.Monthly, g.catalog)
	if err != nil {
		return resolution{}, false, err
	}

	switch rule := rule.(type) {
	case SomeDay:
		return g.searchSomeDay(cfg, rule, t)
	case ConcreteDay:
		return proceed(nextConcreteDay(t, rule.Day)), false, nil
	}
	return proceed(t), false, nil
}

// nextConcreteDay advances t one day at a time until its day of month is
// day. The day has been validated to be within 1..31.
func nextConcreteDay(t time.Time, day int) time.Time {
	for t.Day() != day {
		t = calendar.AddDays(t, 1)
	}
	return t
}

// searchSomeDay finds the date of the rule's ordinal weekday class,
// resolving the time of day first.
func (g *Generator) searchSomeDay(cfg *Configuration, rule SomeDay, t time.Time) (resolution, bool, error) {
	applied := false
	if cfg.DailyFrequency != nil {
		daily := resolveDaily(cfg.DailyFrequency, t)
		g.logger.Trace("some day time resolved", "time", daily.time, "definitive", daily.definitive)
		if daily.definitive && rule.Class.Matches(daily.time) {
			return daily, true, nil
		}
		t, applied = daily.time, true
	}

	if rule.Ordinal == Last {
		found := lastInMonth(t, rule.Class)
		if calendar.BeforeDay(t, found) {
			return proceed(found), applied, nil
		}
		// this month's occurrence is not ahead of t
		next, err := g.reanchor(cfg, t, true)
		if err != nil {
			return resolution{}, false, err
		}
		return proceed(lastInMonth(next, rule.Class)), applied, nil
	}

	if rule.Class.Matches(t) {
		next, err := g.reanchor(cfg, t, true)
		if err != nil {
			return resolution{}, false, err
		}
		t = next
	}
	return proceed(nthMatch(t, rule.Class, rule.Ordinal.index())), applied, nil
}

// reanchor moves t by the monthly step. A concrete day rule adds the step
// in months. A some-day rule moves to day one of the month the step ahead,
// but only when reset is set; otherwise it leaves t unchanged.
func (g *Generator) reanchor(cfg *Configuration, t time.Time, reset bool) (time.Time, error) {
	rule, err := monthlyRule(cfg.Monthly, g.catalog)
	if err != nil {
		return time.Time{}, err
	}

	switch rule := rule.(type) {
	case ConcreteDay:
		return calendar.AddMonths(t, rule.Every), nil
	case SomeDay:
		if reset {
			return calendar.FirstOfMonthAfter(t, rule.Every), nil
		}
	}
	return t, nil
}

// lastInMonth returns the last day of t's month matching the class.
func lastInMonth(t time.Time, class WeekdayClass) time.Time {
	t = calendar.EndOfMonth(t)
	for !class.Matches(t) {
		t = calendar.AddDays(t, -1)
	}
	return t
}

// nthMatch walks forward from t, t included, and returns the n-th day
// matching the class.
func nthMatch(t time.Time, class WeekdayClass, n int) time.Time {
	for count := 0; ; t = calendar.AddDays(t, 1) {
		if class.Matches(t) {
			count++
			if count == n {
				return t
			}
		}
	}
}
