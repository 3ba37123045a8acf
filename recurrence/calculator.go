package recurrence

import (
	"time"

	"github.com/reugn/go-recurrence/internal/calendar"
)

// NextExecution returns the next execution time of the configuration,
// computed from cfg.CurrentDate.
func (g *Generator) NextExecution(cfg *Configuration) (time.Time, error) {
	if err := g.validate(cfg); err != nil {
		return time.Time{}, err
	}
	return g.nextExecution(cfg)
}

// nextExecution runs the calculation pipeline on a validated configuration.
func (g *Generator) nextExecution(cfg *Configuration) (time.Time, error) {
	t := cfg.CurrentDate
	dailyApplied := false

	if cfg.Monthly != nil {
		res, applied, err := g.resolveMonthlyDay(cfg, t)
		if err != nil {
			return time.Time{}, err
		}
		g.logger.Trace("monthly day resolved", "time", res.time, "definitive", res.definitive)
		if res.definitive {
			return res.time, nil
		}
		t, dailyApplied = res.time, applied
	}

	if cfg.DailyFrequency != nil && !dailyApplied {
		res := resolveDaily(cfg.DailyFrequency, t)
		g.logger.Trace("daily frequency resolved", "time", res.time, "definitive", res.definitive)
		if res.definitive {
			return res.time, nil
		}
		t = res.time
	}

	if cfg.Monthly == nil {
		next := stepOccurrence(cfg, t)
		g.logger.Trace("occurrence stepped", "occurs", cfg.Occurs, "amount", cfg.OccursAmount, "time", next)
		return next, nil
	}

	next, err := g.reanchor(cfg, t, false)
	if err != nil {
		return time.Time{}, err
	}
	g.logger.Trace("monthly rule re-anchored", "time", next)
	return next, nil
}

// stepOccurrence advances t by the base occurrence of the configuration.
func stepOccurrence(cfg *Configuration, t time.Time) time.Time {
	switch cfg.Occurs {
	case OccursWeekly:
		return calendar.AddDays(t, 7*cfg.OccursAmount)
	case OccursMonthly:
		return calendar.AddMonths(t, cfg.OccursAmount)
	default:
		return calendar.AddDays(t, cfg.OccursAmount)
	}
}
