package recurrence

import (
	"time"

	"github.com/reugn/go-recurrence/internal/calendar"
)

// Trigger adapts a Configuration to job schedulers that poll for the next
// fire time in Unix nanoseconds. Fire times are read and written as UTC
// wall clock.
type Trigger struct {
	gen *Generator
	cfg Configuration
}

// NewTrigger returns a new Trigger for a deep copy of the configuration.
// A nil generator selects NewGenerator().
func NewTrigger(gen *Generator, cfg *Configuration) (*Trigger, error) {
	if gen == nil {
		gen = NewGenerator()
	}
	if err := gen.validate(cfg); err != nil {
		return nil, err
	}
	return &Trigger{
		gen: gen,
		cfg: cfg.clone(),
	}, nil
}

// NextFireTime returns the next execution time after prev, in Unix
// nanoseconds. It returns ErrTriggerExpired once the next execution falls
// after the limit end date.
func (t *Trigger) NextFireTime(prev int64) (int64, error) {
	cfg := t.cfg
	cfg.CurrentDate = time.Unix(0, prev).UTC()

	next, err := t.gen.NextExecution(&cfg)
	if err != nil {
		return 0, err
	}
	if pastLimitEnd(&cfg, next) {
		return 0, localizedError(ErrTriggerExpired, t.gen.catalog)
	}
	return next.UnixNano(), nil
}

// Description returns the description of the rule as resolved to its
// configured current date.
func (t *Trigger) Description() string {
	return t.gen.Describe(&t.cfg, t.cfg.CurrentDate)
}

// pastLimitEnd reports whether the date of next is after the limit end
// date. The limit end date is inclusive.
func pastLimitEnd(cfg *Configuration, next time.Time) bool {
	return cfg.LimitEnd != nil && calendar.BeforeDay(*cfg.LimitEnd, next)
}

// beforeLimitStart reports whether the date of next is before the limit
// start date.
func beforeLimitStart(cfg *Configuration, next time.Time) bool {
	return cfg.LimitStart != nil && calendar.BeforeDay(next, *cfg.LimitStart)
}
