package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/reugn/go-recurrence/locale"
)

// Describe returns a human-readable description of the configuration, as
// resolved to the given execution time. The text is built from the
// generator's catalog only, so the same input always yields the same bytes.
func (g *Generator) Describe(cfg *Configuration, resolved time.Time) string {
	if cfg == nil {
		return ""
	}
	d := describer{catalog: g.catalog}

	var rule MonthlyRule
	if cfg.Monthly != nil {
		rule, _ = monthlyRule(cfg.Monthly, g.catalog)
	}
	switch rule := rule.(type) {
	case SomeDay:
		d.printf(locale.OccursSomeDay, d.text(ordinalKeys[rule.Ordinal]),
			d.text(weekdayClassKeys[rule.Class]), rule.Every)
	case ConcreteDay:
		d.printf(locale.OccursConcreteDay, rule.Day, rule.Every)
	default:
		if cfg.Type == ScheduleOnce {
			d.add(d.text(locale.OccursOnce))
		} else {
			d.add(d.text(locale.OccursEveryDay))
		}
		d.printf(locale.ScheduleUsedOn, d.date(resolved), resolved.Format(g.catalog.TimeLayout()))
		if cfg.LimitStart != nil {
			d.printf(locale.StartingOn, d.date(*cfg.LimitStart))
		}
		if cfg.LimitEnd != nil {
			d.printf(locale.EndingOn, d.date(*cfg.LimitEnd))
		}
	}

	if w := cfg.Weekly; w != nil {
		if days := d.weekdays(w.Weekdays); days != "" {
			d.printf(locale.EveryWeeksOn, w.Every, days)
		}
	}

	if f := cfg.DailyFrequency; f != nil {
		if f.Every != 0 {
			d.printf(locale.EveryAmount, f.Every, d.unit(f.Unit, f.Every))
		}
		switch {
		case f.Kind == FrequencyOnce && f.At != nil:
			d.printf(locale.OnTime, d.clock(*f.At))
		case f.Kind == FrequencyRecurring && f.StartsAt != nil && f.EndsAt != nil:
			d.printf(locale.BetweenTimes, d.clock(*f.StartsAt), d.clock(*f.EndsAt))
		}
		d.printf(locale.StartingOn, d.date(cfg.CurrentDate))
	}

	return strings.TrimSpace(strings.Join(d.parts, " "))
}

type describer struct {
	catalog locale.Catalog
	parts   []string
}

func (d *describer) add(part string) {
	d.parts = append(d.parts, part)
}

func (d *describer) printf(key locale.Key, args ...any) {
	d.add(fmt.Sprintf(d.text(key), args...))
}

func (d *describer) text(key locale.Key) string {
	return d.catalog.Text(key)
}

func (d *describer) date(t time.Time) string {
	return t.Format(d.catalog.DateLayout())
}

func (d *describer) clock(t TimeOfDay) string {
	return t.Format(d.catalog.TimeLayout())
}

// unit returns the unit label, singular when amount is one.
func (d *describer) unit(unit TimeUnit, amount int) string {
	label := d.text(timeUnitKeys[unit])
	if amount == 1 {
		label = strings.TrimSuffix(label, "s")
	}
	return label
}

// weekdays joins the day names as "a, b and c", skipping days outside
// Sunday through Saturday.
func (d *describer) weekdays(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, day := range days {
		if class := WeekdayOf(day); class.valid() {
			names = append(names, d.text(weekdayClassKeys[class]))
		}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	last := len(names) - 1
	return strings.Join(names[:last], d.text(locale.ListSeparator)) +
		d.text(locale.ListFinalSeparator) + names[last]
}
