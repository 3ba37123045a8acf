package recurrence

import "github.com/reugn/go-recurrence/locale"

// Validate checks that the configuration describes a rule the engine can
// complete. Checks run in a fixed order and the first failure is returned.
// A nil catalog selects [locale.Default].
func Validate(cfg *Configuration, catalog locale.Catalog) error {
	if catalog == nil {
		catalog = locale.Default()
	}
	// nothing below may read cfg before this check
	if cfg == nil {
		return localizedError(ErrConfigMissing, catalog)
	}
	if cfg.Type == ScheduleRecurring && cfg.LimitEnd == nil {
		return localizedError(ErrMissingLimitEndDate, catalog)
	}
	if f := cfg.DailyFrequency; f != nil && f.Every != 0 &&
		(f.StartsAt == nil || f.EndsAt == nil) {
		return localizedError(ErrDailyFrequencyMissingWindow, catalog)
	}
	if cfg.Monthly != nil {
		if _, err := monthlyRule(cfg.Monthly, catalog); err != nil {
			return err
		}
	}
	return nil
}

// monthlyRule validates the monthly configuration and returns its rule as a
// ConcreteDay or SomeDay value. It runs every time a resolver reads the
// monthly configuration.
func monthlyRule(m *MonthlyConfiguration, catalog locale.Catalog) (MonthlyRule, error) {
	if m == nil || m.Rule == nil {
		return nil, localizedError(ErrMonthlyConfigMissing, catalog)
	}

	switch rule := m.Rule.(type) {
	case ConcreteDay:
		return rule, validateConcreteDay(rule, catalog)
	case *ConcreteDay:
		if rule == nil {
			return nil, localizedError(ErrMonthlyConfigMissing, catalog)
		}
		return *rule, validateConcreteDay(*rule, catalog)
	case SomeDay:
		return rule, validateSomeDay(rule, catalog)
	case *SomeDay:
		if rule == nil {
			return nil, localizedError(ErrMonthlyConfigMissing, catalog)
		}
		return *rule, validateSomeDay(*rule, catalog)
	default:
		return nil, localizedError(ErrMonthlyModeConflict, catalog)
	}
}

func validateConcreteDay(rule ConcreteDay, catalog locale.Catalog) error {
	switch {
	case rule.Day <= 0:
		return localizedError(ErrMonthlyDayNotPositive, catalog)
	case rule.Day > 31:
		return localizedError(ErrMonthlyDayOutOfRange, catalog)
	case rule.Every == 0:
		return localizedError(ErrMonthlyStepMissing, catalog)
	}
	return nil
}

func validateSomeDay(rule SomeDay, catalog locale.Catalog) error {
	switch {
	case !rule.Ordinal.valid():
		return localizedError(ErrMonthlyOrdinalMissing, catalog)
	case !rule.Class.valid():
		return localizedError(ErrMonthlyWeekdayMissing, catalog)
	case rule.Every == 0:
		return localizedError(ErrMonthlyStepMissingSomeDay, catalog)
	case rule.Every < 0:
		return localizedError(ErrMonthlyStepNotPositive, catalog)
	}
	return nil
}
