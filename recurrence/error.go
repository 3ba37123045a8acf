package recurrence

import (
	"errors"
	"fmt"

	"github.com/reugn/go-recurrence/locale"
)

// Errors
var (
	ErrConfigMissing               = errors.New("configuration missing")
	ErrMissingLimitEndDate         = errors.New("missing limit end date")
	ErrDailyFrequencyMissingWindow = errors.New("daily frequency missing window")
	ErrMonthlyConfigMissing        = errors.New("monthly configuration missing")
	ErrMonthlyModeConflict         = errors.New("monthly mode conflict")
	ErrMonthlyDayNotPositive       = errors.New("monthly day not positive")
	ErrMonthlyDayOutOfRange        = errors.New("monthly day out of range")
	ErrMonthlyStepMissing          = errors.New("monthly step missing")
	ErrMonthlyOrdinalMissing       = errors.New("monthly ordinal missing")
	ErrMonthlyWeekdayMissing       = errors.New("monthly weekday missing")
	ErrMonthlyStepMissingSomeDay   = errors.New("monthly some day step missing")
	ErrMonthlyStepNotPositive      = errors.New("monthly step not positive")
	ErrTriggerExpired              = errors.New("trigger has expired")
)

var errorKeys = map[error]locale.Key{
	ErrConfigMissing:               locale.ErrConfigMissing,
	ErrMissingLimitEndDate:         locale.ErrMissingLimitEndDate,
	ErrDailyFrequencyMissingWindow: locale.ErrDailyFrequencyMissingWindow,
	ErrMonthlyConfigMissing:        locale.ErrMonthlyConfigMissing,
	ErrMonthlyModeConflict:         locale.ErrMonthlyModeConflict,
	ErrMonthlyDayNotPositive:       locale.ErrMonthlyDayNotPositive,
	ErrMonthlyDayOutOfRange:        locale.ErrMonthlyDayOutOfRange,
	ErrMonthlyStepMissing:          locale.ErrMonthlyStepMissing,
	ErrMonthlyOrdinalMissing:       locale.ErrMonthlyOrdinalMissing,
	ErrMonthlyWeekdayMissing:       locale.ErrMonthlyWeekdayMissing,
	ErrMonthlyStepMissingSomeDay:   locale.ErrMonthlyStepMissingSomeDay,
	ErrMonthlyStepNotPositive:      locale.ErrMonthlyStepNotPositive,
	ErrTriggerExpired:              locale.ErrTriggerExpired,
}

// localizedError returns an error with the catalog message for the given
// sentinel, which unwraps to the sentinel.
func localizedError(sentinel error, catalog locale.Catalog) error {
	return fmt.Errorf("%w: %s", sentinel, catalog.Text(errorKeys[sentinel]))
}
