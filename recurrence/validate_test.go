package recurrence_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reugn/go-recurrence/internal/assert"
	"github.com/reugn/go-recurrence/internal/ptr"
	"github.com/reugn/go-recurrence/locale"
	"github.com/reugn/go-recurrence/recurrence"
)

// customRule satisfies MonthlyRule without being one of its two variants.
type customRule struct {
	recurrence.ConcreteDay
}

func TestValidate(t *testing.T) {
	t.Parallel()
	limitEnd := ptr.To(date(2021, 12, 31, 0, 0))
	recurring := func(monthly recurrence.MonthlyRule) *recurrence.Configuration {
		return &recurrence.Configuration{
			CurrentDate: date(2021, 1, 1, 0, 0),
			Type:        recurrence.ScheduleRecurring,
			LimitEnd:    limitEnd,
			Monthly:     &recurrence.MonthlyConfiguration{Rule: monthly},
		}
	}
	tests := []struct {
		name string
		cfg  *recurrence.Configuration
		err  error
	}{
		{
			name: "nil configuration",
			err:  recurrence.ErrConfigMissing,
		},
		{
			name: "recurring without limit end",
			cfg: &recurrence.Configuration{
				Type: recurrence.ScheduleRecurring,
			},
			err: recurrence.ErrMissingLimitEndDate,
		},
		{
			name: "limit end checked before the daily frequency",
			cfg: &recurrence.Configuration{
				Type:           recurrence.ScheduleRecurring,
				DailyFrequency: &recurrence.DailyFrequency{Every: 1},
			},
			err: recurrence.ErrMissingLimitEndDate,
		},
		{
			name: "daily frequency without window end",
			cfg: &recurrence.Configuration{
				DailyFrequency: &recurrence.DailyFrequency{
					Kind:     recurrence.FrequencyRecurring,
					Every:    2,
					StartsAt: recurrence.TimeAt(8, 0, 0),
				},
			},
			err: recurrence.ErrDailyFrequencyMissingWindow,
		},
		{
			name: "daily frequency without window start",
			cfg: &recurrence.Configuration{
				DailyFrequency: &recurrence.DailyFrequency{
					Every:  2,
					EndsAt: recurrence.TimeAt(8, 0, 0),
				},
			},
			err: recurrence.ErrDailyFrequencyMissingWindow,
		},
		{
			name: "monthly without rule",
			cfg:  recurring(nil),
			err:  recurrence.ErrMonthlyConfigMissing,
		},
		{
			name: "monthly with nil concrete day",
			cfg:  recurring((*recurrence.ConcreteDay)(nil)),
			err:  recurrence.ErrMonthlyConfigMissing,
		},
		{
			name: "monthly with nil some day",
			cfg:  recurring((*recurrence.SomeDay)(nil)),
			err:  recurrence.ErrMonthlyConfigMissing,
		},
		{
			name: "monthly with unknown rule",
			cfg:  recurring(customRule{recurrence.ConcreteDay{Day: 1, Every: 1}}),
			err:  recurrence.ErrMonthlyModeConflict,
		},
		{
			name: "concrete day zero",
			cfg:  recurring(recurrence.ConcreteDay{Every: 1}),
			err:  recurrence.ErrMonthlyDayNotPositive,
		},
		{
			name: "concrete day negative",
			cfg:  recurring(recurrence.ConcreteDay{Day: -3, Every: 1}),
			err:  recurrence.ErrMonthlyDayNotPositive,
		},
		{
			name: "concrete day past 31",
			cfg:  recurring(recurrence.ConcreteDay{Day: 32, Every: 1}),
			err:  recurrence.ErrMonthlyDayOutOfRange,
		},
		{
			name: "concrete day without step",
			cfg:  recurring(&recurrence.ConcreteDay{Day: 5}),
			err:  recurrence.ErrMonthlyStepMissing,
		},
		{
			name: "some day without ordinal",
			cfg:  recurring(recurrence.SomeDay{Class: recurrence.Monday, Every: 1}),
			err:  recurrence.ErrMonthlyOrdinalMissing,
		},
		{
			name: "some day without class",
			cfg:  recurring(recurrence.SomeDay{Ordinal: recurrence.First, Every: 1}),
			err:  recurrence.ErrMonthlyWeekdayMissing,
		},
		{
			name: "some day without step",
			cfg:  recurring(&recurrence.SomeDay{Ordinal: recurrence.Last, Class: recurrence.Weekday}),
			err:  recurrence.ErrMonthlyStepMissingSomeDay,
		},
		{
			name: "some day negative step",
			cfg: recurring(recurrence.SomeDay{
				Ordinal: recurrence.Second, Class: recurrence.Friday, Every: -1,
			}),
			err: recurrence.ErrMonthlyStepNotPositive,
		},
		{
			name: "one-off without limits",
			cfg: &recurrence.Configuration{
				CurrentDate: date(2021, 1, 1, 0, 0),
			},
		},
		{
			name: "daily frequency without step",
			cfg: &recurrence.Configuration{
				DailyFrequency: &recurrence.DailyFrequency{At: recurrence.TimeAt(8, 0, 0)},
			},
		},
		{
			name: "negative concrete day step",
			cfg:  recurring(recurrence.ConcreteDay{Day: 5, Every: -1}),
		},
		{
			name: "valid some day",
			cfg: recurring(&recurrence.SomeDay{
				Ordinal: recurrence.Fourth, Class: recurrence.WeekendDay, Every: 2,
			}),
		},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := recurrence.Validate(test.cfg, nil)
			if test.err == nil {
				assert.IsNil(t, err)
				return
			}
			assert.ErrorIs(t, err, test.err)

			_, err = recurrence.NewGenerator().GenerateDate(test.cfg)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestValidateLocalizedMessage(t *testing.T) {
	t.Parallel()
	cfg := &recurrence.Configuration{Type: recurrence.ScheduleRecurring}

	err := recurrence.Validate(cfg, locale.Spanish)
	assert.ErrorIs(t, err, recurrence.ErrMissingLimitEndDate)
	assert.Equal(t, err.Error(),
		"missing limit end date: una programación periódica requiere una fecha de fin")

	err = recurrence.Validate(cfg, locale.English)
	assert.Equal(t, err.Error(),
		"missing limit end date: a recurring schedule requires a limit end date")
}

func TestValidateMissingConfigurationMessage(t *testing.T) {
	t.Parallel()
	gen := recurrence.NewGeneratorWithOptions(recurrence.GeneratorOptions{
		Catalog: locale.Spanish,
	})
	_, err := gen.GenerateDate(nil)
	assert.ErrorIs(t, err, recurrence.ErrConfigMissing)
	assert.True(t, strings.HasSuffix(err.Error(), "la configuración es obligatoria"))
	assert.False(t, errors.Is(err, recurrence.ErrMissingLimitEndDate))
}

func TestValidateNoPartialResult(t *testing.T) {
	t.Parallel()
	result, err := recurrence.NewGenerator().GenerateDate(&recurrence.Configuration{
		CurrentDate: date(2021, 1, 1, 0, 0),
		Type:        recurrence.ScheduleRecurring,
	})
	assert.NotNil(t, err)
	assert.Equal(t, result, recurrence.CalculationResult{})
}
