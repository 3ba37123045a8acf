package recurrence_test

import (
	"testing"

	"github.com/reugn/go-recurrence/internal/assert"
	"github.com/reugn/go-recurrence/internal/ptr"
	"github.com/reugn/go-recurrence/recurrence"
)

func collect(t *testing.T, cfg *recurrence.Configuration) []string {
	t.Helper()
	var result []string
	for occurrence, err := range recurrence.NewGenerator().Occurrences(cfg) {
		assert.IsNil(t, err)
		result = append(result, occurrence.NextExecutionTime.Format(layout))
	}
	return result
}

func TestOccurrencesUntilLimitEnd(t *testing.T) {
	t.Parallel()
	cfg := &recurrence.Configuration{
		CurrentDate:  date(2021, 1, 1, 0, 0),
		Type:         recurrence.ScheduleRecurring,
		OccursAmount: 1,
		LimitEnd:     ptr.To(date(2021, 1, 2, 0, 0)),
		DailyFrequency: &recurrence.DailyFrequency{
			Kind:     recurrence.FrequencyRecurring,
			Every:    2,
			Unit:     recurrence.Hours,
			StartsAt: recurrence.TimeAt(13, 0, 0),
			EndsAt:   recurrence.TimeAt(17, 0, 0),
		},
	}
	assert.Equal(t, collect(t, cfg), []string{
		"2021-01-01 13:00:00",
		"2021-01-01 15:00:00",
		"2021-01-01 17:00:00",
		"2021-01-02 13:00:00",
		"2021-01-02 15:00:00",
		"2021-01-02 17:00:00",
	})
	// the configuration is not advanced by the iterator
	assert.Equal(t, cfg.CurrentDate, date(2021, 1, 1, 0, 0))
}

func TestOccurrencesFromLimitStart(t *testing.T) {
	t.Parallel()
	cfg := &recurrence.Configuration{
		CurrentDate:  date(2021, 1, 1, 0, 0),
		Type:         recurrence.ScheduleRecurring,
		OccursAmount: 1,
		LimitStart:   ptr.To(date(2021, 1, 5, 0, 0)),
		LimitEnd:     ptr.To(date(2021, 1, 7, 0, 0)),
	}
	assert.Equal(t, collect(t, cfg), []string{
		"2021-01-05 00:00:00",
		"2021-01-06 00:00:00",
		"2021-01-07 00:00:00",
	})
}

func TestOccurrencesOnce(t *testing.T) {
	t.Parallel()
	cfg := &recurrence.Configuration{
		CurrentDate:  date(2020, 1, 1, 10, 30),
		Type:         recurrence.ScheduleOnce,
		OccursAmount: 7,
	}
	assert.Equal(t, collect(t, cfg), []string{"2020-01-08 10:30:00"})
}

func TestOccurrencesNotAdvancing(t *testing.T) {
	t.Parallel()
	cfg := &recurrence.Configuration{
		CurrentDate: date(2021, 1, 1, 0, 0),
		Type:        recurrence.ScheduleRecurring,
		Occurs:      recurrence.OccursWeekly,
		LimitEnd:    ptr.To(date(2021, 12, 31, 0, 0)),
	}
	assert.Equal(t, len(collect(t, cfg)), 0)
}

func TestOccurrencesBreak(t *testing.T) {
	t.Parallel()
	cfg := &recurrence.Configuration{
		CurrentDate: date(2021, 1, 1, 0, 0),
		Type:        recurrence.ScheduleRecurring,
		LimitEnd:    ptr.To(date(2099, 12, 31, 0, 0)),
		Monthly: &recurrence.MonthlyConfiguration{
			Rule: recurrence.SomeDay{Ordinal: recurrence.First, Class: recurrence.WeekendDay, Every: 1},
		},
	}
	var result []string
	for occurrence, err := range recurrence.NewGenerator().Occurrences(cfg) {
		assert.IsNil(t, err)
		result = append(result, occurrence.NextExecutionTime.Format(layout))
		if len(result) == 2 {
			break
		}
	}
	assert.Equal(t, result, []string{
		"2021-01-02 00:00:00",
		"2021-02-06 00:00:00",
	})
}

func TestOccurrencesInvalid(t *testing.T) {
	t.Parallel()
	var errs []error
	for _, err := range recurrence.NewGenerator().Occurrences(nil) {
		errs = append(errs, err)
	}
	assert.Equal(t, len(errs), 1)
	assert.ErrorIs(t, errs[0], recurrence.ErrConfigMissing)
}
