package locale_test

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/reugn/go-recurrence/internal/assert"
	"github.com/reugn/go-recurrence/locale"
)

func TestMatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		preferred []language.Tag
		expected  locale.Catalog
	}{
		{"english", []language.Tag{language.English}, locale.English},
		{"american english", []language.Tag{language.AmericanEnglish}, locale.English},
		{"spain", []language.Tag{language.MustParse("es-ES")}, locale.Spanish},
		{"latin america", []language.Tag{language.LatinAmericanSpanish}, locale.Spanish},
		{"preference order", []language.Tag{language.French, language.Spanish}, locale.Spanish},
		{"unsupported", []language.Tag{language.Japanese}, locale.English},
		{"none", nil, locale.English},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, locale.Match(test.preferred...), test.expected)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	catalog, err := locale.Parse("es-ES")
	assert.IsNil(t, err)
	assert.Equal(t, catalog.Tag(), language.Spanish)

	catalog, err = locale.Parse("en-GB")
	assert.IsNil(t, err)
	assert.Equal(t, catalog, locale.English)

	_, err = locale.Parse("not a culture")
	assert.NotNil(t, err)
}

func TestText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, locale.English.Text(locale.Monday), "monday")
	assert.Equal(t, locale.Spanish.Text(locale.Monday), "lunes")
	assert.Equal(t, locale.Default(), locale.English)
}

func TestTextFallback(t *testing.T) {
	t.Parallel()
	// the spanish table has no trigger message of its own
	assert.Equal(t, locale.Spanish.Text(locale.ErrTriggerExpired),
		locale.English.Text(locale.ErrTriggerExpired))
	assert.Equal(t, locale.English.Text(locale.Key("unknown")), "unknown")
}

func TestCatalogsComplete(t *testing.T) {
	t.Parallel()
	keys := []locale.Key{
		locale.OccursOnce, locale.OccursEveryDay, locale.ScheduleUsedOn,
		locale.StartingOn, locale.EndingOn, locale.OccursSomeDay,
		locale.OccursConcreteDay, locale.EveryWeeksOn, locale.EveryAmount,
		locale.OnTime, locale.BetweenTimes, locale.ListSeparator,
		locale.ListFinalSeparator,
		locale.First, locale.Second, locale.Third, locale.Fourth, locale.Last,
		locale.Monday, locale.Tuesday, locale.Wednesday, locale.Thursday,
		locale.Friday, locale.Saturday, locale.Sunday, locale.Weekday,
		locale.WeekendDay,
		locale.Hours, locale.Minutes, locale.Seconds,
	}
	for _, catalog := range []locale.Catalog{locale.English, locale.Spanish} {
		for _, key := range keys {
			assert.NotEqual(t, catalog.Text(key), string(key))
		}
		assert.NotEqual(t, catalog.DateLayout(), "")
		assert.NotEqual(t, catalog.TimeLayout(), "")
	}
}
