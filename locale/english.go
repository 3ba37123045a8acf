package locale

import "golang.org/x/text/language"

var english = &table{
	tag:        language.English,
	dateLayout: "1/2/2006",
	timeLayout: "15:04",
	phrases: map[Key]string{
		OccursOnce:         "Occurs once.",
		OccursEveryDay:     "Occurs every day.",
		ScheduleUsedOn:     "Schedule will be used on %s at %s",
		StartingOn:         "starting on %s",
		EndingOn:           "ending on %s",
		OccursSomeDay:      "Occurs the %s %s of every %d months",
		OccursConcreteDay:  "Occurs day %d of every %d months",
		EveryWeeksOn:       "every %d weeks on %s",
		EveryAmount:        "every %d %s",
		OnTime:             "on %s",
		BetweenTimes:       "between %s and %s",
		ListSeparator:      ", ",
		ListFinalSeparator: " and ",

		First:  "first",
		Second: "second",
		Third:  "third",
		Fourth: "fourth",
		Last:   "last",

		Monday:     "monday",
		Tuesday:    "tuesday",
		Wednesday:  "wednesday",
		Thursday:   "thursday",
		Friday:     "friday",
		Saturday:   "saturday",
		Sunday:     "sunday",
		Weekday:    "weekday",
		WeekendDay: "weekend day",

		Hours:   "hours",
		Minutes: "minutes",
		Seconds: "seconds",

		ErrConfigMissing:               "the configuration is required",
		ErrMissingLimitEndDate:         "a recurring schedule requires a limit end date",
		ErrDailyFrequencyMissingWindow: "a daily frequency with a step requires both a start and an end time",
		ErrMonthlyConfigMissing:        "the monthly configuration has no rule",
		ErrMonthlyModeConflict:         "the monthly rule must be either a concrete day or some day",
		ErrMonthlyDayNotPositive:       "the monthly day must be greater than zero",
		ErrMonthlyDayOutOfRange:        "the monthly day must not be greater than 31",
		ErrMonthlyStepMissing:          "the monthly concrete day rule requires a month step",
		ErrMonthlyOrdinalMissing:       "the monthly some day rule requires an ordinal",
		ErrMonthlyWeekdayMissing:       "the monthly some day rule requires a weekday",
		ErrMonthlyStepMissingSomeDay:   "the monthly some day rule requires a month step",
		ErrMonthlyStepNotPositive:      "the monthly some day step must be greater than zero",
		ErrTriggerExpired:              "the schedule has no execution before its limit end date",
	},
}
