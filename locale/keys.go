package locale

// Sentence phrases. Format verbs take, in order:
//
//	ScheduleUsedOn     date, time
//	StartingOn         date
//	EndingOn           date
//	OccursSomeDay      ordinal, weekday class, months
//	OccursConcreteDay  day, months
//	EveryWeeksOn       weeks, weekday list
//	EveryAmount        amount, unit
//	OnTime             time
//	BetweenTimes       start, end
const (
	OccursOnce         Key = "occurs_once"
	OccursEveryDay     Key = "occurs_every_day"
	ScheduleUsedOn     Key = "schedule_used_on"
	StartingOn         Key = "starting_on"
	EndingOn           Key = "ending_on"
	OccursSomeDay      Key = "occurs_some_day"
	OccursConcreteDay  Key = "occurs_concrete_day"
	EveryWeeksOn       Key = "every_weeks_on"
	EveryAmount        Key = "every_amount"
	OnTime             Key = "on_time"
	BetweenTimes       Key = "between_times"
	ListSeparator      Key = "list_separator"
	ListFinalSeparator Key = "list_final_separator"
)

// Ordinal labels.
const (
	First  Key = "first"
	Second Key = "second"
	Third  Key = "third"
	Fourth Key = "fourth"
	Last   Key = "last"
)

// Weekday class labels.
const (
	Monday     Key = "monday"
	Tuesday    Key = "tuesday"
	Wednesday  Key = "wednesday"
	Thursday   Key = "thursday"
	Friday     Key = "friday"
	Saturday   Key = "saturday"
	Sunday     Key = "sunday"
	Weekday    Key = "weekday"
	WeekendDay Key = "weekend_day"
)

// Time unit labels, in plural form.
const (
	Hours   Key = "hours"
	Minutes Key = "minutes"
	Seconds Key = "seconds"
)

// Validation messages.
const (
	ErrConfigMissing               Key = "error_config_missing"
	ErrMissingLimitEndDate         Key = "error_missing_limit_end_date"
	ErrDailyFrequencyMissingWindow Key = "error_daily_frequency_missing_window"
	ErrMonthlyConfigMissing        Key = "error_monthly_config_missing"
	ErrMonthlyModeConflict         Key = "error_monthly_mode_conflict"
	ErrMonthlyDayNotPositive       Key = "error_monthly_day_not_positive"
	ErrMonthlyDayOutOfRange        Key = "error_monthly_day_out_of_range"
	ErrMonthlyStepMissing          Key = "error_monthly_step_missing"
	ErrMonthlyOrdinalMissing       Key = "error_monthly_ordinal_missing"
	ErrMonthlyWeekdayMissing       Key = "error_monthly_weekday_missing"
	ErrMonthlyStepMissingSomeDay   Key = "error_monthly_step_missing_some_day"
	ErrMonthlyStepNotPositive      Key = "error_monthly_step_not_positive"
	ErrTriggerExpired              Key = "error_trigger_expired"
)
