package recurrence

import (
	"slices"
	"time"

	"github.com/reugn/go-recurrence/internal/calendar"
	"github.com/reugn/go-recurrence/internal/ptr"
	"github.com/reugn/go-recurrence/locale"
)

// ScheduleType tells a one-off schedule from a recurring one.
type ScheduleType int

const (
	ScheduleOnce ScheduleType = iota
	ScheduleRecurring
)

// Occurrence is the base repeat unit applied when no monthly rule is set.
type Occurrence int

const (
	OccursDaily Occurrence = iota
	OccursWeekly
	OccursMonthly
)

// FrequencyKind selects between a single fixed time of day and a step
// repeated inside a time window.
type FrequencyKind int

const (
	FrequencyOnce FrequencyKind = iota
	FrequencyRecurring
)

// TimeUnit is the unit of a daily frequency step.
type TimeUnit int

const (
	Hours TimeUnit = iota
	Minutes
	Seconds
)

// Ordinal selects an occurrence of a weekday class within a month.
// The zero value means the ordinal is absent.
type Ordinal int

const (
	_ Ordinal = iota
	First
	Second
	Third
	Fourth
	Last
)

// WeekdayClass is a single day of the week, any weekday (Monday to Friday)
// or any weekend day. The zero value means the class is absent.
type WeekdayClass int

const (
	_ WeekdayClass = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Weekday
	WeekendDay
)

// Configuration describes a schedule together with the timestamp from which
// the next execution is computed. A Configuration is never modified by the
// engine; to step through occurrences, set CurrentDate to the previous
// result.
type Configuration struct {
	// CurrentDate is the timestamp the next execution is computed from.
	CurrentDate time.Time

	// Type tells a one-off schedule from a recurring one. A recurring
	// schedule requires LimitEnd.
	Type ScheduleType

	// Occurs and OccursAmount step the date when no monthly rule is set.
	Occurs       Occurrence
	OccursAmount int

	// LimitStart and LimitEnd bound the schedule. They are optional for a
	// one-off schedule.
	LimitStart *time.Time
	LimitEnd   *time.Time

	DailyFrequency *DailyFrequency
	Monthly        *MonthlyConfiguration
	Weekly         *WeeklyConfiguration
}

// clone returns a deep copy of the configuration. A rule held by pointer
// is copied as a value.
func (c *Configuration) clone() Configuration {
	dup := *c
	dup.LimitStart = ptr.Clone(c.LimitStart)
	dup.LimitEnd = ptr.Clone(c.LimitEnd)
	if c.DailyFrequency != nil {
		dup.DailyFrequency = c.DailyFrequency.clone()
	}
	if c.Monthly != nil {
		dup.Monthly = &MonthlyConfiguration{Rule: cloneRule(c.Monthly.Rule)}
	}
	if c.Weekly != nil {
		dup.Weekly = &WeeklyConfiguration{
			Weekdays: slices.Clone(c.Weekly.Weekdays),
			Every:    c.Weekly.Every,
		}
	}
	return dup
}

// DailyFrequency resolves the time of day of an execution: either a fixed
// time, or a step of Every units repeated between StartsAt and EndsAt.
type DailyFrequency struct {
	Kind FrequencyKind

	// At is the fixed time of day of a FrequencyOnce frequency.
	At *TimeOfDay

	Every int
	Unit  TimeUnit

	// StartsAt and EndsAt bound the window. Both are required when Every
	// is not zero.
	StartsAt *TimeOfDay
	EndsAt   *TimeOfDay
}

// step returns the duration of one frequency step.
func (f *DailyFrequency) step() time.Duration {
	switch f.Unit {
	case Seconds:
		return time.Duration(f.Every) * time.Second
	case Minutes:
		return time.Duration(f.Every*60) * time.Second
	default:
		return time.Duration(f.Every) * time.Hour
	}
}

func (f *DailyFrequency) clone() *DailyFrequency {
	dup := *f
	dup.At = ptr.Clone(f.At)
	dup.StartsAt = ptr.Clone(f.StartsAt)
	dup.EndsAt = ptr.Clone(f.EndsAt)
	return &dup
}

// WeeklyConfiguration selects days of the week. It only contributes to the
// description; stepping is driven by Occurs and OccursAmount.
type WeeklyConfiguration struct {
	Weekdays []time.Weekday
	Every    int
}

// MonthlyConfiguration holds the monthly rule of a schedule.
type MonthlyConfiguration struct {
	Rule MonthlyRule
}

// MonthlyRule is either a [ConcreteDay] or a [SomeDay].
type MonthlyRule interface {
	monthlyRule()
}

// ConcreteDay fires on day Day of every Every months.
type ConcreteDay struct {
	Day   int
	Every int
}

// SomeDay fires on the Ordinal occurrence of Class in every Every months,
// e.g. the last weekend day of every two months.
type SomeDay struct {
	Ordinal Ordinal
	Class   WeekdayClass
	Every   int
}

func cloneRule(rule MonthlyRule) MonthlyRule {
	switch rule := rule.(type) {
	case *ConcreteDay:
		if rule != nil {
			return *rule
		}
	case *SomeDay:
		if rule != nil {
			return *rule
		}
	}
	return rule
}

func (ConcreteDay) monthlyRule() {}
func (SomeDay) monthlyRule()     {}

// CalculationResult is the outcome of [Generator.GenerateDate].
type CalculationResult struct {
	NextExecutionTime time.Time
	Description       string
}

// index returns the 1-based position of the ordinal, or 0 for Last.
func (o Ordinal) index() int {
	if o >= First && o <= Fourth {
		return int(o)
	}
	return 0
}

func (o Ordinal) valid() bool {
	return o >= First && o <= Last
}

var ordinalKeys = map[Ordinal]locale.Key{
	First:  locale.First,
	Second: locale.Second,
	Third:  locale.Third,
	Fourth: locale.Fourth,
	Last:   locale.Last,
}

// String returns the English label of the ordinal.
func (o Ordinal) String() string {
	return locale.English.Text(ordinalKeys[o])
}

var weekdayClasses = [...]WeekdayClass{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// WeekdayOf maps a day of the week to its single-day class. A day outside
// Sunday through Saturday maps to the zero class.
func WeekdayOf(day time.Weekday) WeekdayClass {
	if day < time.Sunday || day > time.Saturday {
		return 0
	}
	return weekdayClasses[day]
}

// Matches reports whether the date of t belongs to the class.
func (c WeekdayClass) Matches(t time.Time) bool {
	switch c {
	case Weekday:
		return calendar.IsWeekday(t)
	case WeekendDay:
		return !calendar.IsWeekday(t)
	default:
		return WeekdayOf(t.Weekday()) == c
	}
}

func (c WeekdayClass) valid() bool {
	return c >= Monday && c <= WeekendDay
}

var weekdayClassKeys = map[WeekdayClass]locale.Key{
	Monday:     locale.Monday,
	Tuesday:    locale.Tuesday,
	Wednesday:  locale.Wednesday,
	Thursday:   locale.Thursday,
	Friday:     locale.Friday,
	Saturday:   locale.Saturday,
	Sunday:     locale.Sunday,
	Weekday:    locale.Weekday,
	WeekendDay: locale.WeekendDay,
}

// String returns the English label of the class.
func (c WeekdayClass) String() string {
	return locale.English.Text(weekdayClassKeys[c])
}

var timeUnitKeys = map[TimeUnit]locale.Key{
	Hours:   locale.Hours,
	Minutes: locale.Minutes,
	Seconds: locale.Seconds,
}

// String returns the name of the occurrence.
func (o Occurrence) String() string {
	switch o {
	case OccursWeekly:
		return "weekly"
	case OccursMonthly:
		return "monthly"
	default:
		return "daily"
	}
}
