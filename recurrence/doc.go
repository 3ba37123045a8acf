// Package recurrence computes the next execution time of a one-off or
// recurring schedule and describes the schedule in human-readable text.
//
// A [Configuration] states what kind of schedule is wanted and where the
// caller currently is. [Generator.GenerateDate] validates it, resolves the
// next execution timestamp and renders a description using a
// [locale.Catalog]:
//
//	gen := recurrence.NewGenerator()
//	result, err := gen.GenerateDate(&recurrence.Configuration{
//		CurrentDate:  time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
//		Type:         recurrence.ScheduleRecurring,
//		Occurs:       recurrence.OccursDaily,
//		OccursAmount: 2,
//		LimitEnd:     &end,
//	})
//
// The engine is stateless. To step through successive occurrences, feed the
// previous result back as CurrentDate, or use [Generator.Occurrences].
//
// The calculation runs as a fixed pipeline. When a monthly rule is present
// its day is resolved first; then the daily frequency resolves the time of
// day; finally the date is stepped by the base occurrence, or re-anchored by
// the monthly rule. The monthly and daily stages may produce a definitive
// result, which ends the pipeline early.
//
// All arithmetic is performed on the wall clock of the supplied timestamps.
// No timezone conversion takes place.
package recurrence
