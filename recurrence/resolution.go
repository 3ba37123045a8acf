package recurrence

import "time"

// resolution is the outcome of a pipeline stage. A definitive resolution is
// the final answer and no later stage runs; otherwise the pipeline proceeds
// from the resolved time.
type resolution struct {
	time       time.Time
	definitive bool
}

func definitive(t time.Time) resolution {
	return resolution{time: t, definitive: true}
}

func proceed(t time.Time) resolution {
	return resolution{time: t}
}
