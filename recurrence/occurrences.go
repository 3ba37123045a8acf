package recurrence

import "iter"

// Occurrences returns an iterator over the successive executions of the
// configuration, each computed from the previous one. Iteration starts from
// cfg.CurrentDate and ends after the limit end date, after the single
// execution of a one-off schedule, or when an execution does not advance.
// Executions before the limit start date are skipped.
//
// A validation error is yielded once and ends the iteration.
func (g *Generator) Occurrences(cfg *Configuration) iter.Seq2[CalculationResult, error] {
	return func(yield func(CalculationResult, error) bool) {
		if err := g.validate(cfg); err != nil {
			yield(CalculationResult{}, err)
			return
		}

		step := *cfg
		for {
			result, err := g.GenerateDate(&step)
			if err != nil {
				yield(CalculationResult{}, err)
				return
			}

			next := result.NextExecutionTime
			if !next.After(step.CurrentDate) || pastLimitEnd(cfg, next) {
				return
			}
			if !beforeLimitStart(cfg, next) && !yield(result, nil) {
				return
			}
			if cfg.Type == ScheduleOnce {
				return
			}
			step.CurrentDate = next
		}
	}
}
