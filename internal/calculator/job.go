package calculator

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"toolbox/pkg/domain"
)

// JobArgs are the arguments of the River job evaluating one calculation.
type JobArgs struct {
	CalculationID domain.CalculationID `json:"calculationId" river:"unique"`

	// maxAttempts configures how many times River tries the job.
	maxAttempts int
}

// Kind returns the River job kind the evaluation worker is registered under.
func (args JobArgs) Kind() string { return "EvaluateCalculationJob" }

// InsertOpts limits the attempts and keeps one live job per calculation.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
