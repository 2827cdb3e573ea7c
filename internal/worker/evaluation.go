package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"toolbox/internal/calculator"
	"toolbox/pkg/logger"
	"toolbox/pkg/serrors"
)

// EvaluationWorker processes calculator.JobArgs jobs. Computation errors are
// recorded on the calculation by the calculator, so they complete the job;
// jobs whose calculation is no longer pending (deleted or already done) are
// cancelled, and anything else is retried by River with its backoff.
type EvaluationWorker struct {
	river.WorkerDefaults[calculator.JobArgs]

	calc    calculator.Calculator
	timeout time.Duration
}

// NewEvaluationWorker constructs a worker bounded by timeout per job. A zero
// timeout keeps River's default.
func NewEvaluationWorker(calc calculator.Calculator, timeout time.Duration) *EvaluationWorker {
	return &EvaluationWorker{calc: calc, timeout: timeout}
}

// Timeout returns the per-job time limit.
func (w *EvaluationWorker) Timeout(*river.Job[calculator.JobArgs]) time.Duration {
	return w.timeout
}

// Work evaluates the calculation referenced by the job.
func (w *EvaluationWorker) Work(ctx context.Context, job *river.Job[calculator.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("calculationID", job.Args.CalculationID))

	lastAttempt := job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts
	if err := w.calc.Process(ctx, job.Args.CalculationID, lastAttempt); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "calculation is no longer pending")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		if serrors.Transient(err) {
			logger.Warn(ctx, "transient error in evaluating calculation", zap.Error(err))
		} else {
			logger.Error(ctx, "error in evaluating calculation", zap.Error(err))
		}

		return fmt.Errorf("could not evaluate calculation: %w", err)
	}

	logger.Info(ctx, "calculation evaluated")

	return nil
}
