package worker

import (
	"context"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"toolbox/pkg/logger"
)

// errorHandler logs job failures with the job's identity. Panics are
// deterministic for a given calculation, so the job is cancelled instead of
// retried.
type errorHandler struct{}

var _ river.ErrorHandler = errorHandler{}

func jobFields(job *rivertype.JobRow) []zap.Field {
	return []zap.Field{
		zap.Int64("jobID", job.ID),
		zap.String("kind", job.Kind),
		zap.Int("attempt", job.Attempt),
		zap.Int("maxAttempts", job.MaxAttempts),
	}
}

func (errorHandler) HandleError(ctx context.Context, job *rivertype.JobRow, err error) *river.ErrorHandlerResult {
	logger.Warn(ctx, "job failed", append(jobFields(job), zap.Error(err))...)

	return nil
}

func (errorHandler) HandlePanic(ctx context.Context,
	job *rivertype.JobRow,
	panicVal any,
	trace string) *river.ErrorHandlerResult {
	logger.Error(ctx, "job panicked",
		append(jobFields(job), zap.Any("panic", panicVal), zap.String("trace", trace))...)

	return &river.ErrorHandlerResult{SetCancelled: true}
}
