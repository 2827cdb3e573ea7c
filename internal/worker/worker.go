// Package worker runs the River queue that evaluates enqueued calculations.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"toolbox/internal/calculator"
	"toolbox/internal/config"
	"toolbox/pkg/logger"
)

// Options configure the queue consumers.
type Options struct {
	// Workers is the number of calculations evaluated concurrently.
	Workers int
	// EvaluationTimeout bounds a single job run.
	EvaluationTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:           cfg.Calculator.Workers,
		EvaluationTimeout: cfg.Calculator.EvaluationTimeout,
	}
}

// Start registers the evaluation worker and starts consuming the default queue.
// Failed and panicking jobs are reported through the context logger.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	calc calculator.Calculator,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewEvaluationWorker(calc, options.EvaluationTimeout))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.Workers},
		},
		Workers:      workers,
		ErrorHandler: errorHandler{},
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
