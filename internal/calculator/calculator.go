package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"toolbox/internal/config"
	"toolbox/pkg/cache"
	"toolbox/pkg/domain"
	"toolbox/pkg/formula"
	"toolbox/pkg/logger"
	"toolbox/pkg/serrors"
	"toolbox/pkg/storage"
)

// Options configure evaluation limits, retries and result caching.
type Options struct {
	// MaxAttempts is how many times a background job evaluates a calculation
	// before giving up on infrastructure errors.
	MaxAttempts int
	// MaxInputBytes rejects larger argument documents.
	MaxInputBytes int
	// CacheTTL is how long cached results of deterministic operations are reused.
	CacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:   cfg.Calculator.MaxAttempts,
		MaxInputBytes: cfg.Calculator.MaxInputBytes,
		CacheTTL:      cfg.Cache.TTL,
	}
}

type calculator struct {
	options  Options
	storage  storage.Storage
	cache    cache.Cache
	registry *Registry
	metrics  instruments
}

// New creates a Calculator. cache may be nil to disable result caching and
// meter may be nil to disable metrics.
func New(st storage.Storage,
	c cache.Cache,
	registry *Registry,
	meter metric.Meter,
	options Options) (Calculator, error) {
	inst, err := newInstruments(meter)
	if err != nil {
		return nil, err
	}

	return &calculator{
		options:  options,
		storage:  st,
		cache:    c,
		registry: registry,
		metrics:  inst,
	}, nil
}

func (c *calculator) Operations() []Operation {
	return c.registry.List()
}

// prepare resolves the operation and decodes its arguments.
func (c *calculator) prepare(op string, input []byte) (Operation, Args, error) {
	operation, ok := c.registry.Lookup(op)
	if !ok {
		return Operation{}, nil, serrors.With(serrors.ErrNotFound, "unknown operation %q", op)
	}
	if c.options.MaxInputBytes > 0 && len(input) > c.options.MaxInputBytes {
		return Operation{}, nil, serrors.With(serrors.ErrBadRequest,
			"arguments exceed %d bytes", c.options.MaxInputBytes)
	}

	args, err := ParseArgs(input)
	if err != nil {
		return Operation{}, nil, err
	}

	return operation, args, nil
}

func cacheKey(op Operation, args Args) string {
	return cache.Key("eval:"+op.Name, args.Canonical())
}

// cached returns a cached result. Cache failures are logged and treated as
// misses.
func (c *calculator) cached(ctx context.Context, op Operation, args Args) (json.RawMessage, bool) {
	if c.cache == nil || !op.Cacheable {
		return nil, false
	}

	v, found, err := c.cache.Get(ctx, cacheKey(op, args))
	if err != nil {
		logger.Warn(ctx, "could not read cached result", zap.String("operation", op.Name), zap.Error(err))

		return nil, false
	}

	return v, found
}

func (c *calculator) store(ctx context.Context, op Operation, args Args, result json.RawMessage) {
	if c.cache == nil || !op.Cacheable {
		return
	}

	if err := c.cache.Set(ctx, cacheKey(op, args), result, c.options.CacheTTL); err != nil {
		logger.Warn(ctx, "could not cache result", zap.String("operation", op.Name), zap.Error(err))
	}
}

func (c *calculator) run(ctx context.Context, op Operation, args Args) (json.RawMessage, error) {
	started := time.Now()

	if res, ok := c.cached(ctx, op, args); ok {
		c.metrics.record(ctx, op.Name, outcomeCached, started)

		return res, nil
	}

	var e jx.Encoder
	if err := op.Eval(ctx, args, &e); err != nil {
		code, _ := serrors.Describe(err)
		c.metrics.record(ctx, op.Name, code, started)

		return nil, err
	}
	res := json.RawMessage(slices.Clone(e.Bytes()))
	c.metrics.record(ctx, op.Name, outcomeOK, started)
	c.store(ctx, op, args, res)

	return res, nil
}

// Evaluate runs op with the JSON arguments in input. Unknown operations are
// reported as serrors.ErrNotFound, oversized or malformed input as bad
// request or formula.ErrInvalidInput, and formula failures keep their kind.
func (c *calculator) Evaluate(ctx context.Context, op string, input []byte) (json.RawMessage, error) {
	operation, args, err := c.prepare(op, input)
	if err != nil {
		return nil, err
	}

	return c.run(ctx, operation, args)
}

// Enqueue stores a calculation and schedules a job evaluating it. When the
// operation is deterministic and its result is cached the calculation is
// stored as completed and no job is scheduled.
func (c *calculator) Enqueue(ctx context.Context,
	userID domain.UserID,
	op string,
	input []byte) (*domain.Calculation, error) {
	operation, args, err := c.prepare(op, input)
	if err != nil {
		return nil, err
	}

	calculation := domain.Calculation{
		UserID:    userID,
		Operation: operation.Name,
		Input:     args.Canonical(),
		Status:    domain.CalculationStatusPending,
	}

	if res, ok := c.cached(ctx, operation, args); ok {
		calculation.Status = domain.CalculationStatusCompleted
		calculation.Result = res

		stored, err := c.storage.StoreCalculations(ctx, calculation)
		if err != nil {
			return nil, fmt.Errorf("could not store calculation: %w", err)
		}

		return &stored[0], nil
	}

	var stored *domain.Calculation
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreCalculations(ctx, calculation)
		if err != nil {
			return fmt.Errorf("could not store calculation: %w", err)
		}
		stored = &res[0]

		added, err := tx.AddJob(ctx, JobArgs{CalculationID: stored.ID, maxAttempts: c.options.MaxAttempts}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if !added {
			logger.Warn(ctx, "evaluation job already scheduled", zap.Stringer("calculationID", stored.ID))
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue calculation: %w", err)
	}

	return stored, nil
}

// UserCalculations returns a page of the user's calculations, newest first,
// optionally filtered by status. cursor is the RFC 3339 creation time
// returned with the previous page; the returned cursor is empty on the last
// page.
func (c *calculator) UserCalculations(ctx context.Context,
	userID domain.UserID,
	status domain.CalculationStatus,
	cursor string,
	limit uint) ([]domain.Calculation, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := c.storage.UserCalculations(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user calculations: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.UTC().Format(time.RFC3339Nano)
	}

	return page.Calculations, next, nil
}

// Result fetches one calculation of the user.
func (c *calculator) Result(ctx context.Context,
	userID domain.UserID,
	id domain.CalculationID) (*domain.Calculation, error) {
	res, err := c.storage.CalculationByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get calculation: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "calculation not found")
	}

	return res, nil
}

// Delete soft-deletes a calculation of the user. A job still queued for it
// finds no pending calculation and is cancelled by the worker.
func (c *calculator) Delete(ctx context.Context, userID domain.UserID, id domain.CalculationID) error {
	res, err := c.storage.DeleteCalculation(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete calculation: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "calculation not found")
	}

	return nil
}

// computationError reports whether err is the final answer for the input,
// as opposed to an infrastructure failure worth retrying.
func computationError(err error) bool {
	if _, ok := formula.KindOf(err); ok {
		return true
	}

	return serrors.IsAny(err, serrors.ErrBadRequest, serrors.ErrNotFound)
}

// Process evaluates a pending calculation while holding its row lock.
//
// A result is stored as COMPLETED and a computation error as FAILED with its
// code and message; both finish the job. Any other error is recorded on the
// row and returned so the job is retried, except on the last attempt where
// the calculation is marked FAILED as well. A calculation that is no longer
// pending yields serrors.ErrNotFound.
func (c *calculator) Process(ctx context.Context, id domain.CalculationID, lastAttempt bool) error {
	ctx = logger.WithFields(ctx, zap.Stringer("calculationID", id))

	var evalErr error
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		calculation, err := tx.PendingCalculation(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get pending calculation: %w", err)
		}
		if calculation == nil {
			return serrors.With(serrors.ErrNotFound, "no pending calculation %s", id)
		}

		updates := storage.CalculationUpdates{IncrementAttempts: true}

		var res json.RawMessage
		res, evalErr = c.Evaluate(ctx, calculation.Operation, calculation.Input)
		switch {
		case evalErr == nil:
			updates.Status = domain.CalculationStatusCompleted
			updates.Result = res
			empty := ""
			updates.ErrorCode = &empty
			updates.LastError = &empty
		case computationError(evalErr):
			code, msg := serrors.Describe(evalErr)
			updates.Status = domain.CalculationStatusFailed
			updates.ErrorCode = &code
			updates.LastError = &msg
			logger.Info(ctx, "calculation failed", zap.String("code", code), zap.String("error", msg))
			evalErr = nil
		default:
			msg := evalErr.Error()
			updates.LastError = &msg
			if lastAttempt {
				code, _ := serrors.Describe(evalErr)
				updates.Status = domain.CalculationStatusFailed
				updates.ErrorCode = &code
			}
		}

		if _, err := tx.UpdateCalculationByID(ctx, id, updates); err != nil {
			return fmt.Errorf("could not update calculation: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not process calculation: %w", err)
	}

	if evalErr != nil {
		return fmt.Errorf("could not evaluate calculation: %w", evalErr)
	}

	return nil
}
