package formula

import (
	"context"
	"math"

	"toolbox/pkg/serrors"
)

// CashFlow is a single signed amount received (positive) or paid (negative)
// at the given period. Period 0 is the present.
type CashFlow struct {
	Period int     `json:"period"`
	Amount float64 `json:"amount"`
}

// CashFlowSeries is an ordered list of cash flows. The period of each entry
// determines its discounting exponent; typically the first entry is the
// initial (negative) outlay.
type CashFlowSeries []CashFlow

// CashFlowsFromAmounts builds a series assigning periods 0, 1, 2, ... in order.
func CashFlowsFromAmounts(amounts ...float64) CashFlowSeries {
	flows := make(CashFlowSeries, len(amounts))
	for i, a := range amounts {
		flows[i] = CashFlow{Period: i, Amount: a}
	}

	return flows
}

func (s CashFlowSeries) validate() error {
	if len(s) == 0 {
		return invalid("cash flow series must contain at least one entry")
	}
	for i, cf := range s {
		if cf.Period < 0 {
			return invalid("cash flow %d has a negative period", i)
		}
		if err := finite("cash flow amount", cf.Amount); err != nil {
			return err
		}
	}

	return nil
}

// npv evaluates the net present value and its derivative with respect to the rate.
func (s CashFlowSeries) npv(rate float64) (value, derivative float64) {
	base := 1 + rate
	for _, cf := range s {
		p := float64(cf.Period)
		value += cf.Amount / math.Pow(base, p)
		derivative += -p * cf.Amount / math.Pow(base, p+1)
	}

	return value, derivative
}

// NPV discounts every cash flow of the series to the present at the given rate.
func NPV(flows CashFlowSeries, rate float64) (float64, error) {
	if err := flows.validate(); err != nil {
		return 0, err
	}
	if err := finite("rate", rate); err != nil {
		return 0, err
	}
	if rate == -1 {
		return 0, serrors.With(ErrDivisionByZero, "discount factor is zero at rate -1")
	}

	v, _ := flows.npv(rate)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, serrors.With(ErrNoRealResult, "net present value is not a real number at rate %g", rate)
	}

	return v, nil
}

// Default IRR parameters.
const (
	DefaultIRRGuess         = 0.1
	DefaultIRRMaxIterations = 1000
	DefaultIRRTolerance     = 1e-5

	// MaxIRRIterations is the largest accepted iteration budget.
	MaxIRRIterations = 100_000
	// MinIRRTolerance is the smallest accepted convergence threshold.
	MinIRRTolerance = 1e-12

	// irrCheckEvery is how often the iteration polls its context.
	irrCheckEvery = 1024
)

type irrOptions struct {
	ctx           context.Context //nolint: containedctx
	guess         float64
	maxIterations int
	tolerance     float64
}

// IRROption customizes the Newton-Raphson iteration used by IRR.
type IRROption func(*irrOptions)

// WithInitialGuess sets the starting rate of the iteration.
func WithInitialGuess(guess float64) IRROption {
	return func(o *irrOptions) { o.guess = guess }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) IRROption {
	return func(o *irrOptions) { o.maxIterations = n }
}

// WithTolerance sets the convergence threshold on successive rates.
func WithTolerance(tolerance float64) IRROption {
	return func(o *irrOptions) { o.tolerance = tolerance }
}

// WithContext stops the iteration once ctx is done. The error then has kind
// serrors.ErrTimeout and wraps ctx.Err().
func WithContext(ctx context.Context) IRROption {
	return func(o *irrOptions) { o.ctx = ctx }
}

// IRR finds the internal rate of return of the series: the rate r for which
// Σ amount/(1+r)^period is zero. It runs Newton-Raphson from the initial guess
// and stops once two successive rates differ by less than the tolerance.
//
// When the series changes sign more than once several roots may exist; the
// one returned is whichever the iteration reaches from the initial guess.
func IRR(flows CashFlowSeries, opts ...IRROption) (float64, error) {
	o := irrOptions{
		guess:         DefaultIRRGuess,
		maxIterations: DefaultIRRMaxIterations,
		tolerance:     DefaultIRRTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := flows.validate(); err != nil {
		return 0, err
	}
	if err := finiteArgs(num{"initial guess", o.guess}, num{"tolerance", o.tolerance}); err != nil {
		return 0, err
	}
	if o.maxIterations <= 0 || o.maxIterations > MaxIRRIterations {
		return 0, invalid("max iterations must be between 1 and %d", MaxIRRIterations)
	}
	if o.tolerance < MinIRRTolerance {
		return 0, invalid("tolerance must be at least %g", MinIRRTolerance)
	}

	rate := o.guess
	for i := range o.maxIterations {
		if o.ctx != nil && i%irrCheckEvery == 0 {
			if err := o.ctx.Err(); err != nil {
				return 0, serrors.Wrap(serrors.ErrTimeout, err, "IRR evaluation stopped after %d iterations", i)
			}
		}
		value, derivative := flows.npv(rate)
		if derivative == 0 {
			return 0, serrors.With(ErrDivisionByZero, "NPV derivative is zero at rate %g", rate)
		}

		next := rate - value/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, serrors.With(ErrNonConvergent, "IRR iteration diverged after rate %g", rate)
		}
		if math.Abs(next-rate) < o.tolerance {
			return next, nil
		}
		rate = next
	}

	return 0, serrors.With(ErrNonConvergent, "IRR did not converge within %d iterations", o.maxIterations)
}
