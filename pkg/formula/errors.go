package formula

import (
	"errors"
	"math"

	"toolbox/pkg/serrors"
)

// Computation error kinds. They are local and recoverable: callers render them,
// the library never retries.
var (
	// ErrInvalidInput indicates a malformed or out-of-domain argument.
	ErrInvalidInput = serrors.NewKind("INVALID_INPUT")
	// ErrDivisionByZero indicates a denominator evaluated to zero.
	ErrDivisionByZero = serrors.NewKind("DIVISION_BY_ZERO")
	// ErrZeroStdDev indicates a statistical function was given a zero standard deviation.
	ErrZeroStdDev = serrors.NewKind("ZERO_STD_DEV")
	// ErrNonConvergent indicates an iterative method ran out of iterations.
	ErrNonConvergent = serrors.NewKind("NON_CONVERGENT")
	// ErrNoRealResult indicates the operation has no real-valued answer.
	ErrNoRealResult = serrors.NewKind("NO_REAL_RESULT")
)

var kinds = []serrors.Kind{ //nolint: gochecknoglobals
	ErrInvalidInput,
	ErrDivisionByZero,
	ErrZeroStdDev,
	ErrNonConvergent,
	ErrNoRealResult,
}

// KindOf reports the computation kind carried by err. The second result is
// false for errors that did not originate from a computation.
func KindOf(err error) (serrors.Kind, bool) {
	if err == nil {
		return nil, false
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k, true
		}
	}

	return nil, false
}

func invalid(format string, args ...any) error {
	return serrors.With(ErrInvalidInput, format, args...)
}

// finite rejects NaN and infinities for the named argument.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("%s must be a finite number", name)
	}

	return nil
}

// num names a float argument for finiteArgs.
type num struct {
	name  string
	value float64
}

func finiteArgs(args ...num) error {
	for _, a := range args {
		if err := finite(a.name, a.value); err != nil {
			return err
		}
	}

	return nil
}

// realResults reports ErrNoRealResult for the first computed value that
// overflowed or became NaN.
func realResults(results ...num) error {
	for _, r := range results {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return serrors.With(ErrNoRealResult, "%s is not a finite number", r.name)
		}
	}

	return nil
}
