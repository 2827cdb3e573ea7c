package formula

import (
	"math"

	"toolbox/pkg/serrors"
)

// NthRoot returns the real n-th root of x. Odd roots of negative numbers are
// negative; even roots of negative numbers have no real result.
func NthRoot(x float64, n int64) (float64, error) {
	if err := finite("x", x); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, invalid("root degree must not be zero")
	}
	if x < 0 && n%2 == 0 {
		return 0, serrors.With(ErrNoRealResult, "even root of negative number %g", x)
	}
	if x == 0 && n < 0 {
		return 0, serrors.With(ErrDivisionByZero, "negative root of zero")
	}

	switch n {
	case 1:
		return x, nil
	case 2:
		return math.Sqrt(x), nil
	case 3:
		return math.Cbrt(x), nil
	}

	if x < 0 {
		return -math.Pow(-x, 1/float64(n)), nil
	}

	return math.Pow(x, 1/float64(n)), nil
}
