package formula

import (
	"math"
	"slices"
)

// ToPositiveInteger converts a caller supplied number to a positive integer.
// Non-integral, non-positive and out of range values are rejected.
func ToPositiveInteger(v float64) (int64, error) {
	if err := finite("number", v); err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, invalid("%g is not an integer", v)
	}
	if v <= 0 {
		return 0, invalid("%g is not a positive integer", v)
	}
	if v >= math.MaxInt64 {
		return 0, invalid("%g is too large", v)
	}

	return int64(v), nil
}

func positive(name string, n int64) error {
	if n <= 0 {
		return invalid("%s must be a positive integer, got %d", name, n)
	}

	return nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCD returns the greatest common divisor of two positive integers using the
// Euclidean algorithm.
func GCD(a, b int64) (int64, error) {
	if err := positive("a", a); err != nil {
		return 0, err
	}
	if err := positive("b", b); err != nil {
		return 0, err
	}

	return gcd(a, b), nil
}

// GCDOf folds GCD over one or more positive integers. The GCD of a single
// number is the number itself.
func GCDOf(ns ...int64) (int64, error) {
	if len(ns) == 0 {
		return 0, invalid("at least one number is required")
	}

	result := ns[0]
	for _, n := range ns {
		if err := positive("number", n); err != nil {
			return 0, err
		}
		result = gcd(result, n)
	}

	return result, nil
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int64) (int64, error) {
	g, err := GCD(a, b)
	if err != nil {
		return 0, err
	}

	q := a / g
	if q > math.MaxInt64/b {
		return 0, invalid("least common multiple of %d and %d overflows", a, b)
	}

	return q * b, nil
}

// LCMOf folds LCM over one or more positive integers.
func LCMOf(ns ...int64) (int64, error) {
	if len(ns) == 0 {
		return 0, invalid("at least one number is required")
	}
	if err := positive("number", ns[0]); err != nil {
		return 0, err
	}

	result := ns[0]
	for _, n := range ns[1:] {
		var err error
		if result, err = LCM(result, n); err != nil {
			return 0, err
		}
	}

	return result, nil
}

// Factors lists every positive divisor of n in ascending order. Divisors are
// found by trial division up to √n, collecting both i and n/i.
func Factors(n int64) ([]int64, error) {
	if err := positive("n", n); err != nil {
		return nil, err
	}

	var out []int64
	for i := int64(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		out = append(out, i)
		if j := n / i; j != i {
			out = append(out, j)
		}
	}
	slices.Sort(out)

	return out, nil
}

// PrimeFactorize returns the prime factors of n with multiplicity, in
// ascending order. PrimeFactorize(1) is empty.
func PrimeFactorize(n int64) ([]int64, error) {
	if err := positive("n", n); err != nil {
		return nil, err
	}

	var out []int64
	remaining := n
	for divisor := int64(2); divisor <= remaining/divisor; {
		if remaining%divisor == 0 {
			out = append(out, divisor)
			remaining /= divisor

			continue
		}
		divisor++
	}
	if remaining > 1 {
		out = append(out, remaining)
	}

	return out, nil
}
