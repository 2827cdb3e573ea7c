package formula_test

import (
	"math"
	"testing"

	"toolbox/pkg/formula"

	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	g, err := formula.GCD(48, 18)
	require.NoError(t, err)
	require.Equal(t, int64(6), g)

	_, err = formula.GCD(0, 18)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
	_, err = formula.GCD(12, -4)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestGCD_CommutativeAndGreatest(t *testing.T) {
	for a := int64(1); a <= 40; a++ {
		for b := int64(1); b <= 40; b++ {
			ab, err := formula.GCD(a, b)
			require.NoError(t, err)
			ba, err := formula.GCD(b, a)
			require.NoError(t, err)
			require.Equal(t, ab, ba)
			require.Zero(t, a%ab)
			require.Zero(t, b%ab)

			// cross-check against factor enumeration
			fa, err := formula.Factors(a)
			require.NoError(t, err)
			var greatest int64
			for _, f := range fa {
				if b%f == 0 {
					greatest = f
				}
			}
			require.Equal(t, greatest, ab, "gcd(%d,%d)", a, b)
		}
	}
}

func TestGCDOf(t *testing.T) {
	g, err := formula.GCDOf(12)
	require.NoError(t, err)
	require.Equal(t, int64(12), g)

	g, err = formula.GCDOf(84, 126, 210)
	require.NoError(t, err)
	require.Equal(t, int64(42), g)

	_, err = formula.GCDOf()
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	_, err = formula.GCDOf(4, 0)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestLCM(t *testing.T) {
	l, err := formula.LCM(4, 6)
	require.NoError(t, err)
	require.Equal(t, int64(12), l)

	l, err = formula.LCMOf(2, 3, 4, 5)
	require.NoError(t, err)
	require.Equal(t, int64(60), l)

	_, err = formula.LCM(math.MaxInt64, math.MaxInt64-1)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestFactors(t *testing.T) {
	tests := []struct {
		n    int64
		want []int64
	}{
		{n: 1, want: []int64{1}},
		{n: 13, want: []int64{1, 13}},
		{n: 36, want: []int64{1, 2, 3, 4, 6, 9, 12, 18, 36}},
		{n: 60, want: []int64{1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30, 60}},
	}

	for _, tt := range tests {
		got, err := formula.Factors(tt.n)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := formula.Factors(0)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestPrimeFactorize(t *testing.T) {
	got, err := formula.PrimeFactorize(60)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 2, 3, 5}, got)

	got, err = formula.PrimeFactorize(1)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = formula.PrimeFactorize(1_000_000_007) // prime
	require.NoError(t, err)
	require.Equal(t, []int64{1_000_000_007}, got)

	_, err = formula.PrimeFactorize(-8)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestPrimeFactorize_ProductEqualsInput(t *testing.T) {
	for n := int64(1); n <= 2000; n++ {
		factors, err := formula.PrimeFactorize(n)
		require.NoError(t, err)

		product := int64(1)
		for _, f := range factors {
			product *= f
		}
		require.Equal(t, n, product)
	}
}

func TestToPositiveInteger(t *testing.T) {
	n, err := formula.ToPositiveInteger(42)
	require.NoError(t, err)
	require.Equal(t, int64(42), n)

	for _, v := range []float64{0, -3, 2.5, math.Inf(1), math.NaN(), 1e30} {
		_, err := formula.ToPositiveInteger(v)
		require.ErrorIs(t, err, formula.ErrInvalidInput, "value %g", v)
	}
}
