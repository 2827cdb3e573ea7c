package formula_test

import (
	"math"
	"testing"

	"toolbox/pkg/formula"

	"github.com/stretchr/testify/require"
)

func TestStandardNormalCDF_Center(t *testing.T) {
	require.InDelta(t, 0.5, formula.StandardNormalCDF(0), 1e-6)
}

func TestStandardNormalCDF_KnownValues(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{z: 1, want: 0.841345},
		{z: -1, want: 0.158655},
		{z: 1.96, want: 0.975002},
		{z: -2.5, want: 0.006210},
		{z: 3, want: 0.998650},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, formula.StandardNormalCDF(tt.z), 1e-6, "z=%g", tt.z)
	}
}

func TestStandardNormalCDF_MonotonicAndBounded(t *testing.T) {
	prev := -1.0
	for z := -6.0; z <= 6.0; z += 0.01 {
		p := formula.StandardNormalCDF(z)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		require.GreaterOrEqual(t, p, prev, "not monotonic at z=%g", z)
		prev = p
	}
}

func TestPercentile(t *testing.T) {
	require.InDelta(t, 84.1345, formula.Percentile(1), 1e-4)
}

func TestZScore(t *testing.T) {
	z, err := formula.ZScore(85, 70, 10)
	require.NoError(t, err)
	require.InDelta(t, 1.5, z, 1e-12)

	_, err = formula.ZScore(85, 70, 0)
	require.ErrorIs(t, err, formula.ErrZeroStdDev)

	_, err = formula.ZScore(85, 70, -2)
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	_, err = formula.ZScore(math.NaN(), 70, 2)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}
