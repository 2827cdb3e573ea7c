package formula

import (
	"math"

	"toolbox/pkg/serrors"
)

// Zelen & Severo (Abramowitz-Stegun 26.2.17) coefficients. Changing any of
// them changes results bit for bit.
const (
	cdfP  = 0.2316419
	cdfD  = 0.3989423
	cdfB1 = 0.3193815
	cdfB2 = -0.3565638
	cdfB3 = 1.781478
	cdfB4 = -1.821256
	cdfB5 = 1.330274
)

// StandardNormalCDF approximates P(Z ≤ z) for a standard normal variable with
// the Zelen & Severo polynomial. The absolute error is below 7.5e-8.
func StandardNormalCDF(z float64) float64 {
	t := 1 / (1 + cdfP*math.Abs(z))
	d := cdfD * math.Exp(-z*z/2)
	prob := d * t * (cdfB1 + t*(cdfB2+t*(cdfB3+t*(cdfB4+t*cdfB5))))
	if z > 0 {
		return 1 - prob
	}

	return prob
}

// Percentile returns StandardNormalCDF(z) expressed as a percentage.
func Percentile(z float64) float64 {
	return StandardNormalCDF(z) * 100
}

// ZScore returns how many standard deviations x lies from the mean.
func ZScore(x, mean, stdDev float64) (float64, error) {
	if err := finiteArgs(num{"value", x}, num{"mean", mean}, num{"standard deviation", stdDev}); err != nil {
		return 0, err
	}
	if stdDev == 0 {
		return 0, serrors.With(ErrZeroStdDev, "standard deviation must not be zero")
	}
	if stdDev < 0 {
		return 0, invalid("standard deviation must not be negative")
	}

	return (x - mean) / stdDev, nil
}
