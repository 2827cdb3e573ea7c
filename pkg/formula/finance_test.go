package formula_test

import (
	"math"
	"testing"

	"toolbox/pkg/formula"

	"github.com/stretchr/testify/require"
)

func TestPresentValue(t *testing.T) {
	pv, err := formula.PresentValue(100000, 0.05, 10)
	require.NoError(t, err)
	require.InDelta(t, 61391.33, pv, 0.01)

	pv, err = formula.PresentValue(500, 0, 30)
	require.NoError(t, err)
	require.InDelta(t, 500, pv, 1e-12)

	_, err = formula.PresentValue(100, -1, 3)
	require.ErrorIs(t, err, formula.ErrDivisionByZero)

	_, err = formula.PresentValue(math.Inf(1), 0.05, 3)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestFutureValue_InvertsPresentValue(t *testing.T) {
	fv, err := formula.FutureValue(61391.32535407592, 0.05, 10)
	require.NoError(t, err)
	require.InDelta(t, 100000, fv, 1e-6)
}

func TestPaybackPeriod(t *testing.T) {
	years, err := formula.PaybackPeriod(50000, 12500)
	require.NoError(t, err)
	require.InDelta(t, 4, years, 1e-12)

	_, err = formula.PaybackPeriod(50000, 0)
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	_, err = formula.PaybackPeriod(50000, -100)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestDiscountedPrice(t *testing.T) {
	require.InDelta(t, 75.0, formula.DiscountedPrice(100, 25), 0)

	for _, price := range []float64{0, 0.01, 19.99, 1234.5, -7} {
		require.InDelta(t, price, formula.DiscountedPrice(price, 0), 0, "identity for %g", price)
	}
}

func TestCommission(t *testing.T) {
	require.InDelta(t, 250.0, formula.Commission(5000, 5), 1e-12)
	require.Zero(t, formula.Commission(5000, 0))
}

func TestROI(t *testing.T) {
	roi, err := formula.ROI(1500, 1000)
	require.NoError(t, err)
	require.InDelta(t, 50, roi, 1e-12)

	_, err = formula.ROI(1500, 0)
	require.ErrorIs(t, err, formula.ErrDivisionByZero)
}

func TestLoanPayment(t *testing.T) {
	p, err := formula.LoanPayment(10000, 12, 24)
	require.NoError(t, err)
	require.InDelta(t, 470.73, p, 0.01)

	p, err = formula.LoanPayment(1200, 0, 12)
	require.NoError(t, err)
	require.InDelta(t, 100, p, 1e-12)

	_, err = formula.LoanPayment(1200, 5, 0)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestApproximateAPR(t *testing.T) {
	apr, err := formula.ApproximateAPR(10000, 12, 200, 2)
	require.NoError(t, err)
	require.InDelta(t, 470.7347, apr.MonthlyPayment, 1e-4)
	require.InDelta(t, 1297.6333, apr.TotalInterest, 1e-4)
	require.InDelta(t, 7.488167, apr.Rate, 1e-6)
}

func TestApproximateAPR_ZeroRate(t *testing.T) {
	apr, err := formula.ApproximateAPR(1200, 0, 60, 1)
	require.NoError(t, err)
	require.InDelta(t, 100, apr.MonthlyPayment, 1e-12)
	require.InDelta(t, 0, apr.TotalInterest, 1e-9)
	require.InDelta(t, 5, apr.Rate, 1e-9)
}

func TestApproximateAPR_Errors(t *testing.T) {
	_, err := formula.ApproximateAPR(0, 5, 100, 3)
	require.ErrorIs(t, err, formula.ErrDivisionByZero)

	_, err = formula.ApproximateAPR(1000, 5, 100, 0)
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	_, err = formula.ApproximateAPR(-1000, 5, 100, 1)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}

func TestLoanPayment_Overflow(t *testing.T) {
	// (1+r)^n overflows to +Inf and the annuity factor becomes Inf/Inf.
	_, err := formula.LoanPayment(1e6, 1e6, 360)
	require.ErrorIs(t, err, formula.ErrNoRealResult)
}

func TestApproximateAPR_Overflow(t *testing.T) {
	tests := []struct {
		name                        string
		loan, rate, fees, termYears float64
	}{
		{name: "total interest overflows", loan: 1e308, rate: 5, termYears: 30},
		{name: "annuity factor is NaN", loan: 1e6, rate: 1e6, termYears: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formula.ApproximateAPR(tt.loan, tt.rate, tt.fees, tt.termYears)
			require.ErrorIs(t, err, formula.ErrNoRealResult)
		})
	}
}
