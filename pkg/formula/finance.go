package formula

import (
	"math"

	"toolbox/pkg/serrors"
)

// PresentValue discounts a future value: fv / (1+rate)^periods.
func PresentValue(futureValue, rate, periods float64) (float64, error) {
	if err := finiteArgs(num{"future value", futureValue}, num{"rate", rate}, num{"periods", periods}); err != nil {
		return 0, err
	}

	factor := math.Pow(1+rate, periods)
	if factor == 0 {
		return 0, serrors.With(ErrDivisionByZero, "discount factor is zero")
	}
	pv := futureValue / factor
	if math.IsNaN(pv) || math.IsInf(pv, 0) {
		return 0, serrors.With(ErrNoRealResult, "present value is not a real number")
	}

	return pv, nil
}

// FutureValue compounds a present value: pv * (1+rate)^periods.
func FutureValue(presentValue, rate, periods float64) (float64, error) {
	if err := finiteArgs(num{"present value", presentValue}, num{"rate", rate}, num{"periods", periods}); err != nil {
		return 0, err
	}

	fv := presentValue * math.Pow(1+rate, periods)
	if math.IsNaN(fv) || math.IsInf(fv, 0) {
		return 0, serrors.With(ErrNoRealResult, "future value is not a real number")
	}

	return fv, nil
}

// PaybackPeriod returns how many periods of a constant cash flow it takes to
// recover the initial investment.
func PaybackPeriod(initialInvestment, annualCashFlow float64) (float64, error) {
	if err := finiteArgs(num{"initial investment", initialInvestment}, num{"annual cash flow", annualCashFlow}); err != nil {
		return 0, err
	}
	if annualCashFlow <= 0 {
		return 0, invalid("annual cash flow must be positive")
	}

	return initialInvestment / annualCashFlow, nil
}

// DiscountedPrice applies a percentage discount: price × (1 − percentOff/100).
func DiscountedPrice(originalPrice, percentOff float64) float64 {
	return originalPrice * (1 - percentOff/100)
}

// Commission returns salesAmount × rate/100.
func Commission(salesAmount, rate float64) float64 {
	return salesAmount * rate / 100
}

// ROI returns the return on investment in percent: (gain − cost)/cost × 100.
func ROI(gain, cost float64) (float64, error) {
	if err := finiteArgs(num{"gain", gain}, num{"cost", cost}); err != nil {
		return 0, err
	}
	if cost == 0 {
		return 0, serrors.With(ErrDivisionByZero, "investment cost must not be zero")
	}

	return (gain - cost) / cost * 100, nil
}

// LoanPayment returns the amortized payment per month of a loan using the
// annuity formula P·r·(1+r)^n / ((1+r)^n − 1), where r is the monthly rate and
// n the number of months. A zero rate divides the principal evenly.
func LoanPayment(principal, annualRatePercent, months float64) (float64, error) {
	if err := finiteArgs(num{"principal", principal}, num{"rate", annualRatePercent}, num{"months", months}); err != nil {
		return 0, err
	}
	if months <= 0 {
		return 0, invalid("number of months must be positive")
	}
	if annualRatePercent < 0 {
		return 0, invalid("interest rate must not be negative")
	}

	payment := loanPayment(principal, annualRatePercent, months)
	if err := realResults(num{"monthly payment", payment}); err != nil {
		return 0, err
	}

	return payment, nil
}

func loanPayment(principal, annualRatePercent, months float64) float64 {
	r := annualRatePercent / 100 / 12
	if r == 0 {
		return principal / months
	}
	growth := math.Pow(1+r, months)

	return principal * r * growth / (growth - 1)
}

// APR is the breakdown produced by ApproximateAPR.
type APR struct {
	// MonthlyPayment is the amortized payment per month.
	MonthlyPayment float64 `json:"monthlyPayment"`
	// TotalInterest is the interest paid over the whole term.
	TotalInterest float64 `json:"totalInterest"`
	// Rate is the approximate annual percentage rate, in percent.
	Rate float64 `json:"rate"`
}

// ApproximateAPR estimates the annual percentage rate of a loan including
// fees as ((fees + totalInterest)/loanAmount)/termYears × 100.
//
// This is a simplified figure and intentionally not the actuarial
// Truth-in-Lending APR; callers depend on these exact outputs.
func ApproximateAPR(loanAmount, annualRatePercent, fees, termYears float64) (APR, error) {
	if err := finiteArgs(
		num{"loan amount", loanAmount},
		num{"rate", annualRatePercent},
		num{"fees", fees},
		num{"term", termYears},
	); err != nil {
		return APR{}, err
	}
	if loanAmount == 0 {
		return APR{}, serrors.With(ErrDivisionByZero, "loan amount must not be zero")
	}
	if loanAmount < 0 || fees < 0 || annualRatePercent < 0 {
		return APR{}, invalid("loan amount, rate and fees must not be negative")
	}
	if termYears <= 0 {
		return APR{}, invalid("term must be positive")
	}

	months := termYears * 12
	payment := loanPayment(loanAmount, annualRatePercent, months)
	totalInterest := payment*months - loanAmount
	rate := (fees + totalInterest) / loanAmount / termYears * 100
	if err := realResults(
		num{"monthly payment", payment},
		num{"total interest", totalInterest},
		num{"rate", rate},
	); err != nil {
		return APR{}, err
	}

	return APR{
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		Rate:           rate,
	}, nil
}
