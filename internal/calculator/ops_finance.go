package calculator

import (
	"context"

	"github.com/go-faster/jx"

	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
)

func registerFinance(r *Registry) {
	r.Register(Operation{
		Name:    "irr",
		Group:   GroupFinance,
		Summary: "Internal rate of return of a cash flow series (Newton-Raphson).",
		Params: []Param{
			required("cashFlows", "cash-flows"),
			optional("guess", "number"),
			optional("maxIterations", "integer"),
			optional("tolerance", "number"),
		},
		Cacheable: true,
		Eval: func(ctx context.Context, args Args, e *jx.Encoder) error {
			flows, err := args.CashFlows("cashFlows")
			if err != nil {
				return err
			}
			guess, err := args.OptFloat("guess", formula.DefaultIRRGuess)
			if err != nil {
				return err
			}
			iterations, err := args.OptInt("maxIterations", formula.DefaultIRRMaxIterations)
			if err != nil {
				return err
			}
			if iterations < 1 || iterations > formula.MaxIRRIterations {
				return serrors.With(formula.ErrInvalidInput,
					"maxIterations must be between 1 and %d", formula.MaxIRRIterations)
			}
			tolerance, err := args.OptFloat("tolerance", formula.DefaultIRRTolerance)
			if err != nil {
				return err
			}

			rate, err := formula.IRR(flows,
				formula.WithContext(ctx),
				formula.WithInitialGuess(guess),
				formula.WithMaxIterations(int(iterations)),
				formula.WithTolerance(tolerance))
			if err != nil {
				return err //nolint: wrapcheck
			}

			return writeValue(e, rate)
		},
	})

	r.Register(Operation{
		Name:      "npv",
		Group:     GroupFinance,
		Summary:   "Net present value of a cash flow series at a periodic rate.",
		Params:    []Param{required("cashFlows", "cash-flows"), required("rate", "number")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			flows, err := args.CashFlows("cashFlows")
			if err != nil {
				return err
			}
			rate, err := args.Float("rate")
			if err != nil {
				return err
			}
			v, err := formula.NPV(flows, rate)
			if err != nil {
				return err //nolint: wrapcheck
			}

			return writeMoney(e, v)
		},
	})

	r.Register(moneyOp("present-value", "Discounts a future value: fv / (1+rate)^periods.",
		[]string{"futureValue", "rate", "periods"},
		func(v []float64) (float64, error) { return formula.PresentValue(v[0], v[1], v[2]) }))

	r.Register(moneyOp("future-value", "Compounds a present value: pv * (1+rate)^periods.",
		[]string{"presentValue", "rate", "periods"},
		func(v []float64) (float64, error) { return formula.FutureValue(v[0], v[1], v[2]) }))

	r.Register(moneyOp("discounted-price", "Price after a percentage discount.",
		[]string{"price", "percentOff"},
		func(v []float64) (float64, error) { return formula.DiscountedPrice(v[0], v[1]), nil }))

	r.Register(moneyOp("commission", "Commission earned on a sales amount at a percentage rate.",
		[]string{"salesAmount", "rate"},
		func(v []float64) (float64, error) { return formula.Commission(v[0], v[1]), nil }))

	r.Register(moneyOp("loan-payment", "Amortized monthly payment of a loan (annual rate in percent).",
		[]string{"principal", "rate", "months"},
		func(v []float64) (float64, error) { return formula.LoanPayment(v[0], v[1], v[2]) }))

	r.Register(valueOp("payback-period", GroupFinance, "Periods needed to recover an investment.",
		[]string{"initialInvestment", "annualCashFlow"},
		func(v []float64) (float64, error) { return formula.PaybackPeriod(v[0], v[1]) }))

	r.Register(valueOp("roi", GroupFinance, "Return on investment in percent.",
		[]string{"gain", "cost"},
		func(v []float64) (float64, error) { return formula.ROI(v[0], v[1]) }))

	r.Register(Operation{
		Name:    "apr",
		Group:   GroupFinance,
		Summary: "Simplified annual percentage rate of a loan including fees.",
		Params: []Param{
			required("loanAmount", "number"),
			required("rate", "number"),
			required("fees", "number"),
			required("termYears", "number"),
		},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			v, err := floats(args, "loanAmount", "rate", "fees", "termYears")
			if err != nil {
				return err
			}
			apr, err := formula.ApproximateAPR(v[0], v[1], v[2], v[3])
			if err != nil {
				return err //nolint: wrapcheck
			}
			if err := finiteResults(
				field{"monthlyPayment", apr.MonthlyPayment},
				field{"totalInterest", apr.TotalInterest},
				field{"rate", apr.Rate},
			); err != nil {
				return err
			}

			e.Obj(func(e *jx.Encoder) {
				e.Field("monthlyPayment", func(e *jx.Encoder) { e.Float64(apr.MonthlyPayment) })
				e.Field("totalInterest", func(e *jx.Encoder) { e.Float64(apr.TotalInterest) })
				e.Field("rate", func(e *jx.Encoder) { e.Float64(apr.Rate) })
				e.Field("display", func(e *jx.Encoder) {
					e.Obj(func(e *jx.Encoder) {
						e.Field("monthlyPayment", func(e *jx.Encoder) { e.Str(moneyDisplay(apr.MonthlyPayment)) })
						e.Field("totalInterest", func(e *jx.Encoder) { e.Str(moneyDisplay(apr.TotalInterest)) })
						e.Field("rate", func(e *jx.Encoder) { e.Str(moneyDisplay(apr.Rate)) })
					})
				})
			})

			return nil
		},
	})
}

func numberParams(names []string) []Param {
	params := make([]Param, len(names))
	for i, n := range names {
		params[i] = required(n, "number")
	}

	return params
}

// moneyOp builds a finance operation over required numbers returning an amount.
func moneyOp(name, summary string, names []string, fn func([]float64) (float64, error)) Operation {
	return Operation{
		Name:      name,
		Group:     GroupFinance,
		Summary:   summary,
		Params:    numberParams(names),
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			v, err := floats(args, names...)
			if err != nil {
				return err
			}
			if err := finiteInputs(names, v); err != nil {
				return err
			}
			res, err := fn(v)
			if err != nil {
				return err
			}

			return writeMoney(e, res)
		},
	}
}

// valueOp builds an operation over required numbers returning a plain number.
func valueOp(name string, group Group, summary string, names []string,
	fn func([]float64) (float64, error)) Operation {
	return Operation{
		Name:      name,
		Group:     group,
		Summary:   summary,
		Params:    numberParams(names),
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			v, err := floats(args, names...)
			if err != nil {
				return err
			}
			if err := finiteInputs(names, v); err != nil {
				return err
			}
			res, err := fn(v)
			if err != nil {
				return err
			}

			return writeValue(e, res)
		},
	}
}
