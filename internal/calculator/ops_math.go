package calculator

import (
	"context"
	"math/rand/v2"

	"github.com/go-faster/jx"

	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
)

func registerStatistics(r *Registry) {
	r.Register(valueOp("normal-cdf", GroupStatistics, "P(Z <= z) for a standard normal variable.",
		[]string{"z"},
		func(v []float64) (float64, error) { return formula.StandardNormalCDF(v[0]), nil }))

	r.Register(valueOp("percentile", GroupStatistics, "Percentile rank (0-100) of a z-score.",
		[]string{"z"},
		func(v []float64) (float64, error) { return formula.Percentile(v[0]), nil }))

	r.Register(valueOp("z-score", GroupStatistics, "Standard score of a value: (value - mean) / stdDev.",
		[]string{"value", "mean", "stdDev"},
		func(v []float64) (float64, error) { return formula.ZScore(v[0], v[1], v[2]) }))
}

func registerNumbers(r *Registry) {
	r.Register(Operation{
		Name:      "gcd",
		Group:     GroupNumbers,
		Summary:   "Greatest common divisor of one or more positive integers.",
		Params:    []Param{required("numbers", "integer[]")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			ns, err := args.PositiveIntegers("numbers")
			if err != nil {
				return err
			}
			v, err := formula.GCDOf(ns...)
			if err != nil {
				return err //nolint: wrapcheck
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("value", func(e *jx.Encoder) { e.Int64(v) })
			})

			return nil
		},
	})

	r.Register(Operation{
		Name:      "lcm",
		Group:     GroupNumbers,
		Summary:   "Least common multiple of one or more positive integers.",
		Params:    []Param{required("numbers", "integer[]")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			ns, err := args.PositiveIntegers("numbers")
			if err != nil {
				return err
			}
			v, err := formula.LCMOf(ns...)
			if err != nil {
				return err //nolint: wrapcheck
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("value", func(e *jx.Encoder) { e.Int64(v) })
			})

			return nil
		},
	})

	r.Register(factorsOp("factors", "All divisors of a positive integer in ascending order.", formula.Factors))
	r.Register(factorsOp("prime-factors", "Prime factorization of a positive integer, with multiplicity.",
		formula.PrimeFactorize))

	r.Register(Operation{
		Name:      "nth-root",
		Group:     GroupNumbers,
		Summary:   "Real n-th root of a number.",
		Params:    []Param{required("x", "number"), required("n", "integer")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			x, err := args.Float("x")
			if err != nil {
				return err
			}
			n, err := args.Int("n")
			if err != nil {
				return err
			}
			v, err := formula.NthRoot(x, n)
			if err != nil {
				return err //nolint: wrapcheck
			}

			return writeValue(e, v)
		},
	})
}

func factorsOp(name, summary string, fn func(int64) ([]int64, error)) Operation {
	return Operation{
		Name:      name,
		Group:     GroupNumbers,
		Summary:   summary,
		Params:    []Param{required("n", "integer")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			n, err := args.PositiveInteger("n")
			if err != nil {
				return err
			}
			fs, err := fn(n)
			if err != nil {
				return err
			}
			writeInts(e, "factors", fs)

			return nil
		},
	}
}

func registerBigInt(r *Registry) {
	binary := []struct {
		name, summary string
		fn            func(a, b string) (string, error)
	}{
		{"big-add", "Sum of two arbitrary-precision integers.", formula.BigAdd},
		{"big-sub", "Difference of two arbitrary-precision integers.", formula.BigSub},
		{"big-mul", "Product of two arbitrary-precision integers.", formula.BigMul},
		{"big-mod", "Remainder of truncated division of two arbitrary-precision integers.", formula.BigMod},
	}
	for _, op := range binary {
		r.Register(Operation{
			Name:      op.name,
			Group:     GroupBigInt,
			Summary:   op.summary,
			Params:    []Param{required("a", "bigint"), required("b", "bigint")},
			Cacheable: true,
			Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
				a, b, err := bigPair(args)
				if err != nil {
					return err
				}
				v, err := op.fn(a, b)
				if err != nil {
					return err
				}
				writeString(e, v)

				return nil
			},
		})
	}

	r.Register(Operation{
		Name:      "big-div",
		Group:     GroupBigInt,
		Summary:   "Truncated quotient and remainder of two arbitrary-precision integers.",
		Params:    []Param{required("a", "bigint"), required("b", "bigint")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			a, b, err := bigPair(args)
			if err != nil {
				return err
			}
			v, err := formula.BigDivMod(a, b)
			if err != nil {
				return err //nolint: wrapcheck
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("quotient", func(e *jx.Encoder) { e.Str(v.Quotient) })
				e.Field("remainder", func(e *jx.Encoder) { e.Str(v.Remainder) })
			})

			return nil
		},
	})

	r.Register(Operation{
		Name:      "big-factorial",
		Group:     GroupBigInt,
		Summary:   "Exact factorial of a non-negative integer.",
		Params:    []Param{required("n", "integer")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			n, err := args.Int("n")
			if err != nil {
				return err
			}
			v, err := formula.BigFactorial(n)
			if err != nil {
				return err //nolint: wrapcheck
			}
			writeString(e, v)

			return nil
		},
	})
}

func bigPair(args Args) (string, string, error) {
	a, err := args.BigInt("a")
	if err != nil {
		return "", "", err
	}
	b, err := args.BigInt("b")
	if err != nil {
		return "", "", err
	}

	return a, b, nil
}

func registerScience(r *Registry) {
	r.Register(Operation{
		Name:      "circle",
		Group:     GroupScience,
		Summary:   "Diameter, circumference and area of a circle.",
		Params:    []Param{required("radius", "number")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			radius, err := args.Float("radius")
			if err != nil {
				return err
			}
			c, err := formula.Circle(radius)
			if err != nil {
				return err //nolint: wrapcheck
			}

			return writeFields(e,
				field{"radius", c.Radius},
				field{"diameter", c.Diameter},
				field{"circumference", c.Circumference},
				field{"area", c.Area})
		},
	})

	r.Register(valueOp("molarity", GroupScience, "Concentration in mol/L.",
		[]string{"moles", "liters"},
		func(v []float64) (float64, error) { return formula.Molarity(v[0], v[1]) }))

	r.Register(Operation{
		Name:      "molar-mass",
		Group:     GroupScience,
		Summary:   "Molar mass in g/mol of a chemical formula such as Ca(OH)2.",
		Params:    []Param{required("formula", "string")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			f, err := args.String("formula")
			if err != nil {
				return err
			}
			v, err := formula.MolarMass(f)
			if err != nil {
				return err //nolint: wrapcheck
			}

			return writeValue(e, v)
		},
	})
}

func registerFun(r *Registry) {
	r.Register(Operation{
		Name:    "dice",
		Group:   GroupFun,
		Summary: "Rolls dice. A seed makes the roll reproducible.",
		Params: []Param{
			optional("count", "integer"),
			optional("sides", "integer"),
			optional("seed", "integer"),
		},
		// Unseeded rolls differ on every evaluation.
		Cacheable: false,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			count, err := args.OptInt("count", 1)
			if err != nil {
				return err
			}
			sides, err := args.OptInt("sides", 6)
			if err != nil {
				return err
			}
			if count > formula.MaxDice || sides > formula.MaxDiceSides {
				return serrors.With(formula.ErrInvalidInput,
					"at most %d dice with %d sides", formula.MaxDice, formula.MaxDiceSides)
			}

			var src rand.Source
			if args.has("seed") {
				seed, err := args.Int("seed")
				if err != nil {
					return err
				}
				src = rand.NewPCG(uint64(seed), 0) //nolint: gosec
			} else {
				src = rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint: gosec
			}

			roll, err := formula.RollDice(rand.New(src), int(count), int(sides)) //nolint: gosec
			if err != nil {
				return err //nolint: wrapcheck
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("rolls", func(e *jx.Encoder) {
					e.ArrStart()
					for _, v := range roll.Rolls {
						e.Int(v)
					}
					e.ArrEnd()
				})
				e.Field("total", func(e *jx.Encoder) { e.Int(roll.Total) })
			})

			return nil
		},
	})
}
