package calculator

import (
	"math"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
)

// DefaultRegistry returns the full catalog.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerFinance(r)
	registerStatistics(r)
	registerNumbers(r)
	registerBigInt(r)
	registerScience(r)
	registerFun(r)
	registerText(r)

	return r
}

type field struct {
	name  string
	value float64
}

// writeFields writes {"name": value, ...}. Non-finite numbers have no JSON
// representation and are reported as formula.ErrNoRealResult.
func writeFields(e *jx.Encoder, fields ...field) error {
	if err := finiteResults(fields...); err != nil {
		return err
	}

	e.ObjStart()
	for _, f := range fields {
		e.FieldStart(f.name)
		e.Float64(f.value)
	}
	e.ObjEnd()

	return nil
}

// finiteResults reports formula.ErrNoRealResult for the first non-finite field.
func finiteResults(fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return serrors.With(formula.ErrNoRealResult, "%s is not a finite number", f.name)
		}
	}

	return nil
}

func writeValue(e *jx.Encoder, v float64) error {
	return writeFields(e, field{"value", v})
}

// moneyDisplay renders an amount rounded half away from zero to cents.
func moneyDisplay(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// writeMoney writes {"value": v, "display": "v rounded to cents"}.
func writeMoney(e *jx.Encoder, v float64) error {
	if err := finiteResults(field{"amount", v}); err != nil {
		return err
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("value", func(e *jx.Encoder) { e.Float64(v) })
		e.Field("display", func(e *jx.Encoder) { e.Str(moneyDisplay(v)) })
	})

	return nil
}

func writeString(e *jx.Encoder, s string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("value", func(e *jx.Encoder) { e.Str(s) })
	})
}

func writeInts(e *jx.Encoder, name string, values []int64) {
	e.Obj(func(e *jx.Encoder) {
		e.Field(name, func(e *jx.Encoder) {
			e.ArrStart()
			for _, v := range values {
				e.Int64(v)
			}
			e.ArrEnd()
		})
	})
}

// floats reads several required numbers at once.
func floats(args Args, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, err := args.Float(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// finiteInputs rejects NaN/Inf for formulas that do not validate themselves.
func finiteInputs(names []string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return serrors.With(formula.ErrInvalidInput, "%s must be a finite number", names[i])
		}
	}

	return nil
}
