package calculator

import (
	"slices"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
)

// Args are the named arguments of an evaluation, kept as raw JSON values and
// decoded on demand by the typed getters. Getter failures are reported as
// formula.ErrInvalidInput.
type Args map[string]jx.Raw

// ParseArgs decodes a JSON object. Empty input yields no arguments.
func ParseArgs(data []byte) (Args, error) {
	args := Args{}
	if len(data) == 0 {
		return args, nil
	}

	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, serrors.With(formula.ErrInvalidInput, "arguments must be a JSON object")
	}
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		raw, err := d.Raw()
		if err != nil {
			return errors.Wrapf(err, "argument %q", key)
		}
		args[key] = slices.Clone(raw)

		return nil
	}); err != nil {
		return nil, serrors.Wrap(formula.ErrInvalidInput, err, "malformed arguments")
	}
	if d.Next() != jx.Invalid {
		return nil, serrors.With(formula.ErrInvalidInput, "unexpected data after arguments")
	}

	return args, nil
}

// Canonical encodes the arguments with sorted keys, so equal argument sets
// produce equal bytes regardless of the order they were submitted in.
func (a Args) Canonical() []byte {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var e jx.Encoder
	e.ObjStart()
	for _, k := range keys {
		e.FieldStart(k)
		e.Raw(a[k])
	}
	e.ObjEnd()

	return e.Bytes()
}

func (a Args) has(name string) bool {
	raw, ok := a[name]

	return ok && raw.Type() != jx.Null
}

func (a Args) decoder(name string) (*jx.Decoder, error) {
	raw, ok := a[name]
	if !ok || raw.Type() == jx.Null {
		return nil, serrors.With(formula.ErrInvalidInput, "missing argument %q", name)
	}

	return jx.DecodeBytes(raw), nil
}

func invalidArg(name, want string, err error) error {
	return serrors.Wrap(formula.ErrInvalidInput, err, "argument %q must be %s", name, want)
}

// Float returns a required number.
func (a Args) Float(name string) (float64, error) {
	d, err := a.decoder(name)
	if err != nil {
		return 0, err
	}
	if d.Next() != jx.Number {
		return 0, invalidArg(name, "a number", errors.New("wrong type"))
	}
	v, err := d.Float64()
	if err != nil {
		return 0, invalidArg(name, "a number", err)
	}

	return v, nil
}

// OptFloat returns a number or def when absent.
func (a Args) OptFloat(name string, def float64) (float64, error) {
	if !a.has(name) {
		return def, nil
	}

	return a.Float(name)
}

// Int returns a required integer.
func (a Args) Int(name string) (int64, error) {
	d, err := a.decoder(name)
	if err != nil {
		return 0, err
	}
	if d.Next() != jx.Number {
		return 0, invalidArg(name, "an integer", errors.New("wrong type"))
	}
	v, err := d.Int64()
	if err != nil {
		return 0, invalidArg(name, "an integer", err)
	}

	return v, nil
}

// OptInt returns an integer or def when absent.
func (a Args) OptInt(name string, def int64) (int64, error) {
	if !a.has(name) {
		return def, nil
	}

	return a.Int(name)
}

// String returns a required string.
func (a Args) String(name string) (string, error) {
	d, err := a.decoder(name)
	if err != nil {
		return "", err
	}
	if d.Next() != jx.String {
		return "", invalidArg(name, "a string", errors.New("wrong type"))
	}
	v, err := d.Str()
	if err != nil {
		return "", invalidArg(name, "a string", err)
	}

	return v, nil
}

// OptString returns a string or def when absent.
func (a Args) OptString(name, def string) (string, error) {
	if !a.has(name) {
		return def, nil
	}

	return a.String(name)
}

// BigInt returns an integer given either as a string of digits or as a JSON
// integer, in base-10 text form.
func (a Args) BigInt(name string) (string, error) {
	raw, ok := a[name]
	if ok && raw.Type() == jx.Number {
		return raw.String(), nil
	}

	return a.String(name)
}

// Floats returns a required array of numbers.
func (a Args) Floats(name string) ([]float64, error) {
	d, err := a.decoder(name)
	if err != nil {
		return nil, err
	}

	var out []float64
	if err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Float64()
		if err != nil {
			return errors.Wrapf(err, "element %d", len(out))
		}
		out = append(out, v)

		return nil
	}); err != nil {
		return nil, invalidArg(name, "an array of numbers", err)
	}

	return out, nil
}

// Strings returns a required array of strings.
func (a Args) Strings(name string) ([]string, error) {
	d, err := a.decoder(name)
	if err != nil {
		return nil, err
	}

	var out []string
	if err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "element %d", len(out))
		}
		out = append(out, v)

		return nil
	}); err != nil {
		return nil, invalidArg(name, "an array of strings", err)
	}

	return out, nil
}

// PositiveIntegers returns a required array of positive integers. Elements
// are converted with formula.ToPositiveInteger, so 12.0 is accepted while
// 12.5 and -3 are not.
func (a Args) PositiveIntegers(name string) ([]int64, error) {
	floats, err := a.Floats(name)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, len(floats))
	for _, f := range floats {
		n, err := formula.ToPositiveInteger(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// PositiveInteger returns a required positive integer (see PositiveIntegers).
func (a Args) PositiveInteger(name string) (int64, error) {
	f, err := a.Float(name)
	if err != nil {
		return 0, err
	}

	return formula.ToPositiveInteger(f)
}

// CashFlows returns a cash flow series given either as an array of amounts
// (periods 0, 1, 2, ...) or as an array of {"period", "amount"} objects.
func (a Args) CashFlows(name string) (formula.CashFlowSeries, error) {
	d, err := a.decoder(name)
	if err != nil {
		return nil, err
	}

	var flows formula.CashFlowSeries
	if err := d.Arr(func(d *jx.Decoder) error {
		switch d.Next() {
		case jx.Number:
			v, err := d.Float64()
			if err != nil {
				return errors.Wrapf(err, "element %d", len(flows))
			}
			flows = append(flows, formula.CashFlow{Period: len(flows), Amount: v})

			return nil
		case jx.Object:
			cf, err := decodeCashFlow(d)
			if err != nil {
				return errors.Wrapf(err, "element %d", len(flows))
			}
			flows = append(flows, cf)

			return nil
		default:
			return errors.Errorf("element %d must be a number or an object", len(flows))
		}
	}); err != nil {
		return nil, invalidArg(name, "an array of cash flows", err)
	}

	return flows, nil
}

func decodeCashFlow(d *jx.Decoder) (formula.CashFlow, error) {
	var (
		cf                   formula.CashFlow
		hasPeriod, hasAmount bool
	)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "period":
			p, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "period")
			}
			cf.Period, hasPeriod = p, true
		case "amount":
			v, err := d.Float64()
			if err != nil {
				return errors.Wrap(err, "amount")
			}
			cf.Amount, hasAmount = v, true
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return formula.CashFlow{}, err //nolint: wrapcheck
	}
	if !hasPeriod || !hasAmount {
		return formula.CashFlow{}, errors.New(`"period" and "amount" are required`)
	}

	return cf, nil
}
