package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"toolbox/internal/calculator"
	"toolbox/pkg/formula"
)

func TestParseArgs(t *testing.T) {
	args, err := calculator.ParseArgs([]byte(`{"b": 2, "a": "x", "c": [1, 2]}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"a":"x","b":2,"c":[1,2]}`, string(args.Canonical()))

	empty, err := calculator.ParseArgs(nil)
	require.NoError(t, err)
	require.Equal(t, "{}", string(empty.Canonical()))

	for _, in := range []string{`[1]`, `"x"`, `{"a":`, `{"a":1} {}`} {
		_, err := calculator.ParseArgs([]byte(in))
		require.ErrorIs(t, err, formula.ErrInvalidInput, in)
	}
}

func TestArgs_Getters(t *testing.T) {
	args, err := calculator.ParseArgs([]byte(`{
		"rate": 0.05,
		"n": 12,
		"fraction": 1.5,
		"name": "H2O",
		"big": 123456789012345678901234567890,
		"bigText": "-42",
		"numbers": [12, 18.0],
		"bad": [12, 1.5],
		"words": ["a", "b"],
		"nothing": null
	}`))
	require.NoError(t, err)

	rate, err := args.Float("rate")
	require.NoError(t, err)
	require.InDelta(t, 0.05, rate, 1e-12)

	n, err := args.Int("n")
	require.NoError(t, err)
	require.Equal(t, int64(12), n)

	_, err = args.Int("fraction")
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	_, err = args.Float("name")
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	_, err = args.Float("missing")
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	def, err := args.OptFloat("nothing", 7)
	require.NoError(t, err)
	require.InDelta(t, 7.0, def, 0)

	s, err := args.OptString("missing", "double")
	require.NoError(t, err)
	require.Equal(t, "double", s)

	big, err := args.BigInt("big")
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", big)

	big, err = args.BigInt("bigText")
	require.NoError(t, err)
	require.Equal(t, "-42", big)

	ns, err := args.PositiveIntegers("numbers")
	require.NoError(t, err)
	require.Equal(t, []int64{12, 18}, ns)

	_, err = args.PositiveIntegers("bad")
	require.ErrorIs(t, err, formula.ErrInvalidInput)

	words, err := args.Strings("words")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, words)
}

func TestArgs_CashFlows(t *testing.T) {
	args, err := calculator.ParseArgs([]byte(`{
		"plain": [-100, 60, 60],
		"dated": [{"period": 0, "amount": -100}, {"amount": 121, "period": 2}],
		"partial": [{"period": 1}],
		"mixed": [-100, "60"]
	}`))
	require.NoError(t, err)

	flows, err := args.CashFlows("plain")
	require.NoError(t, err)
	require.Equal(t, formula.CashFlowsFromAmounts(-100, 60, 60), flows)

	flows, err = args.CashFlows("dated")
	require.NoError(t, err)
	require.Equal(t, formula.CashFlowSeries{{Period: 0, Amount: -100}, {Period: 2, Amount: 121}}, flows)

	for _, name := range []string{"partial", "mixed", "missing"} {
		_, err := args.CashFlows(name)
		require.ErrorIs(t, err, formula.ErrInvalidInput, name)
	}
}
