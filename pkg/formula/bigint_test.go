package formula_test

import (
	"testing"

	"toolbox/pkg/formula"

	"github.com/stretchr/testify/require"
)

func TestBigAdd(t *testing.T) {
	sum, err := formula.BigAdd("123456789012345678901234567890", "987654321098765432109876543210")
	require.NoError(t, err)
	require.Equal(t, "1111111110111111111011111111100", sum)
}

func TestBigAddSub_RoundTrip(t *testing.T) {
	values := []string{
		"0",
		"1",
		"-1",
		"+42",
		"98765432109876543210987654321098765432109876543210",
		"-12345678901234567890123456789012345678901234567890",
	}

	for _, a := range values {
		for _, b := range values {
			sum, err := formula.BigAdd(a, b)
			require.NoError(t, err)

			back, err := formula.BigSub(sum, a)
			require.NoError(t, err)

			want, err := formula.BigAdd(b, "0") // normalizes "+42" to "42"
			require.NoError(t, err)
			require.Equal(t, want, back, "a=%s b=%s", a, b)
		}
	}
}

func TestBigMul(t *testing.T) {
	p, err := formula.BigMul("-99999999999999999999", "99999999999999999999")
	require.NoError(t, err)
	require.Equal(t, "-9999999999999999999800000000000000000001", p)
}

func TestBigDivMod_Truncates(t *testing.T) {
	tests := []struct {
		a, b      string
		quo, rem string
	}{
		{a: "5", b: "3", quo: "1", rem: "2"},
		{a: "-5", b: "3", quo: "-1", rem: "-2"},
		{a: "5", b: "-3", quo: "-1", rem: "2"},
		{a: "-5", b: "-3", quo: "1", rem: "-2"},
		{a: "100000000000000000000", b: "7", quo: "14285714285714285714", rem: "2"},
	}

	for _, tt := range tests {
		res, err := formula.BigDivMod(tt.a, tt.b)
		require.NoError(t, err)
		require.Equal(t, tt.quo, res.Quotient, "%s / %s", tt.a, tt.b)
		require.Equal(t, tt.rem, res.Remainder, "%s %% %s", tt.a, tt.b)

		q, err := formula.BigDiv(tt.a, tt.b)
		require.NoError(t, err)
		require.Equal(t, tt.quo, q)

		r, err := formula.BigMod(tt.a, tt.b)
		require.NoError(t, err)
		require.Equal(t, tt.rem, r)
	}
}

func TestBigArithmetic_Errors(t *testing.T) {
	_, err := formula.BigDiv("10", "0")
	require.ErrorIs(t, err, formula.ErrDivisionByZero)
	_, err = formula.BigDiv("10", "-0")
	require.ErrorIs(t, err, formula.ErrDivisionByZero)

	for _, bad := range []string{"", "12a", "1.5", " 7", "0x10", "--1"} {
		_, err = formula.BigAdd(bad, "1")
		require.ErrorIs(t, err, formula.ErrInvalidInput, "input %q", bad)
		_, err = formula.BigMul("1", bad)
		require.ErrorIs(t, err, formula.ErrInvalidInput, "input %q", bad)
	}
}

func TestBigFactorial(t *testing.T) {
	f, err := formula.BigFactorial(0)
	require.NoError(t, err)
	require.Equal(t, "1", f)

	f, err = formula.BigFactorial(25)
	require.NoError(t, err)
	require.Equal(t, "15511210043330985984000000", f)

	_, err = formula.BigFactorial(-1)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
	_, err = formula.BigFactorial(formula.MaxFactorialArgument + 1)
	require.ErrorIs(t, err, formula.ErrInvalidInput)
}
