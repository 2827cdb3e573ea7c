package formula

import (
	"math/big"

	"toolbox/pkg/serrors"
)

// MaxFactorialArgument bounds BigFactorial so a single call cannot allocate
// an arbitrarily large result.
const MaxFactorialArgument = 10000

// DivMod holds the truncated quotient and remainder of a big integer division.
type DivMod struct {
	Quotient  string `json:"quotient"`
	Remainder string `json:"remainder"`
}

// parseBigInt accepts an optionally signed string of base-10 digits.
func parseBigInt(name, s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, invalid("%s is not a base-10 integer: %q", name, s)
	}

	return i, nil
}

func parseBigPair(a, b string) (*big.Int, *big.Int, error) {
	x, err := parseBigInt("a", a)
	if err != nil {
		return nil, nil, err
	}
	y, err := parseBigInt("b", b)
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// BigAdd returns a+b for integers of unbounded length.
func BigAdd(a, b string) (string, error) {
	x, y, err := parseBigPair(a, b)
	if err != nil {
		return "", err
	}

	return x.Add(x, y).String(), nil
}

// BigSub returns a-b for integers of unbounded length.
func BigSub(a, b string) (string, error) {
	x, y, err := parseBigPair(a, b)
	if err != nil {
		return "", err
	}

	return x.Sub(x, y).String(), nil
}

// BigMul returns a*b for integers of unbounded length.
func BigMul(a, b string) (string, error) {
	x, y, err := parseBigPair(a, b)
	if err != nil {
		return "", err
	}

	return x.Mul(x, y).String(), nil
}

// BigDivMod divides a by b truncating toward zero, so the remainder has the
// sign of a (like Go's / and % operators, unlike big.Int.DivMod).
func BigDivMod(a, b string) (DivMod, error) {
	x, y, err := parseBigPair(a, b)
	if err != nil {
		return DivMod{}, err
	}
	if y.Sign() == 0 {
		return DivMod{}, serrors.With(ErrDivisionByZero, "division of %s by zero", a)
	}

	q, r := new(big.Int).QuoRem(x, y, new(big.Int))

	return DivMod{Quotient: q.String(), Remainder: r.String()}, nil
}

// BigDiv returns the truncated quotient a/b.
func BigDiv(a, b string) (string, error) {
	res, err := BigDivMod(a, b)
	if err != nil {
		return "", err
	}

	return res.Quotient, nil
}

// BigMod returns the remainder of the truncated division a/b.
func BigMod(a, b string) (string, error) {
	res, err := BigDivMod(a, b)
	if err != nil {
		return "", err
	}

	return res.Remainder, nil
}

// BigFactorial returns n! as a decimal string. 0! is 1.
func BigFactorial(n int64) (string, error) {
	if n < 0 {
		return "", invalid("factorial of negative number %d", n)
	}
	if n > MaxFactorialArgument {
		return "", invalid("factorial argument %d exceeds %d", n, MaxFactorialArgument)
	}

	return new(big.Int).MulRange(1, n).String(), nil
}
