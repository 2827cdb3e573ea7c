// Package formula is a stateless collection of deterministic numeric functions
// backing the toolbox calculators: root finding (IRR), normal distribution
// approximations, number theory, arbitrary-precision integer arithmetic and
// financial time-value formulas, plus a handful of geometry, chemistry and
// dice helpers.
//
// Every function returns its result together with an error instead of
// panicking or silently producing NaN/Inf. Errors carry one of the semantic
// kinds declared in this package (ErrInvalidInput, ErrDivisionByZero,
// ErrZeroStdDev, ErrNonConvergent, ErrNoRealResult) and can be matched with
// errors.Is. The package performs no I/O, holds no mutable state and is safe
// for concurrent use.
package formula
