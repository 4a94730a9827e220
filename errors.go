package strcalc

import (
	"errors"
	"strconv"
)

// Error kinds shared across the pipeline stages. A stage returns the first
// error it runs into and the evaluation call is abandoned; there are no
// partial results.
var (
	// ErrMismatchedParenthesis is returned during postfix conversion when
	// parentheses do not balance, in either direction.
	ErrMismatchedParenthesis = errors.New("mismatched parenthesis")

	// ErrDivisionByZero is returned during evaluation when the divisor of a
	// division is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMalformedExpression is returned when a postfix sequence does not
	// reduce to exactly one value.
	ErrMalformedExpression = errors.New("malformed expression")
)

// UnresolvedError reports an identifier which is neither a supplied
// variable, the constant e, nor a built-in function.
type UnresolvedError struct {
	Name string
}

func (err *UnresolvedError) Error() string {
	return "unresolved identifier: " + strconv.Quote(err.Name)
}
