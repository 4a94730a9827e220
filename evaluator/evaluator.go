package evaluator

import (
	"math"

	"github.com/sgrinevich/strcalc"
	"github.com/sgrinevich/strcalc/scanner"
)

// Evaluate reduces a postfix token sequence to a single numeric result,
// using an operand stack.
//
// One special rule stems from the way unary minus is scanned: a minus in
// front of a parenthesized group reaches evaluation as a lone operator
// token. When an operator is encountered while the stack holds exactly one
// operand, that operand is negated in place instead of a binary apply.
//
// A postfix sequence which does not reduce to exactly one value yields
// strcalc.ErrMalformedExpression.
func Evaluate(postfix []strcalc.Token) (float64, error) {
	stack := NewExprStack()
	for _, tok := range postfix {
		switch tok.Kind {
		case strcalc.Number:
			stack.Push(tok.Value)
		case strcalc.Operator:
			if stack.Size() == 1 { // unary minus on a group, see above
				v, _ := stack.Pop()
				stack.Push(-v)
				continue
			}
			num1, ok := stack.Pop()
			if !ok {
				return 0, strcalc.ErrMalformedExpression
			}
			num2, ok := stack.Pop()
			if !ok {
				return 0, strcalc.ErrMalformedExpression
			}
			r, err := applyOperator(tok.Op, num1, num2)
			if err != nil {
				return 0, err
			}
			stack.Push(r)
		case strcalc.Function:
			num, ok := stack.Pop()
			if !ok {
				return 0, strcalc.ErrMalformedExpression
			}
			r, known := applyFunction(tok.Text, num)
			if !known {
				return 0, &strcalc.UnresolvedError{Name: tok.Text}
			}
			if tok.Negated {
				r = -r
			}
			stack.Push(r)
		case strcalc.Ident:
			// substitution must have resolved these
			return 0, &strcalc.UnresolvedError{Name: tok.Text}
		default:
			return 0, strcalc.ErrMalformedExpression
		}
	}
	result, ok := stack.Pop()
	if !ok || !stack.IsEmpty() {
		return 0, strcalc.ErrMalformedExpression
	}
	tracer().Debugf("result: %g", result)
	return result, nil
}

// applyOperator applies a binary operator. num1 is the operand popped
// first, i.e. the right-hand side.
func applyOperator(op byte, num1, num2 float64) (float64, error) {
	switch op {
	case '+':
		return num2 + num1, nil
	case '-':
		return num2 - num1, nil
	case '*':
		return num2 * num1, nil
	case '/':
		if num1 == 0 {
			return 0, strcalc.ErrDivisionByZero
		}
		return num2 / num1, nil
	case '^':
		return math.Pow(num2, num1), nil
	}
	return 0, strcalc.ErrMalformedExpression
}

// applyFunction applies a built-in unary function. Arguments to the
// trigonometric functions are in radians.
func applyFunction(name string, num float64) (float64, bool) {
	switch name {
	case "sin":
		return math.Sin(num), true
	case "cos":
		return math.Cos(num), true
	case "tan":
		return math.Tan(num), true
	case "atan":
		return math.Atan(num), true
	case "log10":
		return math.Log10(num), true
	case "log2":
		return math.Log(num) / math.Log(2), true
	case "sqrt":
		return math.Sqrt(num), true
	}
	return 0, false
}

// Calculate runs an expression through the complete pipeline: scanning,
// variable substitution, postfix conversion and evaluation. vars may be nil.
//
// Concurrent calls are independent; all working containers are created per
// call.
func Calculate(expr string, vars map[string]float64) (float64, error) {
	tokens, err := scanner.Scan(expr)
	if err != nil {
		return 0, err
	}
	tokens, err = scanner.Substitute(tokens, vars)
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}
