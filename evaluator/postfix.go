package evaluator

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/sgrinevich/strcalc"
)

// ToPostfix converts an infix token sequence to postfix order (RPN) using
// the Shunting-Yard algorithm. The input sequence is expected to contain no
// identifier tokens anymore; run it through scanner.Substitute first.
//
// Unbalanced parentheses are reported as strcalc.ErrMismatchedParenthesis:
// a surplus right parenthesis empties the operator stack before its partner
// is found, a surplus left parenthesis survives the final flush and is
// caught in the output sequence.
func ToPostfix(tokens []strcalc.Token) ([]strcalc.Token, error) {
	ops := linkedliststack.New() // a stack of strcalc.Token
	output := make([]strcalc.Token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case strcalc.Number:
			output = append(output, tok)
		case strcalc.Function:
			ops.Push(tok)
		case strcalc.Operator:
			for popsToOutput(ops, tok) {
				top, _ := ops.Pop()
				output = append(output, top.(strcalc.Token))
			}
			ops.Push(tok)
		case strcalc.LeftParen:
			ops.Push(tok)
		case strcalc.RightParen:
			closed := false
			for !ops.Empty() {
				top, _ := ops.Pop()
				t := top.(strcalc.Token)
				if t.Kind == strcalc.LeftParen {
					closed = true
					break
				}
				output = append(output, t)
			}
			if !closed {
				return nil, strcalc.ErrMismatchedParenthesis
			}
		default:
			return nil, &strcalc.UnresolvedError{Name: tok.Text}
		}
	}
	for !ops.Empty() {
		top, _ := ops.Pop()
		output = append(output, top.(strcalc.Token))
	}
	for _, tok := range output {
		if tok.Kind == strcalc.LeftParen {
			return nil, strcalc.ErrMismatchedParenthesis
		}
	}
	tracer().Debugf("postfix form: %v", output)
	return output, nil
}

// popsToOutput decides whether the top of the operator stack moves to the
// output before the incoming operator is pushed. A function on top always
// moves; an operator moves when its precedence is at least as high as the
// incoming one. ^ groups to the right, so an incoming ^ never pops an
// operator of equal precedence.
func popsToOutput(ops *linkedliststack.Stack, op strcalc.Token) bool {
	top, ok := ops.Peek()
	if !ok {
		return false
	}
	t := top.(strcalc.Token)
	if t.Kind == strcalc.Function {
		return true
	}
	if t.Kind != strcalc.Operator { // a left parenthesis shields the rest
		return false
	}
	return strcalc.Precedence(op.Op) <= strcalc.Precedence(t.Op) && op.Op != '^'
}
