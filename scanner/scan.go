package scanner

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sgrinevich/strcalc"
)

// The scanner is a small state machine. Operand lexemes (numbers and
// identifiers) grow rune by rune until a non-operand rune forces a flush;
// operators and parentheses accept immediately. A minus sign in unary
// position moves through state_neg and attaches to the operand following it.
type scstate int8

const (
	state_start   scstate = iota
	state_operand         // growing a number/identifier lexeme
	state_neg             // unary minus seen, operand still pending

	accepting_states // do not change sequence, used as a marker
	accept_lparen
	accept_rparen
	accept_op

	accept_operand_bt // do not change sequence: backtracking accepts
	accept_minus_bt
	max_accepting_states // marker

	state_err // must be last
)

func isAccept(s scstate) bool {
	return s > accepting_states && s < max_accepting_states
}

func mustBacktrack(s scstate) bool {
	return s >= accept_operand_bt && s < max_accepting_states
}

// operandRune is a predicate: may r be part of a number or identifier?
// Digits and letters share one lexeme: names like log2 or log10 mix both,
// and the classification into number vs. identifier happens at flush time.
func operandRune(r rune) bool {
	return unicode.IsDigit(r) || unicode.IsLetter(r) || r == '.'
}

func nextState(s scstate, r rune, unary bool) scstate {
	switch s {
	case state_start:
		switch {
		case operandRune(r):
			return state_operand
		case r == '-' && unary:
			return state_neg
		case strcalc.IsOperatorRune(r):
			return accept_op
		case r == '(':
			return accept_lparen
		case r == ')':
			return accept_rparen
		}
		return state_err
	case state_neg:
		if operandRune(r) {
			return state_operand
		}
		// the minus does not belong to an operand after all, e.g. "-(1+2)";
		// it degrades to a plain operator token
		return accept_minus_bt
	case state_operand:
		if operandRune(r) {
			return state_operand
		}
		return accept_operand_bt
	}
	return state_err
}

// Scan splits an expression into a token sequence. All whitespace is removed
// up front; every remaining rune must belong to some token, otherwise a
// *ScanError is returned.
//
// A '-' counts as unary when it opens the expression or directly follows an
// operator or a left parenthesis. A unary minus in front of a number or
// identifier is attached to that token (Token.Negated); in front of anything
// else it becomes an ordinary operator token and is sorted out during
// evaluation.
func Scan(expr string) ([]strcalc.Token, error) {
	input := []rune(stripSpace(expr))
	var (
		tokens  []strcalc.Token
		lexeme  strings.Builder
		state   = state_start
		negated bool
		last    strcalc.TokenKind
	)
	emit := func(t strcalc.Token) {
		tracer().Debugf("scanner accepting %s token %q", t.Kind, t.String())
		tokens = append(tokens, t)
		last = t.Kind
	}
	flushOperand := func() {
		emit(classify(lexeme.String(), negated))
		lexeme.Reset()
		negated = false
	}
	pos := 0
	for pos < len(input) {
		r := input[pos]
		unary := state == state_start && lexeme.Len() == 0 &&
			(len(tokens) == 0 || last == strcalc.Operator || last == strcalc.LeftParen)
		prev := state
		state = nextState(state, r, unary)
		switch {
		case state == state_err:
			return nil, &ScanError{Text: lexeme.String() + string(r), Pos: pos}
		case mustBacktrack(state):
			// deciding rune is not consumed; reprocess it from state_start
			switch state {
			case accept_operand_bt:
				flushOperand()
			case accept_minus_bt:
				emit(strcalc.OperatorToken('-'))
			}
			state = state_start
		case isAccept(state):
			switch state {
			case accept_lparen:
				emit(strcalc.Token{Kind: strcalc.LeftParen, Text: "("})
			case accept_rparen:
				emit(strcalc.Token{Kind: strcalc.RightParen, Text: ")"})
			case accept_op:
				emit(strcalc.OperatorToken(byte(r)))
			}
			state = state_start
			pos++
		default:
			if state == state_operand {
				if prev == state_neg {
					negated = true
				}
				lexeme.WriteRune(r)
			}
			pos++
		}
	}
	switch state {
	case state_operand:
		flushOperand()
	case state_neg:
		emit(strcalc.OperatorToken('-'))
	}
	return tokens, nil
}

// classify turns a flushed operand lexeme into a token. Lexemes parseable as
// a float become numbers, known function names become function tokens, and
// everything else is an identifier for the substitution stage to resolve.
func classify(lexeme string, negated bool) strcalc.Token {
	if v, err := strconv.ParseFloat(lexeme, 64); err == nil {
		if negated {
			v = -v
		}
		return strcalc.Token{
			Kind:    strcalc.Number,
			Text:    lexeme,
			Value:   v,
			Negated: negated,
		}
	}
	if strcalc.IsFunction(lexeme) {
		return strcalc.Token{Kind: strcalc.Function, Text: lexeme, Negated: negated}
	}
	return strcalc.Token{Kind: strcalc.Ident, Text: lexeme, Negated: negated}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ScanError reports a rune which cannot be part of any token.
type ScanError struct {
	Text string // the pending lexeme including the offending rune
	Pos  int    // rune position within the whitespace-stripped expression
}

func (err *ScanError) Error() string {
	return "unrecognized character at position " + strconv.Itoa(err.Pos) +
		": " + strconv.Quote(err.Text)
}
