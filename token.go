package strcalc

import (
	"sort"
	"strconv"
)

// TokenKind represents the syntactic class of a token.
type TokenKind int8

// Token kinds produced by the scanner.
const (
	Undefined TokenKind = iota
	Number              // numeric literal
	Ident               // variable name, resolved during substitution
	Function            // one of the built-in unary functions
	Operator            // binary operator, one of + - * / ^
	LeftParen
	RightParen
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case Function:
		return "Function"
	case Operator:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	}
	return "Undefined"
}

// Token is a classified lexical unit of an expression. Tokens are immutable
// once produced; pipeline stages hand them on as a flat ordered sequence.
//
// A leading unary minus never becomes a token of its own. The scanner
// attaches it to the operand it precedes and records it in Negated, so the
// sign survives substitution and evaluation without string surgery.
type Token struct {
	Kind    TokenKind
	Text    string  // lexeme as scanned, sign not included
	Value   float64 // for Number tokens the (signed) numeric value
	Op      byte    // for Operator tokens the operator symbol
	Negated bool    // unary minus was attached during scanning
}

// NumberToken wraps a numeric value into a Number token.
func NumberToken(v float64) Token {
	return Token{
		Kind:  Number,
		Text:  strconv.FormatFloat(v, 'g', -1, 64),
		Value: v,
	}
}

// OperatorToken wraps an operator symbol into an Operator token.
func OperatorToken(op byte) Token {
	return Token{Kind: Operator, Text: string(op), Op: op}
}

func (t Token) String() string {
	switch t.Kind {
	case Number, Ident, Function:
		if t.Negated {
			return "-" + t.Text
		}
		return t.Text
	case Operator:
		return string(t.Op)
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	return "<undefined>"
}

// operator precedence, initialized once and never mutated
var precedences = map[byte]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'^': 3,
}

// the built-in unary functions
var functionNames = map[string]bool{
	"sin":   true,
	"cos":   true,
	"tan":   true,
	"atan":  true,
	"log10": true,
	"log2":  true,
	"sqrt":  true,
}

// Precedence returns the binding strength of an operator symbol, or 0 if the
// symbol is not an operator.
func Precedence(op byte) int {
	return precedences[op]
}

// IsOperatorRune is a predicate: is r an operator symbol?
func IsOperatorRune(r rune) bool {
	return r < 128 && precedences[byte(r)] != 0
}

// IsFunction is a predicate: is name one of the built-in functions?
func IsFunction(name string) bool {
	return functionNames[name]
}

// FunctionNames returns the names of the built-in functions, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(functionNames))
	for name := range functionNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
