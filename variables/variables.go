package variables

import (
	"fmt"
	"strconv"
	"sync"

	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token ids for assignment scanning
const (
	tokName int = iota + 1
	tokAssign
	tokNumber
)

var (
	initOnce   sync.Once // monitors one-time initialization
	assignLex  *lex.Lexer
	assignLerr error
)

func initLexer() {
	initOnce.Do(func() {
		assignLex = lex.NewLexer()
		assignLex.Add([]byte(`[a-zA-Z][a-zA-Z0-9]*`), makeToken(tokName))
		assignLex.Add([]byte(`=`), makeToken(tokAssign))
		assignLex.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+)?([eE][\+\-]?[0-9]+)?`), makeToken(tokNumber))
		assignLex.Add([]byte(`[\+\-]?\.[0-9]+([eE][\+\-]?[0-9]+)?`), makeToken(tokNumber))
		assignLex.Add([]byte(`( |\t|\n|\r)+`), skip) // strip whitespace
		assignLerr = assignLex.Compile()
	})
}

func makeToken(id int) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(s *lex.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

// Parse builds a variable mapping from a list of name=value assignments,
// usually the trailing command line arguments. Whitespace inside an
// assignment is ignored. Duplicate names are allowed, the last assignment
// wins. A nil map is never returned.
func Parse(args []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(args))
	for _, arg := range args {
		name, value, err := ParseAssignment(arg)
		if err != nil {
			return nil, err
		}
		vars[name] = value
	}
	return vars, nil
}

// ParseAssignment splits a single assignment of the form name=value into
// the variable name and its numeric value.
func ParseAssignment(arg string) (string, float64, error) {
	initLexer()
	if assignLerr != nil {
		panic(fmt.Sprintf("variables: cannot compile assignment lexer: %v", assignLerr))
	}
	s, err := assignLex.Scanner([]byte(arg))
	if err != nil {
		return "", 0, &FormatError{Arg: arg}
	}
	var toks []*lex.Token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			tracer().Debugf("assignment scan failed: %v", err)
			return "", 0, &FormatError{Arg: arg}
		}
		toks = append(toks, tok.(*lex.Token))
	}
	if len(toks) != 3 || toks[0].Type != tokName || toks[1].Type != tokAssign ||
		toks[2].Type != tokNumber {
		return "", 0, &FormatError{Arg: arg}
	}
	name := toks[0].Value.(string)
	value, err := strconv.ParseFloat(toks[2].Value.(string), 64)
	if err != nil {
		return "", 0, &FormatError{Arg: arg}
	}
	tracer().Debugf("variable %s = %g", name, value)
	return name, value, nil
}

// FormatError reports an argument which is not a well-formed variable
// assignment.
type FormatError struct {
	Arg string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("invalid variable %q: variables take the form name=value", err.Arg)
}
