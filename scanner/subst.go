package scanner

import (
	"math"

	"github.com/sgrinevich/strcalc"
)

// Substitute resolves identifier tokens into numeric literal tokens using
// the supplied variable mapping. The mapping is read-only; a fresh token
// sequence is returned.
//
// A bare `e` which is not shadowed by a variable of the same name resolves
// to Euler's number. A negated identifier resolves to the negated value.
// Identifiers which are neither variables nor `e` yield an
// *strcalc.UnresolvedError. Function tokens are never substituted, so a
// variable named like a built-in function is not consulted.
func Substitute(tokens []strcalc.Token, vars map[string]float64) ([]strcalc.Token, error) {
	out := make([]strcalc.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != strcalc.Ident {
			out = append(out, tok)
			continue
		}
		v, ok := vars[tok.Text]
		if !ok {
			if tok.Text != "e" {
				return nil, &strcalc.UnresolvedError{Name: tok.Text}
			}
			v = math.E
		}
		if tok.Negated {
			v = -v
		}
		tracer().Debugf("substituting %q by %g", tok.String(), v)
		out = append(out, strcalc.NumberToken(v))
	}
	return out, nil
}
