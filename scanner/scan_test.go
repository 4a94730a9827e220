package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sgrinevich/strcalc"
)

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.scanner")
	defer teardown()
	//
	for i, x := range []struct {
		expr   string
		tokens string // rendered, blank separated
	}{
		{expr: "21+2-1", tokens: "21 + 2 - 1"},
		{expr: "2 + 3 * 4", tokens: "2 + 3 * 4"},
		{expr: "(2+3)*4", tokens: "( 2 + 3 ) * 4"},
		{expr: "2^3^2", tokens: "2 ^ 3 ^ 2"},
		{expr: "1.5/0.5", tokens: "1.5 / 0.5"},
		{expr: "sqrt(16)", tokens: "sqrt ( 16 )"},
		{expr: "log10(100)+log2(8)", tokens: "log10 ( 100 ) + log2 ( 8 )"},
		{expr: "x+yy", tokens: "x + yy"},
		{expr: "5-3", tokens: "5 - 3"},
		{expr: "-5+3", tokens: "-5 + 3"},
		{expr: "-x", tokens: "-x"},
		{expr: "2*-3", tokens: "2 * -3"},
		{expr: "(-3+1)", tokens: "( -3 + 1 )"},
		{expr: "-(1+2)", tokens: "- ( 1 + 2 )"},
		{expr: "-sqrt(4)", tokens: "-sqrt ( 4 )"},
	} {
		tokens, err := Scan(x.expr)
		if err != nil {
			t.Errorf("test %d: cannot scan %q: %v", i, x.expr, err)
			continue
		}
		if s := render(tokens, " "); s != x.tokens {
			t.Errorf("test %d: expected tokens %q, have %q", i, x.tokens, s)
		}
	}
}

func TestScanKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.scanner")
	defer teardown()
	//
	tokens, err := Scan("-sin(x)^2.5")
	if err != nil {
		t.Fatalf("cannot scan: %v", err)
	}
	expected := []strcalc.TokenKind{
		strcalc.Function, strcalc.LeftParen, strcalc.Ident,
		strcalc.RightParen, strcalc.Operator, strcalc.Number,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d", len(expected), len(tokens))
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: expected kind %s, have %s", i, kind, tokens[i].Kind)
		}
	}
	if !tokens[0].Negated {
		t.Errorf("expected function token to carry the unary minus")
	}
	if tokens[5].Value != 2.5 {
		t.Errorf("expected number token value 2.5, have %g", tokens[5].Value)
	}
}

func TestScanNegativeNumberValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.scanner")
	defer teardown()
	//
	tokens, err := Scan("-5+3")
	if err != nil {
		t.Fatalf("cannot scan: %v", err)
	}
	if tokens[0].Value != -5 || !tokens[0].Negated {
		t.Errorf("expected leading token to be the number -5, have %v", tokens[0])
	}
}

func TestScanUnrecognizedCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.scanner")
	defer teardown()
	//
	_, err := Scan("2#3")
	if err == nil {
		t.Fatalf("expected scan of \"2#3\" to fail, but didn't")
	}
	var scanerr *ScanError
	if !errors.As(err, &scanerr) {
		t.Fatalf("expected a *ScanError, have %v", err)
	}
	if scanerr.Pos != 1 {
		t.Errorf("expected error at position 1, have %d", scanerr.Pos)
	}
}

// Scanning and re-rendering a token sequence reproduces the
// whitespace-normalized input.
func TestScanRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.scanner")
	defer teardown()
	//
	for i, expr := range []string{
		"2+3*4",
		"( 2 + 3 ) * 4",
		"-5+3",
		"2 ^ 3 ^ 2",
		"-(1+2)",
		"1.50 * 2",
	} {
		tokens, err := Scan(expr)
		if err != nil {
			t.Errorf("test %d: cannot scan %q: %v", i, expr, err)
			continue
		}
		if s := render(tokens, ""); s != stripSpace(expr) {
			t.Errorf("test %d: round trip of %q produced %q", i, expr, s)
		}
	}
}

func render(tokens []strcalc.Token, sep string) string {
	v := make([]string, len(tokens))
	for i, tok := range tokens {
		v[i] = tok.String()
	}
	return strings.Join(v, sep)
}
