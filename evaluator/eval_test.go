package evaluator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sgrinevich/strcalc"
	"github.com/sgrinevich/strcalc/evaluator"
)

const epsilon = 1e-9

func TestCalculate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.evaluator")
	defer teardown()
	//
	for i, x := range []struct {
		expr string
		vars map[string]float64
		v    float64
	}{
		{expr: "2+3*4", v: 14},
		{expr: "(2+3)*4", v: 20},
		{expr: "2^3^2", v: 512}, // right-associative, not 64
		{expr: "10/4", v: 2.5},
		{expr: "7-2-3", v: 2},
		{expr: "2*-3", v: -6},
		{expr: "-5+3", v: -2},
		{expr: "-(2+3)", v: -5},
		{expr: "x+1", vars: map[string]float64{"x": 2}, v: 3},
		{expr: "-x", vars: map[string]float64{"x": 2}, v: -2},
		{expr: "e", v: math.E},
		{expr: "e", vars: map[string]float64{"e": 1}, v: 1},
		{expr: "sqrt(16)", v: 4},
		{expr: "log2(8)", v: 3},
		{expr: "log10(100)", v: 2},
		{expr: "cos(0)", v: 1},
		{expr: "sin(0)", v: 0},
		{expr: "tan(0)", v: 0},
		{expr: "atan(0)", v: 0},
		{expr: "-sqrt(4)", v: -2},
		{expr: "-sin(0)+1", v: 1},
		{expr: "2*(x+y)^2", vars: map[string]float64{"x": 1, "y": 2}, v: 18},
		{expr: "1 2", v: 12}, // whitespace is stripped before tokenization
	} {
		result, err := evaluator.Calculate(x.expr, x.vars)
		if err != nil {
			t.Errorf("test %d: cannot calculate %q: %v", i, x.expr, err)
			continue
		}
		if math.Abs(result-x.v) > epsilon {
			t.Errorf("test %d: expected %q to yield %g, have %g", i, x.expr, x.v, result)
		}
	}
}

func TestCalculateDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.evaluator")
	defer teardown()
	//
	_, err := evaluator.Calculate("5/0", nil)
	if !errors.Is(err, strcalc.ErrDivisionByZero) {
		t.Errorf("expected division-by-zero error, have %v", err)
	}
}

func TestCalculateUnresolved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.evaluator")
	defer teardown()
	//
	_, err := evaluator.Calculate("x+1", nil)
	var unresolved *strcalc.UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Errorf("expected an *UnresolvedError, have %v", err)
	}
}

func TestCalculateMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.evaluator")
	defer teardown()
	//
	for i, expr := range []string{
		"",
		"+",
		"sin()",
	} {
		_, err := evaluator.Calculate(expr, nil)
		if !errors.Is(err, strcalc.ErrMalformedExpression) {
			t.Errorf("test %d: expected malformed-expression error for %q, have %v",
				i, expr, err)
		}
	}
}

// The negation rule for a lone operand must not fire for complete binary
// expressions, only for the unary-minus-on-a-group artifact.
func TestEvaluateLoneOperandNegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.evaluator")
	defer teardown()
	//
	postfix := []strcalc.Token{
		strcalc.NumberToken(2),
		strcalc.NumberToken(3),
		strcalc.OperatorToken('+'),
		strcalc.OperatorToken('-'), // negates the single remaining operand
	}
	result, err := evaluator.Evaluate(postfix)
	if err != nil {
		t.Fatalf("cannot evaluate: %v", err)
	}
	if result != -5 {
		t.Errorf("expected -5, have %g", result)
	}
}

func TestCalculateConcurrent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strcalc.evaluator")
	defer teardown()
	//
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				r, err := evaluator.Calculate("(2+3)*4", nil)
				if err == nil && r != 20 {
					err = errors.New("wrong result")
				}
				if err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
