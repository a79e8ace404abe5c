package graphcalc_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/zephyrtronium/graphcalc"
)

func TestEvaluateExpression(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2+3*4", "14"},
		{"(2+3)*4", "20"},
		{"2^10", "1024"},
		{"2(3+1)", "8"},
		{"2*(3+1)", "8"},
		{"sin(pi)", "0"},
		{"0.1+0.2", "0.3"},
		{"1/3", "0.33333333333333"},
		{"-2^2", "-4"},
		{"(-2)^2", "4"},
		{"sqrt(0)", "0"},
		{"log(100)", "2"},
		{"2π", "6.2831853071796"},
		{"e^0", "1"},
		{"y = 7", "7"},
		{"  12 ÷ 4 ", "3"},
	}
	for _, c := range cases {
		got, err := graphcalc.EvaluateExpression(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestEvaluateExpressionErrors(t *testing.T) {
	cases := []struct {
		src string
		cat error
	}{
		{"", graphcalc.ErrParse},
		{"   ", graphcalc.ErrParse},
		{"1+", graphcalc.ErrParse},
		{"(1", graphcalc.ErrParse},
		{"1)", graphcalc.ErrParse},
		{"1**2", graphcalc.ErrParse},
		{"sin(1,2)", graphcalc.ErrParse},
		{"1.2.3", graphcalc.ErrLex},
		{"2$", graphcalc.ErrLex},
		{"log(-1)", graphcalc.ErrEval},
		{"sqrt(-4)", graphcalc.ErrEval},
		{"1/0", graphcalc.ErrEval},
		{"ln(0)", graphcalc.ErrEval},
		{"10^400", graphcalc.ErrEval},
		{"sin(x)*x", graphcalc.ErrEval},
		{"foo", graphcalc.ErrEval},
	}
	for _, c := range cases {
		got, err := graphcalc.EvaluateExpression(c.src)
		if err == nil {
			t.Errorf("%q: no error and result %q", c.src, got)
			continue
		}
		if got != "" {
			t.Errorf("%q: partial result %q with error", c.src, got)
		}
		var ee *graphcalc.EvaluationError
		if !errors.As(err, &ee) {
			t.Errorf("%q: want *EvaluationError, got %#v", c.src, err)
			continue
		}
		if ee.Source != c.src || ee.Graph {
			t.Errorf("%q: wrong error details %#v", c.src, ee)
		}
		if !errors.Is(err, c.cat) {
			t.Errorf("%q: %v does not match %v", c.src, err, c.cat)
		}
		if pkgerrors.Cause(err) != ee.Err {
			t.Errorf("%q: Cause gave %#v, not %#v", c.src, pkgerrors.Cause(err), ee.Err)
		}
	}
}

func TestEvaluateExpressionCauses(t *testing.T) {
	_, err := graphcalc.EvaluateExpression("sin(x)*x")
	var mv *graphcalc.MissingVariableError
	if !errors.As(err, &mv) || mv.Name != "x" {
		t.Errorf("sin(x)*x: want MissingVariableError, got %#v", err)
	}
	_, err = graphcalc.EvaluateExpression("10^400")
	var re *graphcalc.RangeError
	if !errors.As(err, &re) {
		t.Errorf("10^400: want RangeError, got %#v", err)
	}
	_, err = graphcalc.EvaluateExpression("1/0")
	if got, want := err.Error(), `evaluating "1/0": division by zero: 1/0`; got != want {
		t.Errorf("wrong message: want %q, got %q", want, got)
	}
}

func TestGeneratePoints(t *testing.T) {
	cases := []struct {
		src string
		n   int
	}{
		{"sin(x)*x", 101},
		{"y = x^2 - 4", 101},
		{"1/x", 100},
		{"sqrt(x)", 51},
		{"sin(", 0},
		{"x$", 0},
		{"", 0},
	}
	for _, c := range cases {
		pts := graphcalc.GeneratePoints(c.src, -10, 10, 0.2)
		if len(pts) != c.n {
			t.Errorf("%q: want %d points, got %d", c.src, c.n, len(pts))
		}
		checkPoints(t, c.src, pts, graphcalc.ClampLimit)
	}
	if pts := graphcalc.GeneratePoints("(x", -10, 10, 0.2); pts != nil {
		t.Errorf("unparsable expression gave points %v", pts)
	}
}

func TestIsGraphable(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"x^2-4", true},
		{"2+3", false},
		{"y = x + 1", true},
		{"y = 2", false},
		{"y", false},
		{"sin(pi)*e", false},
		{"sqrt(2x)", true},
		{"", false},
		// The check is textual, so a misspelled name still counts.
		{"exp(1)", true},
	}
	for _, c := range cases {
		if got := graphcalc.IsGraphable(c.src); got != c.want {
			t.Errorf("IsGraphable(%q): want %t, got %t", c.src, c.want, got)
		}
	}
}

func TestCalculate(t *testing.T) {
	r, err := graphcalc.Calculate("y = 2+3", graphcalc.DefaultDomain)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != graphcalc.Scalar || r.Value != "5" || r.Source != "2+3" || r.Points != nil {
		t.Errorf("wrong scalar result %+v", r)
	}

	r, err = graphcalc.Calculate("y = x + 1", graphcalc.DefaultDomain)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != graphcalc.Graph || r.Value != "" || r.Source != "x + 1" || len(r.Points) != 101 {
		t.Errorf("wrong graph result %v with %d points", r.Kind, len(r.Points))
	}

	r, err = graphcalc.Calculate("x*10000", graphcalc.Domain{Min: -1, Max: 1, Step: 1}, graphcalc.Clamp(10))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range r.Points {
		if p.Y < -10 || p.Y > 10 {
			t.Errorf("option not applied: %v", p)
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		d     graphcalc.Domain
		graph bool
		cat   error
	}{
		{"blank", "   ", graphcalc.DefaultDomain, false, graphcalc.ErrEmpty},
		{"assign-only", "y = ", graphcalc.DefaultDomain, false, graphcalc.ErrEmpty},
		{"scalar", "1/0", graphcalc.DefaultDomain, false, graphcalc.ErrEval},
		{"scalar-parse", "2+", graphcalc.DefaultDomain, false, graphcalc.ErrParse},
		{"graph-parse", "x+(", graphcalc.DefaultDomain, true, graphcalc.ErrParse},
		{"graph-lex", "x#", graphcalc.DefaultDomain, true, graphcalc.ErrLex},
		{"nowhere", "sqrt(-1-x^2)", graphcalc.DefaultDomain, true, graphcalc.ErrNotPlottable},
		{"no-domain", "x", graphcalc.Domain{Min: 1, Max: -1, Step: 1}, true, graphcalc.ErrNotPlottable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := graphcalc.Calculate(c.src, c.d)
			if err == nil {
				t.Fatalf("no error and result %+v", r)
			}
			if r != nil {
				t.Errorf("partial result %+v", r)
			}
			if !errors.Is(err, c.cat) {
				t.Errorf("%v does not match %v", err, c.cat)
			}
			if c.cat == graphcalc.ErrEmpty {
				if err != graphcalc.ErrEmpty {
					t.Errorf("want ErrEmpty itself, got %#v", err)
				}
				return
			}
			var ee *graphcalc.EvaluationError
			if !errors.As(err, &ee) {
				t.Fatalf("want *EvaluationError, got %#v", err)
			}
			if ee.Graph != c.graph {
				t.Errorf("wrong path: want graph=%t, got %t", c.graph, ee.Graph)
			}
		})
	}
}

func TestResultKind(t *testing.T) {
	cases := []struct {
		k    graphcalc.ResultKind
		want string
	}{
		{graphcalc.Scalar, "scalar"},
		{graphcalc.Graph, "graph"},
		{graphcalc.ResultKind(7), "ResultKind(7)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func ExampleEvaluateExpression() {
	for _, src := range []string{"2+3*4", "2(3+1)", "sin(pi)", "1/3", "1/0"} {
		r, err := graphcalc.EvaluateExpression(src)
		if err != nil {
			fmt.Println(src, "=", "Error")
			continue
		}
		fmt.Println(src, "=", r)
	}
	// Output:
	// 2+3*4 = 14
	// 2(3+1) = 8
	// sin(pi) = 0
	// 1/3 = 0.33333333333333
	// 1/0 = Error
}

func ExampleGeneratePoints() {
	for _, p := range graphcalc.GeneratePoints("y = 1/x", -1, 1, 0.5) {
		fmt.Println(p.X, p.Y)
	}
	// Output:
	// -1 -1
	// -0.5 -2
	// 0.5 2
	// 1 1
}
