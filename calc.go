package graphcalc

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is the error Calculate returns for blank input.
	ErrEmpty = errors.New("empty expression")
	// ErrNotPlottable is the error Calculate returns for an expression in x
	// that has no finite point anywhere in the domain.
	ErrNotPlottable = errors.New("expression has no plottable points")
)

// EvaluationError is the error from the scalar and dispatch entry points. It
// wraps the lexing, parsing, or evaluation error that caused the failure.
// Hosts generally show a generic label rather than the message.
type EvaluationError struct {
	// Source is the expression as given, less any "y =" prefix in the case
	// of Calculate.
	Source string
	// Graph is whether the failure happened on the plotting path.
	Graph bool
	// Err is the cause.
	Err error
}

func (err *EvaluationError) Error() string {
	return "evaluating " + strconv.Quote(err.Source) + ": " + err.Err.Error()
}

func (err *EvaluationError) Unwrap() error {
	return err.Err
}

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (err *EvaluationError) Cause() error {
	return err.Err
}

// RangeError is an error indicating that a scalar result is infinite or NaN,
// e.g. from 10^400. It matches ErrEval.
type RangeError struct {
	// X is the result.
	X float64
}

func (err *RangeError) Error() string {
	return "result out of range: " + strconv.FormatFloat(err.X, 'g', -1, 64)
}

func (err *RangeError) Is(target error) bool {
	return target == ErrEval
}

// EvaluateExpression parses and evaluates an expression with no binding for
// x and formats the result for display. Evaluation is all or nothing: any
// failure, including a use of x, gives an *EvaluationError.
func EvaluateExpression(src string) (string, error) {
	v, err := evaluate(src)
	if err != nil {
		return "", &EvaluationError{Source: src, Err: err}
	}
	return Format(v), nil
}

func evaluate(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	v, err := e.Eval(Env{})
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &RangeError{X: v}
	}
	return v, nil
}

// GeneratePoints parses an expression and samples it over a domain. It never
// fails: points that cannot be evaluated are omitted, and the result is nil
// if the expression does not parse.
func GeneratePoints(src string, min, max, step float64) []GraphPoint {
	e, err := Parse(src)
	if err != nil {
		return nil
	}
	return e.Sample(min, max, step)
}

// IsGraphable reports whether src should be plotted rather than evaluated,
// which is the case when the letter x appears anywhere after any "y ="
// prefix. This is a textual check; none of the constant or function names
// contain an x. Use Expr.UsesX to check a parsed expression.
func IsGraphable(src string) bool {
	return strings.Contains(StripAssignment(src), FreeVar)
}

// ResultKind distinguishes scalar and graph results.
type ResultKind int

const (
	// Scalar results have a formatted Value.
	Scalar ResultKind = iota
	// Graph results have Points.
	Graph
)

func (k ResultKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Graph:
		return "graph"
	default:
		return "ResultKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the outcome of Calculate.
type Result struct {
	// Source is the expression less any "y =" prefix.
	Source string
	Kind   ResultKind
	// Value is the formatted result of a scalar expression.
	Value string
	// Points are the samples of a graph.
	Points []GraphPoint
}

// Calculate does what a calculator's equals key does. It strips any "y ="
// prefix; if the rest is graphable, it samples it over d, and otherwise it
// evaluates it as a scalar. Errors other than ErrEmpty are *EvaluationError.
// A graph with no points at all fails with ErrNotPlottable.
func Calculate(src string, d Domain, opts ...SampleOption) (*Result, error) {
	clean := StripAssignment(src)
	if strings.TrimSpace(clean) == "" {
		return nil, ErrEmpty
	}
	if !IsGraphable(clean) {
		v, err := EvaluateExpression(clean)
		if err != nil {
			return nil, err
		}
		return &Result{Source: clean, Kind: Scalar, Value: v}, nil
	}
	e, err := Parse(clean)
	if err != nil {
		return nil, &EvaluationError{Source: clean, Graph: true, Err: err}
	}
	pts := e.SampleDomain(d, opts...)
	if len(pts) == 0 {
		return nil, &EvaluationError{Source: clean, Graph: true, Err: ErrNotPlottable}
	}
	return &Result{Source: clean, Kind: Graph, Points: pts}, nil
}
