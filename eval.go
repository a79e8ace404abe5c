package graphcalc

import (
	"math"
	"strconv"
)

// FreeVar is the name of the only variable an expression may depend on.
const FreeVar = "x"

// Env binds the free variable for one evaluation. The zero Env leaves x
// unbound, which is the scalar case.
type Env struct {
	x     float64
	bound bool
}

// Bind returns an environment in which x has the given value.
func Bind(x float64) Env {
	return Env{x: x, bound: true}
}

// X returns the value bound to x and whether there is one.
func (env Env) X() (float64, bool) {
	return env.x, env.bound
}

// Eval evaluates the expression in env. The error, if any, matches ErrEval.
// The result may be infinite if an intermediate value overflows, but it is
// never NaN unless env binds x to NaN.
func (e *Expr) Eval(env Env) (float64, error) {
	return e.n.eval(env, e.tab)
}

// eval computes the value of the tree rooted at n.
func (n *node) eval(env Env, tab *Table) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeVar:
		if n.name != FreeVar {
			return 0, &NameError{Name: n.name}
		}
		if !env.bound {
			return 0, &MissingVariableError{Name: n.name}
		}
		return env.x, nil
	case nodeConst:
		v, ok := tab.Const(n.name)
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		a, err := n.left.eval(env, tab)
		if err != nil {
			return 0, err
		}
		return call(n.fn, n.name, a)
	case nodeNeg:
		a, err := n.left.eval(env, tab)
		if err != nil {
			return 0, err
		}
		return -a, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(env, tab)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(env, tab)
		if err != nil {
			return 0, err
		}
		return arith(n.kind, l, r)
	default:
		panic("graphcalc: invalid AST node " + n.kind.String())
	}
}

// arith applies a binary operator.
func arith(kind nodeKind, l, r float64) (float64, error) {
	var v float64
	var op string
	switch kind {
	case nodeAdd:
		v, op = l+r, "+"
	case nodeSub:
		v, op = l-r, "-"
	case nodeMul:
		v, op = l*r, "*"
	case nodeDiv:
		if r == 0 {
			return 0, &DivisionByZeroError{Dividend: l}
		}
		v, op = l/r, "/"
	case nodePow:
		// math.Pow gives NaN for a negative finite base and a non-integer
		// finite exponent, which is exactly when the real power is undefined.
		v, op = math.Pow(l, r), "^"
	default:
		panic("graphcalc: invalid binary operator " + kind.String())
	}
	if math.IsNaN(v) && !math.IsNaN(l) && !math.IsNaN(r) {
		return 0, &DomainError{X: l, Func: op}
	}
	return v, nil
}

// call applies a builtin function.
func call(fn builtin, name string, a float64) (float64, error) {
	var v float64
	switch fn {
	case fnSin:
		v = math.Sin(a)
	case fnCos:
		v = math.Cos(a)
	case fnTan:
		v = math.Tan(a)
	case fnLn:
		if a <= 0 {
			return 0, &DomainError{X: a, Func: name}
		}
		v = math.Log(a)
	case fnLog:
		if a <= 0 {
			return 0, &DomainError{X: a, Func: name}
		}
		v = math.Log10(a)
	case fnSqrt:
		if a < 0 {
			return 0, &DomainError{X: a, Func: name}
		}
		v = math.Sqrt(a)
	default:
		panic("graphcalc: invalid builtin " + strconv.Quote(name))
	}
	// Trig functions of infinities.
	if math.IsNaN(v) && !math.IsNaN(a) {
		return 0, &DomainError{X: a, Func: name}
	}
	return v, nil
}

// NameError is an error from a lookup for an identifier that is not x, a
// constant, or a function. It matches ErrEval.
type NameError struct {
	// Name is the unknown identifier.
	Name string
}

func (err *NameError) Error() string {
	return "unknown identifier: " + strconv.Quote(err.Name)
}

func (err *NameError) Is(target error) bool {
	return target == ErrEval
}

// MissingVariableError is an error from evaluating an expression that uses x
// in an environment that does not bind it. It matches ErrEval.
type MissingVariableError struct {
	// Name is the unbound variable.
	Name string
}

func (err *MissingVariableError) Error() string {
	return "no value for variable " + strconv.Quote(err.Name)
}

func (err *MissingVariableError) Is(target error) bool {
	return target == ErrEval
}

// DivisionByZeroError is an error from dividing by zero. It matches ErrEval.
type DivisionByZeroError struct {
	// Dividend is the left operand of the division.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + "/0"
}

func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrEval
}
