package graphcalc

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// builtin identifies one of the functions an expression can call. Every
// builtin takes exactly one argument.
type builtin int8

const (
	fnNone builtin = iota
	fnSin
	fnCos
	fnTan
	fnLn
	fnLog // base 10
	fnSqrt
)

// constPrec is the precision in bits to which constants are computed before
// rounding them to float64.
const constPrec = 128

// Table resolves the names of constants and functions during parsing and
// evaluation. A Table is never modified after it is created, so it is safe to
// share.
type Table struct {
	consts map[string]float64
	funcs  map[string]builtin
}

var defaultTable = newTable()

// Default returns the table of constants and functions used by Parse. It is
// created once per process.
func Default() *Table {
	return defaultTable
}

func newTable() *Table {
	return &Table{
		consts: map[string]float64{
			"pi": constant(bigfloat.Pi),
			"e": constant(func(out *big.Float) *big.Float {
				var one big.Float
				one.SetFloat64(1)
				return bigfloat.Exp(out, &one)
			}),
		},
		funcs: map[string]builtin{
			"sin":  fnSin,
			"cos":  fnCos,
			"tan":  fnTan,
			"ln":   fnLn,
			"log":  fnLog,
			"sqrt": fnSqrt,
		},
	}
}

// constant computes a constant at high precision and rounds it to the
// nearest float64.
func constant(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constPrec)
	f(r)
	v, _ := r.Float64()
	return v
}

// Const returns the value of a named constant.
func (t *Table) Const(name string) (float64, bool) {
	v, ok := t.consts[name]
	return v, ok
}

// IsFunc returns whether name is a function.
func (t *Table) IsFunc(name string) bool {
	return t.funcs[name] != fnNone
}

// Names returns the sorted names of all constants and functions.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.consts)+len(t.funcs))
	for k := range t.consts {
		names = append(names, k)
	}
	for k := range t.funcs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain. It matches ErrEval.
type DomainError struct {
	// X is the out-of-domain argument. For ^, it is the base.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err *DomainError) Is(target error) bool {
	return target == ErrEval
}
