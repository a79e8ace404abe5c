// Package graphcalc implements the expression engine behind a graphing
// calculator.
//
// Input is whatever a user types on a calculator keypad: "2(3+1)", "√(2)×π",
// "y = sin(x)*x^2". Expressions without the free variable x evaluate to a
// display string; expressions in x are sampled over a domain into points for
// plotting. "-x^2" is the same as "-(x^2)", and "a^b^c" is "a^(b^c)".
//
// Everything is computed in float64. Parsed expressions are immutable, so an
// Expr may be evaluated and sampled concurrently.
//
package graphcalc
