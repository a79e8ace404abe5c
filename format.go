package graphcalc

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// Epsilon is the magnitude below which Format renders 0. Values this
	// small are almost always cancellation noise, like sin(pi).
	Epsilon = 1e-10
	// Digits is the maximum number of significant digits Format renders.
	Digits = 14
)

// Format renders a result for display: values smaller in magnitude than
// Epsilon are "0", and everything else is rounded to Digits significant
// digits with trailing zeros removed. Format never uses exponential notation.
// Format only affects display and does not change v.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if math.Abs(v) < Epsilon {
		return "0"
	}
	// strconv rounds correctly to the significant digits we want. decimal
	// then lays the digits out without an exponent.
	s := strconv.FormatFloat(v, 'e', Digits-1, 64)
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("graphcalc: unparsable formatted float " + strconv.Quote(s) + ": " + err.Error())
	}
	return d.String()
}
