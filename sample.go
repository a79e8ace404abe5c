package graphcalc

import (
	"math"
)

const (
	// ClampLimit is the default bound on the magnitude of sampled y values.
	// It keeps a plot's scale stable near asymptotes.
	ClampLimit = 1000
	// DefaultMaxSamples is the default limit on the number of grid points.
	DefaultMaxSamples = 100000
)

// DefaultDomain is the domain a graphing calculator plots by default.
var DefaultDomain = Domain{Min: -10, Max: 10, Step: 0.2}

// GraphPoint is a sampled point of a curve.
type GraphPoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Domain is an evenly spaced grid of x values, including both ends.
type Domain struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// Len returns the number of grid points in d. It is 0 if either bound is not
// finite, the step is not positive, or Max is less than Min.
func (d Domain) Len() int {
	if math.IsNaN(d.Min) || math.IsInf(d.Min, 0) || math.IsNaN(d.Max) || math.IsInf(d.Max, 0) {
		return 0
	}
	if !(d.Step > 0) || math.IsInf(d.Step, 0) || d.Max < d.Min {
		return 0
	}
	// The tolerance keeps Max on the grid despite rounding in the quotient,
	// e.g. 20/0.2 is slightly less than 100.
	k := math.Floor((d.Max-d.Min)/d.Step + 1e-9)
	if k >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(k) + 1
}

// At returns the i'th grid point.
func (d Domain) At(i int) float64 {
	return d.Min + float64(i)*d.Step
}

// Sample evaluates the expression at x = min, min+step, ..., max and returns
// the points in ascending order of x. A point whose evaluation fails or is
// not finite is omitted, leaving a gap in the curve. Each y is clamped to
// [-ClampLimit, ClampLimit] unless an option says otherwise. Invalid domains
// give no points.
func (e *Expr) Sample(min, max, step float64, opts ...SampleOption) []GraphPoint {
	return e.SampleDomain(Domain{Min: min, Max: max, Step: step}, opts...)
}

// SampleDomain is like Sample with the grid given as a Domain.
func (e *Expr) SampleDomain(d Domain, opts ...SampleOption) []GraphPoint {
	c := defaultSampling()
	for _, opt := range opts {
		c = opt.sampleOption(c)
	}
	n := d.Len()
	if n == 0 || n > c.max {
		return nil
	}
	pts := make([]GraphPoint, 0, n)
	for i := 0; i < n; i++ {
		x := d.At(i)
		y, err := e.Eval(Bind(x))
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, GraphPoint{X: x, Y: clamp(y, c.clamp)})
	}
	return pts
}
