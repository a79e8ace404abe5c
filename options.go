package graphcalc

import (
	"math"
	"strconv"
)

// SampleOption is an option for sampling.
type SampleOption interface {
	sampleOption(samplectx) samplectx
}

type (
	clampopt float64
	maxopt   int
)

// samplectx holds the settings for one call to Sample.
type samplectx struct {
	// clamp is the bound on the magnitude of sampled y values.
	clamp float64
	// max is the largest number of grid points Sample will evaluate.
	max int
}

func defaultSampling() samplectx {
	return samplectx{clamp: ClampLimit, max: DefaultMaxSamples}
}

// Clamp sets the bound on the magnitude of sampled y values. Values beyond
// ±limit are replaced by ±limit. An infinite limit disables clamping. Panics
// if limit is not positive.
func Clamp(limit float64) SampleOption {
	if !(limit > 0) {
		panic("graphcalc: clamp limit must be positive, not " + strconv.FormatFloat(limit, 'g', -1, 64))
	}
	return clampopt(limit)
}

func (o clampopt) sampleOption(c samplectx) samplectx {
	c.clamp = float64(o)
	return c
}

// MaxSamples sets the largest grid Sample will evaluate. Sampling a domain
// with more points gives no points. Panics if n is not positive.
func MaxSamples(n int) SampleOption {
	if n <= 0 {
		panic("graphcalc: sample limit must be positive, not " + strconv.Itoa(n))
	}
	return maxopt(n)
}

func (o maxopt) sampleOption(c samplectx) samplectx {
	c.max = int(o)
	return c
}

// clamp bounds y to [-limit, limit].
func clamp(y, limit float64) float64 {
	return math.Max(math.Min(y, limit), -limit)
}
