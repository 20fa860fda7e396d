package rng

import (
	"math"
)

var _ RNG = &ExponentialRNG{}

// ExponentialRNG generates exponentially distributed numbers by inverse transform sampling.  For u ~ U[0,1) the
// inverse CDF of Exponential(rate) is x = -ln(1-u)/rate.  The source must never return 1, which would map to +Inf.
type ExponentialRNG struct {
	rate float64
	src  RNG
}

func (r *ExponentialRNG) Rand() float64 {
	return InverseExponential(r.src.Rand(), r.rate)
}

// Rate returns the rate parameter of the distribution
func (r *ExponentialRNG) Rate() float64 {
	return r.rate
}

// NewExponentialRNG returns an inverse transform sampler for Exponential(rate) driven by src, which must be
// uniform on [0, 1)
func NewExponentialRNG(rate float64, src RNG) *ExponentialRNG {
	return &ExponentialRNG{
		rate: rate,
		src:  src,
	}
}

// InverseExponential is the inverse CDF of Exponential(rate) evaluated at u
func InverseExponential(u float64, rate float64) float64 {
	return -math.Log(1-u) / rate
}
