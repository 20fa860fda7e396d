package rng

import (
	"math/rand"
)

var _ RNG = &UniformRNG{}

// UniformRNG generates uniformly distributed numbers on [a, b).  The underlying source is seeded explicitly
// so that two generators created with the same seed produce identical sequences.
type UniformRNG struct {
	a float64
	b float64
	r *rand.Rand
}

func (r *UniformRNG) Rand() float64 {
	// Float64 is in [0.0, 1.0) so b is never returned
	return r.a + (r.b-r.a)*r.r.Float64()
}

// NewUniformRNG returns a generator on [a, b) seeded with seed
func NewUniformRNG(a float64, b float64, seed int64) *UniformRNG {
	return &UniformRNG{
		a: a,
		b: b,
		r: rand.New(rand.NewSource(seed)),
	}
}

// NewStandardUniformRNG returns a generator on [0, 1) seeded with seed
func NewStandardUniformRNG(seed int64) *UniformRNG {
	return NewUniformRNG(0.0, 1.0, seed)
}
