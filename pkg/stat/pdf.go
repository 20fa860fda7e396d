package stat

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

var _ PDF = &Uniform{}
var _ PDF = &Exponential{}

// PDF is a probability density function.  Monte Carlo estimates divide each integrand evaluation by the density
// of the distribution the sample was drawn from, so the density must be strictly positive wherever samples can land.
type PDF interface {
	Prob(x float64) float64
	Mean() float64
	String() string
}

// Uniform is the uniform density on [Min, Max], 1/(Max-Min) inside the interval and zero outside
type Uniform struct {
	d distuv.Uniform
}

func (u *Uniform) Prob(x float64) float64 {
	return u.d.Prob(x)
}

func (u *Uniform) Mean() float64 {
	return u.d.Mean()
}

// Bounds returns the interval the density is supported on
func (u *Uniform) Bounds() (float64, float64) {
	return u.d.Min, u.d.Max
}

func (u *Uniform) String() string {
	return fmt.Sprintf("uniform[%g,%g]", u.d.Min, u.d.Max)
}

// NewUniform returns the uniform density on [min, max]
func NewUniform(min float64, max float64) (*Uniform, error) {
	if !(max > min) {
		return nil, fmt.Errorf("uniform density requires max > min, got [%g,%g]", min, max)
	}
	return &Uniform{d: distuv.Uniform{Min: min, Max: max}}, nil
}

// Exponential is the density rate*exp(-rate*x) for x >= 0
type Exponential struct {
	d distuv.Exponential
}

func (e *Exponential) Prob(x float64) float64 {
	return e.d.Prob(x)
}

func (e *Exponential) Mean() float64 {
	return e.d.Mean()
}

func (e *Exponential) Variance() float64 {
	return e.d.Variance()
}

func (e *Exponential) String() string {
	return fmt.Sprintf("exponential[rate=%g]", e.d.Rate)
}

// NewExponential returns the exponential density with the given rate
func NewExponential(rate float64) (*Exponential, error) {
	if !(rate > 0) {
		return nil, fmt.Errorf("exponential density requires rate > 0, got %g", rate)
	}
	return &Exponential{d: distuv.Exponential{Rate: rate}}, nil
}
