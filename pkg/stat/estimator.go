package stat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// IntegralEstimator estimates the integral of f with samples drawn from pdf.  Each sample x contributes the
// weighted value f(x)/pdf(x); the estimate after n samples is the mean of the first n weighted values.
type IntegralEstimator struct {
	f   Integrand
	pdf PDF
}

// Estimate returns the weighted value of every sample and the running estimate after each sample.  Both slices
// have len(xs) elements.  It is an error for a sample to fall where the density is zero.
func (e *IntegralEstimator) Estimate(xs []float64) ([]float64, []float64, error) {
	weighted, err := e.Weight(xs)
	if err != nil {
		return nil, nil, err
	}
	return weighted, CumulativeMean(weighted), nil
}

// Weight returns f(x)/pdf(x) for each sample
func (e *IntegralEstimator) Weight(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		p := e.pdf.Prob(x)
		if p <= 0 {
			return nil, fmt.Errorf("sample %d (x=%g) has zero density under %s", i, x, e.pdf)
		}
		w := e.f(x) / p
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("f(x)/pdf(x) is not defined for sample %d (x=%g)", i, x)
		}
		out[i] = w
	}
	return out, nil
}

// NewIntegralEstimator returns an estimator for the integral of f under sampling density pdf
func NewIntegralEstimator(f Integrand, pdf PDF) (*IntegralEstimator, error) {
	if f == nil {
		return nil, fmt.Errorf("integral estimator requires an integrand")
	}
	if pdf == nil {
		return nil, fmt.Errorf("integral estimator requires a sampling density")
	}
	return &IntegralEstimator{f: f, pdf: pdf}, nil
}

// CumulativeMean returns the running mean of values, where element n-1 is the mean of values[0:n]
func CumulativeMean(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	floats.CumSum(out, values)
	for i := range out {
		out[i] /= float64(i + 1)
	}
	return out
}
