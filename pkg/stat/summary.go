package stat

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample against a known expected value
type Summary struct {
	N        int
	Mean     float64
	Variance float64
	StdErr   float64
	Expected float64
}

// AbsError is the absolute difference between the sample mean and the expected value
func (s Summary) AbsError() float64 {
	return math.Abs(s.Mean - s.Expected)
}

// Summarize computes the sample mean, unbiased variance and standard error of the mean.  Variance and standard
// error are zero for fewer than two observations.
func Summarize(values []float64, expected float64) Summary {
	s := Summary{N: len(values), Expected: expected}
	if len(values) == 0 {
		return s
	}
	s.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		s.Variance = stat.Variance(values, nil)
		s.StdErr = stat.StdErr(math.Sqrt(s.Variance), float64(len(values)))
	}
	return s
}
