package metric

import (
	"fmt"
)

// Series is a named sequence of observations in the order they were recorded.  Runs size the series to hold
// every sample they draw.
type Series struct {
	name   Name
	values []float64
}

type SeriesOption func(s *Series) error

// Values returns a copy of the recorded values from oldest to most recent
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Record adds a new observation to the end of the series
func (s *Series) Record(p float64) {
	s.values = append(s.values, p)
}

// RecordAll adds each observation in order
func (s *Series) RecordAll(obs []float64) {
	s.values = append(s.values, obs...)
}

// Last returns the most recent observation, or false if nothing has been recorded
func (s *Series) Last() (float64, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[len(s.values)-1], true
}

// Len returns the number of observations recorded
func (s *Series) Len() int {
	return len(s.values)
}

// Name returns the name of the series and associated metadata
func (s *Series) Name() Name {
	return s.name
}

// NewSeries creates a new empty series with room for size observations before it has to grow
func NewSeries(size int, opts ...SeriesOption) (*Series, error) {
	if size <= 0 {
		return nil, fmt.Errorf("series must be initialized with a size >= 1")
	}

	s := &Series{
		values: make([]float64, 0, size),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithName sets the name of the series
func WithName(name Name) SeriesOption {
	return func(s *Series) error {
		if name.Base() == "" {
			return fmt.Errorf("series name must be the non-empty string")
		}
		s.name = name
		return nil
	}
}

// WithValues initializes a series from an existing set of observations.  The number of observations does not
// have to be equal to the size.
func WithValues(values []float64) SeriesOption {
	return func(s *Series) error {
		s.RecordAll(values)
		return nil
	}
}

// FromValues returns a series named name holding exactly values
func FromValues(name Name, values []float64) (*Series, error) {
	return NewSeries(len(values), WithName(name), WithValues(values))
}
