package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesRecord(t *testing.T) {
	tt := []struct {
		name string
		size int
		obs  []float64
		last float64
	}{
		{name: "underfill", size: 5, obs: []float64{1, 2, 3}, last: 3},
		{name: "fill", size: 5, obs: []float64{1, 2, 3, 4, 5}, last: 5},
		{name: "grow past size", size: 3, obs: []float64{1, 2, 3, 4, 5}, last: 5},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSeries(tc.size)
			require.NoError(t, err)
			for _, o := range tc.obs {
				s.Record(o)
			}
			assert.Equal(t, tc.obs, s.Values())
			assert.Equal(t, len(tc.obs), s.Len())
			last, ok := s.Last()
			assert.True(t, ok)
			assert.Equal(t, tc.last, last)
		})
	}
}

func TestSeriesValuesCopy(t *testing.T) {
	s, err := NewSeries(2, WithValues([]float64{1, 2}))
	require.NoError(t, err)
	v := s.Values()
	v[0] = 99
	assert.Equal(t, []float64{1, 2}, s.Values())
}

func TestSeriesEmpty(t *testing.T) {
	s, err := NewSeries(4)
	require.NoError(t, err)
	_, ok := s.Last()
	assert.False(t, ok)
	assert.Equal(t, []float64{}, s.Values())
	assert.Equal(t, 0, s.Len())

	_, err = NewSeries(0)
	assert.Error(t, err)
}

func TestWithValues(t *testing.T) {
	s, err := NewSeries(6, WithValues([]float64{1, 2, 3, 4}))
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, s.Values())
	s.RecordAll([]float64{5, 6, 7})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, s.Values())
}

func TestFromValues(t *testing.T) {
	name := NewName("exponential_samples", nil).WithInt("n", 3)
	s, err := FromValues(name, []float64{0.5, 1.5, 2.5})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, s.Values())
	assert.Equal(t, "exponential_samples[n=3]", s.Name().String())

	_, err = FromValues(NewName("", nil), []float64{1})
	assert.Error(t, err)
	_, err = FromValues(name, nil)
	assert.Error(t, err)
}
