package rng

// RNG is a random number generator
type RNG interface {
	Rand() float64
}

// Sample draws n values from r in order.  A non-positive n returns an empty slice.
func Sample(r RNG, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = r.Rand()
	}
	return out
}
