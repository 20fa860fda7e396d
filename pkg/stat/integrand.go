package stat

import "math"

// Integrand is a real function to be integrated
type Integrand func(x float64) float64

// SinSquared is sin(x)^2.  Its integral over [0, pi] is pi/2.
func SinSquared(x float64) float64 {
	s := math.Sin(x)
	return s * s
}

// SinSquaredIntegral is the exact value of the integral of SinSquared over [0, pi]
const SinSquaredIntegral float64 = math.Pi / 2
