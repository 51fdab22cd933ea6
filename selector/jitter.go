package selector

import (
	"math"
	"math/rand"
)

const (
	// MaxJitterCents bounds the pitch jitter amount.
	MaxJitterCents = 100.0
	// maxGaussianTries bounds the rejection loop.
	maxGaussianTries = 64
)

// Jitter returns a pitch offset in cents bounded by ±rangeCents. Uniform
// draws are flat; Gaussian draws are standard normals rejected outside ±1σ,
// then scaled so 1σ lands on rangeCents.
func Jitter(rng *rand.Rand, rangeCents float64, gaussian bool) float64 {
	rangeCents = clamp(rangeCents, 0, MaxJitterCents)
	if rangeCents == 0 || rng == nil {
		return 0
	}
	if !gaussian {
		return (rng.Float64()*2 - 1) * rangeCents
	}
	for i := 0; i < maxGaussianTries; i++ {
		if z := rng.NormFloat64(); math.Abs(z) <= 1 {
			return z * rangeCents
		}
	}

	return 0
}
