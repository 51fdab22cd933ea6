package selector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almostEric/FrozenWasteland-sub000/selector"
)

func TestJitter_Bounds(t *testing.T) {
	rng := selector.NewRand(11)
	var sumU, sumG float64
	const n = 5000
	for i := 0; i < n; i++ {
		u := selector.Jitter(rng, 30, false)
		g := selector.Jitter(rng, 30, true)
		assert.LessOrEqual(t, math.Abs(u), 30.0)
		assert.LessOrEqual(t, math.Abs(g), 30.0)
		sumU += math.Abs(u)
		sumG += math.Abs(g)
	}
	// Mean |x|: uniform 15, truncated normal ≈ 0.46·30.
	assert.InDelta(t, 15, sumU/n, 1)
	assert.Less(t, sumG/n, sumU/n)
}

func TestJitter_Off(t *testing.T) {
	rng := selector.NewRand(1)
	assert.Equal(t, 0.0, selector.Jitter(rng, 0, false))
	assert.Equal(t, 0.0, selector.Jitter(rng, -5, true))
	assert.Equal(t, 0.0, selector.Jitter(nil, 50, false))
	assert.LessOrEqual(t, math.Abs(selector.Jitter(rng, 500, false)), selector.MaxJitterCents)
}
