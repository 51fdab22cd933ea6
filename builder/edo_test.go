package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

func cents(es []pitch.Entry) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = e.Cents
	}

	return out
}

// TestEqualDivision_ScenarioB is standard 12-TET.
func TestEqualDivision_ScenarioB(t *testing.T) {
	es := builder.EqualDivision(builder.EDOConfig{Divisions: 12, Step: 1, Wraps: 1})
	require.Len(t, es, 12)
	for k, e := range es {
		assert.InDelta(t, float64(k)*100, e.Cents, 1e-9, "step %d", k)
		assert.InDelta(t, math.Pow(2, float64(k)/12), e.Ratio, 1e-12, "step %d", k)
	}
	assert.Equal(t, pitch.Ratio, es[0].Kind, "the unison is the set's own")
	assert.Equal(t, pitch.EqualDivision, es[1].Kind)

	// Through the full build with no lattice factors.
	res := builder.Build(builder.NewConfig(builder.WithEDO(12, 1, 1)))
	assert.InDeltaSlice(t, cents(es), cents(res.Tempered), 1e-9)
}

func TestEqualDivision_Steps(t *testing.T) {
	cases := []struct {
		name       string
		edo        builder.EDOConfig
		wantCents  []float64
		wantLength int
	}{
		{"coprime step visits all", builder.EDOConfig{Divisions: 12, Step: 5, Wraps: 5}, nil, 12},
		{"whole tone", builder.EDOConfig{Divisions: 12, Step: 2, Wraps: 1}, []float64{0, 200, 400, 600, 800, 1000}, 6},
		{"5-EDO", builder.EDOConfig{Divisions: 5, Step: 1, Wraps: 1}, []float64{0, 240, 480, 720, 960}, 5},
		{"single wrap of a large step", builder.EDOConfig{Divisions: 12, Step: 7, Wraps: 1}, []float64{0}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			es := builder.EqualDivision(tc.edo)
			require.Len(t, es, tc.wantLength)
			if tc.wantCents != nil {
				assert.InDeltaSlice(t, tc.wantCents, cents(es), 1e-9)
			}
		})
	}
}

func TestEqualDivision_Degenerate(t *testing.T) {
	es := builder.EqualDivision(builder.EDOConfig{})
	require.Len(t, es, 1)
	assert.True(t, es[0].IsUnison())
}
