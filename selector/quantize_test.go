package selector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
	"github.com/almostEric/FrozenWasteland-sub000/selector"
)

func TestQuantize(t *testing.T) {
	active := tet(12)
	oct := selector.Tuning{OctaveScale: 1}
	cases := []struct {
		name         string
		v            float64
		t            selector.Tuning
		slot, period int
	}{
		{"in range", 0.25, oct, 3, 0},
		{"next octave", 1.08, oct, 1, 1},
		{"wraps to next unison", 0.97, oct, 0, 1},
		{"negative", -0.5, oct, 6, -1},
		{"keyed", 0.25, selector.Tuning{OctaveScale: 1, Key: 2}, 1, 0},
		{"mod root", 0.25, selector.Tuning{OctaveScale: 1, ModRoot: 0.25}, 0, 0},
		{"tritave", math.Log2(3) * 1.5, selector.Tuning{OctaveScale: math.Log2(3)}, 6, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, period := selector.Quantize(active, tc.v, tc.t)
			assert.Equal(t, tc.slot, slot)
			assert.Equal(t, tc.period, period)
		})
	}

	slot, period := selector.Quantize(nil, 3, oct)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 0, period)
}

// TestQuantize_WrapsDown: without a unison, an input just above the period
// start is closer to the previous period's top note.
func TestQuantize_WrapsDown(t *testing.T) {
	active := []pitch.Entry{{Cents: 500}, {Cents: 1100}}
	oct := selector.Tuning{OctaveScale: 1}

	slot, period := selector.Quantize(active, 10.0/1200, oct)
	assert.Equal(t, 1, slot)
	assert.Equal(t, -1, period)

	slot, period = selector.Quantize(active, 2+300.0/1200, oct)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 2, period)

	slot, period = selector.Quantize(active, 1+1190.0/1200, oct)
	assert.Equal(t, 1, slot)
	assert.Equal(t, 1, period)
}

func TestCV(t *testing.T) {
	e := pitch.Entry{Cents: 700}
	v := selector.CV(e, 1, -1, selector.Tuning{OctaveScale: 1, Key: 2, OctaveShift: 1})
	assert.InDelta(t, 700.0/1200+2.0/12+1, v, 1e-12)

	ocs := math.Log2(3)
	v = selector.CV(e, 2, 1, selector.Tuning{OctaveScale: ocs, ModRoot: 0.1})
	assert.InDelta(t, 700.0/1200*ocs+0.1+3*ocs, v, 1e-12)

	assert.InDelta(t, 0.05, selector.JitterVolts(60, selector.Tuning{OctaveScale: 1}), 1e-12)
}

// TestQuantize_CVRoundTrip quantizes the CV of every entry back to itself.
func TestQuantize_CVRoundTrip(t *testing.T) {
	active := tet(19)
	for _, tu := range []selector.Tuning{
		{OctaveScale: 1},
		{OctaveScale: math.Log2(2.5), Key: 5, ModRoot: 0.3},
	} {
		for period := -2; period <= 2; period++ {
			for i, e := range active {
				slot, p := selector.Quantize(active, selector.CV(e, period, 0, tu), tu)
				assert.Equal(t, i, slot)
				assert.Equal(t, period, p)
			}
		}
	}
}
