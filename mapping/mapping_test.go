package mapping_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almostEric/FrozenWasteland-sub000/mapping"
	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

const major = 1

// edo returns n equal divisions of the octave, all in use.
func edo(n int) []pitch.Entry {
	out := make([]pitch.Entry, n)
	for i := range out {
		c := float64(i) * pitch.CentsPerOctave / float64(n)
		out[i] = pitch.Entry{Kind: pitch.EqualDivision, Ratio: pitch.RatioFromCents(c), Cents: c, Weighting: 0.25, InUse: true}
	}

	return out
}

func TestMap_NoMapping(t *testing.T) {
	in := edo(7)
	in[3].InUse = false
	out := mapping.Map(in, mapping.Config{Mode: mapping.NoMapping, Scale: major, UseWeighting: true}, 1)
	require.Len(t, out, 7)
	for i, e := range out {
		assert.True(t, e.InUse, "entry %d", i)
		assert.Equal(t, pitch.BaselineWeight, e.Weighting, "entry %d", i)
	}
	assert.False(t, in[3].InUse, "input is not modified")
}

func TestMap_Spread(t *testing.T) {
	out := mapping.Map(edo(24), mapping.Config{Mode: mapping.Spread, Scale: major}, 1)
	assert.Equal(t, []int{0, 4, 8, 10, 14, 18, 22}, mapping.Active(out))
	for _, e := range out {
		assert.Equal(t, pitch.BaselineWeight, e.Weighting, "weighting disabled")
	}
}

func TestMap_Repeat(t *testing.T) {
	out := mapping.Map(edo(14), mapping.Config{Mode: mapping.Repeat, Scale: major}, 1)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11, 12}, mapping.Active(out))
}

func TestMap_NearestNeighbor(t *testing.T) {
	out := mapping.Map(edo(12), mapping.Config{Mode: mapping.NearestNeighbor, Scale: major, UseWeighting: true}, 1)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, mapping.Active(out))
	assert.Equal(t, 1.0, out[0].Weighting)
	assert.Equal(t, 0.9, out[7].Weighting)
	assert.Equal(t, 0.8, out[4].Weighting)
	assert.Equal(t, pitch.BaselineWeight, out[1].Weighting, "unused entries keep the baseline")

	// 24-EDO: every semitone target lands on an even index.
	out = mapping.Map(edo(24), mapping.Config{Mode: mapping.NearestNeighbor, Scale: major}, 1)
	assert.Equal(t, []int{0, 4, 8, 10, 14, 18, 22}, mapping.Active(out))
}

// TestMap_NearestNeighbor_Stretched scales the degree targets by the
// octave size.
func TestMap_NearestNeighbor_Stretched(t *testing.T) {
	ocs := math.Log2(3)
	// Targets for degrees 0 and 7: 0¢ and 700·log2(3) ≈ 1109.5¢.
	out := mapping.Map(edo(12), mapping.Config{Mode: mapping.NearestNeighbor, Scale: 23}, ocs) // minor pentatonic
	active := mapping.Active(out)
	assert.Contains(t, active, 0)
	assert.Contains(t, active, 11)
}

// TestMap_SmallScale collapses several degrees onto few entries.
func TestMap_SmallScale(t *testing.T) {
	out := mapping.Map(edo(2), mapping.Config{Mode: mapping.Spread, Scale: 0}, 1)
	assert.Equal(t, []int{0, 1}, mapping.Active(out))

	out = mapping.Map(edo(1), mapping.Config{Mode: mapping.NearestNeighbor, Scale: major}, 1)
	assert.Equal(t, []int{0}, mapping.Active(out))

	assert.Empty(t, mapping.Map(nil, mapping.Config{Mode: mapping.Repeat}, 1))
}

func TestConfigClamp(t *testing.T) {
	c := mapping.Config{Mode: 9, Scale: 99}.Clamp()
	assert.Equal(t, mapping.NoMapping, c.Mode)
	assert.Equal(t, mapping.ScaleCount-1, c.Scale)
	assert.Equal(t, 0, mapping.Config{Scale: -3}.Clamp().Scale)
}

func TestReferenceScales(t *testing.T) {
	names := map[string]bool{}
	for i, s := range mapping.ReferenceScales {
		assert.NotEmpty(t, s.Name, "scale %d", i)
		assert.False(t, names[s.Name], "duplicate %q", s.Name)
		names[s.Name] = true
		assert.True(t, s.Active[0], "%s has a root", s.Name)
		assert.Equal(t, 1.0, s.Weights[0], s.Name)
		for d := 0; d < mapping.Degrees; d++ {
			if !s.Active[d] {
				assert.Equal(t, 0.0, s.Weights[d], "%s degree %d", s.Name, d)
			} else {
				assert.Greater(t, s.Weights[d], 0.0, "%s degree %d", s.Name, d)
				assert.LessOrEqual(t, s.Weights[d], 1.0, "%s degree %d", s.Name, d)
			}
		}
	}
	assert.Equal(t, 7, mapping.ReferenceScales[major].Len())
	assert.Equal(t, 12, mapping.ReferenceScales[0].Len())
}

func TestScaleByName(t *testing.T) {
	cases := map[string]int{
		"Major":            1,
		"  major ":         1,
		"natural minor":    6,
		"Harmonic-Minor":   8,
		"dorain":           2,
		"minor pentatonic": 23,
	}
	for name, want := range cases {
		got, err := mapping.ScaleByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := mapping.ScaleByName("xyzzy plugh")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapping.ErrUnknownScale))
}

func TestModeText(t *testing.T) {
	var m mapping.Mode
	require.NoError(t, m.UnmarshalText([]byte("nearest")))
	assert.Equal(t, mapping.NearestNeighbor, m)
	require.NoError(t, m.UnmarshalText([]byte("2")))
	assert.Equal(t, mapping.Repeat, m)
	b, err := mapping.Spread.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "spread", string(b))
}
