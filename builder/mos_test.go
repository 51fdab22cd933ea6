package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
)

func TestChristoffelWord(t *testing.T) {
	cases := []struct {
		large, small int
		want         string
	}{
		{1, 1, "ls"},
		{2, 1, "lls"},
		{1, 2, "lss"},
		{5, 2, "lllslls"},
	}
	for _, tc := range cases {
		w, ok := builder.ChristoffelWord(tc.large, tc.small)
		require.True(t, ok, "%dL%ds", tc.large, tc.small)
		assert.Equal(t, tc.want, w)
	}
}

// TestChristoffelWord_Counts checks length and letter counts across coprime pairs.
func TestChristoffelWord_Counts(t *testing.T) {
	for _, p := range [][2]int{{3, 2}, {2, 5}, {7, 5}, {5, 7}, {13, 8}, {11, 3}} {
		w, ok := builder.ChristoffelWord(p[0], p[1])
		require.True(t, ok, "%v", p)
		assert.Len(t, w, p[0]+p[1])
		assert.Equal(t, p[1], strings.Count(w, "s"), "%v", p)
	}
}

func TestChristoffelWord_Failures(t *testing.T) {
	for _, p := range [][2]int{{2, 4}, {3, 3}, {0, 2}, {2, 0}, {70, 5}} {
		_, ok := builder.ChristoffelWord(p[0], p[1])
		assert.False(t, ok, "%v", p)
	}
}

// TestMomentOfSymmetry_Diatonic: 5L2s with ratio 2 is the Lydian mode of 12-TET.
func TestMomentOfSymmetry_Diatonic(t *testing.T) {
	res := builder.MomentOfSymmetry(builder.MOSConfig{Enabled: true, Large: 5, Small: 2, Ratio: 2, Levels: 1})
	assert.Equal(t, "lllslls", res.Word)
	assert.InDeltaSlice(t, []float64{0, 200, 400, 600, 700, 900, 1100}, cents(res.Entries), 1e-9)
}

// TestMomentOfSymmetry_Levels follows the continued-fraction update.
func TestMomentOfSymmetry_Levels(t *testing.T) {
	// ratio 2 → ratio 1: seven equal steps.
	res := builder.MomentOfSymmetry(builder.MOSConfig{Large: 5, Small: 2, Ratio: 2, Levels: 2})
	assert.Equal(t, 1.0, res.Ratio)
	require.Len(t, res.Entries, 7)
	for k, e := range res.Entries {
		assert.InDelta(t, float64(k)*1200/7, e.Cents, 1e-9)
	}

	// ratio 1.5 < 2 swaps the step counts and inverts.
	res = builder.MomentOfSymmetry(builder.MOSConfig{Large: 5, Small: 2, Ratio: 1.5, Levels: 2})
	assert.Equal(t, 2, res.Large)
	assert.Equal(t, 5, res.Small)
	assert.InDelta(t, 2.0, res.Ratio, 1e-12)
	assert.Len(t, res.Entries, 7)

	// ratio 1 never divides by zero.
	res = builder.MomentOfSymmetry(builder.MOSConfig{Large: 3, Small: 2, Ratio: 1, Levels: 4})
	assert.Equal(t, 1.0, res.Ratio)
	assert.Len(t, res.Entries, 5)
}

func TestMomentOfSymmetry_NoWord(t *testing.T) {
	res := builder.MomentOfSymmetry(builder.MOSConfig{Large: 4, Small: 2, Ratio: 2, Levels: 1})
	assert.Empty(t, res.Word)
	assert.Empty(t, res.Entries)

	// Through Build the scale still has its unison.
	out := builder.Build(builder.NewConfig(builder.WithMOS(4, 2, 2, 1)))
	require.Len(t, out.Assembled, 1)
	assert.True(t, out.Assembled[0].IsUnison())
}
