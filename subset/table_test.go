package subset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGolombTable checks the distinct-difference property and ordering.
func TestGolombTable(t *testing.T) {
	require.Len(t, golombTable, 36)
	for i, r := range golombTable {
		require.Len(t, r.Marks, r.Order, "row %d", i)
		assert.Equal(t, r.Marks[len(r.Marks)-1]+1, r.Period, "row %d", i)
		seen := map[int]bool{}
		for a := 0; a < len(r.Marks); a++ {
			for b := a + 1; b < len(r.Marks); b++ {
				d := r.Marks[b] - r.Marks[a]
				require.Greater(t, d, 0, "row %d ascending", i)
				require.False(t, seen[d], "row %d repeats difference %d", i, d)
				seen[d] = true
			}
		}
		if i > 0 {
			assert.GreaterOrEqual(t, r.Order, golombTable[i-1].Order, "row %d", i)
		}
	}
	assert.Equal(t, 27, golombTable[len(golombTable)-1].Order)
	assert.Equal(t, 554, golombTable[len(golombTable)-1].Period)
}

// TestBalanceTable checks that every pattern's unit vectors sum to zero.
func TestBalanceTable(t *testing.T) {
	require.Len(t, balanceTable, 115)
	for i, p := range balanceTable {
		require.Len(t, p.Marks, p.Order, "row %d", i)
		assert.Equal(t, 0, p.Marks[0], "row %d", i)
		var x, y float64
		for _, m := range p.Marks {
			require.Less(t, m, p.Period, "row %d", i)
			th := 2 * math.Pi * float64(m) / float64(p.Period)
			x += math.Cos(th)
			y += math.Sin(th)
		}
		assert.InDelta(t, 0, x, 1e-9, "row %d", i)
		assert.InDelta(t, 0, y, 1e-9, "row %d", i)
		if i > 0 {
			prev := balanceTable[i-1]
			assert.True(t, prev.Order < p.Order || (prev.Order == p.Order && prev.Period < p.Period), "row %d order", i)
		}
	}
	assert.Equal(t, 2, balanceTable[0].Order)
	assert.Equal(t, 73, balanceTable[len(balanceTable)-1].Order)
}
