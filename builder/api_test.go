package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

func TestBuildWith_NilGenerator(t *testing.T) {
	_, err := builder.BuildWith(builder.DefaultConfig(), builder.LatticeGenerator, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrNilGenerator))
}

// TestAssemble_FirstWins keeps the entry of the earlier generator when two
// generators produce the same ratio.
func TestAssemble_FirstWins(t *testing.T) {
	cfg := builder.NewConfig(builder.WithEDO(12, 1, 1), builder.WithMOS(5, 2, 2, 1))

	edoFirst, err := builder.BuildWith(cfg, builder.EDOGenerator, builder.MOSGenerator)
	require.NoError(t, err)
	mosFirst, err := builder.BuildWith(cfg, builder.MOSGenerator, builder.EDOGenerator)
	require.NoError(t, err)

	require.Len(t, edoFirst, 12)
	require.Len(t, mosFirst, 12)
	// 700¢ is in both sets.
	assert.Equal(t, pitch.EqualDivision, edoFirst[7].Kind)
	assert.Equal(t, pitch.MOS, mosFirst[7].Kind)
	// 100¢ only comes from the EDO.
	assert.Equal(t, pitch.EqualDivision, mosFirst[1].Kind)
}

// TestBuild_Parts checks which generators contribute under the Enabled flags.
func TestBuild_Parts(t *testing.T) {
	res := builder.Build(builder.NewConfig(builder.WithFactor(0, 1, 1, 0), builder.WithTemperingGrid(12, 1, 1)))
	assert.Len(t, res.Grid, 12, "the grid is built even when EDO is disabled")
	assert.Len(t, res.Assembled, 2)

	res = builder.Build(builder.NewConfig(
		builder.WithFactor(0, 1, 1, 0),
		builder.WithEDO(12, 1, 1),
		builder.WithMOS(5, 2, 2, 1),
	))
	assert.Len(t, res.Assembled, 13, "12-TET plus the just fifth")
}
