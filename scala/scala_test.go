package scala_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/engine"
	"github.com/almostEric/FrozenWasteland-sub000/mapping"
	"github.com/almostEric/FrozenWasteland-sub000/scala"
	"github.com/almostEric/FrozenWasteland-sub000/subset"
)

func fifthScale() *engine.ScaleState {
	return engine.BuildScale(engine.ScaleConfig{
		Pitch:      builder.NewConfig(builder.WithFactor(0, 1, 1, 0)),
		ScaleSize:  2,
		OctaveSize: 2,
	})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scala.Write(&buf, fifthScale(), "fifth.scl"))

	want := `! fifth.scl
!
! Factors: 3^1/0
! Reduction: none to 2 notes
! Octave size: 2
!
fifth
 3
!
 0.00000
 701.95500
 1200.00000
`
	assert.Equal(t, want, buf.String())
}

func TestWrite_DefaultName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scala.Write(&buf, fifthScale(), ""))
	assert.Contains(t, buf.String(), "! probablynote.scl\n")
	assert.Contains(t, buf.String(), "\nprobablynote\n")
}

func TestWrite_Nil(t *testing.T) {
	err := scala.Write(&bytes.Buffer{}, nil, "x.scl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scala.ErrExport))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWrite_WriterError(t *testing.T) {
	err := scala.Write(failWriter{}, fifthScale(), "x.scl")
	require.ErrorIs(t, err, scala.ErrExport)
	assert.ErrorIs(t, err, os.ErrClosed)
}

// TestLines scales every line by log2 of the octave size.
func TestLines(t *testing.T) {
	s := engine.BuildScale(engine.ScaleConfig{
		Pitch:      builder.NewConfig(builder.WithEDO(4, 1, 1)),
		ScaleSize:  4,
		OctaveSize: 4,
		Mapping:    mapping.Config{Mode: mapping.NoMapping},
	})
	assert.InDeltaSlice(t, []float64{0, 600, 1200, 1800, 2400}, scala.Lines(s), 1e-9)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tet.scl")
	s := engine.BuildScale(engine.ScaleConfig{
		Pitch:      builder.NewConfig(builder.WithEDO(12, 1, 1)),
		ScaleSize:  7,
		Reduction:  subset.Euclidean,
		OctaveSize: 2,
	})
	require.NoError(t, scala.WriteFile(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\ntet\n 8\n!\n")
	assert.Contains(t, string(data), "! Reduction: euclidean to 7 notes\n")

	err = scala.WriteFile(filepath.Join(dir, "missing", "x.scl"), s)
	require.ErrorIs(t, err, scala.ErrExport)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestComments(t *testing.T) {
	cfg := engine.ScaleConfig{
		Pitch: builder.NewConfig(
			builder.WithFactor(0, 2, 1, 1),
			builder.WithEDO(19, 1, 1),
			builder.WithMOS(5, 2, 2, 1),
			builder.WithTempering(0.5, 1),
		),
		ScaleSize:  12,
		Reduction:  subset.GolombRuler,
		OctaveSize: 2.5,
		Mapping:    mapping.Config{Mode: mapping.Repeat, Scale: 1},
	}
	assert.Equal(t, []string{
		"Factors: 5^1/1",
		"EDO: 19 divisions, step 1, 1 wraps",
		"MOS: 5L 2s, ratio 2, 1 levels",
		"Tempering: threshold 0.5, strength 1",
		"Reduction: golomb to 12 notes",
		"Octave size: 2.5",
		"Mapping: repeat onto Major",
	}, scala.Comments(cfg))

	assert.Equal(t, "Factors: none", scala.Comments(engine.ScaleConfig{Pitch: builder.DefaultConfig()})[0])
}
