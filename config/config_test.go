package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/config"
	"github.com/almostEric/FrozenWasteland-sub000/engine"
	"github.com/almostEric/FrozenWasteland-sub000/mapping"
	"github.com/almostEric/FrozenWasteland-sub000/subset"
)

const session = `
seed: 7
sample_rate: 48000
factors:
  - {factor: "3", numerator_steps: 4, denominator_steps: 1}
  - {factor: phi, numerator_steps: 1}
scale:
  scale_size: 7
  reduction: euclidean
  octave_size: 3
  mapping: {mode: nearest, use_weighting: true}
  pitch:
    edo: {enabled: true, divisions: 19}
selection:
  field: {spread: 3, focus: 0.25}
  draw: {non_repeat: 1}
key: 2
scale_name: dorain
`

func TestParse(t *testing.T) {
	f, err := config.Parse([]byte(session))
	require.NoError(t, err)

	assert.Equal(t, int64(7), f.Seed)
	assert.Equal(t, 48000.0, f.SampleRate)

	p := f.Params
	assert.Equal(t, 7, p.Scale.ScaleSize)
	assert.Equal(t, subset.Euclidean, p.Scale.Reduction)
	assert.Equal(t, 3.0, p.Scale.OctaveSize)
	assert.Equal(t, mapping.Config{Mode: mapping.NearestNeighbor, Scale: 2, UseWeighting: true}, p.Scale.Mapping)
	assert.Equal(t, 2, p.Key)
	assert.Equal(t, 3.0, p.Selection.Field.Spread)
	assert.Equal(t, 0.25, p.Selection.Field.Focus)
	assert.Equal(t, 1.0, p.Selection.Draw.NonRepeat)

	pc := p.Scale.Pitch
	assert.Equal(t, builder.FactorSpec{Factor: 1, NumeratorSteps: 4, DenominatorSteps: 1}, pc.Factors[0])
	assert.Equal(t, builder.FactorSpec{Factor: 44, NumeratorSteps: 1}, pc.Factors[1])
	assert.False(t, pc.Factors[2].Active())
	assert.True(t, pc.EDO.Enabled)
	assert.Equal(t, 19, pc.EDO.Divisions)
	assert.Equal(t, 1, pc.EDO.Step, "absent keys keep defaults")
	assert.Equal(t, 1, pc.EDO.Wraps)
}

// TestParse_Empty returns the defaults.
func TestParse_Empty(t *testing.T) {
	for _, doc := range []string{"", "# nothing\n"} {
		f, err := config.Parse([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, engine.DefaultParams().Clamp(), f.Params)
		assert.Zero(t, f.Seed)
	}
}

// TestParse_KeepsDefaultFactors when no factors list is given.
func TestParse_KeepsDefaultFactors(t *testing.T) {
	f, err := config.Parse([]byte("scale: {scale_size: 5}\n"))
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultParams().Scale.Pitch, f.Params.Scale.Pitch)
	assert.Equal(t, 5, f.Params.Scale.ScaleSize)
}

func TestParse_Enums(t *testing.T) {
	f, err := config.Parse([]byte("scale: {reduction: 3, mapping: {mode: Spread}}\n"))
	require.NoError(t, err)
	assert.Equal(t, subset.PerfectBalance, f.Params.Scale.Reduction)
	assert.Equal(t, mapping.Spread, f.Params.Scale.Mapping.Mode)
}

func TestParse_Clamps(t *testing.T) {
	f, err := config.Parse([]byte("key: 40\nscale: {scale_size: 1000, octave_size: 0.5}\n"))
	require.NoError(t, err)
	assert.Equal(t, 11, f.Params.Key)
	assert.Equal(t, engine.MaxScaleSize, f.Params.Scale.ScaleSize)
	assert.Equal(t, engine.MinOctaveSize, f.Params.Scale.OctaveSize)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "scael: {}\n",
		"bad yaml":       "scale: [\n",
		"unknown factor": "factors: [{factor: \"4\"}]\n",
		"too many":       "factors: [{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"},{factor: \"3\"}]\n",
		"type mismatch":  "key: [1]\n",
		"far scale name": "scale_name: xylophone music\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}

	_, err := config.Parse([]byte("scale_name: xylophone music\n"))
	assert.ErrorIs(t, err, mapping.ErrUnknownScale)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(session), 0o600))

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Scale.ScaleSize)

	f, err := config.LoadFile(path)
	require.NoError(t, err)
	e := engine.New(f.Options()...)
	assert.Equal(t, 48000.0, e.SampleRate())
	assert.Equal(t, *p, e.Params())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("nope: 1\n"), 0o600))
	_, err = config.LoadFile(bad)
	require.ErrorIs(t, err, config.ErrConfig)
	assert.Contains(t, err.Error(), bad)
}
