// Package builder_test covers Config defaults, options and clamping.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
)

// TestDefaultConfig pins the deterministic defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := builder.DefaultConfig()
	for i, f := range cfg.Factors {
		assert.Equal(t, 3.0, f.Value(), "slot %d", i)
		assert.False(t, f.Active(), "slot %d", i)
	}
	assert.False(t, cfg.EDO.Enabled)
	assert.Equal(t, builder.EDOConfig{Divisions: 12, Step: 1, Wraps: 1}, cfg.EDO)
	assert.Equal(t, builder.MOSConfig{Large: 5, Small: 2, Ratio: 2, Levels: 1}, cfg.MOS)
	assert.Equal(t, builder.TemperConfig{Threshold: 0.5, Strength: 1}, cfg.Tempering)
	assert.Equal(t, cfg, cfg.Clamp(), "defaults are already in range")
}

// TestNewConfig_Clamps verifies options never fail and out-of-range values
// land on the nearest legal value.
func TestNewConfig_Clamps(t *testing.T) {
	cfg := builder.NewConfig(
		builder.WithFactor(0, 99, 20, -1),
		builder.WithFactor(-1, 2, 1, 1), // ignored
		builder.WithFactor(builder.MaxFactors, 2, 1, 1),
		builder.WithEDO(500, 0, 0),
		builder.WithMOS(100, 100, 9, 0),
		builder.WithTempering(-1, 2),
	)

	assert.Equal(t, builder.FactorSpec{Factor: builder.FactorCount - 1, NumeratorSteps: builder.MaxNumeratorSteps}, cfg.Factors[0])
	assert.False(t, cfg.Factors[1].Active())
	assert.Equal(t, builder.EDOConfig{Enabled: true, Divisions: builder.MaxDivisions, Step: 1, Wraps: 1}, cfg.EDO)
	assert.Equal(t, builder.ChristoffelCeiling-1, cfg.MOS.Large)
	assert.Equal(t, 1, cfg.MOS.Small)
	assert.Equal(t, builder.MaxMOSRatio, cfg.MOS.Ratio)
	assert.Equal(t, 1, cfg.MOS.Levels)
	assert.Equal(t, builder.TemperConfig{Enabled: true, Threshold: 0, Strength: 1}, cfg.Tempering)
}

func TestClamp_Idempotent(t *testing.T) {
	cfgs := []builder.Config{
		builder.DefaultConfig(),
		{},
		builder.NewConfig(builder.WithEDO(7, 9, 3), builder.WithMOS(3, 80, 0.2, 9)),
		{MOS: builder.MOSConfig{Ratio: math.NaN(), QuantizeRatio: true}},
	}
	for _, c := range cfgs {
		once := c.Clamp()
		assert.Equal(t, once, once.Clamp())
	}
}

func TestMOSRatioQuantized(t *testing.T) {
	cfg := builder.NewConfig(builder.WithMOSRatioQuantized(true), builder.WithMOS(5, 2, 2.13, 1))
	assert.True(t, cfg.MOS.QuantizeRatio, "WithMOS keeps the quantize flag")
	assert.Equal(t, 2.25, cfg.MOS.Ratio)
}

func TestWithTemperingGrid(t *testing.T) {
	cfg := builder.NewConfig(builder.WithTemperingGrid(19, 1, 1))
	assert.False(t, cfg.EDO.Enabled)
	assert.Equal(t, 19, cfg.EDO.Divisions)
}

func TestFactorLookup(t *testing.T) {
	assert.Equal(t, 3, builder.FactorIndex(7))
	assert.Equal(t, -1, builder.FactorIndex(4))
	assert.Equal(t, 47, builder.FactorIndex(math.Pi))

	assert.Equal(t, 2, builder.FactorByName("5"))
	assert.Equal(t, 44, builder.FactorByName("φ"))
	assert.Equal(t, 44, builder.FactorByName("phi"))
	assert.Equal(t, 48, builder.FactorByName("sqrt3"))
	assert.Equal(t, -1, builder.FactorByName("4"))

	cfg := builder.NewConfig(builder.WithFactorValue(0, 11, 2, 0), builder.WithFactorValue(1, 4, 2, 0))
	assert.Equal(t, 11.0, cfg.Factors[0].Value())
	assert.False(t, cfg.Factors[1].Active(), "unknown value leaves the slot alone")
}
