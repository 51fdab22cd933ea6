package engine

import (
	"math"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/mapping"
	"github.com/almostEric/FrozenWasteland-sub000/selector"
	"github.com/almostEric/FrozenWasteland-sub000/subset"
)

const (
	// MaxChannels is the polyphony limit.
	MaxChannels = 16
	// MinScaleSize and MaxScaleSize bound the reduction target.
	MinScaleSize = 1
	MaxScaleSize = 115
	// MinOctaveSize and MaxOctaveSize bound the period ratio.
	MinOctaveSize = 2.0
	MaxOctaveSize = 5.0
	// OctaveQuantum is the grid used when QuantizeOctave is set.
	OctaveQuantum = 0.25
	// MinOctaveShift and MaxOctaveShift bound the whole-volt transposition.
	MinOctaveShift = -4
	MaxOctaveShift = 4
)

// ScaleConfig is every knob that changes the published scale. It is
// comparable and is the memoization key of BuildScale.
type ScaleConfig struct {
	Pitch          builder.Config   `yaml:"pitch" json:"pitch"`
	ScaleSize      int              `yaml:"scale_size" json:"scale_size"`
	Reduction      subset.Algorithm `yaml:"reduction" json:"reduction"`
	OctaveSize     float64          `yaml:"octave_size" json:"octave_size"`
	QuantizeOctave bool             `yaml:"quantize_octave" json:"quantize_octave"`
	Mapping        mapping.Config   `yaml:"mapping" json:"mapping"`
}

// Clamp moves every field into range.
func (c ScaleConfig) Clamp() ScaleConfig {
	c.Pitch = c.Pitch.Clamp()
	c.ScaleSize = max(MinScaleSize, min(c.ScaleSize, MaxScaleSize))
	c.Reduction = c.Reduction.Clamp()
	if math.IsNaN(c.OctaveSize) || c.OctaveSize < MinOctaveSize {
		c.OctaveSize = MinOctaveSize
	}
	if c.OctaveSize > MaxOctaveSize {
		c.OctaveSize = MaxOctaveSize
	}
	if c.QuantizeOctave {
		c.OctaveSize = math.Round(c.OctaveSize/OctaveQuantum) * OctaveQuantum
	}
	c.Mapping = c.Mapping.Clamp()

	return c
}

// OctaveScale returns log2(OctaveSize): volts per scale period.
func (c ScaleConfig) OctaveScale() float64 {
	return math.Log2(c.OctaveSize)
}

// Params is the complete engine configuration.
type Params struct {
	Scale     ScaleConfig     `yaml:"scale" json:"scale"`
	Selection selector.Params `yaml:"selection" json:"selection"`
	// Key transposes by semitones (0..11).
	Key int `yaml:"key" json:"key"`
	// OctaveShift transposes by whole volts.
	OctaveShift int `yaml:"octave_shift" json:"octave_shift"`
	// TriggerDelay passes triggers through a TriggerDelaySamples delay line.
	TriggerDelay bool `yaml:"trigger_delay" json:"trigger_delay"`
}

// DefaultParams returns a 12-note just scale (3- and 5-limit) with no
// reduction, no mapping and a one-note spread.
func DefaultParams() Params {
	return Params{
		Scale: ScaleConfig{
			Pitch: builder.NewConfig(
				builder.WithFactor(0, 1, 2, 1), // 3
				builder.WithFactor(1, 2, 1, 1), // 5
			),
			ScaleSize:  12,
			Reduction:  subset.None,
			OctaveSize: MinOctaveSize,
			Mapping:    mapping.Config{Mode: mapping.NoMapping, Scale: 1},
		},
		Selection: selector.Params{
			Field: selector.FieldParams{Spread: 1, Focus: 0.5},
		},
	}
}

// Clamp moves every field into range.
func (p Params) Clamp() Params {
	p.Scale = p.Scale.Clamp()
	p.Selection = p.Selection.Clamp()
	p.Key = max(0, min(p.Key, 11))
	p.OctaveShift = max(MinOctaveShift, min(p.OctaveShift, MaxOctaveShift))

	return p
}
