// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - Config and deterministic defaults.
//
// Design:
//   • Config is the single source of truth for every pitch-affecting knob.
//   • Config is comparable (arrays, no slices/maps): callers memoize builds by
//     plain value equality.
//   • NewConfig applies options in-order (later overrides earlier) and clamps.
//
// Deterministic defaults:
//   • factors   = ten slots of factor 3, no steps (lattice is just 1/1)
//   • edo       = disabled, 12 divisions, step 1, 1 wrap
//   • mos       = disabled, 5L 2s, ratio 2, 1 level
//   • tempering = disabled, threshold 0.5, strength 1

package builder

// FactorSpec configures one lattice slot.
type FactorSpec struct {
	// Factor indexes FactorValues.
	Factor int `yaml:"factor" json:"factor"`
	// NumeratorSteps is how many powers of the factor expand the numerators.
	NumeratorSteps int `yaml:"numerator_steps" json:"numerator_steps"`
	// DenominatorSteps is how many powers of the factor expand the denominators.
	DenominatorSteps int `yaml:"denominator_steps" json:"denominator_steps"`
}

// Value returns the factor constant selected by f.
func (f FactorSpec) Value() float64 {
	return FactorValues[clampInt(f.Factor, 0, FactorCount-1)]
}

// Active reports whether the slot contributes anything to the lattice.
func (f FactorSpec) Active() bool {
	return f.NumeratorSteps > 0 || f.DenominatorSteps > 0
}

// EDOConfig configures the equal-division generator.
type EDOConfig struct {
	// Enabled adds the EDO pitches to the assembled set. The EDO list is built
	// regardless, because the Temperer needs it.
	Enabled   bool `yaml:"enabled" json:"enabled"`
	Divisions int  `yaml:"divisions" json:"divisions"`
	Step      int  `yaml:"step" json:"step"`
	Wraps     int  `yaml:"wraps" json:"wraps"`
}

// MOSConfig configures the Moment-of-Symmetry generator.
type MOSConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	// Large and Small are the counts of large and small steps.
	Large int `yaml:"large" json:"large"`
	Small int `yaml:"small" json:"small"`
	// Ratio is the size of a large step in units of the small step.
	Ratio float64 `yaml:"ratio" json:"ratio"`
	// QuantizeRatio snaps Ratio to MOSRatioQuantum.
	QuantizeRatio bool `yaml:"quantize_ratio" json:"quantize_ratio"`
	Levels        int  `yaml:"levels" json:"levels"`
}

// TemperConfig configures the Temperer.
type TemperConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	// Threshold is the capture window in units of half an EDO step, 0..1.
	Threshold float64 `yaml:"threshold" json:"threshold"`
	// Strength interpolates in log space from the rational (0) to the EDO pitch (1).
	Strength float64 `yaml:"strength" json:"strength"`
}

// Config aggregates every knob that changes the pitch set.
type Config struct {
	Factors   [MaxFactors]FactorSpec `yaml:"-" json:"factors"` // YAML files list factors by name, see package config
	EDO       EDOConfig              `yaml:"edo" json:"edo"`
	MOS       MOSConfig              `yaml:"mos" json:"mos"`
	Tempering TemperConfig           `yaml:"tempering" json:"tempering"`
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultFactor          = 1 // index of 3 in FactorValues
	defaultDivisions       = 12
	defaultStep            = 1
	defaultWraps           = 1
	defaultMOSLarge        = 5
	defaultMOSSmall        = 2
	defaultMOSRatio        = 2.0
	defaultMOSLevels       = 1
	defaultTemperThreshold = 0.5
	defaultTemperStrength  = 1.0
)

// DefaultConfig returns the deterministic default configuration.
func DefaultConfig() Config {
	var cfg Config
	for i := range cfg.Factors {
		cfg.Factors[i] = FactorSpec{Factor: defaultFactor}
	}
	cfg.EDO = EDOConfig{Divisions: defaultDivisions, Step: defaultStep, Wraps: defaultWraps}
	cfg.MOS = MOSConfig{Large: defaultMOSLarge, Small: defaultMOSSmall, Ratio: defaultMOSRatio, Levels: defaultMOSLevels}
	cfg.Tempering = TemperConfig{Threshold: defaultTemperThreshold, Strength: defaultTemperStrength}

	return cfg
}

// NewConfig starts from DefaultConfig, applies opts in order and clamps.
// Complexity: O(len(opts)).
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg.Clamp()
}

// Clamp returns a copy of c with every field moved into its legal range.
// Clamping is idempotent: c.Clamp().Clamp() == c.Clamp().
func (c Config) Clamp() Config {
	for i := range c.Factors {
		f := &c.Factors[i]
		f.Factor = clampInt(f.Factor, 0, FactorCount-1)
		f.NumeratorSteps = clampInt(f.NumeratorSteps, 0, MaxNumeratorSteps)
		f.DenominatorSteps = clampInt(f.DenominatorSteps, 0, MaxDenominatorSteps)
	}

	c.EDO.Divisions = clampInt(c.EDO.Divisions, MinDivisions, MaxDivisions)
	c.EDO.Step = clampInt(c.EDO.Step, 1, c.EDO.Divisions)
	c.EDO.Wraps = clampInt(c.EDO.Wraps, 1, MaxWraps)

	c.MOS.Large = clampInt(c.MOS.Large, 1, ChristoffelCeiling-1)
	c.MOS.Small = clampInt(c.MOS.Small, 1, ChristoffelCeiling-c.MOS.Large)
	c.MOS.Ratio = clampFloat(c.MOS.Ratio, MinMOSRatio, MaxMOSRatio)
	if c.MOS.QuantizeRatio {
		c.MOS.Ratio = quantize(c.MOS.Ratio, MOSRatioQuantum)
	}
	c.MOS.Levels = clampInt(c.MOS.Levels, 1, MaxMOSLevels)

	c.Tempering.Threshold = clampFloat(c.Tempering.Threshold, 0, 1)
	c.Tempering.Strength = clampFloat(c.Tempering.Strength, 0, 1)

	return c
}
