// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for Config.
//
// Contract:
//   • Options are functional (type Option func(*Config)).
//   • Options never reject values; NewConfig clamps after applying them.
//   • Options touching one factor slot ignore out-of-range slot indexes.

package builder

// Option customizes a Config before it is clamped.
type Option func(*Config)

// WithFactor configures lattice slot `slot` to use FactorValues[factor] with
// the given numerator and denominator step counts.
func WithFactor(slot, factor, numSteps, denSteps int) Option {
	return func(c *Config) {
		if slot < 0 || slot >= MaxFactors {
			return
		}
		c.Factors[slot] = FactorSpec{Factor: factor, NumeratorSteps: numSteps, DenominatorSteps: denSteps}
	}
}

// WithFactorValue is WithFactor addressed by constant instead of index.
// Unknown values leave the slot untouched.
func WithFactorValue(slot int, value float64, numSteps, denSteps int) Option {
	return func(c *Config) {
		idx := FactorIndex(value)
		if idx < 0 {
			return
		}
		WithFactor(slot, idx, numSteps, denSteps)(c)
	}
}

// WithEDO enables the equal-division generator.
func WithEDO(divisions, step, wraps int) Option {
	return func(c *Config) {
		c.EDO = EDOConfig{Enabled: true, Divisions: divisions, Step: step, Wraps: wraps}
	}
}

// WithTemperingGrid sets the EDO grid used by the Temperer without adding
// the EDO pitches to the scale.
func WithTemperingGrid(divisions, step, wraps int) Option {
	return func(c *Config) {
		c.EDO = EDOConfig{Enabled: false, Divisions: divisions, Step: step, Wraps: wraps}
	}
}

// WithMOS enables the Moment-of-Symmetry generator.
func WithMOS(large, small int, ratio float64, levels int) Option {
	return func(c *Config) {
		c.MOS = MOSConfig{Enabled: true, Large: large, Small: small, Ratio: ratio, Levels: levels, QuantizeRatio: c.MOS.QuantizeRatio}
	}
}

// WithMOSRatioQuantized snaps the MOS ratio to quarter steps.
func WithMOSRatioQuantized(on bool) Option {
	return func(c *Config) {
		c.MOS.QuantizeRatio = on
	}
}

// WithTempering enables tempering toward the EDO grid.
func WithTempering(threshold, strength float64) Option {
	return func(c *Config) {
		c.Tempering = TemperConfig{Enabled: true, Threshold: threshold, Strength: strength}
	}
}

// FactorIndex returns the FactorValues index of v, or -1.
func FactorIndex(v float64) int {
	for i, f := range FactorValues {
		if f == v {
			return i
		}
	}

	return -1
}

// factorAliases are ASCII spellings accepted by FactorByName.
var factorAliases = map[string]int{
	"phi":   44,
	"sqrt2": 45,
	"e":     46,
	"pi":    47,
	"sqrt3": 48,
}

// FactorByName returns the FactorValues index labelled name (see
// FactorNames, or one of phi, sqrt2, e, pi, sqrt3), or -1.
func FactorByName(name string) int {
	for i, n := range FactorNames {
		if n == name {
			return i
		}
	}
	if i, ok := factorAliases[name]; ok {
		return i
	}

	return -1
}
