// Package builder turns a pitch configuration into the assembled, tempered
// pitch set that the rest of the engine reduces, maps and draws from.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Config:            comparable value holding every pitch-affecting knob.
//     – Option:            a function that mutates Config before use.
//     – Clamp:             clamp-on-write normalization of every field.
//   - Generators (Generator implementations):
//     – RatioLattice:      prime-power numerator × denominator lattice.
//     – EqualDivision:     equal divisions of the octave, walked by a step.
//     – MomentOfSymmetry:  two-step-size scales placed by a Christoffel word.
//   - Post-processing:
//     – Assemble:          merge, dedupe by ratio, sort by cents.
//     – Temper:            pull rational entries toward nearby EDO pitches.
//   - Shared constants:
//     – FactorValues:      the 49 prime/transcendental factor constants.
//     – MaxCombinations:   numerator×denominator ceiling of the lattice.
//
// Guarantees:
//
//   - Idempotent: Build(cfg) returns byte-identical entry slices for equal cfg.
//   - Every entry satisfies 1 ≤ ratio < 2; no two entries share a ratio.
//   - The unison 1/1 is always present at index 0 with zero dissonance.
//   - Bounded work: the lattice never exceeds MaxCombinations pairs and the
//     Christoffel search never exceeds ChristoffelCeiling generations.
//
// Out-of-range configuration is never an error: every field is clamped to
// its legal range, mirroring a panel knob that simply stops at its end stop.
package builder
