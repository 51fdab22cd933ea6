// Package pitch defines the pitch entries produced by the scale builders and
// the small amount of number theory they share.
//
// What lives here:
//
//   - Entry:     one scale member (kind, numerator/denominator, ratio, cents,
//     dissonance, weighting, in-use flag).
//   - Set:       an ordered, ratio-unique collection of entries that is always
//     seeded with the unison 1/1 and sorts ascending by cents.
//   - Math:      float-domain GCD/LCM, octave folding into [1,2), cents and the
//     log2(LCM) dissonance metric.
//
// Float GCD:
//
//	The factor table mixes primes with transcendental constants (φ, e, π), so
//	numerators and denominators are float64 values. GCD is computed with the
//	iterative modulo recursion and stops once the remainder drops below
//	GCDEpsilon. For integer inputs this is exact; for irrational inputs the
//	residue is what it is, and the resulting dissonance values are part of the
//	observable behavior.
//
// Determinism:
//
//	Every function in this package is pure. Building the same Set from the same
//	inputs yields a byte-identical entry sequence.
package pitch
