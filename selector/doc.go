// Package selector chooses one note of the in-use scale per trigger.
//
// The pipeline per channel is:
//
//  1. Quantize: the input pitch picks the nearest in-use entry (currentNote)
//     and the scale period it sits in.
//  2. BuildField: currentNote gets probability 1; notes up to upperSpread
//     above and lowerSpread below get a focus-shaped, dissonance-biased,
//     mapping-weighted probability.
//  3. Draw: a cumulative-threshold draw over the (optionally non-repeat
//     vetoed, exponentially scaled) field using r ∈ [0,1).
//  4. CV: the chosen entry becomes a 1V/octave voltage, plus jitter.
//
// Randomness is explicit: callers pass r (internal RNG or an external
// random CV) and a *rand.Rand for the veto and jitter draws. NewRand and
// DeriveRand give reproducible per-channel streams.
package selector
