// Package probablynote is a scale-construction and note-selection engine:
// build a microtonal scale, squeeze it down to a playable size, lay it over
// a familiar 12-tone scale and then, on every trigger, pick one of its notes
// at random, shaped by how far, how dissonant and how repetitive that pick
// would be.
//
// 🎼 What is in the box?
//
//	A pure-Go, deterministic pipeline:
//		• Ratio lattice: just-intonation pitches from up to 10 prime/irrational factors
//		• Equal divisions (EDO) and Moment-of-Symmetry (MOS) scales
//		• Tempering: pull rational pitches toward an EDO grid
//		• Reduction: None, Euclidean, Golomb ruler, Perfect balance
//		• Mapping onto 42 reference scales with per-degree weights
//		• Probability field + weighted draw with non-repeat and jitter
//		• Scala (.scl) export
//
// ✨ Why this shape?
//
//   - Every stage is a pure function of its configuration, so results are
//     reproducible and cheap to memoize
//   - Parameters clamp instead of failing; only file I/O returns errors
//   - Randomness is seeded and split per channel
//
// Packages, leaves first:
//
//	pitch/    PitchEntry, ratio/cents/dissonance math, ratio-unique Set
//	builder/  factor table, lattice, EDO, Christoffel/MOS, assembly, tempering
//	subset/   the four reduction algorithms and their fixed tables
//	mapping/  reference scales and the four mapping modes
//	selector/ probability field, draw, jitter, per-channel state
//	engine/   memoized scale build, gates, 16-channel per-sample loop
//	scala/    .scl writer
//	config/   YAML session files
//
// Quick ASCII example (Euclidean, 5 of 12):
//
//	x . x . x . . x . x . .
//
// The cmd/probablynote command wraps all of it:
//
//	go run ./cmd/probablynote scale --config session.yaml
package probablynote
