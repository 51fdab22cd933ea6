// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_edo.go - equal divisions of the octave.
//
// Contract:
//   • An accumulator starts at 0 and advances by Step (mod Divisions) for
//     min(Divisions, Wraps·Divisions/Step) iterations.
//   • Each visited value v becomes the ratio 2^(v/Divisions).
//   • Output is deduped by ratio and sorted ascending by cents.

package builder

import (
	"math"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// EqualDivision returns the EDO pitches described by edo, sorted by cents.
// The unison is always included.
func EqualDivision(edo EDOConfig) []pitch.Entry {
	d, s, w := edo.Divisions, edo.Step, edo.Wraps
	if d < MinDivisions || s < 1 || w < 1 {
		// Degenerate grid: only the unison survives.
		return []pitch.Entry{pitch.Unison()}
	}

	iterations := min(d, w*d/s)
	set := pitch.NewSet()
	acc := 0
	for i := 0; i < iterations; i++ {
		ratio := math.Pow(2, float64(acc)/float64(d))
		if e, ok := pitch.NewIrrationalEntry(pitch.EqualDivision, ratio); ok {
			set.Add(e)
		}
		acc = (acc + s) % d
	}

	return set.Entries()
}
