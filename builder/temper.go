// SPDX-License-Identifier: MIT
// Package: builder
//
// temper.go - blend rational pitches toward a nearby EDO grid.
//
// Contract:
//   • Only pitch.Ratio entries are tempered.
//   • The capture window is threshold·(1200/divisions)/2 cents around each
//     entry; the nearest EDO pitch inside the window is the target.
//   • A captured entry gets ratio = 2^lerp(log2 r, log2 t, strength) and new
//     cents, but keeps its original numerator, denominator and dissonance.
//   • The result is re-deduped by ratio (first in cents order wins) and sorted.

package builder

import (
	"math"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// Temper returns entries with rational members pulled toward grid.
// grid must be sorted ascending by cents. When tc is disabled, or the grid is
// empty, the input is returned as a fresh copy.
func Temper(entries, grid []pitch.Entry, divisions int, tc TemperConfig) []pitch.Entry {
	if !tc.Enabled || len(grid) == 0 || divisions < MinDivisions {
		out := make([]pitch.Entry, len(entries))
		copy(out, entries)

		return out
	}

	window := tc.Threshold * (pitch.CentsPerOctave / float64(divisions)) / 2
	tempered := make([]pitch.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == pitch.Ratio && !e.IsUnison() {
			if t, ok := captureTarget(grid, e.Cents, window); ok {
				e = blend(e, t, tc.Strength)
			}
		}
		tempered = append(tempered, e)
	}

	// Blending can reorder neighbors or land two entries on the same pitch.
	set := pitch.NewSet()
	for _, e := range sortByCents(tempered) {
		set.Add(e)
	}

	return set.Entries()
}

// captureTarget finds the grid entry nearest to cents, if within window.
// The grid does not wrap: an entry closer to 1200¢ (the next unison) than to
// any grid pitch is never captured, since the octave lies outside [1,2).
func captureTarget(grid []pitch.Entry, cents, window float64) (pitch.Entry, bool) {
	i := pitch.Nearest(grid, cents)
	best := grid[i]
	dist := math.Abs(best.Cents - cents)
	if top := pitch.CentsPerOctave - cents; top < dist {
		return pitch.Entry{}, false
	}
	if dist > window {
		return pitch.Entry{}, false
	}

	return best, true
}

// blend moves e toward t by strength in log2 space.
func blend(e, t pitch.Entry, strength float64) pitch.Entry {
	l := lerp(math.Log2(e.Ratio), math.Log2(t.Ratio), strength)
	e.Ratio = math.Pow(2, l)
	e.Cents = pitch.Cents(e.Ratio)

	return e
}
