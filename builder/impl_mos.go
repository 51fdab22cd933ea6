// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_mos.go - Moment-of-Symmetry pitches.
//
// Contract:
//   • For levels > 1, (L, S, ratio) advance by one continued-fraction step
//     between levels: ratio < 2 swaps L and S and sets ratio = 1/(ratio-1),
//     otherwise ratio -= 1.
//   • The final (L, S) picks the Christoffel word; an unknown word yields no
//     pitches at all.
//   • Walking the word, 's' advances the position by 1 and 'l' by ratio; each
//     position before a step becomes 2^(position/total).

package builder

import (
	"math"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// ratioFloor guards 1/(ratio-1) against a zero denominator.
const ratioFloor = 1e-9

// MOSResult carries the generated pitches plus the word that placed them.
type MOSResult struct {
	Entries []pitch.Entry
	Word    string
	Large   int
	Small   int
	Ratio   float64
}

// MomentOfSymmetry builds the MOS pitches described by mos.
func MomentOfSymmetry(mos MOSConfig) MOSResult {
	large, small, ratio := mos.Large, mos.Small, mos.Ratio
	for level := 1; level < mos.Levels; level++ {
		large, small, ratio = nextLevel(large, small, ratio)
	}
	res := MOSResult{Large: large, Small: small, Ratio: ratio}

	word, ok := ChristoffelWord(large, small)
	if !ok {
		return res
	}
	res.Word = word

	positions := make([]float64, 0, len(word))
	pos := 0.0
	for i := 0; i < len(word); i++ {
		positions = append(positions, pos)
		if word[i] == symLarge {
			pos += ratio
		} else {
			pos++
		}
	}
	total := pos

	set := pitch.NewSet()
	for _, p := range positions {
		if e, ok := pitch.NewIrrationalEntry(pitch.MOS, math.Pow(2, p/total)); ok {
			set.Add(e)
		}
	}
	res.Entries = set.Entries()

	return res
}

// nextLevel applies one continued-fraction step to (large, small, ratio).
func nextLevel(large, small int, ratio float64) (int, int, float64) {
	if ratio < 2 {
		if ratio-1 < ratioFloor {
			// Equal steps have no finer level.
			return large, small, ratio
		}

		return small, large, 1 / (ratio - 1)
	}

	return large, small, ratio - 1
}
