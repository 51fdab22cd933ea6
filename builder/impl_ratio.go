// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_ratio.go - prime-power ratio lattice.
//
// Contract:
//   • numerators and denominators both start as {1}.
//   • For each factor slot in index order, each list is expanded by appending
//     every existing member times factor^step for step = 1..steps.
//   • A slot whose expansion would push len(nums)·len(dens) past
//     MaxCombinations is zeroed (both step counts); earlier slots win.
//   • Every numerator × denominator pair except the seed pair is folded into
//     [1,2), deduped by ratio, GCD-reduced and scored.
//
// Complexity:
//   • Time: O(MaxCombinations) pairs, each O(GCD iterations).
//   • Space: O(len(nums) + len(dens) + entries).

package builder

import (
	"math"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// LatticeResult is the output of the ratio lattice.
type LatticeResult struct {
	// Entries holds the unison followed by every unique folded pair, in
	// generation order (not yet sorted).
	Entries []pitch.Entry
	// Effective is the factor configuration actually expanded after the
	// combination cap zeroed any late slots.
	Effective [MaxFactors]FactorSpec
	// Numerators and Denominators are the candidate list lengths.
	Numerators   int
	Denominators int
}

// Combinations returns the number of numerator × denominator pairs visited.
func (r LatticeResult) Combinations() int {
	return r.Numerators * r.Denominators
}

// RatioLattice builds the rational pitches of cfg.Factors.
func RatioLattice(cfg Config) LatticeResult {
	var res LatticeResult

	nums := []float64{1}
	dens := []float64{1}
	for i, f := range cfg.Factors {
		eff := f
		// Check the cap before touching either list.
		nextNums := len(nums) * (f.NumeratorSteps + 1)
		nextDens := len(dens) * (f.DenominatorSteps + 1)
		if nextNums*nextDens > MaxCombinations {
			eff.NumeratorSteps, eff.DenominatorSteps = 0, 0
		}
		res.Effective[i] = eff
		if !eff.Active() {
			continue
		}
		v := eff.Value()
		nums = expand(nums, v, eff.NumeratorSteps)
		dens = expand(dens, v, eff.DenominatorSteps)
	}
	res.Numerators, res.Denominators = len(nums), len(dens)

	set := pitch.NewSet()
	entries := []pitch.Entry{pitch.Unison()}
	for ni, n := range nums {
		for di, d := range dens {
			if ni == 0 && di == 0 {
				continue
			}
			e, ok := pitch.NewEntry(pitch.Ratio, n, d)
			if !ok {
				continue
			}
			if set.Add(e) {
				entries = append(entries, e)
			}
		}
	}
	res.Entries = entries

	return res
}

// expand appends list[j]·v^s for s = 1..steps to list (Cartesian expansion
// over the snapshot taken before the call).
func expand(list []float64, v float64, steps int) []float64 {
	if steps <= 0 {
		return list
	}
	base := len(list)
	out := make([]float64, base, base*(steps+1))
	copy(out, list)
	for s := 1; s <= steps; s++ {
		p := math.Pow(v, float64(s))
		for j := 0; j < base; j++ {
			out = append(out, list[j]*p)
		}
	}

	return out
}
