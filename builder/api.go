// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(cfg). It runs the lattice, EDO and MOS
//     generators, assembles, then tempers.
//   - BuildWith(cfg, gens...) assembles a custom generator pipeline.
//   - Determinism: equal configs produce byte-identical Results.
//   - Safety: never panics; configuration is clamped, never rejected.

package builder

import (
	"fmt"
	"sort"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// Generator produces candidate pitches for a configuration. Generators must
// be pure: the same cfg always yields the same entries in the same order.
type Generator func(cfg Config) []pitch.Entry

// Result is the full output of a pitch-set build.
type Result struct {
	// Config is the clamped configuration that was built.
	Config Config
	// Assembled holds all generated pitches: unique by ratio, sorted by cents.
	Assembled []pitch.Entry
	// Grid is the EDO list retained for tempering, sorted by cents.
	Grid []pitch.Entry
	// Tempered is Assembled after tempering (equal to Assembled if disabled).
	Tempered []pitch.Entry
	// Lattice reports how the ratio lattice was expanded.
	Lattice LatticeResult
	// MOS reports the word and parameters the MOS generator ended on.
	MOS MOSResult
}

// Build runs the standard pipeline: ratio lattice, then EDO (if enabled),
// then MOS (if enabled); first generator wins on duplicate ratios.
//
// Complexity: dominated by the lattice, O(MaxCombinations).
func Build(cfg Config) Result {
	cfg = cfg.Clamp()
	res := Result{Config: cfg}

	res.Lattice = RatioLattice(cfg)
	res.Grid = EqualDivision(cfg.EDO)
	res.MOS = MomentOfSymmetry(cfg.MOS)

	parts := [][]pitch.Entry{res.Lattice.Entries}
	if cfg.EDO.Enabled {
		parts = append(parts, res.Grid)
	}
	if cfg.MOS.Enabled {
		parts = append(parts, res.MOS.Entries)
	}
	res.Assembled = Assemble(parts...)
	res.Tempered = Temper(res.Assembled, res.Grid, cfg.EDO.Divisions, cfg.Tempering)

	return res
}

// BuildWith assembles the outputs of gens (in order) for cfg and returns the
// sorted, ratio-unique result. Tempering is not applied.
func BuildWith(cfg Config, gens ...Generator) ([]pitch.Entry, error) {
	cfg = cfg.Clamp()
	parts := make([][]pitch.Entry, 0, len(gens))
	for i, g := range gens {
		if g == nil {
			return nil, fmt.Errorf("BuildWith: generator %d: %w", i, ErrNilGenerator)
		}
		parts = append(parts, g(cfg))
	}

	return Assemble(parts...), nil
}

// LatticeGenerator adapts RatioLattice to Generator.
func LatticeGenerator(cfg Config) []pitch.Entry { return RatioLattice(cfg).Entries }

// EDOGenerator adapts EqualDivision to Generator.
func EDOGenerator(cfg Config) []pitch.Entry { return EqualDivision(cfg.EDO) }

// MOSGenerator adapts MomentOfSymmetry to Generator.
func MOSGenerator(cfg Config) []pitch.Entry { return MomentOfSymmetry(cfg.MOS).Entries }

// Assemble merges parts in order into one ratio-unique set sorted by cents.
// The unison is always present at index 0.
func Assemble(parts ...[]pitch.Entry) []pitch.Entry {
	set := pitch.NewSet()
	for _, p := range parts {
		set.AddAll(p)
	}

	return set.Entries()
}

// sortByCents returns a cents-sorted copy of es (stable on ties).
func sortByCents(es []pitch.Entry) []pitch.Entry {
	out := make([]pitch.Entry, len(es))
	copy(out, es)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cents < out[j].Cents })

	return out
}
