// SPDX-License-Identifier: MIT
// Package: pitch
//
// types.go - Entry and Kind.

package pitch

import "fmt"

// Kind identifies which generator produced an entry.
type Kind int

const (
	// Ratio entries come from the prime-power lattice.
	Ratio Kind = iota
	// EqualDivision entries come from the EDO generator.
	EqualDivision
	// MOS entries come from the Moment-of-Symmetry generator.
	MOS
)

// String returns a short label for k.
func (k Kind) String() string {
	switch k {
	case Ratio:
		return "ratio"
	case EqualDivision:
		return "edo"
	case MOS:
		return "mos"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is one member of a pitch set.
//
// Invariants (enforced by Set):
//   - 1 ≤ Ratio < 2
//   - Cents == 1200·log2(Ratio), except for tempered entries whose Ratio was
//     blended but whose Numerator/Denominator/Dissonance were kept.
//   - the unison entry has Dissonance == 0.
type Entry struct {
	Kind        Kind
	Numerator   float64
	Denominator float64
	Ratio       float64
	Cents       float64
	Dissonance  float64
	Weighting   float64
	InUse       bool
}

// IsUnison reports whether e is the 1/1 entry.
func (e Entry) IsUnison() bool {
	return SameRatio(e.Ratio, UnisonRatio)
}

// String renders e as "num/den (cents¢)".
func (e Entry) String() string {
	return fmt.Sprintf("%g/%g (%.3f¢)", e.Numerator, e.Denominator, e.Cents)
}

// Unison returns the canonical 1/1 entry.
func Unison() Entry {
	return Entry{
		Kind:        Ratio,
		Numerator:   1,
		Denominator: 1,
		Ratio:       UnisonRatio,
		Cents:       0,
		Dissonance:  0,
		Weighting:   BaselineWeight,
		InUse:       true,
	}
}
