// SPDX-License-Identifier: MIT
// Package: pitch
//
// math.go - octave folding, float GCD/LCM, cents and dissonance.

package pitch

import "math"

const (
	// UnisonRatio is the 1/1 ratio.
	UnisonRatio = 1.0
	// OctaveRatio is the folding bound; entries live in [UnisonRatio, OctaveRatio).
	OctaveRatio = 2.0
	// CentsPerOctave is the size of one octave in cents.
	CentsPerOctave = 1200.0
	// RatioEpsilon is the absolute tolerance under which two ratios are equal.
	RatioEpsilon = 1e-9
	// GCDEpsilon is the remainder at which the float GCD recursion bottoms out.
	GCDEpsilon = 1e-3
	// BaselineWeight is the weighting of an entry nobody re-weighted.
	BaselineWeight = 1.0
)

// SameRatio reports whether a and b are equal within RatioEpsilon.
func SameRatio(a, b float64) bool {
	return math.Abs(a-b) < RatioEpsilon
}

// Fold moves num/den into [1,2) by doubling the denominator while the ratio
// is at least an octave, then doubling the numerator while it is below unison.
// Non-positive inputs are returned unchanged; callers treat them as invalid.
func Fold(num, den float64) (float64, float64) {
	if num <= 0 || den <= 0 {
		return num, den
	}
	for num/den >= OctaveRatio {
		den *= 2
	}
	for num/den < UnisonRatio {
		num *= 2
	}

	return num, den
}

// GCD returns the float-domain greatest common divisor of a and b.
// It follows the modulo recursion iteratively and stops once the remainder is
// below GCDEpsilon, so irrational inputs produce a small positive residue
// instead of looping forever.
func GCD(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	if a < b {
		a, b = b, a
	}
	for b > GCDEpsilon {
		a, b = b, math.Mod(a, b)
	}
	if a == 0 {
		// gcd(0,0): treat as 1 so callers can divide safely.
		return 1
	}

	return a
}

// LCM returns a·b/GCD(a,b).
func LCM(a, b float64) float64 {
	return math.Abs(a*b) / GCD(a, b)
}

// Reduce divides num and den by their float GCD.
func Reduce(num, den float64) (float64, float64) {
	g := GCD(num, den)

	return num / g, den / g
}

// Cents converts a frequency ratio to cents.
func Cents(ratio float64) float64 {
	return CentsPerOctave * math.Log2(ratio)
}

// RatioFromCents converts cents back to a frequency ratio.
func RatioFromCents(c float64) float64 {
	return math.Pow(2, c/CentsPerOctave)
}

// Dissonance returns log2(LCM(num, den)) for an already reduced pair.
// The unison scores exactly zero.
func Dissonance(num, den float64) float64 {
	l := LCM(num, den)
	if l <= 1 {
		return 0
	}

	return math.Log2(l)
}

// NewEntry folds, reduces and scores num/den and returns the resulting entry.
// ok is false when the pair is degenerate (zero or negative terms).
func NewEntry(kind Kind, num, den float64) (e Entry, ok bool) {
	if num <= 0 || den <= 0 || math.IsInf(num, 0) || math.IsInf(den, 0) {
		return Entry{}, false
	}
	num, den = Fold(num, den)
	ratio := num / den
	num, den = Reduce(num, den)

	return Entry{
		Kind:        kind,
		Numerator:   num,
		Denominator: den,
		Ratio:       ratio,
		Cents:       Cents(ratio),
		Dissonance:  Dissonance(num, den),
		Weighting:   BaselineWeight,
		InUse:       true,
	}, true
}

// NewIrrationalEntry builds an entry for a ratio that has no integer
// spelling (EDO and MOS pitches). The ratio is folded into [1,2) and stored
// as ratio/1.
func NewIrrationalEntry(kind Kind, ratio float64) (Entry, bool) {
	return NewEntry(kind, ratio, 1)
}
