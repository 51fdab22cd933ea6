// SPDX-License-Identifier: MIT
// Package: pitch
//
// set.go - Set: ratio-unique, cents-sorted entry collection.
//
// Contract:
//   • A new Set always holds the unison at index 0.
//   • Add rejects entries whose ratio is already present within RatioEpsilon.
//   • Entries() returns entries sorted ascending by cents (stable on ties).
//
// Complexity:
//   • Add: O(1) expected (quantized-key index, neighbor buckets checked).
//   • Entries: O(n log n) when the set changed since the last call, else O(1).

package pitch

import (
	"math"
	"sort"
)

// keyScale quantizes ratios into index buckets one RatioEpsilon wide.
const keyScale = 1 / RatioEpsilon

// Set is an ordered collection of unique-ratio entries.
type Set struct {
	entries []Entry
	index   map[int64]int
	sorted  bool
}

// NewSet returns a Set seeded with the unison entry.
func NewSet() *Set {
	s := &Set{index: make(map[int64]int)}
	s.insert(Unison())

	return s
}

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.entries) }

// Contains reports whether ratio is already present.
func (s *Set) Contains(ratio float64) bool {
	k := ratioKey(ratio)
	for _, kk := range [3]int64{k - 1, k, k + 1} {
		if i, ok := s.index[kk]; ok && SameRatio(s.entries[i].Ratio, ratio) {
			return true
		}
	}

	return false
}

// Add inserts e unless its ratio is already present or lies outside [1,2).
// It reports whether e was inserted.
func (s *Set) Add(e Entry) bool {
	if e.Ratio < UnisonRatio-RatioEpsilon || e.Ratio >= OctaveRatio || math.IsNaN(e.Ratio) {
		return false
	}
	if s.Contains(e.Ratio) {
		return false
	}
	s.insert(e)

	return true
}

// AddAll inserts every entry of es in order and returns how many were kept.
func (s *Set) AddAll(es []Entry) int {
	n := 0
	for _, e := range es {
		if s.Add(e) {
			n++
		}
	}

	return n
}

// Entries returns the entries sorted ascending by cents. The returned slice
// is a copy; mutating it does not affect s.
func (s *Set) Entries() []Entry {
	s.sort()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

func (s *Set) insert(e Entry) {
	s.index[ratioKey(e.Ratio)] = len(s.entries)
	s.entries = append(s.entries, e)
	s.sorted = false
}

func (s *Set) sort() {
	if s.sorted {
		return
	}
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Cents < s.entries[j].Cents
	})
	for i, e := range s.entries {
		s.index[ratioKey(e.Ratio)] = i
	}
	s.sorted = true
}

func ratioKey(r float64) int64 {
	return int64(math.Round(r * keyScale))
}

// Nearest returns the index in es (sorted ascending by cents) of the entry
// closest to cents. Ties resolve to the lower index. Returns -1 for empty es.
func Nearest(es []Entry, cents float64) int {
	if len(es) == 0 {
		return -1
	}
	i := sort.Search(len(es), func(i int) bool { return es[i].Cents >= cents })
	switch {
	case i == 0:
		return 0
	case i == len(es):
		return len(es) - 1
	}
	if cents-es[i-1].Cents <= es[i].Cents-cents {
		return i - 1
	}

	return i
}
