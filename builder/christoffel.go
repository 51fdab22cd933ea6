// SPDX-License-Identifier: MIT
// Package: builder
//
// christoffel.go - bounded breadth-first Christoffel word search.
//
// Starting from "ls", every word in the frontier is rewritten by the two
// Christoffel morphisms
//
//	G: l→l,  s→ls
//	D: l→ls, s→s
//
// and the first word of length L+S holding exactly S 's' symbols is returned.
// Words longer than the target, or with more l or s than requested, are
// dropped. The search runs at most ChristoffelCeiling generations; on
// failure (e.g. gcd(L,S) > 1) it reports ok=false.

package builder

import "strings"

const (
	symLarge = 'l'
	symSmall = 's'
	seedWord = "ls"
)

// ChristoffelWord returns the balanced binary word with large large steps
// and small small steps.
func ChristoffelWord(large, small int) (word string, ok bool) {
	target := large + small
	if large < 1 || small < 1 || target > ChristoffelCeiling {
		return "", false
	}

	frontier := []string{seedWord}
	for gen := 0; gen < ChristoffelCeiling && len(frontier) > 0; gen++ {
		var next []string
		for _, w := range frontier {
			if len(w) == target && strings.Count(w, string(symSmall)) == small {
				return w, true
			}
			for _, cand := range [2]string{applyG(w), applyD(w)} {
				if admissible(cand, large, small) {
					next = append(next, cand)
				}
			}
		}
		frontier = next
	}

	return "", false
}

// admissible reports whether w can still grow into the target word.
func admissible(w string, large, small int) bool {
	if len(w) > large+small {
		return false
	}
	nl := strings.Count(w, string(symLarge))

	return nl <= large && len(w)-nl <= small
}

// applyG rewrites s→ls and keeps l.
func applyG(w string) string {
	var b strings.Builder
	b.Grow(2 * len(w))
	for i := 0; i < len(w); i++ {
		if w[i] == symSmall {
			b.WriteByte(symLarge)
		}
		b.WriteByte(w[i])
	}

	return b.String()
}

// applyD rewrites l→ls and keeps s.
func applyD(w string) string {
	var b strings.Builder
	b.Grow(2 * len(w))
	for i := 0; i < len(w); i++ {
		b.WriteByte(w[i])
		if w[i] == symLarge {
			b.WriteByte(symSmall)
		}
	}

	return b.String()
}
