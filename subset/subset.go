// SPDX-License-Identifier: MIT
// Package: subset
//
// subset.go - public entry points.

package subset

// Mask returns a length-n selection mask for alg.
//
// Edge cases:
//   - n ≤ 0 returns nil.
//   - k ≤ 0 returns an all-false mask.
//   - k ≥ n returns an all-true mask.
//
// Complexity: O(n) time and space.
func Mask(alg Algorithm, n, k int) []bool {
	if n <= 0 {
		return nil
	}
	mask := make([]bool, n)
	if k <= 0 {
		return mask
	}
	if k >= n || alg.Clamp() == None {
		for i := range mask {
			mask[i] = true
		}

		return mask
	}

	switch alg {
	case Euclidean:
		euclidean(mask, k)
	case GolombRuler:
		place(mask, golombPick(n, k))
	case PerfectBalance:
		if p, ok := balancePick(n, k); ok {
			place(mask, p)
		} else {
			euclidean(mask, k)
		}
	}

	return mask
}

// Positions returns the selected slot indexes of Mask(alg, n, k), ascending.
func Positions(alg Algorithm, n, k int) []int {
	mask := Mask(alg, n, k)
	out := make([]int, 0, len(mask))
	for i, on := range mask {
		if on {
			out = append(out, i)
		}
	}

	return out
}

// Count returns how many slots Mask(alg, n, k) selects.
func Count(alg Algorithm, n, k int) int {
	c := 0
	for _, on := range Mask(alg, n, k) {
		if on {
			c++
		}
	}

	return c
}

// euclidean marks exactly k of len(mask) slots:
//
//	bucket = n-1; for i: bucket += k; if bucket >= n { bucket -= n; mark i }
func euclidean(mask []bool, k int) {
	n := len(mask)
	bucket := n - 1
	for i := 0; i < n; i++ {
		bucket += k
		if bucket >= n {
			bucket -= n
			mask[i] = true
		}
	}
}

// place marks p's marks multiplied by ⌊n/p.Period⌋.
func place(mask []bool, p pattern) {
	n := len(mask)
	spacing := n / p.Period
	if spacing < 1 {
		spacing = 1
	}
	for _, m := range p.Marks {
		if pos := m * spacing; pos < n {
			mask[pos] = true
		}
	}
}

// golombPick returns the highest-order ruler with Order ≤ k and
// length+1 ≤ n. Equal-order alternates keep the first one in table order.
// The order-1 ruler {0} always fits.
func golombPick(n, k int) pattern {
	best := golombTable[0]
	for _, r := range golombTable {
		if r.Order > k {
			break
		}
		if r.Period <= n && r.Order > best.Order {
			best = r
		}
	}

	return best
}

// balancePick walks the balance table in order, counting entries whose
// period divides n, and stops at the (k-1)-th such entry; if the table runs
// out first the last match is used. A match whose order exceeds k gives way
// to the nearest earlier match that fits, so the result never marks more
// than k slots. ok is false when nothing fits (k < 2 or no dividing period).
func balancePick(n, k int) (pattern, bool) {
	target := k - 1
	if target < 1 {
		return pattern{}, false
	}
	matches := make([]pattern, 0, target)
	for _, p := range balanceTable {
		if n%p.Period != 0 {
			continue
		}
		matches = append(matches, p)
		if len(matches) == target {
			break
		}
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Order <= k {
			return matches[i], true
		}
	}

	return pattern{}, false
}
