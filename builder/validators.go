// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go - clamp-on-write helpers.
//
// Every configuration write goes through these; out-of-range values are moved
// to the nearest legal value and never surfaced as errors.

package builder

import "math"

// clampInt returns v limited to [lo, hi]. If hi < lo, lo wins.
func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}

	return v
}

// clampFloat returns v limited to [lo, hi]; NaN becomes lo.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// quantize snaps v to the nearest multiple of q.
func quantize(v, q float64) float64 {
	return math.Round(v/q) * q
}

// lerp interpolates linearly from a to b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
