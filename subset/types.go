// SPDX-License-Identifier: MIT
// Package: subset
//
// types.go - Algorithm enum and table entry shape.

package subset

import (
	"fmt"
	"strconv"
	"strings"
)

// Algorithm selects a reduction strategy.
type Algorithm int

const (
	// None keeps every slot.
	None Algorithm = iota
	// Euclidean spreads K hits with the bucket algorithm.
	Euclidean
	// GolombRuler uses the Golomb ruler table.
	GolombRuler
	// PerfectBalance uses the perfectly balanced pattern table.
	PerfectBalance
)

// AlgorithmCount is the number of defined algorithms.
const AlgorithmCount = 4

var algorithmNames = [AlgorithmCount]string{"none", "euclidean", "golomb", "balance"}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= AlgorithmCount {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm resolves a name produced by String (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range algorithmNames {
		if n == s {
			return Algorithm(i), true
		}
	}

	return None, false
}

// Clamp maps out-of-range values onto None.
func (a Algorithm) Clamp() Algorithm {
	if a < 0 || int(a) >= AlgorithmCount {
		return None
	}

	return a
}

// pattern is one row of a fixed table: Order marks inside [0, Period).
// For Golomb rulers Period is length+1.
type pattern struct {
	Period int
	Order  int
	Marks  []int
}

// MarshalText renders a as its name.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.Clamp().String()), nil
}

// UnmarshalText accepts a name or a decimal index; unknown values become None.
func (a *Algorithm) UnmarshalText(b []byte) error {
	if v, ok := ParseAlgorithm(string(b)); ok {
		*a = v

		return nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(string(b))); err == nil {
		*a = Algorithm(n).Clamp()

		return nil
	}
	*a = None

	return nil
}
