// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go - factor table and configuration limits.

package builder

import "math"

//-----------------------------------------------------------------------------
// Factor table
//-----------------------------------------------------------------------------

// FactorCount is the number of selectable factor constants.
const FactorCount = 49

// FactorValues is the ordered table of factor constants a FactorSpec indexes
// into: the first 44 primes followed by five irrational constants.
var FactorValues = [FactorCount]float64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193,
	math.Phi, math.Sqrt2, math.E, math.Pi, 1.7320508075688772,
}

// FactorNames holds display labels parallel to FactorValues.
var FactorNames = [FactorCount]string{
	"2", "3", "5", "7", "11", "13", "17", "19", "23", "29",
	"31", "37", "41", "43", "47", "53", "59", "61", "67", "71",
	"73", "79", "83", "89", "97", "101", "103", "107", "109", "113",
	"127", "131", "137", "139", "149", "151", "157", "163", "167", "173",
	"179", "181", "191", "193",
	"φ", "√2", "e", "π", "√3",
}

//-----------------------------------------------------------------------------
// Lattice limits
//-----------------------------------------------------------------------------

const (
	// MaxFactors is the number of independent factor slots.
	MaxFactors = 10
	// MaxNumeratorSteps bounds FactorSpec.NumeratorSteps.
	MaxNumeratorSteps = 10
	// MaxDenominatorSteps bounds FactorSpec.DenominatorSteps.
	MaxDenominatorSteps = 5
	// MaxCombinations caps len(numerators)·len(denominators) in the lattice.
	MaxCombinations = 100000
)

//-----------------------------------------------------------------------------
// EDO / MOS / tempering limits
//-----------------------------------------------------------------------------

const (
	// MinDivisions and MaxDivisions bound EDOConfig.Divisions.
	MinDivisions = 1
	MaxDivisions = 120
	// MaxWraps bounds EDOConfig.Wraps.
	MaxWraps = 120

	// ChristoffelCeiling is the maximum number of BFS generations and the
	// maximum word length (L+S) of a Christoffel search.
	ChristoffelCeiling = 73
	// MinMOSRatio and MaxMOSRatio bound the large/small step ratio.
	MinMOSRatio = 1.0
	MaxMOSRatio = 5.0
	// MOSRatioQuantum is the grid used when MOSConfig.QuantizeRatio is set.
	MOSRatioQuantum = 0.25
	// MaxMOSLevels bounds MOSConfig.Levels.
	MaxMOSLevels = 4
)
