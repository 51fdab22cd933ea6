// SPDX-License-Identifier: MIT
// Package: mapping
//
// scales_table.go - the 42 reference scales.
//
// Weights favor the root, then the fifth, the thirds, the sevenths, the
// remaining diatonic degrees and finally the chromatic passing tones.
// Inactive degrees carry weight 0.

package mapping

// ScaleCount is the number of reference scales.
const ScaleCount = 42

// ReferenceScales is indexed by the reference-scale parameter (0..41).
var ReferenceScales = [ScaleCount]Scale{
	{
		Name:    "Chromatic",
		Active:  [Degrees]bool{true, true, true, true, true, true, true, true, true, true, true, true},
		Weights: [Degrees]float64{1.0, 0.3, 0.5, 0.8, 0.8, 0.5, 0.3, 0.9, 0.4, 0.4, 0.6, 0.6},
	},
	{
		Name:    "Major",
		Active:  [Degrees]bool{true, false, true, false, true, true, false, true, false, true, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0.5, 0, 0.9, 0, 0.4, 0, 0.6},
	},
	{
		Name:    "Dorian",
		Active:  [Degrees]bool{true, false, true, true, false, true, false, true, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0.5, 0, 0.9, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Phrygian",
		Active:  [Degrees]bool{true, true, false, true, false, true, false, true, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0, 0.5, 0, 0.9, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Lydian",
		Active:  [Degrees]bool{true, false, true, false, true, false, true, true, false, true, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0, 0.3, 0.9, 0, 0.4, 0, 0.6},
	},
	{
		Name:    "Mixolydian",
		Active:  [Degrees]bool{true, false, true, false, true, true, false, true, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0.5, 0, 0.9, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Natural Minor",
		Active:  [Degrees]bool{true, false, true, true, false, true, false, true, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0.5, 0, 0.9, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Locrian",
		Active:  [Degrees]bool{true, true, false, true, false, true, true, false, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0, 0.5, 0.3, 0, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Harmonic Minor",
		Active:  [Degrees]bool{true, false, true, true, false, true, false, true, true, false, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0.5, 0, 0.9, 0.4, 0, 0, 0.6},
	},
	{
		Name:    "Locrian Natural 6",
		Active:  [Degrees]bool{true, true, false, true, false, true, true, false, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0, 0.5, 0.3, 0, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Ionian Augmented",
		Active:  [Degrees]bool{true, false, true, false, true, true, false, false, true, true, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0.5, 0, 0, 0.4, 0.4, 0, 0.6},
	},
	{
		Name:    "Dorian Sharp 4",
		Active:  [Degrees]bool{true, false, true, true, false, false, true, true, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0, 0.3, 0.9, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Phrygian Dominant",
		Active:  [Degrees]bool{true, true, false, false, true, true, false, true, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0, 0.8, 0.5, 0, 0.9, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Lydian Sharp 2",
		Active:  [Degrees]bool{true, false, false, true, true, false, true, true, false, true, false, true},
		Weights: [Degrees]float64{1.0, 0, 0, 0.8, 0.8, 0, 0.3, 0.9, 0, 0.4, 0, 0.6},
	},
	{
		Name:    "Super Locrian Diminished",
		Active:  [Degrees]bool{true, true, false, true, true, false, true, false, true, true, false, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0.8, 0, 0.3, 0, 0.4, 0.4, 0, 0},
	},
	{
		Name:    "Melodic Minor",
		Active:  [Degrees]bool{true, false, true, true, false, true, false, true, false, true, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0.5, 0, 0.9, 0, 0.4, 0, 0.6},
	},
	{
		Name:    "Dorian Flat 2",
		Active:  [Degrees]bool{true, true, false, true, false, true, false, true, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0, 0.5, 0, 0.9, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Lydian Augmented",
		Active:  [Degrees]bool{true, false, true, false, true, false, true, false, true, true, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0, 0.3, 0, 0.4, 0.4, 0, 0.6},
	},
	{
		Name:    "Lydian Dominant",
		Active:  [Degrees]bool{true, false, true, false, true, false, true, true, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0, 0.3, 0.9, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Mixolydian Flat 6",
		Active:  [Degrees]bool{true, false, true, false, true, true, false, true, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0.5, 0, 0.9, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Locrian Sharp 2",
		Active:  [Degrees]bool{true, false, true, true, false, true, true, false, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0.5, 0.3, 0, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Altered",
		Active:  [Degrees]bool{true, true, false, true, true, false, true, false, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0.8, 0, 0.3, 0, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Major Pentatonic",
		Active:  [Degrees]bool{true, false, true, false, true, false, false, true, false, true, false, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0, 0, 0.9, 0, 0.4, 0, 0},
	},
	{
		Name:    "Minor Pentatonic",
		Active:  [Degrees]bool{true, false, false, true, false, true, false, true, false, false, true, false},
		Weights: [Degrees]float64{1.0, 0, 0, 0.8, 0, 0.5, 0, 0.9, 0, 0, 0.6, 0},
	},
	{
		Name:    "Blues",
		Active:  [Degrees]bool{true, false, false, true, false, true, true, true, false, false, true, false},
		Weights: [Degrees]float64{1.0, 0, 0, 0.8, 0, 0.5, 0.3, 0.9, 0, 0, 0.6, 0},
	},
	{
		Name:    "Major Blues",
		Active:  [Degrees]bool{true, false, true, true, true, false, false, true, false, true, false, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0.8, 0, 0, 0.9, 0, 0.4, 0, 0},
	},
	{
		Name:    "Whole Tone",
		Active:  [Degrees]bool{true, false, true, false, true, false, true, false, true, false, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0, 0.3, 0, 0.4, 0, 0.6, 0},
	},
	{
		Name:    "Diminished Half-Whole",
		Active:  [Degrees]bool{true, true, false, true, true, false, true, true, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0.8, 0, 0.3, 0.9, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Diminished Whole-Half",
		Active:  [Degrees]bool{true, false, true, true, false, true, true, false, true, true, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0.5, 0.3, 0, 0.4, 0.4, 0, 0.6},
	},
	{
		Name:    "Augmented",
		Active:  [Degrees]bool{true, false, false, true, true, false, false, true, true, false, false, true},
		Weights: [Degrees]float64{1.0, 0, 0, 0.8, 0.8, 0, 0, 0.9, 0.4, 0, 0, 0.6},
	},
	{
		Name:    "Harmonic Major",
		Active:  [Degrees]bool{true, false, true, false, true, true, false, true, true, false, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0.5, 0, 0.9, 0.4, 0, 0, 0.6},
	},
	{
		Name:    "Double Harmonic",
		Active:  [Degrees]bool{true, true, false, false, true, true, false, true, true, false, false, true},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0, 0.8, 0.5, 0, 0.9, 0.4, 0, 0, 0.6},
	},
	{
		Name:    "Hungarian Minor",
		Active:  [Degrees]bool{true, false, true, true, false, false, true, true, true, false, false, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0, 0.3, 0.9, 0.4, 0, 0, 0.6},
	},
	{
		Name:    "Neapolitan Minor",
		Active:  [Degrees]bool{true, true, false, true, false, true, false, true, true, false, false, true},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0, 0.5, 0, 0.9, 0.4, 0, 0, 0.6},
	},
	{
		Name:    "Neapolitan Major",
		Active:  [Degrees]bool{true, true, false, true, false, true, false, true, false, true, false, true},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0.8, 0, 0.5, 0, 0.9, 0, 0.4, 0, 0.6},
	},
	{
		Name:    "Persian",
		Active:  [Degrees]bool{true, true, false, false, true, true, true, false, true, false, false, true},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0, 0.8, 0.5, 0.3, 0, 0.4, 0, 0, 0.6},
	},
	{
		Name:    "Hirajoshi",
		Active:  [Degrees]bool{true, false, true, true, false, false, false, true, true, false, false, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0.8, 0, 0, 0, 0.9, 0.4, 0, 0, 0},
	},
	{
		Name:    "In Sen",
		Active:  [Degrees]bool{true, true, false, false, false, true, false, true, false, false, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0, 0, 0.5, 0, 0.9, 0, 0, 0.6, 0},
	},
	{
		Name:    "Iwato",
		Active:  [Degrees]bool{true, true, false, false, false, true, true, false, false, false, true, false},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0, 0, 0.5, 0.3, 0, 0, 0, 0.6, 0},
	},
	{
		Name:    "Prometheus",
		Active:  [Degrees]bool{true, false, true, false, true, false, true, false, false, true, true, false},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0, 0.3, 0, 0, 0.4, 0.6, 0},
	},
	{
		Name:    "Enigmatic",
		Active:  [Degrees]bool{true, true, false, false, true, false, true, false, true, false, true, true},
		Weights: [Degrees]float64{1.0, 0.3, 0, 0, 0.8, 0, 0.3, 0, 0.4, 0, 0.6, 0.6},
	},
	{
		Name:    "Bebop Dominant",
		Active:  [Degrees]bool{true, false, true, false, true, true, false, true, false, true, true, true},
		Weights: [Degrees]float64{1.0, 0, 0.5, 0, 0.8, 0.5, 0, 0.9, 0, 0.4, 0.6, 0.6},
	},
}
