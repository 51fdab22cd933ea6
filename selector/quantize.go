package selector

import (
	"math"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// Tuning carries the voltage-domain context shared by quantization and CV
// conversion.
type Tuning struct {
	// OctaveScale is log2 of the octave size: volts per scale period.
	OctaveScale float64
	// Key is the transposition in semitones (0..11).
	Key int
	// OctaveShift is a whole-volt transposition.
	OctaveShift int
	// ModRoot is a captured fractional re-keying offset in volts.
	ModRoot float64
}

// offset is the constant voltage added to every note.
func (t Tuning) offset() float64 {
	return float64(t.Key)/12 + t.ModRoot
}

// Quantize maps a 1V/oct input to the nearest slot of active and the scale
// period it falls in. The match is circular: an input just below the next
// period's first note resolves to slot 0 of the next period, and an input
// just above the period start resolves to the last slot of the previous
// period, whenever that is closer.
func Quantize(active []pitch.Entry, v float64, t Tuning) (slot, period int) {
	if len(active) == 0 || t.OctaveScale <= 0 {
		return 0, 0
	}
	rel := (v - t.offset()) / t.OctaveScale
	fl := math.Floor(rel)
	period = int(fl)
	cents := (rel - fl) * pitch.CentsPerOctave

	slot = pitch.Nearest(active, cents)
	dist := math.Abs(cents - active[slot].Cents)
	if up := pitch.CentsPerOctave + active[0].Cents; up-cents < dist {
		return 0, period + 1
	}
	last := len(active) - 1
	if down := active[last].Cents - pitch.CentsPerOctave; cents-down < dist {
		return last, period - 1
	}

	return slot, period
}

// CV converts an entry to volts:
//
//	cents/1200·octaveScale + key/12 + modRoot + octaveShift + (period+octave)·octaveScale
func CV(e pitch.Entry, period, octave int, t Tuning) float64 {
	return e.Cents/pitch.CentsPerOctave*t.OctaveScale +
		t.offset() +
		float64(t.OctaveShift) +
		float64(period+octave)*t.OctaveScale
}

// JitterVolts converts a cents offset to volts in the scale's period.
func JitterVolts(cents float64, t Tuning) float64 {
	return cents / pitch.CentsPerOctave * t.OctaveScale
}
