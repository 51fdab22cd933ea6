package selector

import (
	"math"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

const (
	// MaxSpread bounds the absolute spread count.
	MaxSpread = 115
	// DissonanceThreshold is the dissonance (bits) separating consonant from
	// dissonant entries for the dissonance bias.
	DissonanceThreshold = 7.0
	// focusFloor is the outermost probability when focus is 0.
	focusFloor = 0.1
)

// FieldParams shapes the probability field around the current note.
type FieldParams struct {
	// Spread is a note count (0..MaxSpread) or, with SpreadIsFraction, a
	// fraction (0..1) of the in-use scale size.
	Spread           float64 `yaml:"spread" json:"spread"`
	SpreadIsFraction bool    `yaml:"spread_is_fraction" json:"spread_is_fraction"`
	// Slant splits the spread: -1 all below, 0 symmetric, +1 all above.
	Slant float64 `yaml:"slant" json:"slant"`
	// Focus flattens (1) or tapers (0) the probability away from the current note.
	Focus float64 `yaml:"focus" json:"focus"`
	// Dissonance biases away from dissonant (<0) or consonant (>0) entries.
	Dissonance float64 `yaml:"dissonance" json:"dissonance"`
	// OctaveWrap keeps wrapped neighbors in the current period instead of
	// moving them an octave up or down.
	OctaveWrap bool `yaml:"octave_wrap" json:"octave_wrap"`
}

// Clamp moves every field into range.
func (p FieldParams) Clamp() FieldParams {
	if p.SpreadIsFraction {
		p.Spread = clamp(p.Spread, 0, 1)
	} else {
		p.Spread = clamp(p.Spread, 0, MaxSpread)
	}
	p.Slant = clamp(p.Slant, -1, 1)
	p.Focus = clamp(p.Focus, 0, 1)
	p.Dissonance = clamp(p.Dissonance, -1, 1)

	return p
}

// Field is the probability vector over the in-use scale.
type Field struct {
	// Probabilities is indexed like the in-use entry list.
	Probabilities []float64
	// Octaves holds, per slot, the period offset of the candidate that set it.
	Octaves []int
	// Current is the slot of the current note.
	Current int
	// Upper and Lower are the resolved spread bounds.
	Upper int
	Lower int
	// Wrap mirrors FieldParams.OctaveWrap.
	Wrap bool
}

// Spread returns the larger of the two spread bounds.
func (f Field) Spread() int { return max(f.Upper, f.Lower) }

// Len returns the number of slots.
func (f Field) Len() int { return len(f.Probabilities) }

// SpreadCount resolves p.Spread into a note count for a scale of size notes.
func SpreadCount(p FieldParams, size int) int {
	p = p.Clamp()
	if p.SpreadIsFraction {
		return int(math.Round(p.Spread * float64(size)))
	}

	return int(math.Round(p.Spread))
}

// BuildField computes the field for current within active (in-use entries,
// sorted by cents).
//
// For i = 1..spread:
//
//	base = lerp(1, lerp(0.1, 1, focus), i/spread)
//	w    = base · dissonanceBias(entry) · entry.Weighting
//
// assigned to current+i while i ≤ upper and to current-i while i ≤ lower,
// modulo the scale size. The current slot always holds 1 and is never
// overwritten; other collisions keep the larger weight.
func BuildField(active []pitch.Entry, current int, p FieldParams) Field {
	p = p.Clamp()
	size := len(active)
	f := Field{Wrap: p.OctaveWrap}
	if size == 0 {
		return f
	}
	current = clampInt(current, 0, size-1)
	f.Current = current
	f.Probabilities = make([]float64, size)
	f.Octaves = make([]int, size)
	f.Probabilities[current] = 1

	spread := SpreadCount(p, size)
	f.Upper = int(math.Round(float64(spread) * math.Min(1, 1+p.Slant)))
	f.Lower = int(math.Round(float64(spread) * math.Min(1, 1-p.Slant)))

	tail := lerp(focusFloor, 1, p.Focus)
	for i := 1; i <= spread; i++ {
		base := lerp(1, tail, float64(i)/float64(spread))
		if i <= f.Upper {
			f.assign(active, current+i, base, p)
		}
		if i <= f.Lower {
			f.assign(active, current-i, base, p)
		}
	}

	return f
}

func (f *Field) assign(active []pitch.Entry, pos int, base float64, p FieldParams) {
	size := len(active)
	idx := mod(pos, size)
	if idx == f.Current {
		return
	}
	e := active[idx]
	w := base * dissonanceBias(e.Dissonance, p.Dissonance) * e.Weighting
	if w < 0 {
		w = 0
	}
	if w <= f.Probabilities[idx] {
		return
	}
	f.Probabilities[idx] = w
	if p.OctaveWrap {
		f.Octaves[idx] = 0
	} else {
		f.Octaves[idx] = floorDiv(pos, size)
	}
}

// dissonanceBias attenuates dissonant entries when bias < 0 and consonant
// entries when bias > 0, proportionally to |bias|.
func dissonanceBias(dissonance, bias float64) float64 {
	switch {
	case bias < 0 && dissonance > DissonanceThreshold:
		return 1 - math.Abs(bias)
	case bias > 0 && dissonance < DissonanceThreshold:
		return 1 - bias
	default:
		return 1
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}

	return q
}
