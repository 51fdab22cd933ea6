package selector

import (
	"math"
	"math/rand"
)

// DrawParams controls the weighted draw.
type DrawParams struct {
	// NonRepeat is the probability (0..1) of vetoing the previous note.
	NonRepeat float64 `yaml:"non_repeat" json:"non_repeat"`
	// Scaling morphs linear weights (0) toward exponential ones (1).
	Scaling float64 `yaml:"scaling" json:"scaling"`
}

// Clamp moves every field into [0,1].
func (p DrawParams) Clamp() DrawParams {
	p.NonRepeat = clamp(p.NonRepeat, 0, 1)
	p.Scaling = clamp(p.Scaling, 0, 1)

	return p
}

// Choice is the outcome of one draw.
type Choice struct {
	// Slot indexes the in-use entry list.
	Slot int
	// Octave is the period offset relative to the current note's period.
	Octave int
	// Weight is the slot's raw field probability (0 for a fallback pick).
	Weight float64
	// Fallback is set when the field was degenerate and the successor of
	// the current note was taken instead.
	Fallback bool
}

// EffectiveWeight morphs w toward (10^w − 1)/10 by scaling.
func EffectiveWeight(w, scaling float64) float64 {
	return lerp(w, (math.Pow(10, w)-1)/10, scaling)
}

// Draw picks a slot of f.
//
//   - r ∈ [0,1) drives the cumulative-threshold draw.
//   - last is the slot chosen on the previous trigger (-1 if none). With
//     probability NonRepeat, and only when the field has a spread, its weight
//     is zeroed first; the veto coin is tossed on rng.
//   - A draw that finds nothing (all-zero field) falls back to the first slot
//     after f.Current, wrapping, skipping a vetoed slot.
func Draw(f Field, r float64, last int, p DrawParams, rng *rand.Rand) Choice {
	p = p.Clamp()
	size := f.Len()
	if size == 0 {
		return Choice{Slot: -1, Fallback: true}
	}
	r = clamp(r, 0, math.Nextafter(1, 0))

	vetoed := -1
	if f.Spread() > 0 && last >= 0 && last < size && p.NonRepeat > 0 {
		if rng == nil || rng.Float64() < p.NonRepeat {
			vetoed = last
		}
	}

	weights := make([]float64, size)
	sum := 0.0
	for i, w := range f.Probabilities {
		if i == vetoed {
			continue
		}
		weights[i] = EffectiveWeight(w, p.Scaling)
		sum += weights[i]
	}

	if sum > 0 {
		threshold := r * sum
		cum := 0.0
		for i, w := range weights {
			cum += w
			if w > 0 && cum > threshold {
				return Choice{Slot: i, Octave: f.Octaves[i], Weight: f.Probabilities[i]}
			}
		}
	}

	return fallback(f, vetoed)
}

func fallback(f Field, vetoed int) Choice {
	size := f.Len()
	for k := 1; k <= size; k++ {
		pos := f.Current + k
		j := mod(pos, size)
		if j == vetoed && size > 1 {
			continue
		}
		oct := 0
		if !f.Wrap {
			oct = floorDiv(pos, size)
		}

		return Choice{Slot: j, Octave: oct, Fallback: true}
	}

	return Choice{Slot: f.Current, Fallback: true}
}
