package mapping

import (
	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// Map returns a copy of entries with InUse and Weighting assigned by cfg.
// entries must be sorted ascending by cents. octaveScale is log2 of the
// configured octave size (1 for a pure octave).
func Map(entries []pitch.Entry, cfg Config, octaveScale float64) []pitch.Entry {
	cfg = cfg.Clamp()
	out := make([]pitch.Entry, len(entries))
	copy(out, entries)
	if len(out) == 0 {
		return out
	}

	for i := range out {
		out[i].Weighting = pitch.BaselineWeight
		out[i].InUse = cfg.Mode == NoMapping
	}
	if cfg.Mode == NoMapping {
		return out
	}

	ref := ReferenceScales[cfg.Scale]
	weight := func(d int) float64 {
		if !cfg.UseWeighting {
			return pitch.BaselineWeight
		}

		return ref.Weights[d]
	}
	mark := func(i, d int) {
		out[i].InUse = true
		out[i].Weighting = weight(d)
	}

	size := len(out)
	switch cfg.Mode {
	case Spread:
		for d := 0; d < Degrees; d++ {
			if ref.Active[d] {
				mark(d*size/Degrees, d)
			}
		}
	case Repeat:
		for i := 0; i < size; i++ {
			if d := i % Degrees; ref.Active[d] {
				mark(i, d)
			}
		}
	case NearestNeighbor:
		for d := 0; d < Degrees; d++ {
			if ref.Active[d] {
				mark(pitch.Nearest(out, float64(d)*100*octaveScale), d)
			}
		}
	}

	if len(Active(out)) == 0 {
		out[0].InUse = true
	}

	return out
}

// Active returns the indexes of in-use entries, ascending.
func Active(entries []pitch.Entry) []int {
	idx := make([]int, 0, len(entries))
	for i, e := range entries {
		if e.InUse {
			idx = append(idx, i)
		}
	}

	return idx
}
