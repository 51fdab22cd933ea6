package engine

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/mapping"
	"github.com/almostEric/FrozenWasteland-sub000/pitch"
	"github.com/almostEric/FrozenWasteland-sub000/subset"
)

// ScaleState is an immutable, fully built scale. Once published it is never
// mutated; a new configuration produces a new ScaleState.
type ScaleState struct {
	Config ScaleConfig
	// Pitch is the builder output (assembled, grid, tempered).
	Pitch builder.Result
	// Mask selects the reduced entries out of Pitch.Tempered.
	Mask []bool
	// Mapped is the reduced set with InUse/Weighting assigned.
	Mapped []pitch.Entry
	// Active lists the in-use entries of Mapped, sorted by cents.
	Active []pitch.Entry
	// ActiveIndex maps each Active slot back to its Mapped index.
	ActiveIndex []int
	// OctaveScale is log2 of the octave size.
	OctaveScale float64
	// Fingerprint is the xxh3 hash of Mapped; it doubles as a version.
	Fingerprint uint64
}

// Size returns the number of in-use notes.
func (s *ScaleState) Size() int { return len(s.Active) }

// reduce applies the mask to entries.
func reduce(entries []pitch.Entry, mask []bool) []pitch.Entry {
	out := make([]pitch.Entry, 0, len(entries))
	for i, e := range entries {
		if i < len(mask) && mask[i] {
			out = append(out, e)
		}
	}

	return out
}

// BuildScale is the pure, uncached scale pipeline.
func BuildScale(cfg ScaleConfig) *ScaleState {
	cfg = cfg.Clamp()
	res := builder.Build(cfg.Pitch)

	return finish(cfg, res, subset.Mask(cfg.Reduction, len(res.Tempered), cfg.ScaleSize))
}

func finish(cfg ScaleConfig, res builder.Result, mask []bool) *ScaleState {
	mapped := mapping.Map(reduce(res.Tempered, mask), cfg.Mapping, cfg.OctaveScale())
	s := &ScaleState{
		Config:      cfg,
		Pitch:       res,
		Mask:        mask,
		Mapped:      mapped,
		OctaveScale: cfg.OctaveScale(),
	}
	s.ActiveIndex = mapping.Active(mapped)
	s.Active = make([]pitch.Entry, len(s.ActiveIndex))
	for i, idx := range s.ActiveIndex {
		s.Active[i] = mapped[idx]
	}
	s.Fingerprint = fingerprint(mapped, s.OctaveScale)

	return s
}

// entryLayout is the fixed per-entry record hashed by fingerprint:
// kind(1) inUse(1) num(8) den(8) ratio(8) cents(8) diss(8) weight(8).
const entryLayout = 2 + 6*8

// fingerprint hashes entries with a fixed little-endian layout so equal
// scales hash equally on every platform.
func fingerprint(entries []pitch.Entry, octaveScale float64) uint64 {
	buf := make([]byte, 0, 8+len(entries)*entryLayout)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(octaveScale))
	for _, e := range entries {
		var inUse byte
		if e.InUse {
			inUse = 1
		}
		buf = append(buf, byte(e.Kind), inUse)
		for _, f := range [6]float64{e.Numerator, e.Denominator, e.Ratio, e.Cents, e.Dissonance, e.Weighting} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}
	}

	return xxh3.Hash(buf)
}
