package engine

import (
	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/subset"
)

// Stage names a pipeline stage that a Cache rebuilt.
type Stage int

const (
	// StagePitch is builder.Build (lattice, EDO, MOS, tempering).
	StagePitch Stage = 1 << iota
	// StageReduce is subset.Mask.
	StageReduce
	// StageMap is mapping.Map and everything after it.
	StageMap
)

// String lists the stages set in s.
func (s Stage) String() string {
	out := ""
	for _, st := range []struct {
		bit  Stage
		name string
	}{{StagePitch, "pitch"}, {StageReduce, "reduce"}, {StageMap, "map"}} {
		if s&st.bit != 0 {
			if out != "" {
				out += "+"
			}
			out += st.name
		}
	}
	if out == "" {
		return "none"
	}

	return out
}

type reduceKey struct {
	n, k int
	alg  subset.Algorithm
}

// Cache memoizes BuildScale by value equality of ScaleConfig, and keeps the
// intermediate stages so a mapping change does not rerun the lattice.
// A Cache is not safe for concurrent use; the Engine owns one.
type Cache struct {
	last *ScaleState

	pitchKey   builder.Config
	pitchRes   builder.Result
	pitchValid bool

	maskKey   reduceKey
	mask      []bool
	maskValid bool
}

// Get returns the ScaleState for cfg and which stages had to be rebuilt.
// An unchanged cfg returns the previous pointer and Stage 0.
func (c *Cache) Get(cfg ScaleConfig) (*ScaleState, Stage) {
	cfg = cfg.Clamp()
	if c.last != nil && c.last.Config == cfg {
		return c.last, 0
	}

	var rebuilt Stage
	if !c.pitchValid || c.pitchKey != cfg.Pitch {
		c.pitchRes = builder.Build(cfg.Pitch)
		c.pitchKey, c.pitchValid = cfg.Pitch, true
		rebuilt |= StagePitch
	}

	rk := reduceKey{n: len(c.pitchRes.Tempered), k: cfg.ScaleSize, alg: cfg.Reduction}
	if !c.maskValid || c.maskKey != rk || rebuilt&StagePitch != 0 {
		c.mask = subset.Mask(rk.alg, rk.n, rk.k)
		c.maskKey, c.maskValid = rk, true
		rebuilt |= StageReduce
	}

	c.last = finish(cfg, c.pitchRes, c.mask)
	rebuilt |= StageMap

	return c.last, rebuilt
}
