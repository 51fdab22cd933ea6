package selector

import (
	"math/rand"

	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// Params is every per-trigger selection knob.
type Params struct {
	Field FieldParams `yaml:"field" json:"field"`
	Draw  DrawParams  `yaml:"draw" json:"draw"`
	// JitterCents is the pitch jitter amount (0..MaxJitterCents).
	JitterCents float64 `yaml:"jitter_cents" json:"jitter_cents"`
	// GaussianJitter selects rejection-sampled Gaussian jitter.
	GaussianJitter bool `yaml:"gaussian_jitter" json:"gaussian_jitter"`
}

// Clamp moves every field into range.
func (p Params) Clamp() Params {
	p.Field = p.Field.Clamp()
	p.Draw = p.Draw.Clamp()
	p.JitterCents = clamp(p.JitterCents, 0, MaxJitterCents)

	return p
}

// State is the private selection state of one polyphonic channel.
type State struct {
	// Current is the slot nearest the channel's input pitch.
	Current int
	// Period is the scale period of the input pitch.
	Period int
	// Last is the slot chosen on the previous trigger, -1 before the first.
	Last int
	// Field is the probability field around Current.
	Field Field

	rng *rand.Rand

	// field cache key
	fieldVersion uint64
	fieldParams  FieldParams
	fieldValid   bool
}

// NewState returns a channel state drawing from rng.
func NewState(rng *rand.Rand) *State {
	if rng == nil {
		rng = NewRand(0)
	}

	return &State{Last: -1, rng: rng}
}

// Reset forgets the previous pick and the cached field.
func (s *State) Reset() {
	s.Last = -1
	s.fieldValid = false
}

// Track quantizes v against active and rebuilds the field only when the
// current note, the scale version or the field params changed.
func (s *State) Track(active []pitch.Entry, version uint64, v float64, t Tuning, p FieldParams) {
	slot, period := Quantize(active, v, t)
	s.Period = period
	if s.fieldValid && slot == s.Current && version == s.fieldVersion && p == s.fieldParams {
		return
	}
	if version != s.fieldVersion {
		// Slots of a previous scale mean nothing in the new one.
		s.Last = -1
	}
	s.Current = slot
	s.Field = BuildField(active, slot, p)
	s.fieldVersion, s.fieldParams, s.fieldValid = version, p, true
}

// Note is one emitted selection.
type Note struct {
	Choice
	Entry pitch.Entry
	// CV is the output voltage including jitter.
	CV float64
}

// Trigger draws a note from the current field. r is the uniform value
// driving the draw (internal or external); the veto coin and the jitter use
// the channel's own rng.
func (s *State) Trigger(active []pitch.Entry, r float64, t Tuning, p Params) (Note, bool) {
	p = p.Clamp()
	if len(active) == 0 || s.Field.Len() != len(active) {
		return Note{}, false
	}
	c := Draw(s.Field, r, s.Last, p.Draw, s.rng)
	if c.Slot < 0 {
		return Note{}, false
	}
	s.Last = c.Slot
	e := active[c.Slot]
	cv := CV(e, s.Period, c.Octave, t) + JitterVolts(Jitter(s.rng, p.JitterCents, p.GaussianJitter), t)

	return Note{Choice: c, Entry: e, CV: cv}, true
}

// Float64 exposes the channel's internal uniform source.
func (s *State) Float64() float64 { return s.rng.Float64() }
