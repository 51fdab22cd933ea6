package engine

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/almostEric/FrozenWasteland-sub000/selector"
)

// Inputs is one sample of every input port. A *Channels count of 0 means
// the port is unpatched; a count of 1 is a mono signal shared by all
// channels.
type Inputs struct {
	Pitch         [MaxChannels]float64
	PitchChannels int

	Trigger         [MaxChannels]float64
	TriggerChannels int

	// ExternalRandom is 0..10 V and replaces the internal uniform draw.
	ExternalRandom         [MaxChannels]float64
	ExternalRandomChannels int

	// ModRoot is a gate; its rising edge re-keys to the fractional part of
	// channel 0's pitch.
	ModRoot float64
}

// Outputs is one sample of every output port.
type Outputs struct {
	CV       [MaxChannels]float64
	Weight   [MaxChannels]float64
	Pulse    [MaxChannels]float64
	Channels int
}

type channel struct {
	sel   *selector.State
	trig  Schmitt
	delay delayLine
	pulse Pulse

	cv     float64
	weight float64
	prevCV float64
}

// Engine is the polyphonic note generator. Process must be called from a
// single goroutine; SetParams may be called from any goroutine and publishes
// a fully built scale before Process can see it.
type Engine struct {
	seed       int64
	sampleRate float64
	log        *slog.Logger
	params     Params

	mu    sync.Mutex // serializes SetParams and guards cache
	cache Cache

	published atomic.Pointer[ScaleState]
	current   atomic.Pointer[Params]

	channels     [MaxChannels]channel
	modRootGate  Schmitt
	modRootVolts float64
	pulseLen     int
}

// New returns an Engine with its initial scale already published.
func New(opts ...Option) *Engine {
	e := new(Engine)
	e.defaults()
	for _, opt := range opts {
		opt(e)
	}
	e.pulseLen = pulseSamples(e.sampleRate)
	for i := range e.channels {
		e.channels[i].sel = selector.NewState(selector.DeriveRand(e.seed, uint64(i)))
	}
	e.SetParams(e.params)

	return e
}

// SetParams clamps p, rebuilds whatever scale stages changed and publishes
// the result. It never fails.
func (e *Engine) SetParams(p Params) {
	p = p.Clamp()

	e.mu.Lock()
	defer e.mu.Unlock()

	s, stages := e.cache.Get(p.Scale)
	if stages != 0 {
		e.published.Store(s)
		e.log.Debug("scale rebuilt",
			slog.String("stages", stages.String()),
			slog.Int("pitches", len(s.Pitch.Tempered)),
			slog.Int("reduced", len(s.Mapped)),
			slog.Int("active", s.Size()),
			slog.Uint64("fingerprint", s.Fingerprint),
		)
	}
	e.params = p
	e.current.Store(&p)
}

// Params returns the clamped parameters currently in effect.
func (e *Engine) Params() Params { return *e.current.Load() }

// Scale returns the published scale.
func (e *Engine) Scale() *ScaleState { return e.published.Load() }

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// ModRoot returns the captured modulation-root offset in volts.
func (e *Engine) ModRoot() float64 { return e.modRootVolts }

// Field returns a copy of channel ch's current probability field.
func (e *Engine) Field(ch int) selector.Field {
	if ch < 0 || ch >= MaxChannels {
		return selector.Field{}
	}
	f := e.channels[ch].sel.Field
	f.Probabilities = append([]float64(nil), f.Probabilities...)
	f.Octaves = append([]int(nil), f.Octaves...)

	return f
}

// Reset clears every channel's gates, outputs and selection memory and the
// modulation root. Random streams are not reseeded.
func (e *Engine) Reset() {
	for i := range e.channels {
		c := &e.channels[i]
		c.sel.Reset()
		c.trig.Reset()
		c.delay.Reset()
		c.pulse = Pulse{}
		c.cv, c.weight, c.prevCV = 0, 0, 0
	}
	e.modRootGate.Reset()
	e.modRootVolts = 0
}

// Process advances the engine by one sample.
func (e *Engine) Process(in Inputs) Outputs {
	s := e.published.Load()
	p := e.current.Load()

	if e.modRootGate.Process(in.ModRoot) {
		v := in.Pitch[0]
		e.modRootVolts = v - math.Floor(v)
	}

	n := max(1, min(in.PitchChannels, MaxChannels))
	t := selector.Tuning{
		OctaveScale: s.OctaveScale,
		Key:         p.Key,
		OctaveShift: p.OctaveShift,
		ModRoot:     e.modRootVolts,
	}

	out := Outputs{Channels: n}
	for ch := 0; ch < n; ch++ {
		c := &e.channels[ch]
		c.sel.Track(s.Active, s.Fingerprint, in.Pitch[ch], t, p.Selection.Field)

		edge := c.trig.Process(in.Trigger[port(ch, in.TriggerChannels)])
		if p.TriggerDelay {
			edge = c.delay.Process(edge)
		}
		if edge {
			r := c.sel.Float64()
			if in.ExternalRandomChannels > 0 {
				r = in.ExternalRandom[port(ch, in.ExternalRandomChannels)] / 10
			}
			if note, ok := c.sel.Trigger(s.Active, r, t, p.Selection); ok {
				c.cv = note.CV
				c.weight = max(0, min(10*note.Weight, 10))
			}
		}

		if c.cv != c.prevCV {
			c.pulse.Trigger(e.pulseLen)
		}
		c.prevCV = c.cv

		out.CV[ch] = c.cv
		out.Weight[ch] = c.weight
		if c.pulse.Process() {
			out.Pulse[ch] = PulseVolts
		}
	}

	return out
}

// port picks the input channel feeding ch: mono ports feed every channel.
func port(ch, channels int) int {
	if channels <= 1 {
		return 0
	}

	return min(ch, channels-1)
}
