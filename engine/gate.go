package engine

const (
	// GateHigh and GateLow are the Schmitt thresholds in volts.
	GateHigh = 1.0
	GateLow  = 0.1
	// TriggerDelaySamples is the length of the optional trigger delay line.
	TriggerDelaySamples = 5
	// PulseSeconds is the note-change pulse width.
	PulseSeconds = 1e-3
	// PulseVolts is the pulse level while high.
	PulseVolts = 10.0
)

// Schmitt is a hysteresis gate detector.
type Schmitt struct {
	high bool
}

// Process feeds one sample and reports a rising edge.
func (s *Schmitt) Process(v float64) bool {
	switch {
	case !s.high && v >= GateHigh:
		s.high = true
		return true
	case s.high && v <= GateLow:
		s.high = false
	}

	return false
}

// High reports the current gate state.
func (s *Schmitt) High() bool { return s.high }

// Reset returns the gate to low.
func (s *Schmitt) Reset() { s.high = false }

// delayLine delays an edge stream by a fixed number of samples.
type delayLine struct {
	buf [TriggerDelaySamples]bool
	pos int
}

// Process pushes in and returns the value pushed TriggerDelaySamples ago.
func (d *delayLine) Process(in bool) bool {
	out := d.buf[d.pos]
	d.buf[d.pos] = in
	d.pos = (d.pos + 1) % len(d.buf)

	return out
}

func (d *delayLine) Reset() { *d = delayLine{} }

// Pulse is a retriggerable fixed-width pulse generator.
type Pulse struct {
	remaining int
}

// Trigger starts (or restarts) a pulse of n samples.
func (p *Pulse) Trigger(n int) {
	p.remaining = max(p.remaining, n)
}

// Process advances one sample and reports whether the pulse is high.
func (p *Pulse) Process() bool {
	if p.remaining <= 0 {
		return false
	}
	p.remaining--

	return true
}

// pulseSamples converts PulseSeconds to a sample count, at least one.
func pulseSamples(sampleRate float64) int {
	return max(1, int(sampleRate*PulseSeconds+0.5))
}
