package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchmitt(t *testing.T) {
	var s Schmitt
	var edges []bool
	for _, v := range []float64{0, 0.5, 1, 5, 0.5, 0.2, 1, 0.1, 0.5, 2} {
		edges = append(edges, s.Process(v))
	}
	assert.Equal(t, []bool{false, false, true, false, false, false, false, false, false, true}, edges)
	assert.True(t, s.High())
	s.Reset()
	assert.False(t, s.High())
}

func TestDelayLine(t *testing.T) {
	var d delayLine
	var out []bool
	for i := 0; i < 12; i++ {
		out = append(out, d.Process(i == 0 || i == 3))
	}
	assert.Equal(t, []bool{false, false, false, false, false, true, false, false, true, false, false, false}, out)

	d.Process(true)
	d.Reset()
	for i := 0; i < TriggerDelaySamples+1; i++ {
		assert.False(t, d.Process(false))
	}
}

func TestPulse(t *testing.T) {
	var p Pulse
	p.Trigger(3)
	assert.True(t, p.Process())
	p.Trigger(1) // shorter retrigger does not cut the pulse
	assert.True(t, p.Process())
	assert.True(t, p.Process())
	assert.False(t, p.Process())

	p.Trigger(2)
	p.Process()
	p.Trigger(2)
	assert.True(t, p.Process())
	assert.True(t, p.Process())
	assert.False(t, p.Process())
}

func TestPulseSamples(t *testing.T) {
	assert.Equal(t, 44, pulseSamples(44100))
	assert.Equal(t, 48, pulseSamples(48000))
	assert.Equal(t, 1, pulseSamples(10))
}

func TestPort(t *testing.T) {
	assert.Equal(t, 0, port(5, 0))
	assert.Equal(t, 0, port(5, 1))
	assert.Equal(t, 2, port(2, 4))
	assert.Equal(t, 3, port(9, 4))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "none", Stage(0).String())
	assert.Equal(t, "reduce+map", (StageReduce | StageMap).String())
}
