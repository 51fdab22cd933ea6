package engine

import (
	"io"
	"log/slog"

	"github.com/almostEric/FrozenWasteland-sub000/selector"
)

// DefaultSampleRate is used when WithSampleRate is not given.
const DefaultSampleRate = 44100.0

// Option customizes an Engine.
type Option func(*Engine)

// WithSeed sets the root seed. Channel i draws from selector.DeriveRand(seed, i).
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithSampleRate sets the sample rate in Hz; non-positive values are ignored.
func WithSampleRate(hz float64) Option {
	return func(e *Engine) {
		if hz > 0 {
			e.sampleRate = hz
		}
	}
}

// WithLogger sets the logger used for rebuild diagnostics.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}

	return func(e *Engine) { e.log = l }
}

// WithParams sets the initial parameters.
func WithParams(p Params) Option {
	return func(e *Engine) { e.params = p.Clamp() }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (e *Engine) defaults() {
	e.seed = selector.DefaultSeed
	e.sampleRate = DefaultSampleRate
	e.log = discardLogger()
	e.params = DefaultParams().Clamp()
}
