// Package config loads engine parameters from YAML session files.
//
// A file holds engine.Params at the top level plus a few session keys.
// Keys that are absent keep engine.DefaultParams values; enum-valued keys
// accept names or integers. A minimal file:
//
//	seed: 7
//	factors:
//	  - {factor: "3", numerator_steps: 4, denominator_steps: 1}
//	  - {factor: "5", numerator_steps: 1, denominator_steps: 1}
//	scale:
//	  scale_size: 7
//	  reduction: euclidean
//	  mapping: {mode: nearest}
//	scale_name: major
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/engine"
	"github.com/almostEric/FrozenWasteland-sub000/mapping"
)

// ErrConfig indicates that a config file could not be read or parsed.
var ErrConfig = errors.New("config: invalid configuration")

// Factor is one lattice slot as written in a file. Factor is a label from
// builder.FactorNames or one of its ASCII aliases.
type Factor struct {
	Factor           string `yaml:"factor"`
	NumeratorSteps   int    `yaml:"numerator_steps"`
	DenominatorSteps int    `yaml:"denominator_steps"`
}

// File is a decoded session file.
type File struct {
	engine.Params `yaml:",inline"`

	// Factors fills lattice slots in order; unlisted slots are inactive.
	Factors []Factor `yaml:"factors"`
	// ScaleName selects the reference scale by (fuzzy) name and overrides
	// scale.mapping.scale.
	ScaleName string `yaml:"scale_name"`
	// Seed is the engine's root random seed (0 = default).
	Seed int64 `yaml:"seed"`
	// SampleRate is the engine sample rate in Hz (0 = default).
	SampleRate float64 `yaml:"sample_rate"`
}

// Options converts f into engine options.
func (f *File) Options() []engine.Option {
	opts := []engine.Option{engine.WithParams(f.Params)}
	if f.Seed != 0 {
		opts = append(opts, engine.WithSeed(f.Seed))
	}
	if f.SampleRate > 0 {
		opts = append(opts, engine.WithSampleRate(f.SampleRate))
	}

	return opts
}

// Load reads the file at path and returns its clamped engine parameters.
func Load(path string) (*engine.Params, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return &f.Params, nil
}

// LoadFile reads and parses the file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w: %w", ErrConfig, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	f := File{Params: engine.DefaultParams()}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w: %w", ErrConfig, err)
	}

	if f.Factors != nil {
		if len(f.Factors) > builder.MaxFactors {
			return nil, fmt.Errorf("%d factors, at most %d: %w", len(f.Factors), builder.MaxFactors, ErrConfig)
		}
		var slots [builder.MaxFactors]builder.FactorSpec
		for i, fc := range f.Factors {
			idx := builder.FactorByName(fc.Factor)
			if idx < 0 {
				return nil, fmt.Errorf("factors[%d]: unknown factor %q: %w", i, fc.Factor, ErrConfig)
			}
			slots[i] = builder.FactorSpec{Factor: idx, NumeratorSteps: fc.NumeratorSteps, DenominatorSteps: fc.DenominatorSteps}
		}
		f.Params.Scale.Pitch.Factors = slots
	}

	if f.ScaleName != "" {
		idx, err := mapping.ScaleByName(f.ScaleName)
		if err != nil {
			return nil, fmt.Errorf("scale_name: %w: %w", ErrConfig, err)
		}
		f.Params.Scale.Mapping.Scale = idx
	}

	f.Params = f.Params.Clamp()

	return &f, nil
}
