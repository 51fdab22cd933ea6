package scala

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/almostEric/FrozenWasteland-sub000/builder"
	"github.com/almostEric/FrozenWasteland-sub000/engine"
	"github.com/almostEric/FrozenWasteland-sub000/mapping"
	"github.com/almostEric/FrozenWasteland-sub000/pitch"
)

// ErrExport indicates that the destination could not be created or written.
var ErrExport = errors.New("scala: export failed")

// Method names used in error context.
const (
	methodWrite     = "Write"
	methodWriteFile = "WriteFile"
)

// Lines returns the pitch lines of s in cents, period line last.
func Lines(s *engine.ScaleState) []float64 {
	out := make([]float64, 0, len(s.Active)+1)
	for _, e := range s.Active {
		out = append(out, e.Cents*s.OctaveScale)
	}

	return append(out, pitch.CentsPerOctave*s.OctaveScale)
}

// Write renders s as a .scl file. name is the file name used in the header
// comment and description; it may be empty.
func Write(w io.Writer, s *engine.ScaleState, name string) error {
	if s == nil {
		return fmt.Errorf("%s: nil scale: %w", methodWrite, ErrExport)
	}
	if name == "" {
		name = "probablynote.scl"
	}
	lines := Lines(s)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "! %s\n!\n", name)
	for _, c := range Comments(s.Config) {
		fmt.Fprintf(bw, "! %s\n", c)
	}
	fmt.Fprintf(bw, "!\n%s\n %d\n!\n", strings.TrimSuffix(name, filepath.Ext(name)), len(lines))
	for _, c := range lines {
		fmt.Fprintf(bw, " %.5f\n", c)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w: %w", methodWrite, ErrExport, err)
	}

	return nil
}

// WriteFile writes s to path, replacing any existing file.
func WriteFile(path string, s *engine.ScaleState) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s(%q): %w: %w", methodWriteFile, path, ErrExport, err)
	}
	if err = Write(f, s, filepath.Base(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s(%q): %w", methodWriteFile, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%s(%q): %w: %w", methodWriteFile, path, ErrExport, err)
	}

	return nil
}

// Comments describes the configuration that produced a scale.
func Comments(cfg engine.ScaleConfig) []string {
	var factors []string
	for _, f := range cfg.Pitch.Factors {
		if !f.Active() {
			continue
		}
		factors = append(factors, fmt.Sprintf("%s^%d/%d", builder.FactorNames[f.Factor], f.NumeratorSteps, f.DenominatorSteps))
	}
	if len(factors) == 0 {
		factors = append(factors, "none")
	}

	out := []string{"Factors: " + strings.Join(factors, " ")}
	if edo := cfg.Pitch.EDO; edo.Enabled {
		out = append(out, fmt.Sprintf("EDO: %d divisions, step %d, %d wraps", edo.Divisions, edo.Step, edo.Wraps))
	}
	if mos := cfg.Pitch.MOS; mos.Enabled {
		out = append(out, fmt.Sprintf("MOS: %dL %ds, ratio %g, %d levels", mos.Large, mos.Small, mos.Ratio, mos.Levels))
	}
	if t := cfg.Pitch.Tempering; t.Enabled {
		out = append(out, fmt.Sprintf("Tempering: threshold %g, strength %g", t.Threshold, t.Strength))
	}
	out = append(out,
		fmt.Sprintf("Reduction: %s to %d notes", cfg.Reduction, cfg.ScaleSize),
		fmt.Sprintf("Octave size: %g", cfg.OctaveSize),
	)
	if m := cfg.Mapping; m.Mode != mapping.NoMapping {
		out = append(out, fmt.Sprintf("Mapping: %s onto %s", m.Mode, mapping.ReferenceScales[m.Scale].Name))
	}

	return out
}
