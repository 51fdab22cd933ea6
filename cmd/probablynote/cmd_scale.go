package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/almostEric/FrozenWasteland-sub000/engine"
	"github.com/almostEric/FrozenWasteland-sub000/scala"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// noteDoc is one reduced scale entry as printed by `scale`.
type noteDoc struct {
	Kind        string  `json:"kind"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	Ratio       float64 `json:"ratio"`
	Cents       float64 `json:"cents"`
	PeriodCents float64 `json:"period_cents"`
	Dissonance  float64 `json:"dissonance"`
	Weight      float64 `json:"weight"`
	InUse       bool    `json:"in_use"`
}

// scaleDoc is the `scale --json` document.
type scaleDoc struct {
	Fingerprint  string             `json:"fingerprint"`
	Combinations int                `json:"combinations"`
	Pitches      int                `json:"pitches"`
	Active       int                `json:"active"`
	OctaveScale  float64            `json:"octave_scale"`
	Config       engine.ScaleConfig `json:"config"`
	Notes        []noteDoc          `json:"notes"`
}

func newScaleCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Build the configured scale and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.engine().Scale()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(newScaleDoc(s))
			}

			return printScale(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func newScaleDoc(s *engine.ScaleState) scaleDoc {
	doc := scaleDoc{
		Fingerprint:  fmt.Sprintf("%016x", s.Fingerprint),
		Combinations: s.Pitch.Lattice.Combinations(),
		Pitches:      len(s.Pitch.Tempered),
		Active:       s.Size(),
		OctaveScale:  s.OctaveScale,
		Config:       s.Config,
		Notes:        make([]noteDoc, len(s.Mapped)),
	}
	for i, e := range s.Mapped {
		doc.Notes[i] = noteDoc{
			Kind:        e.Kind.String(),
			Numerator:   e.Numerator,
			Denominator: e.Denominator,
			Ratio:       e.Ratio,
			Cents:       e.Cents,
			PeriodCents: e.Cents * s.OctaveScale,
			Dissonance:  e.Dissonance,
			Weight:      e.Weighting,
			InUse:       e.InUse,
		}
	}

	return doc
}

func printScale(w io.Writer, s *engine.ScaleState) error {
	fmt.Fprintf(w, "fingerprint %016x\n", s.Fingerprint)
	fmt.Fprintf(w, "%s lattice combinations, %s pitches, %d reduced, %d in use\n",
		humanize.Comma(int64(s.Pitch.Lattice.Combinations())),
		humanize.Comma(int64(len(s.Pitch.Tempered))),
		len(s.Mapped), s.Size())
	for _, c := range scala.Comments(s.Config) {
		fmt.Fprintf(w, "  %s\n", c)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tkind\tratio\tnum/den\tcents\tperiod cents\tdissonance\tweight\tin use")
	for i, e := range s.Mapped {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\t%g/%g\t%.3f\t%.3f\t%.3f\t%.2f\t%t\n",
			i, e.Kind, e.Ratio, e.Numerator, e.Denominator, e.Cents, e.Cents*s.OctaveScale, e.Dissonance, e.Weighting, e.InUse)
	}

	return tw.Flush()
}
