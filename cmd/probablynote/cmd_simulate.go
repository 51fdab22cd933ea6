package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/almostEric/FrozenWasteland-sub000/engine"
)

// samplesPerTrigger leaves room for the trigger delay line and the pulse.
const samplesPerTrigger = 64

type simulateOpts struct {
	triggers int
	pitch    float64
	seed     int64
	channels int
	random   float64
}

func newSimulateCmd(a *app) *cobra.Command {
	o := simulateOpts{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Fire triggers into the engine and print the chosen notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []engine.Option
			if cmd.Flags().Changed("seed") {
				extra = append(extra, engine.WithSeed(o.seed))
			}
			e := a.engine(extra...)
			out := cmd.OutOrStdout()
			for i, res := range simulate(e, o) {
				for ch := 0; ch < res.Channels; ch++ {
					fmt.Fprintf(out, "%4d ch%-2d cv=%+.5f V weight=%.2f V\n", i, ch, res.CV[ch], res.Weight[ch])
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&o.triggers, "triggers", "n", 8, "number of triggers")
	cmd.Flags().Float64Var(&o.pitch, "pitch", 0, "input pitch in volts (1V/oct)")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "random seed (overrides the config file)")
	cmd.Flags().IntVar(&o.channels, "channels", 1, "polyphonic channels (1..16)")
	cmd.Flags().Float64Var(&o.random, "random", -1, "external random voltage 0..10 (negative: internal)")

	return cmd
}

// simulate fires o.triggers mono triggers and returns the outputs seen at
// the end of each trigger period.
func simulate(e *engine.Engine, o simulateOpts) []engine.Outputs {
	var in engine.Inputs
	in.PitchChannels = max(1, min(o.channels, engine.MaxChannels))
	for ch := 0; ch < in.PitchChannels; ch++ {
		in.Pitch[ch] = o.pitch
	}
	in.TriggerChannels = 1
	if o.random >= 0 {
		in.ExternalRandomChannels = 1
		in.ExternalRandom[0] = o.random
	}

	res := make([]engine.Outputs, 0, max(0, o.triggers))
	for i := 0; i < o.triggers; i++ {
		var out engine.Outputs
		for n := 0; n < samplesPerTrigger; n++ {
			in.Trigger[0] = 0
			if n == 0 {
				in.Trigger[0] = 10
			}
			out = e.Process(in)
		}
		res = append(res, out)
	}

	return res
}
