package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almostEric/FrozenWasteland-sub000/mapping"
)

var noteNames = [mapping.Degrees]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales [name]",
		Short: "List the reference scales, or resolve one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for i, s := range mapping.ReferenceScales {
					fmt.Fprintf(out, "%2d  %-20s %s\n", i, s.Name, degrees(s))
				}
				return nil
			}
			idx, err := mapping.ScaleByName(args[0])
			if err != nil {
				return err
			}
			s := mapping.ReferenceScales[idx]
			fmt.Fprintf(out, "%d %s\n", idx, s.Name)
			for d := 0; d < mapping.Degrees; d++ {
				if s.Active[d] {
					fmt.Fprintf(out, "  %-2s %.2f\n", noteNames[d], s.Weights[d])
				}
			}

			return nil
		},
	}
}

func degrees(s mapping.Scale) string {
	var b strings.Builder
	for d := 0; d < mapping.Degrees; d++ {
		if s.Active[d] {
			b.WriteString(noteNames[d])
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(b.String())
}
