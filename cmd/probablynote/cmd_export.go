package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/almostEric/FrozenWasteland-sub000/scala"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path.scl>",
		Short: "Write the configured scale as a Scala tuning file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.engine().Scale()
			if err := scala.WriteFile(args[0], s); err != nil {
				return err
			}
			a.log.Info("Scale exported",
				slog.String("path", args[0]),
				slog.Int("notes", s.Size()),
			)

			return nil
		},
	}
}
