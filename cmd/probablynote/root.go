package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almostEric/FrozenWasteland-sub000/config"
	"github.com/almostEric/FrozenWasteland-sub000/engine"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string

	log  *slog.Logger
	file *config.File
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "probablynote",
		Short:         "Build microtonal scales and pick notes from them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML session file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(
		newScaleCmd(a),
		newExportCmd(a),
		newSimulateCmd(a),
		newScalesCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.configPath == "" {
		a.file = &config.File{Params: engine.DefaultParams()}
		return nil
	}
	f, err := config.LoadFile(a.configPath)
	if err != nil {
		a.log.Error("Failed to load config", slog.String("path", a.configPath), slog.String("error", err.Error()))
		return err
	}
	a.log.Info("Configuration loaded", slog.String("path", a.configPath))
	a.file = f

	return nil
}

// engine builds an Engine from the loaded configuration plus extra options.
func (a *app) engine(extra ...engine.Option) *engine.Engine {
	opts := append(a.file.Options(), engine.WithLogger(a.log))

	return engine.New(append(opts, extra...)...)
}

