package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/internal/config"
	"github.com/katalvlaran/lvtour/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	progress io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvtour",
		Short: "Time-budgeted TSP heuristic solver",
		Long: `lvtour searches for low-cost closed tours through complete, symmetric
weighted graphs. It restarts nearest-neighbour construction followed by 2-opt
refinement until the time budget is spent or the best tour stops improving.

Graph files list one undirected edge per line:
  n
  header (ignored)
  i j distance        (1-based node indices)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(newSolveCmd(a), newEvalCmd(a), newGenCmd(a))

	return root
}

// setup resolves configuration (defaults < file < flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		a.cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(a.stderr, a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}
