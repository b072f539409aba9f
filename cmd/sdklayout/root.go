package main

import (
	"encoding/json"
	"io"
	"log/slog"

	appconfig "github.com/bundlekit/sdklayout/application/config"
	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/log"
	"github.com/spf13/cobra"
)

// app carries state resolved by the root command before any subcommand runs.
type app struct {
	cfg          entities.LayoutConfig
	configPath   string
	logLevel     string
	logFormat    string
	parallelism  int
	logTimestamp bool
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "sdklayout",
		Short: "Lay out Android app bundle modules for runtime-enabled SDKs",
		Long: `sdklayout builds manifest elements and rewrites module entry layouts
for runtime-enabled SDK modules.

Layout settings come from --config (YAML) and SDKLAYOUT_* environment
variables; flags take precedence over both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "layout config file (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json, logfmt")
	cmd.PersistentFlags().BoolVar(&a.logTimestamp, "log-timestamp", false, "prefix log records with their time")
	cmd.PersistentFlags().IntVar(&a.parallelism, "parallelism", 0, "modules mutated concurrently (default: one per CPU)")

	cmd.AddCommand(
		newInitCommand(),
		newRelocateCommand(a),
		newReceiverCommand(),
		newSchemaCommand(),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := appconfig.Load(a.configPath, a.overrides(cmd)...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Load has already validated both values.
	level, _ := log.ParseLevel(cfg.LogLevel)
	format, _ := log.ParseFormat(cfg.LogFormat)
	slog.SetDefault(log.New(cmd.ErrOrStderr(),
		log.WithLevel(level),
		log.WithFormat(format),
		log.WithTimestamp(cfg.LogTimestamp),
	))
	return nil
}

// overrides turns the persistent flags the user actually set into config options.
func (a *app) overrides(cmd *cobra.Command) []entities.ConfigOption {
	var opts []entities.ConfigOption
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		opts = append(opts, entities.WithLogLevel(a.logLevel))
	}
	if flags.Changed("log-format") {
		opts = append(opts, entities.WithLogFormat(a.logFormat))
	}
	if flags.Changed("log-timestamp") {
		opts = append(opts, entities.WithLogTimestamp(a.logTimestamp))
	}
	if flags.Changed("parallelism") {
		opts = append(opts, entities.WithParallelism(a.parallelism))
	}
	return opts
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
