// Package main provides the CLI entrypoint for isofmt.
//
// isofmt chooses ISO 8601 layouts for sets of date/time fields:
//   - resolve: pick the layout for a field set
//   - pattern, list: inspect the catalog of named layouts
//   - parse: read text with a catalog or resolved layout
//   - batch: resolve a YAML file of requests, optionally re-running on change
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"isofields/field"
	"isofields/internal/config"
	"isofields/isoformat"
)

var (
	// Global flags
	verbose bool
	basic   bool
	lenient bool
	at      string

	cfg    config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "isofmt",
		Short: "Choose ISO 8601 layouts for sets of date/time fields",
		Long: `isofmt picks the ISO 8601 layout that prints exactly the requested
date/time fields, in extended (yyyy-MM-dd) or basic (yyyyMMdd) format.

Defaults are read from ISOFMT_BASIC, ISOFMT_LENIENT, ISOFMT_VERBOSE,
ISOFMT_WORKERS and ISOFMT_WATCH_DEBOUNCE; flags override them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			cfg, err = config.Load()
			if err != nil {
				return err
			}

			applyFlags(cmd)

			zc := zap.NewProductionConfig()
			if cfg.Verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&basic, "basic", false, "use the basic format without separators")
	root.PersistentFlags().BoolVar(&lenient, "lenient", false, "accept layouts outside strict ISO 8601")
	root.PersistentFlags().StringVar(&at, "at", "", "RFC 3339 instant to print samples with (default now)")

	root.AddCommand(newResolveCmd(), newPatternCmd(), newListCmd(), newParseCmd(), newBatchCmd())

	return root
}

// applyFlags overrides the environment defaults with the flags the user set.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	if flags.Changed("basic") {
		cfg.Basic = basic
	}

	if flags.Changed("lenient") {
		cfg.Lenient = lenient
	}
}

func options() isoformat.Options {
	return cfg.Options()
}

func sampleTime() (time.Time, error) {
	if at == "" {
		return time.Now(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at: %w", err)
	}

	return t, nil
}

// parseFields accepts field names as separate arguments, comma lists, or both.
func parseFields(args []string) (field.Set, error) {
	types, err := field.ParseList(strings.Join(args, ","))
	if err != nil {
		return 0, err
	}

	return field.NewSet(types...), nil
}

func unknownLayout(name string) error {
	if similar := isoformat.Similar(name, 3); len(similar) > 0 {
		return fmt.Errorf("no catalog layout named %q, did you mean %s?", name, strings.Join(similar, " or "))
	}

	return fmt.Errorf("no catalog layout named %q, see isofmt list", name)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
