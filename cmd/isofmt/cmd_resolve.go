package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isofields/chrono"
	"isofields/isoformat"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve FIELD...",
		Short: "Pick the ISO 8601 layout for a set of fields",
		Example: `  isofmt resolve year,monthOfYear,dayOfMonth
  isofmt resolve --basic weekyear weekOfWeekyear dayOfWeek
  isofmt resolve --lenient year dayOfMonth`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolve,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	fields, err := parseFields(args)
	if err != nil {
		return err
	}

	sample, err := sampleTime()
	if err != nil {
		return err
	}

	logger.Debug("resolving", zap.Stringer("fields", fields), zap.Bool("basic", cfg.Basic), zap.Bool("lenient", cfg.Lenient))

	res, err := isoformat.Resolve(fields, options())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern:  %s\n", res.Formatter.Pattern())
	fmt.Fprintf(out, "reduced:  %t\n", res.ReducedPrecision)
	fmt.Fprintf(out, "leftover: %s\n", res.Leftover)

	text, err := res.Formatter.Print(chrono.FromTime(sample))
	if err != nil {
		return fmt.Errorf("printing sample: %w", err)
	}

	fmt.Fprintf(out, "sample:   %s\n", text)

	for _, d := range res.Diagnostics.Warnings {
		fmt.Fprintf(out, "warning:  %s\n", d)
	}

	if cfg.Verbose {
		for _, d := range res.Diagnostics.Infos {
			fmt.Fprintf(out, "info:     %s\n", d)
		}
	}

	return nil
}
