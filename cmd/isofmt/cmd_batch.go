package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isofields/internal/diagnostic"
	"isofields/internal/request"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Resolve every request of a YAML batch file",
		Long: `Resolve every request of a YAML batch file concurrently and print one row
per request. A failed request does not stop the others.

With --watch the file is resolved again each time it changes, until
interrupted.`,
		Args: cobra.ExactArgs(1),
	}

	var (
		workers int
		watch   bool
	)

	cmd.Flags().IntVar(&workers, "workers", 0, "requests resolved at once (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run when the file changes")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}

		return runBatch(cmd, args[0], workers, watch)
	}

	return cmd
}

func runBatch(cmd *cobra.Command, path string, workers int, watch bool) error {
	if workers < 0 {
		return fmt.Errorf("--workers must not be negative, got %d", workers)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := batchOnce(ctx, cmd.OutOrStdout(), path, workers)
	if !watch {
		return err
	}

	if err != nil {
		logger.Warn("batch failed, waiting for changes", zap.String("path", path), zap.Error(err))
	}

	logger.Info("watching batch file", zap.String("path", path), zap.Duration("debounce", cfg.Debounce))

	return request.Watch(ctx, logger, path, cfg.Debounce, func() {
		if err := batchOnce(ctx, cmd.OutOrStdout(), path, workers); err != nil {
			logger.Warn("batch failed", zap.String("path", path), zap.Error(err))
		}
	})
}

func batchOnce(ctx context.Context, out io.Writer, path string, workers int) error {
	f, err := request.LoadFile(path)
	if err != nil {
		return err
	}

	for _, d := range request.Validate(f).All() {
		logger.Warn("batch file problem",
			zap.String("severity", d.Severity.String()),
			zap.String("code", d.Code),
			zap.String("request", d.Fields),
			zap.String("message", d.Message))
	}

	sample, err := sampleTime()
	if err != nil {
		return err
	}

	outcomes, err := request.NewRunner(logger, workers, sample).Run(ctx, f)
	if err != nil {
		return err
	}

	return printOutcomes(out, outcomes)
}

func printOutcomes(out io.Writer, outcomes []request.Outcome) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATTERN\tSAMPLE\tLEFTOVER\tSTATUS")

	var diags diagnostic.Diagnostics

	failed := 0

	for _, o := range outcomes {
		status := "ok"
		if o.Err != nil {
			status = o.Err.Error()
			failed++
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			o.Name, dash(o.Pattern), dash(o.Sample), dash(strings.Join(o.Leftover, ",")), status)

		diags.Merge(o.Diagnostics)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(out, "warning: %s\n", d)
	}

	fmt.Fprintf(out, "%d requests, %d failed\n", len(outcomes), failed)

	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
