package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"isofields/chrono"
	"isofields/isoformat"
)

func newPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern NAME",
		Short: "Show a catalog layout and a sample rendering",
		Args:  cobra.ExactArgs(1),
		RunE:  runPattern,
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog layouts",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runPattern(cmd *cobra.Command, args []string) error {
	f, ok := isoformat.Lookup(args[0])
	if !ok {
		return unknownLayout(args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern: %s\n", f.Pattern())

	if !f.CanPrint() {
		fmt.Fprintln(out, "parser:  cannot print")
		return nil
	}

	sample, err := sampleTime()
	if err != nil {
		return err
	}

	text, err := f.Print(chrono.FromTime(sample))
	if err != nil {
		return fmt.Errorf("printing sample: %w", err)
	}

	fmt.Fprintf(out, "sample:  %s\n", text)

	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	for _, name := range isoformat.Names() {
		f, _ := isoformat.Lookup(string(name))
		fmt.Fprintf(w, "%s\t%s\n", name, f.Pattern())
	}

	return w.Flush()
}
