package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"isofields/chrono"
	"isofields/isoformat"
	"isofields/token"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse LAYOUT TEXT",
		Short: "Parse text with a catalog layout",
		Long: `Parse TEXT with the catalog layout LAYOUT, or with the layout resolved for
--fields when LAYOUT is omitted.`,
		Example: `  isofmt parse dateOptionalTimeParser 2024-03-05T10:30Z
  isofmt parse --fields year,dayOfYear 2024-065`,
		Args: cobra.RangeArgs(1, 2),
	}

	var fieldNames []string

	cmd.Flags().StringSliceVar(&fieldNames, "fields", nil, "resolve the layout from these fields")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args, fieldNames)
	}

	return cmd
}

func runParse(cmd *cobra.Command, args, fieldNames []string) error {
	var (
		f    *token.Formatter
		text string
	)

	switch {
	case len(fieldNames) > 0:
		if len(args) != 1 {
			return errors.New("with --fields, give only the text to parse")
		}

		fields, err := parseFields(fieldNames)
		if err != nil {
			return err
		}

		res, err := isoformat.Resolve(fields, options())
		if err != nil {
			return err
		}

		f, text = res.Formatter, args[0]
	case len(args) == 2:
		found, ok := isoformat.Lookup(args[0])
		if !ok {
			return unknownLayout(args[0])
		}

		f, text = found, args[1]
	default:
		return errors.New("give a layout name and the text to parse, or --fields")
	}

	v, err := f.Parse(text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "values:  %s\n", v)

	if t, err := chrono.ToTime(v); err == nil {
		fmt.Fprintf(out, "instant: %s\n", t.Format(time.RFC3339Nano))
	}

	return nil
}
