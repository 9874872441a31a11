package main

import (
	"fmt"
	"io"
	"strconv"

	"optres/cmd/optres/option"

	"github.com/spf13/cobra"
)

var rangesCmd = &cobra.Command{
	Use:               "ranges <preset> <key>",
	Short:             "List the values a parameter may take",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: presetKeyCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveTarget(args[:1])
		if err != nil {
			return err
		}
		c, err := parseChar(args[1])
		if err != nil {
			return err
		}
		return printRanges(cmd.OutOrStdout(), p, c)
	},
}

func init() {
	addSpecFlag(rangesCmd)
}

// printRanges prints one range per line. The first range holding the
// default, if any, is marked.
func printRanges(w io.Writer, p option.Preset, c byte) error {
	ranges, err := option.ListRanges(p.Spec, c)
	if err != nil {
		return fmt.Errorf("%s: parameter %c: %w", p.Name, c, err)
	}
	def, err := option.GetDefault(p.Spec, c)
	if err != nil {
		return fmt.Errorf("%s: parameter %c: %w", p.Name, c, err)
	}
	if len(ranges) == 0 {
		fmt.Fprintln(w, "no values declared")
		return nil
	}
	marked := def < 0
	for _, r := range ranges {
		line := formatRange(r)
		switch {
		case marked || !r.Contains(def):
		case r.Min == r.Max:
			line += "  (default)"
			marked = true
		default:
			line += fmt.Sprintf("  (default %d)", def)
			marked = true
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// formatRange renders a single value as "N" and a range as "MIN-MAX".
func formatRange(r option.Range) string {
	if r.Min == r.Max {
		return strconv.Itoa(r.Max)
	}
	return strconv.Itoa(r.Min) + "-" + strconv.Itoa(r.Max)
}
