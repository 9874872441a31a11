package main

import (
	"fmt"
	"io"
	"strconv"

	"optres/cmd/optres/option"

	"github.com/spf13/cobra"
)

var defaultCmd = &cobra.Command{
	Use:               "default <preset> <key>",
	Short:             "Print the default of a parameter",
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
		return printDefault(cmd.OutOrStdout(), p, c)
	},
}

func init() {
	addSpecFlag(defaultCmd)
}

// printDefault prints the string literal of a string parameter or the
// bracketed default of any other one. A parameter the guide does not
// declare is read as an integer section.
func printDefault(w io.Writer, p option.Preset, c byte) error {
	if e, ok := option.FindOption(p.Guide, c); ok && e.Kind == option.KindString {
		s, err := option.GetStringDefault(p.Spec, c)
		if err != nil {
			return fmt.Errorf("%s: parameter %c: %w", p.Name, c, err)
		}
		fmt.Fprintln(w, strconv.Quote(s))
		return nil
	}

	def, err := option.GetDefault(p.Spec, c)
	if err != nil {
		return fmt.Errorf("%s: parameter %c: %w", p.Name, c, err)
	}
	if def < 0 {
		return fmt.Errorf("%s: parameter %c: %w", p.Name, c, option.ErrParamNotSpecified)
	}
	fmt.Fprintln(w, def)
	return nil
}
