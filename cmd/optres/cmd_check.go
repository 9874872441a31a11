package main

import (
	"fmt"
	"io"

	"optres/cmd/optres/option"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [preset]",
	Short: "Validate a preset's specification against its guide",
	Long: "Parse every section of the specification that the guide declares and\n" +
		"report the first syntax or range error. Enum sections may only name\n" +
		"declared codes and string sections must be well-formed literals.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: presetCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveTarget(args)
		if err != nil {
			return err
		}
		return checkPreset(cmd.OutOrStdout(), p)
	},
}

func init() {
	addSpecFlag(checkCmd)
}

// checkPreset validates p and prints a summary. Keys of the specification
// that the guide does not declare are reported but are not an error.
func checkPreset(w io.Writer, p option.Preset) error {
	if err := option.ValidateSpec(p.Guide, p.Spec); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	known := 0
	for _, e := range p.Guide.Params() {
		if option.Contains(p.Spec, string(e.Char)) {
			known++
		}
	}
	fmt.Fprintf(w, "%s: %s (%d of %d sections known to the guide)\n",
		p.Name, option.ErrorString(option.Success), known, option.CountOptions(p.Spec))
	return nil
}
