package main

import (
	"fmt"
	"io"

	"optres/cmd/optres/option"

	"github.com/spf13/cobra"
)

var guidesCmd = &cobra.Command{
	Use:   "guides",
	Short: "List all presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(flagFiles)
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		printPresets(cmd.OutOrStdout(), cat, verbose)
		return nil
	},
}

func init() {
	guidesCmd.Flags().BoolP("verbose", "v", false, "also print each preset's guide")
}

// printPresets prints every preset aligned: name, specification, description.
func printPresets(w io.Writer, cat *option.Catalog, verbose bool) {
	names := cat.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "no presets found")
		return
	}

	nameLen, specLen := 0, 0
	for _, name := range names {
		p, _ := cat.Get(name)
		nameLen = max(nameLen, len(name))
		specLen = max(specLen, len(p.Spec))
	}

	for _, name := range names {
		p, _ := cat.Get(name)
		if verbose {
			fmt.Fprintln(w, describePreset(p))
			continue
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", nameLen, name, specLen, p.Spec, p.Description)
	}
}
