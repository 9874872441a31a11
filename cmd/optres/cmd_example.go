package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const exampleHeader = `# optres guide file reference
# ─────────────────────────────────────────────────────────────────────────────
# A guide lists the parameters a consumer understands. Each parameter has a
# one-letter key used in specifications and a name used for bids.
#   kind: int | string | enum   (enum parameters carry a values list)
# A preset pairs a guide (by name, or inline) with a specification:
#   H[1]-2;T[35]/40/80;S[18]    values 1-2, default 1; 35, 40 or 80 ...
#   N'Simon''s desk'            string literal, '' is a quote
# Run it with:   optres --file <this-file> resolve <preset>
# ─────────────────────────────────────────────────────────────────────────────

`

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the built-in guides as a reference guide file",
	Long: "Print the YAML file that defines the built-in guides and presets.\n" +
		"Use --output to write to a file instead of stdout.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		w := cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}

		fmt.Fprint(w, exampleHeader)
		if _, err := w.Write(builtinGuidesYAML); err != nil {
			return err
		}

		if output != "" {
			fmt.Fprintf(os.Stderr, "written to %s\n", output)
		}
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}
