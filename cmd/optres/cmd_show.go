package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [preset]",
	Short: "Browse and edit a resolved preset in a table",
	Long: "Resolve a preset and display it in an interactive table. Select a row\n" +
		"and press enter to bid a new value for it. Use --no-tui for plain output.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: presetCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveTarget(args)
		if err != nil {
			return err
		}

		noTUI, _ := cmd.Flags().GetBool("no-tui")
		if noTUI {
			r, err := resolve(p, flagBids, resolutionOpts()...)
			if err != nil {
				return err
			}
			defer r.Close()
			return writeReport(cmd.OutOrStdout(), buildReport(p.Name, r), "text")
		}

		m := newShowModel(p, flagBids)
		if m.err != nil {
			return m.err
		}
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	addSpecFlag(showCmd)
	showCmd.Flags().VarP(&flagBids, "set", "s", "initial bid for a parameter (repeatable)")
	showCmd.Flags().Bool("no-tui", false, "print the resolved table without the interactive view")
}
