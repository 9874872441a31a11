package main

import (
	"github.com/spf13/cobra"
)

var (
	flagBids   bidList
	flagOutput string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [preset]",
	Short: "Resolve a preset with the given bids and print the result",
	Long: "Bid a value for each --set name=value in order, then fill every\n" +
		"remaining parameter with its default. Int values must lie in a declared\n" +
		"range; enum values are matched by name or display name, ignoring case.",
	Example: "  " + appName + " resolve basic-disk --set heads=2 --set tracks=80\n" +
		"  " + appName + " resolve coco-file --set ftype=binary -o json",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: presetCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveTarget(args)
		if err != nil {
			return err
		}
		r, err := resolve(p, flagBids, resolutionOpts()...)
		if err != nil {
			return err
		}
		defer r.Close()
		return writeReport(cmd.OutOrStdout(), buildReport(p.Name, r), flagOutput)
	},
}

func init() {
	addSpecFlag(resolveCmd)
	resolveCmd.Flags().VarP(&flagBids, "set", "s", "bid a value for a parameter (repeatable)")
	resolveCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "output format: text, yaml or json")
}
