package main

import (
	"errors"

	"optres/cmd/optres/option"
	"optres/pkg/lib"
)

var (
	flagFiles       []string
	flagLogLevel    string
	flagLogFormat   string
	flagStringLimit int
)

func main() {
	rootCmd.AddCommand(guidesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(defaultCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.PersistentFlags().StringArrayVarP(&flagFiles, "file", "f", nil,
		"guide YAML file (repeatable; default: ~/.config/"+appName+"/guides/*.yml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"log level: debug, info, warn or error (default: $"+envLogLevel+" or warn)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text",
		"log format: text or json")
	rootCmd.PersistentFlags().IntVar(&flagStringLimit, "string-limit", 0,
		"maximum length of string values in bytes (0: unlimited)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		// Resolution failures get their own status so scripts can tell them
		// apart from usage and I/O errors.
		var code option.Code
		if errors.As(err, &code) {
			lib.ExitStatus(err, 2)
		}
		lib.Exit(err)
	}
}
