package main

import (
	"fmt"
	"os"
	"strings"

	"optres/cmd/optres/logger"
	"optres/cmd/optres/option"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   appName + " [command]",
	Short: "Resolve option specifications against guides",
	Long: "Resolve option specifications against guides\n\n" +
		"A preset pairs a guide (the parameters a consumer understands) with a\n" +
		"specification such as \"H[1]-2;T[35]/40/80;S[18]\". Presets are loaded from\n" +
		"the built-in set, ~/.config/" + appName + "/guides/*.yml, $" + envGuides + " and --file.\n\n" +
		"Preset names are auto-completable via shell completion (Tab).",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// setup loads the env file from the config directory, then installs the
// default logger. Flags win over the environment.
func setup() error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := loadEnvFile(dir); err != nil {
		return err
	}

	cfg := logger.DefaultConfig()
	cfg.Format = flagLogFormat
	level := flagLogLevel
	if level == "" {
		level = os.Getenv(envLogLevel)
	}
	if level != "" {
		l, err := logger.ParseLevel(level)
		if err != nil {
			return err
		}
		cfg.Level = l
	}
	return logger.Init(cfg)
}

// resolutionOpts returns the options every command resolves with.
func resolutionOpts() []option.Opt {
	return []option.Opt{
		option.WithLogger(logger.ForComponent("resolution")),
		option.WithStringLimit(flagStringLimit),
	}
}

// presetCompletion completes the only positional argument with preset names.
func presetCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return presetNames(toComplete)
}

// presetKeyCompletion completes a preset name, then a parameter key of that
// preset.
func presetKeyCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return presetNames(toComplete)
	case 1:
		return paramCompletion(args[0], toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func presetNames(toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := loadCatalog(flagFiles)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var suggestions []string
	for _, name := range cat.Names() {
		if strings.HasPrefix(name, toComplete) {
			p, _ := cat.Get(name)
			suggestions = append(suggestions, name+"\t"+p.Spec)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// paramCompletion completes a parameter key of the named preset.
func paramCompletion(preset, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := loadCatalog(flagFiles)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	p, ok := cat.Get(preset)
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var suggestions []string
	for _, e := range p.Guide.Params() {
		c := string(e.Char)
		if strings.HasPrefix(c, toComplete) && option.Contains(p.Spec, c) {
			suggestions = append(suggestions, fmt.Sprintf("%s\t%s", c, e.Name))
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
