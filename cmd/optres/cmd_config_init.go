package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed cmd_config_init_guides.yml
var initGuidesYAML []byte

//go:embed cmd_config_init_env
var initEnv []byte

const configInitGuidesHeader = "# optres guides\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n" +
	"# Define your guides and presets here. Every *.yml file in this directory\n" +
	"# is loaded after the built-in guides.\n" +
	"# Reference:  optres example\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n\n"

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise the " + appName + " config directory with starter files",
	Long: "Create the " + appName + " config directory and populate it with a starter\n" +
		"guide file and env file.\n\n" +
		"Files created:\n" +
		"  <config>/guides/guides.yml  guide and preset definitions\n" +
		"  <config>/" + appName + ".env          environment defaults\n\n" +
		"The default config directory follows the same priority as the main command:\n" +
		"  $" + envConfigDir + " > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		dir, _ := cmd.Flags().GetString("dir")

		if dir == "" {
			var err error
			dir, err = resolveConfigDir()
			if err != nil {
				return err
			}
		}

		files, err := initConfigDir(dir, force)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "initialised %s\n", dir)
		for _, f := range files {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		fmt.Fprintf(os.Stderr, "\nRun `%s guides` to see available presets.\n", appName)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config directory and the guide files that would be loaded",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		files, err := resolveGuideFiles(dir, flagFiles)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, dir)
		for _, f := range files {
			fmt.Fprintf(w, "  %s\n", f)
		}
		return nil
	},
}

// initConfigDir writes the starter files into dir and returns their paths.
func initConfigDir(dir string, force bool) ([]string, error) {
	guidesDir := filepath.Join(dir, "guides")
	if err := os.MkdirAll(guidesDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", guidesDir, err)
	}

	guidesFile := filepath.Join(guidesDir, "guides.yml")
	envFile := filepath.Join(dir, envFileName)

	if err := writeInitFile(guidesFile, configInitGuidesHeader, initGuidesYAML, force); err != nil {
		return nil, err
	}
	if err := writeInitFile(envFile, "", initEnv, force); err != nil {
		return nil, err
	}
	return []string{guidesFile, envFile}, nil
}

func writeInitFile(path, header string, content []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if header != "" {
		fmt.Fprint(f, header)
	}
	_, err = f.Write(content)
	return err
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite existing files")
	configInitCmd.Flags().String("dir", "", "target config directory (default: auto-resolved)")
}
