package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"optres/cmd/optres/option"
	"optres/cmd/optres/optionyaml"

	"github.com/joho/godotenv"
)

// appName is the single source of truth for the application name.
// All derived identifiers (env vars, config paths, error messages) are computed from it.
const appName = "optres"

//go:embed builtin_guides.yml
var builtinGuidesYAML []byte

// Derived env var names, computed once at init from appName.
var (
	envConfigDir = strings.ToUpper(appName) + "_CONFIG_DIR"
	envGuides    = strings.ToUpper(appName) + "_GUIDES"
	envLogLevel  = strings.ToUpper(appName) + "_LOG_LEVEL"
	envFileName  = appName + ".env"
)

// resolveConfigDir returns the base config directory for the application.
// Priority: $<APPNAME>_CONFIG_DIR > $XDG_CONFIG_HOME/<appName> > ~/.config/<appName>
func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadEnvFile loads <configDir>/<appName>.env into the process environment.
// Variables already set in the environment win. A missing file is not an error.
func loadEnvFile(configDir string) error {
	path := filepath.Join(configDir, envFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// resolveGuideFiles returns all guide files to load after the built-ins.
// Order: configDir/guides/*.yml → $<APPNAME>_GUIDES → flagFiles
// A missing guides directory is silently skipped; explicitly provided paths
// are kept as-is (errors will surface at read time with a clear message).
func resolveGuideFiles(configDir string, flagFiles []string) ([]string, error) {
	files, err := globYAML(filepath.Join(configDir, "guides"))
	if err != nil {
		return nil, err
	}
	files = append(files, splitColon(os.Getenv(envGuides))...)
	files = append(files, flagFiles...)
	return files, nil
}

// globYAML returns sorted *.yml / *.yaml files in dir.
// Returns nil without error if dir does not exist.
func globYAML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

// splitColon splits a colon-separated string, filtering empty parts.
func splitColon(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ":")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadCatalog builds the preset catalog from the built-in guides followed by
// every resolved guide file. Preset and guide names must be unique across
// all of them.
func loadCatalog(flagFiles []string) (*option.Catalog, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}
	files, err := resolveGuideFiles(configDir, flagFiles)
	if err != nil {
		return nil, err
	}
	return loadSources(files)
}

// loadSources reads the given guide files and builds the catalog, with the
// built-in guides always loaded first.
func loadSources(files []string) (*option.Catalog, error) {
	inputs := [][]byte{builtinGuidesYAML}
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("guide file %s: %w", f, err)
		}
		inputs = append(inputs, data)
	}
	cat, err := optionyaml.BuildMany(inputs...)
	if err != nil {
		return nil, err
	}
	slog.Debug("catalog loaded", "files", len(files), "presets", cat.Len())
	return cat, nil
}
