package main

import (
	"fmt"
	"strings"

	"optres/cmd/optres/option"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

// flagSpec replaces the specification of the selected preset.
var flagSpec string

func addSpecFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSpec, "spec", "", "specification to use instead of the preset's own")
}

// resolveTarget returns the preset named by args[0], or lets the user pick
// one interactively when no name is given. --spec, if set, replaces the
// preset's specification.
func resolveTarget(args []string) (option.Preset, error) {
	cat, err := loadCatalog(flagFiles)
	if err != nil {
		return option.Preset{}, err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = choosePreset(cat)
		if err != nil {
			return option.Preset{}, err
		}
	}
	return lookupPreset(cat, name)
}

func lookupPreset(cat *option.Catalog, name string) (option.Preset, error) {
	p, ok := cat.Get(name)
	if !ok {
		return option.Preset{}, fmt.Errorf("preset %q not found\navailable: %s", name, strings.Join(cat.Names(), ", "))
	}
	if flagSpec != "" {
		p.Spec = flagSpec
	}
	return p, nil
}

// choosePreset opens a fuzzy finder over the catalog.
func choosePreset(cat *option.Catalog) (string, error) {
	names := cat.Names()
	if len(names) == 0 {
		return "", fmt.Errorf("no presets found")
	}
	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string {
			p, _ := cat.Get(names[i])
			return fmt.Sprintf("%-16s %s", names[i], p.Spec)
		},
		fuzzyfinder.WithPromptString("Select preset: "),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 {
				return ""
			}
			p, _ := cat.Get(names[i])
			return describePreset(p)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("no preset selected: %w", err)
	}
	return names[idx], nil
}

// describePreset renders a preset and its guide as plain text.
func describePreset(p option.Preset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "  %s\n", p.Description)
	}
	fmt.Fprintf(&b, "\nspec: %s\n\n", p.Spec)
	for _, e := range p.Guide.Params() {
		mark := " "
		if option.Contains(p.Spec, string(e.Char)) {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %c  %-14s %-7s %s\n", mark, e.Char, e.Name, e.Kind, e.DisplayName)
		for _, ev := range p.Guide.EnumValues(e.Char) {
			fmt.Fprintf(&b, "      %4d  %s\n", ev.Value, ev.Name)
		}
	}
	return b.String()
}

// parseChar parses a parameter key argument.
func parseChar(s string) (byte, error) {
	if len(s) != 1 || !isKey(s[0]) {
		return 0, fmt.Errorf("parameter key must be a single letter, got %q", s)
	}
	return s[0], nil
}

func isKey(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
