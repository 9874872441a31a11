package main

import (
	"errors"
	"fmt"
	"strconv"

	"optres/cmd/optres/option"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// maxChoices bounds how many discrete values are offered as a select list.
// Larger int domains are asked for as free text.
const maxChoices = 32

var pickCmd = &cobra.Command{
	Use:   "pick [preset]",
	Short: "Choose every parameter of a preset in a form, then resolve it",
	Long: "Ask for a value for each parameter of the preset, pre-filled with its\n" +
		"default, and print the resolution. Values outside the declared ranges\n" +
		"are rejected by the form.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: presetCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveTarget(args)
		if err != nil {
			return err
		}
		bids, err := runPickForm(p)
		if err != nil {
			return err
		}
		r, err := resolve(p, bids, resolutionOpts()...)
		if err != nil {
			return err
		}
		defer r.Close()
		return writeReport(cmd.OutOrStdout(), buildReport(p.Name, r), flagOutput)
	},
}

func init() {
	addSpecFlag(pickCmd)
	pickCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "output format: text, yaml or json")
}

// runPickForm shows one field per parameter of p that its specification
// declares and returns the answers as bids, in guide order.
func runPickForm(p option.Preset) (bidList, error) {
	var (
		fields  []huh.Field
		names   []string
		answers []*string
	)
	for _, e := range p.Guide.Params() {
		if !option.Contains(p.Spec, string(e.Char)) {
			continue
		}
		answer := new(string)
		*answer = pickDefault(p, e)
		fields = append(fields, pickField(p, e, answer))
		names = append(names, e.Name)
		answers = append(answers, answer)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: the specification declares no parameter of the guide", p.Name)
	}

	form := huh.NewForm(huh.NewGroup(fields...).Title(p.Name).Description(p.Spec))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, fmt.Errorf("aborted")
		}
		return nil, err
	}

	var bids bidList
	for i, name := range names {
		bids = append(bids, bid{Name: name, Value: *answers[i]})
	}
	return bids, nil
}

func pickField(p option.Preset, e option.GuideEntry, answer *string) huh.Field {
	title := e.DisplayName
	if title == "" {
		title = e.Name
	}

	if choices := pickChoices(p, e); len(choices) > 0 {
		opts := make([]huh.Option[string], len(choices))
		for i, c := range choices {
			opts[i] = huh.NewOption(c.label, c.value)
		}
		return huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(answer)
	}

	input := huh.NewInput().Title(title).Value(answer)
	if e.Kind == option.KindInt {
		input = input.Validate(func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("not a number")
			}
			if !option.IsValidValue(p.Spec, e.Char, n) {
				return option.ErrParamOutOfRange
			}
			return nil
		})
	}
	return input
}

type choice struct {
	label string
	value string
}

// pickChoices lists the values a select field offers: every declared enum
// value the specification allows, or every int value when the declared
// domain is small. It returns nil for free-text parameters.
func pickChoices(p option.Preset, e option.GuideEntry) []choice {
	switch e.Kind {
	case option.KindEnumBegin:
		var out []choice
		for _, ev := range p.Guide.EnumValues(e.Char) {
			if !option.IsValidValue(p.Spec, e.Char, ev.Value) {
				continue
			}
			label := ev.Name
			if ev.DisplayName != "" {
				label = ev.DisplayName
			}
			out = append(out, choice{label: label, value: ev.Name})
		}
		return out

	case option.KindInt:
		ranges, err := option.ListRanges(p.Spec, e.Char)
		if err != nil {
			return nil
		}
		var out []choice
		for _, r := range ranges {
			for v := r.Min; v <= r.Max; v++ {
				if len(out) == maxChoices {
					return nil
				}
				s := strconv.Itoa(v)
				out = append(out, choice{label: s, value: s})
			}
		}
		return out
	}
	return nil
}

// pickDefault is the pre-filled answer for e: the declared default, or the
// empty string when there is none.
func pickDefault(p option.Preset, e option.GuideEntry) string {
	switch e.Kind {
	case option.KindString:
		s, _ := option.GetStringDefault(p.Spec, e.Char)
		return s
	case option.KindEnumBegin:
		def, _ := option.GetDefault(p.Spec, e.Char)
		for _, ev := range p.Guide.EnumValues(e.Char) {
			if ev.Value == def {
				return ev.Name
			}
		}
	case option.KindInt:
		if def, _ := option.GetDefault(p.Spec, e.Char); def >= 0 {
			return strconv.Itoa(def)
		}
	}
	return ""
}
