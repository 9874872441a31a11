package main

import (
	"encoding/json"
	"fmt"
	"io"

	"optres/cmd/optres/option"

	"gopkg.in/yaml.v3"
)

// paramReport is the printable form of one resolved parameter.
type paramReport struct {
	Key   string `yaml:"key" json:"key"`
	Name  string `yaml:"name" json:"name"`
	Kind  string `yaml:"kind" json:"kind"`
	Value any    `yaml:"value" json:"value"`
	Code  *int   `yaml:"code,omitempty" json:"code,omitempty"`
}

type resolutionReport struct {
	Preset string        `yaml:"preset" json:"preset"`
	Spec   string        `yaml:"spec" json:"spec"`
	Params []paramReport `yaml:"params" json:"params"`
}

func buildReport(name string, r *option.Resolution) resolutionReport {
	rep := resolutionReport{Preset: name, Spec: r.Specification(), Params: []paramReport{}}
	for _, p := range r.Params() {
		pr := paramReport{
			Key:  string(p.Entry.Char),
			Name: p.Entry.Name,
			Kind: p.Entry.Kind.String(),
		}
		switch p.Entry.Kind {
		case option.KindInt:
			v, _ := p.Int()
			pr.Value = v
		case option.KindEnumBegin:
			v, _ := p.Int()
			pr.Value = p.Text(r.Guide())
			pr.Code = &v
		default:
			pr.Value = p.Text(r.Guide())
		}
		rep.Params = append(rep.Params, pr)
	}
	return rep
}

// writeReport prints rep as text, yaml or json.
func writeReport(w io.Writer, rep resolutionReport, format string) error {
	switch format {
	case "", "text":
		writeText(w, rep)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("invalid output format %q (want text, yaml or json)", format)
	}
}

func writeText(w io.Writer, rep resolutionReport) {
	if len(rep.Params) == 0 {
		fmt.Fprintf(w, "%s: no parameters\n", rep.Preset)
		return
	}
	nameLen := 0
	for _, p := range rep.Params {
		nameLen = max(nameLen, len(p.Name))
	}
	for _, p := range rep.Params {
		switch {
		case p.Code != nil:
			fmt.Fprintf(w, "%s  %-*s  %v (%d)\n", p.Key, nameLen, p.Name, p.Value, *p.Code)
		case p.Kind == option.KindString.String():
			fmt.Fprintf(w, "%s  %-*s  %q\n", p.Key, nameLen, p.Name, p.Value)
		default:
			fmt.Fprintf(w, "%s  %-*s  %v\n", p.Key, nameLen, p.Name, p.Value)
		}
	}
}
