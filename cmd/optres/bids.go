package main

import (
	"fmt"
	"strings"

	"optres/cmd/optres/option"

	"github.com/spf13/pflag"
)

// bid is one name=value pair given on the command line.
type bid struct {
	Name  string
	Value string
}

// bidList collects repeated --set flags in order. It implements pflag.Value.
type bidList []bid

func (b *bidList) String() string {
	parts := make([]string, len(*b))
	for i, x := range *b {
		parts[i] = x.Name + "=" + x.Value
	}
	return strings.Join(parts, ",")
}

// Set splits on the first '='; the value may itself contain '=' or be empty.
func (b *bidList) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	*b = append(*b, bid{Name: name, Value: value})
	return nil
}

func (b *bidList) Type() string { return "name=value" }

var _ pflag.Value = (*bidList)(nil)

// resolve runs a full resolution of p: every bid in order, then Finish.
// The caller owns the returned resolution and must Close it.
func resolve(p option.Preset, bids bidList, opts ...option.Opt) (*option.Resolution, error) {
	r, err := option.New(p.Guide, p.Spec, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	for _, b := range bids {
		if err := r.AddParam(b.Name, b.Value); err != nil {
			r.Close()
			return nil, fmt.Errorf("%s: %s=%s: %w", p.Name, b.Name, b.Value, err)
		}
	}
	if err := r.Finish(); err != nil {
		r.Close()
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	return r, nil
}
