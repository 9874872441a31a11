package option

import "fmt"

// SpecError reports which parameter of a specification failed validation.
// Unwrap yields the bare Code.
type SpecError struct {
	Char byte
	Name string
	Err  error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("param %s (%q): %v", string(e.Char), e.Name, e.Err)
}

func (e *SpecError) Unwrap() error { return e.Err }

// ValidateSpec runs the validate-only traversal over the section of every
// guide parameter present in spec. Parameters absent from spec are skipped.
// Enum sections may only name declared codes and string sections must be
// well-formed literals.
func ValidateSpec(g Guide, spec string) error {
	if err := g.check(); err != nil {
		return err
	}
	g = g.entries()
	for i, e := range g {
		if e.Kind != KindInt && e.Kind != KindString && e.Kind != KindEnumBegin {
			continue
		}
		text, ok := section(spec, e.Char)
		if !ok {
			continue
		}
		if err := validateSection(g, i, text); err != nil {
			return &SpecError{Char: e.Char, Name: e.Name, Err: err}
		}
	}
	return nil
}

func validateSection(g Guide, idx int, text string) error {
	e := g[idx]
	if e.Kind == KindString {
		_, err := ReadStringLiteral(text, 0)
		return err
	}

	info, err := parseSection(text)
	if err != nil {
		return err
	}
	if e.Kind != KindEnumBegin {
		return nil
	}
	codes := map[int]bool{}
	for _, ev := range enumValuesAt(g, idx) {
		codes[ev.Value] = true
	}
	for _, rg := range info.ranges {
		if rg.Max-rg.Min > len(codes) {
			return ErrBadParam
		}
		for v := rg.Min; v <= rg.Max; v++ {
			if !codes[v] {
				return ErrBadParam
			}
		}
	}
	return nil
}
