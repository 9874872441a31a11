package option

import "strconv"

// Param is a read-only snapshot of one resolution entry, for reporting.
type Param struct {
	Entry     GuideEntry
	Specified bool

	value value
}

// Int returns the integer value of an int or enum parameter.
func (p Param) Int() (int, bool) {
	v, ok := p.value.(intValue)
	return int(v), ok
}

// Str returns the value of a string parameter.
func (p Param) Str() (string, bool) {
	v, ok := p.value.(stringValue)
	return string(v), ok
}

// Text renders the value for display. Enum codes are shown as the name of
// the matching enum value when the guide declares one.
func (p Param) Text(g Guide) string {
	if !p.Specified {
		return ""
	}
	switch v := p.value.(type) {
	case stringValue:
		return string(v)
	case intValue:
		if p.Entry.Kind == KindEnumBegin {
			for _, ev := range g.EnumValues(p.Entry.Char) {
				if ev.Value == int(v) {
					return ev.Name
				}
			}
		}
		return strconv.Itoa(int(v))
	}
	return ""
}

// Params returns a snapshot of every entry in guide order. A poisoned or
// closed resolution has none.
func (r *Resolution) Params() []Param {
	out := make([]Param, 0, len(r.entries))
	for _, ent := range r.entries {
		out = append(out, Param{
			Entry:     r.guide[ent.guide],
			Specified: ent.state == specified,
			value:     ent.value,
		})
	}
	return out
}
