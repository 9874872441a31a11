package option

// Kind identifies the role of one guide entry.
type Kind int

const (
	KindEnd Kind = iota
	KindInt
	KindString
	KindEnumBegin
	KindEnumValue
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "end"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindEnumBegin:
		return "enum"
	case KindEnumValue:
		return "enum-value"
	default:
		return "unknown"
	}
}

// GuideEntry is one immutable parameter descriptor.
//
// Char is the key into the specification string and the lookup key after
// Finish. Name is the key used for bids. Value is only meaningful for
// KindEnumValue entries: it is the integer a matching bid resolves to.
type GuideEntry struct {
	Kind        Kind
	Char        byte
	Name        string
	DisplayName string
	Value       int
}

// Guide is a flat ordered list of entries. It ends at the first KindEnd
// entry or at the end of the slice, whichever comes first. KindEnumValue
// entries belong to the nearest preceding KindEnumBegin.
type Guide []GuideEntry

// End terminates a guide. It is optional for Go slices.
var End = GuideEntry{Kind: KindEnd}

// IntParam declares an integer parameter keyed by c.
func IntParam(c byte, name, displayName string) GuideEntry {
	return GuideEntry{Kind: KindInt, Char: c, Name: name, DisplayName: displayName}
}

// StringParam declares a string parameter keyed by c.
func StringParam(c byte, name, displayName string) GuideEntry {
	return GuideEntry{Kind: KindString, Char: c, Name: name, DisplayName: displayName}
}

// EnumParam declares an enumerated parameter keyed by c. Its values are the
// EnumValue entries that directly follow it.
func EnumParam(c byte, name, displayName string) GuideEntry {
	return GuideEntry{Kind: KindEnumBegin, Char: c, Name: name, DisplayName: displayName}
}

// EnumValue declares one named value of the preceding EnumParam; a bid
// matching name or displayName resolves to value.
func EnumValue(value int, name, displayName string) GuideEntry {
	return GuideEntry{Kind: KindEnumValue, Name: name, DisplayName: displayName, Value: value}
}

// entries returns the guide up to (not including) its End marker.
func (g Guide) entries() Guide {
	for i, e := range g {
		if e.Kind == KindEnd {
			return g[:i]
		}
	}
	return g
}

// Params returns the entries that occupy a resolution slot, in guide order.
func (g Guide) Params() []GuideEntry {
	var out []GuideEntry
	for _, e := range g.entries() {
		switch e.Kind {
		case KindInt, KindString, KindEnumBegin:
			out = append(out, e)
		}
	}
	return out
}

// EnumValues returns the KindEnumValue entries that follow the enum parameter
// keyed by c. It returns nil when c is not an enum parameter.
func (g Guide) EnumValues(c byte) []GuideEntry {
	g = g.entries()
	for i, e := range g {
		if e.Kind != KindEnumBegin || e.Char != c {
			continue
		}
		return enumValuesAt(g, i)
	}
	return nil
}

func enumValuesAt(g Guide, begin int) []GuideEntry {
	end := begin + 1
	for end < len(g) && g[end].Kind == KindEnumValue {
		end++
	}
	return g[begin+1 : end]
}

// FindOption returns the parameter entry keyed by c.
func FindOption(g Guide, c byte) (GuideEntry, bool) {
	for _, e := range g.Params() {
		if e.Char == c {
			return e, true
		}
	}
	return GuideEntry{}, false
}

// check reports ErrInternal for kinds the engine does not understand and
// for enum values that have no owning enum parameter.
func (g Guide) check() error {
	inEnum := false
	for _, e := range g.entries() {
		switch e.Kind {
		case KindInt, KindString:
			inEnum = false
		case KindEnumBegin:
			inEnum = true
		case KindEnumValue:
			if !inEnum {
				return ErrInternal
			}
		default:
			return ErrInternal
		}
	}
	return nil
}
