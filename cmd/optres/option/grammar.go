package option

// Range is an inclusive (Min, Max) pair produced by range listing. A single
// discrete value yields Min == Max. A range with no lower bound ("-5")
// starts at 0.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies inside r.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// maxValue bounds a single numeric token; anything longer is a syntax error.
const maxValue = 1<<31 - 1

// sectionInfo is everything one traversal of a parameter's value text yields.
type sectionInfo struct {
	ranges []Range
	def    int // -1 when no [default] was declared
}

func (s sectionInfo) contains(v int) bool {
	for _, r := range s.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// scan flags
const (
	flagInRange = 1 << iota
	flagInDefault
	flagDefaultSeen
	flagHalfRange
)

// parseSection tokenizes the value text of one parameter. It stops at the
// first alphabetic character, which belongs to the next parameter.
//
// Discrete values and ranges are collected in declaration order. A number
// following '-' closes the open range; any other number starts a new one.
func parseSection(text string) (sectionInfo, error) {
	info := sectionInfo{def: -1}
	var (
		flags      int
		value      int
		cur        Range
		digitInDef bool
		i          int
	)

	flush := func() {
		if flags&flagHalfRange != 0 {
			info.ranges = append(info.ranges, cur)
			flags &^= flagHalfRange
		}
	}

	for i < len(text) && !isAlpha(text[i]) {
		ch := text[i]
		switch {
		case ch == '-':
			if flags&(flagInRange|flagInDefault) != 0 {
				return sectionInfo{}, ErrSyntax
			}
			flags |= flagInRange
			if flags&flagHalfRange == 0 {
				cur = Range{Min: 0, Max: -1}
				flags |= flagHalfRange
			}
			i++

		case ch == '[':
			if flags&(flagInDefault|flagDefaultSeen) != 0 {
				return sectionInfo{}, ErrSyntax
			}
			flags |= flagInDefault
			digitInDef = false
			i++

		case ch == ']':
			if flags&flagInDefault == 0 || !digitInDef {
				return sectionInfo{}, ErrSyntax
			}
			flags &^= flagInDefault
			flags |= flagDefaultSeen
			info.def = value
			i++

		case ch == '/':
			if flags&(flagInDefault|flagInRange) != 0 {
				return sectionInfo{}, ErrSyntax
			}
			flush()
			i++

		case ch == ';':
			i++

		case isDigit(ch):
			value = 0
			for i < len(text) && isDigit(text[i]) {
				value = value*10 + int(text[i]-'0')
				if value > maxValue {
					return sectionInfo{}, ErrSyntax
				}
				i++
			}
			if flags&flagInDefault != 0 {
				digitInDef = true
			}
			if flags&flagInRange != 0 {
				cur.Max = value
			} else {
				flush()
				cur = Range{Min: value, Max: value}
				flags |= flagHalfRange
			}
			flags &^= flagInRange

		default:
			return sectionInfo{}, ErrSyntax
		}
	}

	if i == 0 || flags&(flagInRange|flagInDefault) != 0 {
		return sectionInfo{}, ErrSyntax
	}
	flush()
	return info, nil
}

// CheckValue validates value against the value text of one parameter
// (validate mode). A value of -1 means "unset": it is replaced by the
// declared default, or stays -1 when there is none.
func CheckValue(text string, value int) (int, error) {
	info, err := parseSection(text)
	if err != nil {
		return -1, err
	}
	if value == -1 {
		return info.def, nil
	}
	if !info.contains(value) {
		return value, ErrParamOutOfRange
	}
	return value, nil
}

// ListRanges returns every discrete value or explicit range declared for the
// parameter keyed by c, in declaration order.
func ListRanges(spec string, c byte) ([]Range, error) {
	text, ok := section(spec, c)
	if !ok {
		return nil, ErrSyntax
	}
	info, err := parseSection(text)
	if err != nil {
		return nil, err
	}
	return info.ranges, nil
}

// GetDefault returns the bracketed default of the parameter keyed by c, or
// -1 when none is declared.
func GetDefault(spec string, c byte) (int, error) {
	text, ok := section(spec, c)
	if !ok {
		return -1, ErrSyntax
	}
	info, err := parseSection(text)
	if err != nil {
		return -1, err
	}
	return info.def, nil
}

// IsValidValue reports whether value is achievable for the parameter keyed
// by c.
func IsValidValue(spec string, c byte, value int) bool {
	text, ok := section(spec, c)
	if !ok {
		return false
	}
	_, err := CheckValue(text, value)
	return err == nil
}

// section returns the value text keyed by c: everything after c up to the
// next key. Characters inside a quoted literal are never keys.
func section(spec string, c byte) (string, bool) {
	start := -1
	inQuote := false
	for i := 0; i < len(spec); i++ {
		ch := spec[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
		case inQuote || !isAlpha(ch):
		case start >= 0:
			return spec[start:i], true
		case ch == c:
			start = i + 1
		}
	}
	if start < 0 {
		return "", false
	}
	return spec[start:], true
}

// keys returns the parameter keys of spec in order of appearance.
func keys(spec string) []byte {
	var out []byte
	inQuote := false
	for i := 0; i < len(spec); i++ {
		ch := spec[i]
		if ch == '\'' {
			inQuote = !inQuote
			continue
		}
		if !inQuote && isAlpha(ch) {
			out = append(out, ch)
		}
	}
	return out
}

// Contains reports whether every character of chars keys a section of spec.
func Contains(spec, chars string) bool {
	for i := 0; i < len(chars); i++ {
		if _, ok := section(spec, chars[i]); !ok {
			return false
		}
	}
	return true
}

// CountOptions returns the number of keyed sections in spec.
func CountOptions(spec string) int {
	return len(keys(spec))
}

func isAlpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
