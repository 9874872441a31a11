package option

import "strings"

// ReadStringLiteral reads a quoted literal from the start of text. A doubled
// quote inside the literal is an escaped quote; anything after the closing
// quote is ignored. An empty text is the empty string.
//
// capacity bounds the decoded length in bytes; a value <= 0 means no bound.
// Overflow is reported as ErrOutOfMemory instead of truncating.
func ReadStringLiteral(text string, capacity int) (string, error) {
	if text == "" {
		return "", nil
	}
	if text[0] != '\'' {
		return "", ErrSyntax
	}

	var b strings.Builder
	for i := 1; i < len(text); i++ {
		ch := text[i]
		if ch == '\'' {
			if i+1 < len(text) && text[i+1] == '\'' {
				i++
			} else {
				return b.String(), nil
			}
		}
		if capacity > 0 && b.Len() >= capacity {
			return "", ErrOutOfMemory
		}
		b.WriteByte(ch)
	}
	// unterminated
	return "", ErrSyntax
}

// GetStringDefault returns the literal declared for the string parameter
// keyed by c, or the empty string when its section carries none.
func GetStringDefault(spec string, c byte) (string, error) {
	text, ok := section(spec, c)
	if !ok {
		return "", ErrSyntax
	}
	return ReadStringLiteral(text, 0)
}
