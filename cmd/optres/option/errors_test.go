package option

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString_Stable(t *testing.T) {
	want := map[Code]string{
		Success:               "The operation completed successfully",
		OutOfMemory:           "Out of memory",
		ParamOutOfRange:       "Parameter out of range",
		ParamNotSpecified:     "Parameter not specified",
		ParamNotFound:         "Unknown parameter",
		ParamAlreadySpecified: "Parameter specified multiple times",
		BadParam:              "Invalid parameter",
		Syntax:                "Syntax error",
		Internal:              "Internal error",
	}
	for c, s := range want {
		if got := ErrorString(c); got != s {
			t.Errorf("ErrorString(%d) = %q, want %q", int(c), got, s)
		}
		if c.Error() != s {
			t.Errorf("Code(%d).Error() = %q, want %q", int(c), c.Error(), s)
		}
	}
	if got := ErrorString(Code(99)); got != "Unknown error 99" {
		t.Errorf("out-of-table code: %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != Success {
		t.Errorf("CodeOf(nil) = %v", got)
	}
	wrapped := fmt.Errorf("check: %w", ErrSyntax)
	if got := CodeOf(wrapped); got != Syntax {
		t.Errorf("CodeOf(wrapped) = %v", got)
	}
	if !errors.Is(wrapped, ErrSyntax) {
		t.Error("errors.Is must see through wrapping")
	}
	if got := CodeOf(errors.New("other")); got != Internal {
		t.Errorf("CodeOf(foreign) = %v", got)
	}
	spec := &SpecError{Char: 'H', Name: "heads", Err: ErrParamOutOfRange}
	if got := CodeOf(spec); got != ParamOutOfRange {
		t.Errorf("CodeOf(SpecError) = %v", got)
	}
}
