package option

import (
	"errors"
	"fmt"
)

// Code is the flat error taxonomy shared by the grammar parser and the
// resolution engine. Every code maps to exactly one fixed sentence.
type Code int

const (
	Success Code = iota
	OutOfMemory
	ParamOutOfRange
	ParamNotSpecified
	ParamNotFound
	ParamAlreadySpecified
	BadParam
	Syntax
	Internal
)

// The codes double as sentinel errors so callers can use errors.Is.
var (
	ErrOutOfMemory           error = OutOfMemory
	ErrParamOutOfRange       error = ParamOutOfRange
	ErrParamNotSpecified     error = ParamNotSpecified
	ErrParamNotFound         error = ParamNotFound
	ErrParamAlreadySpecified error = ParamAlreadySpecified
	ErrBadParam              error = BadParam
	ErrSyntax                error = Syntax
	ErrInternal              error = Internal
)

// ErrPresetExists is returned by Catalog.Register for a duplicate name.
var ErrPresetExists = errors.New("preset already exists")

var codeText = [...]string{
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

// ErrorString returns the fixed human-readable sentence for c.
func ErrorString(c Code) string {
	if c < 0 || int(c) >= len(codeText) {
		return fmt.Sprintf("Unknown error %d", int(c))
	}
	return codeText[c]
}

func (c Code) Error() string  { return ErrorString(c) }
func (c Code) String() string { return ErrorString(c) }

// CodeOf extracts the Code carried by err. A nil error is Success and an
// error that carries no Code is reported as Internal.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Internal
}
