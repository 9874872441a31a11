package optionyaml

import "errors"

var (
	ErrUnknownKind     = errors.New("unknown parameter kind")
	ErrBadChar         = errors.New("identifying char must be a single ASCII letter")
	ErrDuplicateChar   = errors.New("duplicate identifying char")
	ErrDuplicateName   = errors.New("duplicate parameter name")
	ErrMissingField    = errors.New("missing required field")
	ErrMisplacedValues = errors.New("'values' is only valid on enum parameters")
	ErrDuplicateGuide  = errors.New("guide already exists")
	ErrUnknownGuide    = errors.New("unknown guide")
)
