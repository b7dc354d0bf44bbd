package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel     = errors.New("label is empty")
	ErrLabelTooLong   = errors.New("label is too long")
	ErrLabelHasSpaces = errors.New("label must be a single word")
	ErrInvalidAddress = errors.New("invalid address")
	ErrNoteTooLong    = errors.New("note is too long")
)
