package nmea

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned by Decode when the sentence type key has no
	// registered decoder.
	ErrUnsupported = errors.New("unsupported sentence type")

	// ErrTooShort is returned when a sentence has fewer fields than its layout
	// requires.
	ErrTooShort = errors.New("too few fields")

	// ErrField is returned when a required field cannot be parsed. The
	// concrete error is a *FieldError.
	ErrField = errors.New("invalid field")
)

// FieldError describes a field that failed to decode
type FieldError struct {
	Kind  Kind
	Index int
	Name  string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %d (%s) %q: %v", e.Kind, e.Index, e.Name, e.Value, e.Err)
}

// Unwrap exposes both ErrField and the underlying cause to errors.Is/As
func (e *FieldError) Unwrap() []error {
	return []error{ErrField, e.Err}
}
