package models

import (
	"errors"
	"fmt"
)

// InputError reports a missing or malformed field on an inbound payload.
// The HTTP layer maps it to a 400; the core never attempts generation
// when one is returned.
type InputError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func NewInputError(field, reason string) *InputError {
	return &InputError{Field: field, Reason: reason}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// AsInputError unwraps err into an *InputError if one is in its chain.
func AsInputError(err error) (*InputError, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
