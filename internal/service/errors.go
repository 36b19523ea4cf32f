package service

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Every one of these is recoverable at the HTTP
// boundary: not found maps to 404, forbidden and authentication-required
// map to redirects, validation maps to 400.
var (
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrAuthenticationRequired = errors.New("authentication required")
)

// ValidationError reports bad input on a named field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
