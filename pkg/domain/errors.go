package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an adventure id cannot be found in the store.
var ErrNotFound = errors.New("adventure not found")

// ValidationError reports a structurally invalid document (missing required
// field on a write). The API surface maps it to a client error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
