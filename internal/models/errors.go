package models

import (
	"errors"
	"fmt"
)

// Request body errors
var (
	// ErrNoJSONData covers an absent body and a body that does not decode.
	// The message is part of the API contract.
	ErrNoJSONData = errors.New("No JSON data provided")
)

// ValidationError reports a required request field that was missing or null.
type ValidationError struct {
	Field string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("Missing required field: %s", ve.Field)
}
