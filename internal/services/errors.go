package services

import (
	"errors"
	"strings"
)

// Error variables
var (
	// ErrNotFound is returned when a referenced user or tweet does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials covers every failed login, whatever the reason.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when the acting user may not modify the target.
	ErrUnauthorized = errors.New("not allowed to modify this resource")
)

// ValidationError carries every human readable problem found in the input, in order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// newValidationError returns nil when there are no messages.
func newValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
