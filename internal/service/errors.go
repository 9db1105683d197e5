package service

import "errors"

var (
	ErrInvalid   = errors.New("invalid")
	ErrNotFound  = errors.New("not found")
	ErrStoreSave = errors.New("failed to save")
)

// ValidationError carries the exact user-facing message for a rejected
// input while still matching ErrInvalid under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
