package models

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a referenced profile, match, or account does not
// exist. It is never retried.
var ErrNotFound = errors.New("item not found")

// ErrConditionFailed reports that a conditional write lost to a concurrent
// writer (e.g. a duplicate match creation racing the existence check).
var ErrConditionFailed = errors.New("conditional write failed")

// ValidationError reports a missing or invalid required field. It surfaces to
// the caller synchronously and is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for one field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError reports a failure in the object storage collaborator, such as
// presigning an image upload.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
