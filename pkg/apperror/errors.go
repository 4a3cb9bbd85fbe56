package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed caller input. The request is rejected
// and no partial result is produced.
type ValidationError struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a custom message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldValidationError creates a validation error for a single field
func NewFieldValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Message: "Validation failed",
		Fields:  []FieldError{{Field: field, Message: message}},
	}
}

// StorageError reports a read/write failure or timeout at the storage layer.
// An empty result set is not a storage error. Retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps a storage failure with the operation that failed
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// UpstreamError reports a failure from an external collaborator. The upstream
// error payload is preserved verbatim for the caller.
type UpstreamError struct {
	Status  int
	Payload json.RawMessage
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream: %v", e.Err)
	}
	return fmt.Sprintf("upstream: status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an upstream error preserving the response payload
func NewUpstreamError(status int, payload []byte) *UpstreamError {
	return &UpstreamError{Status: status, Payload: payload}
}

// NewUpstreamFailure creates an upstream error for a transport-level failure
func NewUpstreamFailure(err error) *UpstreamError {
	return &UpstreamError{Err: err}
}

// NotFoundError reports a missing resource
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
