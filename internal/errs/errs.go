// Package errs holds the sentinel errors shared by the service and
// repository layers and mapped to HTTP statuses by the handlers.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness violation.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates a field failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates bad, missing or expired credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// Validation failure codes.
const (
	InvalidName        = "InvalidName"
	InvalidDescription = "InvalidDescription"
	InvalidPrice       = "InvalidPrice"
	InvalidUrgency     = "InvalidUrgency"
	InvalidEmail       = "InvalidEmail"
	InvalidLastName    = "InvalidLastName"
	InvalidUsername    = "InvalidUsername"
	InvalidPassword    = "InvalidPassword"
	WeakPassword       = "WeakPassword"
	InvalidRole        = "InvalidRole"
	InvalidListName    = "InvalidListName"
	InvalidPrivacy     = "InvalidPrivacy"
	InvalidOwner       = "InvalidOwner"
	InvalidUserID      = "InvalidUserID"
)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes every ValidationError match ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid builds a ValidationError.
func Invalid(code, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// Code returns the validation code carried by err, or "" when err is not a
// validation failure.
func Code(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

// kindError carries a human readable message while matching one of the
// sentinels through errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NotFound formats a message that matches ErrNotFound.
func NotFound(format string, args ...interface{}) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// AlreadyExists formats a message that matches ErrAlreadyExists.
func AlreadyExists(format string, args ...interface{}) error {
	return &kindError{kind: ErrAlreadyExists, msg: fmt.Sprintf(format, args...)}
}

// Unauthorized formats a message that matches ErrUnauthorized.
func Unauthorized(format string, args ...interface{}) error {
	return &kindError{kind: ErrUnauthorized, msg: fmt.Sprintf(format, args...)}
}
