package errors

import (
	"errors"
	"fmt"
)

// Validation errors surfaced to the user on signup.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Auth errors surfaced to the user on login.
var (
	ErrNoAccount          = errors.New("no account registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Fetch errors raised at the remote API boundary.
var (
	ErrFetchNetwork = errors.New("network fetch failed")
	ErrFetchParse   = errors.New("response parse failed")
)

// Payload errors raised when decoding a serialized media item hand-off.
var (
	ErrPayloadMissing   = errors.New("payload missing")
	ErrPayloadMalformed = errors.New("payload malformed")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation returns true for signup validation failures
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrPasswordMismatch)
}

// IsAuth returns true for login failures
func IsAuth(err error) bool {
	return errors.Is(err, ErrNoAccount) || errors.Is(err, ErrInvalidCredentials)
}

// IsFetch returns true for remote API failures
func IsFetch(err error) bool {
	return errors.Is(err, ErrFetchNetwork) || errors.Is(err, ErrFetchParse)
}

// IsPayload returns true for serialized hand-off failures
func IsPayload(err error) bool {
	return errors.Is(err, ErrPayloadMissing) || errors.Is(err, ErrPayloadMalformed)
}
