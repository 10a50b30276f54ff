// Package errors provides the structured error type returned by the
// metacpan registry client.
//
// Every failure surfaced by the client carries one of three codes:
//   - NOT_FOUND: the registry answered 404 for the requested name
//   - HTTP_ERROR: transport failure, non-404 error status, unreadable body,
//     or a body that does not decode into the expected record
//   - INVALID_URL: the request URL could not be built from the given name
//
// # Usage
//
//	info, err := client.GetDistributionInfo(ctx, "Moose")
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // No such distribution
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeHTTP, origErr, "GET %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the registry client.
const (
	// ErrCodeNotFound means the registry has no such distribution or module.
	ErrCodeNotFound Code = "NOT_FOUND"

	// ErrCodeHTTP covers transport, status, body-read and decode failures.
	ErrCodeHTTP Code = "HTTP_ERROR"

	// ErrCodeURL means the request URL could not be constructed.
	ErrCodeURL Code = "INVALID_URL"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code       Code   // Machine-readable error code
	Message    string // Human-readable message
	Cause      error  // Underlying error (optional)
	StatusCode int    // HTTP status of the response, 0 if none was received
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets sentinels built with [Sentinel] match any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Cause == nil && t.StatusCode == 0 && t.Code == e.Code
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// WithStatus records the HTTP status code that produced e and returns e.
func (e *Error) WithStatus(status int) *Error {
	e.StatusCode = status
	return e
}

// Sentinel returns a bare *Error for code, suitable for package-level
// variables compared with the standard library's errors.Is.
func Sentinel(code Code) *Error {
	return &Error{Code: code}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// StatusCode extracts the HTTP status recorded on err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
