package mdharvest

import (
	"errors"
	"fmt"
)

// Application error codes. Codes classify failures for the crawl loop:
// EUNAVAILABLE is the only retryable code; EREMOTE, ENOTFOUND and ECONTENT
// are per-resource skips; EINVALID and EINTERNAL indicate caller or
// programming errors.
const (
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity or structural element missing
	EUNAVAILABLE = "unavailable" // transient network failure, retryable
	EREMOTE      = "remote"      // HTTP error status from the origin, not retryable
	ECONTENT     = "content"     // extracted content below the quality gate
	EINTERNAL    = "internal"    // internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("mdharvest error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Transient reports whether err is worth retrying. Only transport-level
// failures (EUNAVAILABLE) qualify; an HTTP error status is final.
func Transient(err error) bool {
	return ErrorCode(err) == EUNAVAILABLE
}
