package postcap

import (
	"errors"
	"fmt"
)

// Application error codes. These map to the failure taxonomy of the
// extraction engine: EINVALID covers unusable input (including a root that
// is not a recognizable post container), ENOTFOUND covers missing entities,
// EUNAVAILABLE covers unreachable collaborators, and EINTERNAL is the
// catch-all for everything else.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EINTERNAL    = "internal"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("postcap error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL; nil returns the empty
// string.
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
// Non-application errors always return "Internal error."; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
