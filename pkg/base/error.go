// Package base defines the error taxonomy shared by the dataset and
// preprocessing packages.
package base

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure into one of the library's error
// categories.
type ErrorKind int

const (
	// InvalidParameters indicates structurally invalid caller-supplied
	// configuration or constructor arguments.
	InvalidParameters ErrorKind = iota
	// InvalidData indicates a problem with input data at ingestion time:
	// an unreadable file, a missing target column or an unparsable cell.
	InvalidData
	// InvalidState indicates a mismatch between fitted state and the
	// input presented at transform time.
	InvalidState
	// UntrainedModel indicates an operation that requires fitted state
	// was invoked without it.
	UntrainedModel
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidParameters:
		return "invalid parameters"
	case InvalidData:
		return "invalid data"
	case InvalidState:
		return "invalid state"
	case UntrainedModel:
		return "untrained model"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// Error is the failure type returned by every fallible operation in the
// library. It pairs an ErrorKind with a message and an optional wrapped
// cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// NewError creates an Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates an Error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error that wraps an underlying cause.
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is or wraps an Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
