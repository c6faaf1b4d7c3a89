// Package errors provides structured error types for algoviz.
//
// Every terminal outcome of an animated run (empty tree, missing value, no
// Eulerian or Hamiltonian trail) is reported with one of the codes below, so
// hosts can tell a reported outcome apart from a real failure:
//
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // the run finished and narrated "not found"
//	}
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: input validation failures
//   - EMPTY_STRUCTURE, NOT_FOUND, NO_*: deterministic run outcomes
//   - BUSY: a run is already in progress on the same structure
//   - INTERNAL_*: unexpected internal errors
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeInvalidMode   Code = "INVALID_MODE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Run outcomes
	ErrCodeEmptyStructure     Code = "EMPTY_STRUCTURE"
	ErrCodeNotFound           Code = "NOT_FOUND"
	ErrCodeNoEulerianTrail    Code = "NO_EULERIAN_TRAIL"
	ErrCodeNoHamiltonianTrail Code = "NO_HAMILTONIAN_TRAIL"

	// Playback errors
	ErrCodeBusy Code = "BUSY"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// outcomes are codes that describe how a run ended rather than a failure.
var outcomes = map[Code]bool{
	ErrCodeEmptyStructure:     true,
	ErrCodeNotFound:           true,
	ErrCodeNoEulerianTrail:    true,
	ErrCodeNoHamiltonianTrail: true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
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

// IsOutcome reports whether err is a reported run outcome (empty structure,
// not found, no trail) rather than a failure of the host.
func IsOutcome(err error) bool {
	return outcomes[GetCode(err)]
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the user message of the cause if there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
