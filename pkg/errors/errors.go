// Package errors provides structured error types for dotbuilder.
//
// Every failure a caller can react to carries a machine-readable [Code], so the
// CLI and library users can branch on the category without string matching:
//
//   - INVALID_*: input validation failures (graph files, labels, paths)
//   - NODE_LINKED: removal of a node that already participates in an edge
//   - FINALIZED: a second finalize on a single-shot builder
//   - IO_ERROR, RENDER_FAILED, OPEN_FAILED: side-effect failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unknown node %q", key)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidLabel  Code = "INVALID_LABEL"

	// Builder state errors
	ErrCodeNodeLinked Code = "NODE_LINKED"
	ErrCodeFinalized  Code = "FINALIZED"

	// Side-effect errors
	ErrCodeIO             Code = "IO_ERROR"
	ErrCodeRenderFailed   Code = "RENDER_FAILED"
	ErrCodeEngineNotFound Code = "ENGINE_NOT_FOUND"
	ErrCodeOpenFailed     Code = "OPEN_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

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

// UserMessage returns a user-friendly message for the error.
// The code prefix of the innermost *Error is dropped; context added by
// fmt.Errorf wrapping is kept. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return strings.Replace(err.Error(), e.Error(), msg, 1)
}

// ExitCode maps an error to a process exit status.
// Validation problems exit with 2, everything else with 1.
func ExitCode(err error) int {
	switch GetCode(err) {
	case "":
		return 1
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidPath, ErrCodeInvalidLabel:
		return 2
	default:
		return 1
	}
}
