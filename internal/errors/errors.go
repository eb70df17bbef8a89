// Package errors provides coded errors for the generator and its command line.
//
// Overview:
//   - Responsibility: Classify failures so callers can tell bad input from broken disks
//   - Key Types: Code for classification, E for a coded error with operation context
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with errors.Is / errors.As through Unwrap
//   - Performance Notes: One allocation per constructed error
//
// Usage:
//
//	err := errors.New(errors.CodeInvalidArgument, "entity has no primary key")
//	wrapped := errors.Wrap(errors.CodeInternal, "projectfs.WriteFile", ioErr)
//	if errors.IsCode(wrapped, errors.CodeInternal) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error.
type Code string

const (
	// CodeInvalidArgument marks descriptor contents the engine refuses to render.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNotFound marks a missing descriptor file or example.
	CodeNotFound Code = "NOT_FOUND"
	// CodeInternal marks filesystem failures and recovered render panics.
	CodeInternal Code = "INTERNAL"
)

// E is a coded error carrying the failing operation.
type E struct {
	Code Code   // Error classification code
	Op   string // Operation that failed
	Err  error  // Underlying error (may be nil)
	Msg  string // Human-readable message
}

// Error implements the error interface.
func (e *E) Error() string {
	msg := e.Msg
	if e.Op != "" {
		if msg == "" {
			msg = e.Op
		} else {
			msg = e.Op + ": " + msg
		}
	}
	if e.Err != nil {
		if msg == "" {
			return fmt.Sprintf("%s: %v", e.Code, e.Err)
		}
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying error.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates a coded error with a message.
func New(code Code, msg string) error {
	return &E{Code: code, Msg: msg}
}

// Wrap creates a coded error around err, naming the operation that failed.
// A nil err yields nil.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{Code: code, Op: op, Err: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{Code: code, Op: op, Err: err, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the outermost code from err, or "" if none.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Is forwards to the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}
