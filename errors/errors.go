// Package errors contains helper functions for wrapping errors with stack traces and panic recovery.
package errors

import (
	goerrors "errors"
	"fmt"

	errs "github.com/go-errors/errors"
)

// New creates a new error from the given value and wraps it in an Error type that contains the stack trace.
// If the value is already an error with a stack trace, it is used directly.
func New(val any) error {
	if val == nil {
		return nil
	}

	return errs.Wrap(val, 1)
}

// Errorf creates a new error with a formatted message and wraps it in an Error type that contains the stack trace.
func Errorf(message string, args ...any) error {
	err := fmt.Errorf(message, args...)
	return errs.Wrap(err, 1)
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error
// already has a stack trace, it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return errs.Wrap(err, 1)
}

// WithStackTraceAndPrefix wraps the given error in an Error type that contains the stack trace and has the
// given message prepended as part of the error message. If the given error is nil, return nil.
func WithStackTraceAndPrefix(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}

	return errs.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// IsError returns true if actual is the same type of error as expected. This method unwraps the given error
// objects (if they are wrapped in objects with a stacktrace) and then does a simple equality check on them.
func IsError(actual error, expected error) bool {
	return errs.Is(actual, expected)
}

// Unwrap unwraps the given error to its underlying error if it is a wrapper that contains a stacktrace.
// In all other cases the error is returned unchanged.
func Unwrap(err error) error {
	if err == nil {
		return nil
	}

	goError, ok := err.(*errs.Error)
	if ok {
		return goError.Err
	}

	return err
}

// As finds the first error in err's chain that matches target. It is a direct passthrough to the
// standard library so that callers do not need to import both packages.
func As(err error, target any) bool {
	return goerrors.As(err, target)
}

// ErrorStack returns a string that contains both the error message and the callstack, if the given error
// carries one. Returns an empty string otherwise.
func ErrorStack(err error) string {
	if err == nil {
		return ""
	}

	goError := new(errs.Error)
	if goerrors.As(err, &goError) {
		return goError.ErrorStack()
	}

	return ""
}

// IErrorCode is an interface for errors that have an exit code.
type IErrorCode interface {
	ExitStatus() (int, error)
}

// ErrorWithExitCode is a custom error that is used to specify the app exit code.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (err ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err ErrorWithExitCode) Unwrap() error {
	return err.Err
}

// ExitStatus implements IErrorCode.
func (err ErrorWithExitCode) ExitStatus() (int, error) {
	return err.ExitCode, nil
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error
// that explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}

		onPanic(New(err))
	}
}
