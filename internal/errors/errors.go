package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// Error is the structured error returned across package boundaries
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	var other *Error
	return stderrors.As(target, &other) && other.Code == e.Code
}

// WithMeta sets one metadata entry and returns e
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// wrap builds an *Error around err. The code of an existing *Error in the
// chain is kept unless override is set. Metadata is copied, never shared.
func wrap(err error, code Code, override bool, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeInternal, Message: message, Cause: err}
	if override {
		wrapped.Code = code
	}

	var inner *Error
	if stderrors.As(err, &inner) {
		if !override {
			wrapped.Code = inner.Code
		}
		if len(inner.Meta) > 0 {
			wrapped.Meta = maps.Clone(inner.Meta)
		}
	}
	return wrapped
}

// Wrap adds context to err, keeping its code. Plain errors become Internal.
func Wrap(err error, message string) *Error {
	return wrap(err, "", false, message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return wrap(err, "", false, fmt.Sprintf(format, args...))
}

// WrapWithCode adds context to err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	return wrap(err, code, true, message)
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return wrap(err, code, true, fmt.Sprintf(format, args...))
}
