// Package errors provides the structured error used across services
//
// Import it as perr. Codes are part of the wire format, so append new ones
// at the end of the list
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// ErrorCode classifies a failure for callers and for the HTTP layer
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything not classified below
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a panic caught by the recover middleware
	ErrorCodePanic
	// ErrorCodeUnavailable marks a dependency that is down or starting
	ErrorCodeUnavailable
	// ErrorCodeConflict marks a request that clashes with current state
	ErrorCodeConflict
	// ErrorCodeValidation marks input that failed validation
	ErrorCodeValidation
	// ErrorCodeJSON marks a body that could not be decoded
	ErrorCodeJSON
	// ErrorCodeNotFound marks a missing resource
	ErrorCodeNotFound
	// ErrorCodeDuplicateKey marks a unique constraint violation
	ErrorCodeDuplicateKey
	// ErrorCodeDB marks any other database failure
	ErrorCodeDB
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeNotFound:     http.StatusNotFound,
	ErrorCodeConflict:     http.StatusConflict,
	ErrorCodeDuplicateKey: http.StatusConflict,
	ErrorCodeValidation:   http.StatusBadRequest,
	ErrorCodeJSON:         http.StatusBadRequest,
	ErrorCodeUnavailable:  http.StatusServiceUnavailable,
}

// HTTPStatusCode maps a code to its response status, 500 when unmapped
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ErrNotFound is returned by store helpers when a row is missing
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a message, an optional offending field and the cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Wire is the JSON form of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return e.msg + ": " + e.orig.Error()
	}
	return e.msg
}

// Unwrap exposes the cause
func (e *Error) Unwrap() error { return e.orig }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input field, if any
func (e *Error) Field() string { return e.field }

// ToWire drops the cause and keeps what clients may see
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error; foreign errors become ErrorCodeUnknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root walks the Unwrap chain to the innermost error
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// As finds the first *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns the code of the first *Error in the chain
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err is classified as code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to a response status
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField returns a copy of err naming the offending field
// foreign errors are returned unchanged
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// New builds an error with a fixed message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap classifies orig under code and records where it was wrapped,
// which zerolog prints with .Stack()
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: pkgerrors.WithStack(orig)}
}

// Wrapf is Wrap with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return Wrap(orig, code, fmt.Sprintf(format, a...))
}

// NotFoundf builds an ErrorCodeNotFound error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// Conflictf builds an ErrorCodeConflict error
func Conflictf(format string, a ...any) error { return Newf(ErrorCodeConflict, format, a...) }

// JSONErrf builds an ErrorCodeJSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf builds an ErrorCodePanic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }
