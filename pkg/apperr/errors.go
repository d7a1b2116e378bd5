// Package apperr provides the structured error hierarchy raised by request
// validation and business logic. Every error carries a machine-readable
// detail map, an HTTP-like status code and a stable serializable shape so
// that the boundary layer can render any failure uniformly.
package apperr

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"appcore/pkg/status"
)

// ==========================
// 1. Error Kinds
// ==========================

// Kind identifies the concrete error kind. New kinds can be introduced by
// callers via New; the ones below cover the failures the core itself raises.
type Kind string

const (
	KindBadRequestContent Kind = "BAD_REQUEST_CONTENT"
	KindUnauthorizedField Kind = "UNAUTHORIZED_FIELD"
	KindNotFound          Kind = "NOT_FOUND"
	KindForbidden         Kind = "FORBIDDEN"
	KindConflict          Kind = "CONFLICT"
	KindUnprocessable     Kind = "UNPROCESSABLE_ENTITY"
	KindNoResponseSet     Kind = "NO_RESPONSE_SET"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// ==========================
// 2. Error Type
// ==========================

// Error is a structured application error. It is immutable once raised
// except for attaching a cause via WithCause at the point of creation.
type Error struct {
	Kind    Kind                   `json:"kind"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Code    status.Code            `json:"code"`

	cause error
	file  string
	line  int
	stack string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ApplicationError[%s]: %s", e.Kind, e.Message)
}

// Unwrap exposes the originating error, if any, for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches the originating error and returns e for chaining.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Errors returns the detail map, or the message wrapped under "error" when
// no details were attached, so callers always get a non-empty mapping.
func (e *Error) Errors() map[string]interface{} {
	if len(e.Details) > 0 {
		return e.Details
	}
	return map[string]interface{}{"error": e.Message}
}

// DetailsMessage returns the "error" entry of the detail map, or nil when
// the details carry no such entry.
func (e *Error) DetailsMessage() interface{} {
	if v, ok := e.Details["error"]; ok {
		return v
	}
	return nil
}

// Format returns the canonical serializable shape of the error:
//
//	{status: "error", error_code: <code>, message: <message>, details: <details>}
func (e *Error) Format() map[string]interface{} {
	return map[string]interface{}{
		"status":     "error",
		"error_code": e.Code.Int(),
		"message":    e.Message,
		"details":    e.Details,
	}
}

// LogReport returns a diagnostic bundle for structured logging: message,
// code, errors, the location the error was raised at, the causal chain and
// a textual stack trace. It is for observability only, never control flow.
func (e *Error) LogReport() map[string]interface{} {
	report := map[string]interface{}{
		"message":    e.Message,
		"kind":       string(e.Kind),
		"errorCode":  e.Code.Int(),
		"errors":     e.Errors(),
		"origin":     fmt.Sprintf("%s:%d", e.file, e.line),
		"stackTrace": e.stack,
	}
	if e.cause != nil {
		report["cause"] = e.cause.Error()
	}
	return report
}

// ==========================
// 3. Constructors
// ==========================

// New creates an error of an arbitrary kind. An empty message falls back to
// a generic one. The call site and stack trace are captured at creation.
func New(kind Kind, code status.Code, message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "application error"
	}
	return newError(kind, code, message, details)
}

// NewBadRequestContent creates the structural validation failure raised when
// a request payload has missing or unauthorized fields.
func NewBadRequestContent(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "bad request content"
	}
	return newError(KindBadRequestContent, status.BadRequest, message, details)
}

// NewUnauthorizedField creates a failure for a field the caller may not set.
func NewUnauthorizedField(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "unauthorized field"
	}
	return newError(KindUnauthorizedField, status.BadRequest, message, details)
}

// NewNotFound creates a resource-not-found failure.
func NewNotFound(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "resource not found"
	}
	return newError(KindNotFound, status.NotFound, message, details)
}

// NewForbidden creates a forbidden-operation failure.
func NewForbidden(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "forbidden"
	}
	return newError(KindForbidden, status.Forbidden, message, details)
}

// NewConflict creates a state-conflict failure.
func NewConflict(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "conflict"
	}
	return newError(KindConflict, status.Conflict, message, details)
}

// NewUnprocessable creates a semantically-invalid-content failure.
func NewUnprocessable(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "unprocessable entity"
	}
	return newError(KindUnprocessable, status.UnprocessableEntity, message, details)
}

// NewNoResponseSet creates the presenter-state failure returned when a
// response is requested before one was presented.
func NewNoResponseSet(message string) *Error {
	if message == "" {
		message = "no response has been presented"
	}
	return newError(KindNoResponseSet, status.InternalServerError, message, nil)
}

// NewInternal creates a catch-all failure for unexpected errors.
func NewInternal(message string, details map[string]interface{}) *Error {
	if message == "" {
		message = "internal error"
	}
	return newError(KindInternal, status.InternalServerError, message, details)
}

func newError(kind Kind, code status.Code, message string, details map[string]interface{}) *Error {
	// Skip newError and its exported wrapper to report the raise site.
	file, line := "", 0
	if _, f, l, ok := runtime.Caller(2); ok {
		file, line = f, l
	}
	return &Error{
		Kind:    kind,
		Message: message,
		Details: details,
		Code:    code,
		file:    file,
		line:    line,
		stack:   string(debug.Stack()),
	}
}

// ==========================
// 4. Normalization
// ==========================

// FromError normalizes an arbitrary error into an *Error. Structured errors
// pass through untouched; anything else becomes an internal error with the
// original attached as cause.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return NewInternal("unexpected error", map[string]interface{}{
		"error": err.Error(),
	}).WithCause(err)
}
