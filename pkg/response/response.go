// Package response holds the immutable use case response model and its
// serializable formatting.
package response

import (
	"appcore/pkg/dotpath"
	"appcore/pkg/status"
)

// Model is the immutable value a use case hands to its presenter. Build one
// with New; the zero defaults are success=true, status.NoContent, no
// message and empty data.
type Model struct {
	success bool
	code    status.Code
	message string
	data    map[string]interface{}
}

// Option configures a Model at creation time.
type Option func(*Model)

// WithSuccess sets the success flag.
func WithSuccess(success bool) Option {
	return func(m *Model) { m.success = success }
}

// WithStatusCode sets the status code.
func WithStatusCode(code status.Code) Option {
	return func(m *Model) { m.code = code }
}

// WithMessage sets the optional message.
func WithMessage(message string) Option {
	return func(m *Model) { m.message = message }
}

// WithData sets the data mapping.
func WithData(data map[string]interface{}) Option {
	return func(m *Model) { m.data = data }
}

// New creates a response model. Without options it is a successful
// no-content response with empty data.
func New(opts ...Option) *Model {
	m := &Model{
		success: true,
		code:    status.NoContent,
		data:    map[string]interface{}{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsSuccess reports whether the response represents a success.
func (m *Model) IsSuccess() bool {
	return m.success
}

// StatusCode returns the response status code.
func (m *Model) StatusCode() status.Code {
	return m.code
}

// Message returns the response message, empty when none was set.
func (m *Model) Message() string {
	return m.message
}

// Data returns the data mapping. Callers must treat it as read-only.
func (m *Model) Data() map[string]interface{} {
	return m.data
}

// Get returns the value at the dotted path into the data mapping, or def
// the moment any segment is absent.
func (m *Model) Get(path string, def interface{}) interface{} {
	return dotpath.Lookup(m.data, path, def)
}
