// Package presenter provides the one-shot holder that captures a use case's
// response and exposes it to the caller, raw or formatted.
package presenter

import (
	"appcore/pkg/apperr"
	"appcore/pkg/response"
)

// Presenter receives exactly one response model per use case execution.
// Presenting again overwrites the previous model (last write wins). A
// Presenter is scoped to one request cycle and is not safe for concurrent
// use.
type Presenter struct {
	model *response.Model
}

// New creates an empty presenter.
func New() *Presenter {
	return &Presenter{}
}

// Present stores the response model, replacing any previously presented one.
func (p *Presenter) Present(m *response.Model) {
	p.model = m
}

// Response returns the presented model, or a NO_RESPONSE_SET failure when
// nothing has been presented yet.
func (p *Presenter) Response() (*response.Model, error) {
	if p.model == nil {
		return nil, apperr.NewNoResponseSet("")
	}
	return p.model, nil
}

// FormattedResponse returns the presented model in its serializable shape.
func (p *Presenter) FormattedResponse() (map[string]interface{}, error) {
	m, err := p.Response()
	if err != nil {
		return nil, err
	}
	return response.Format(m), nil
}
