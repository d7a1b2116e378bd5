// Package usecase provides the orchestration unit of the framework: a use
// case consumes an optional validated request and emits its result through
// an optional presenter. Concrete use cases embed Base and implement
// Execute.
package usecase

import (
	"context"

	"appcore/pkg/request"
	"appcore/pkg/response"
)

// Presenter is the capability a use case needs from whatever captures its
// response. *presenter.Presenter satisfies it; hosts may supply their own.
type Presenter interface {
	Present(*response.Model)
}

// Usecase is the execution entry point implemented by concrete use cases.
// Whether Execute presents a response is the implementation's decision; a
// use case without a presenter runs purely for its side effects.
type Usecase interface {
	Execute(ctx context.Context) error
}

// Base carries the optional request and presenter wiring shared by all use
// cases. Its setters return the Base so wiring chains fluently:
//
//	uc.SetRequest(req).SetPresenter(pres)
//
// A Base and its use case are scoped to a single invocation; they are not
// safe for concurrent use.
type Base struct {
	request   *request.Request
	presenter Presenter
}

// SetRequest attaches the validated request and returns the base.
func (b *Base) SetRequest(r *request.Request) *Base {
	b.request = r
	return b
}

// SetPresenter attaches the presenter and returns the base.
func (b *Base) SetPresenter(p Presenter) *Base {
	b.presenter = p
	return b
}

// Request returns the attached request, or nil when none was set.
func (b *Base) Request() *request.Request {
	return b.request
}

// Field returns the request field at the dotted path, or def when no
// request was attached or the path is absent.
func (b *Base) Field(path string, def interface{}) interface{} {
	if b.request == nil {
		return def
	}
	return b.request.Get(path, def)
}

// RequestData returns the request's normalized data, or an empty mapping
// when no request was attached.
func (b *Base) RequestData() map[string]interface{} {
	if b.request == nil {
		return map[string]interface{}{}
	}
	return b.request.All()
}

// Present hands the response model to the attached presenter. It is a no-op
// when no presenter was set.
func (b *Base) Present(m *response.Model) {
	if b.presenter != nil {
		b.presenter.Present(m)
	}
}
