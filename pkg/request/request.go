// Package request turns raw payloads into validated, immutable Request
// values. A Definition binds a request type's field specification and
// optional domain constraints; its FromPayload factory is the only way to
// obtain a Request.
package request

import (
	"github.com/google/uuid"

	"appcore/pkg/apperr"
	"appcore/pkg/dotpath"
	"appcore/pkg/metrics"
	"appcore/pkg/validation"
)

// Definition describes a concrete request type: the field specification its
// payloads must satisfy and an optional constraint hook that runs on the
// normalized data once structural validation has succeeded.
type Definition struct {
	Spec        validation.FieldSpec
	Constraints validation.ConstraintFunc
}

// Request owns the normalized data of a successfully validated payload and
// a unique identifier generated at construction. It is never mutated after
// creation.
type Request struct {
	id   string
	data map[string]interface{}
}

// FromPayload validates the raw payload against the definition and builds a
// Request from the normalized projection. On structural failure it returns
// the bad-request error carrying every missing and unauthorized field path;
// a constraint violation takes precedence over success and is returned
// as-is.
func (d Definition) FromPayload(payload map[string]interface{}) (*Request, error) {
	result := validation.Validate(d.Spec, payload)
	if !result.Valid() {
		metrics.RequestsValidated.WithLabelValues(metrics.OutcomeInvalid).Inc()
		if len(result.Missing) > 0 {
			metrics.ValidationFailures.WithLabelValues(metrics.FailureMissing).Inc()
		}
		if len(result.Unauthorized) > 0 {
			metrics.ValidationFailures.WithLabelValues(metrics.FailureUnauthorized).Inc()
		}
		return nil, result.Err()
	}

	if d.Constraints != nil {
		if err := d.Constraints(result.Data); err != nil {
			metrics.RequestsValidated.WithLabelValues(metrics.OutcomeInvalid).Inc()
			metrics.ValidationFailures.WithLabelValues(metrics.FailureConstraint).Inc()
			return nil, apperr.FromError(err)
		}
	}

	metrics.RequestsValidated.WithLabelValues(metrics.OutcomeValid).Inc()
	return &Request{
		id:   uuid.NewString(),
		data: result.Data,
	}, nil
}

// ID returns the request's unique identifier, stable for its lifetime.
func (r *Request) ID() string {
	return r.id
}

// Get returns the value at the dotted path, or def the moment any segment
// is absent. It never fails.
func (r *Request) Get(path string, def interface{}) interface{} {
	return dotpath.Lookup(r.data, path, def)
}

// All returns the normalized data mapping. Callers must treat it as
// read-only.
func (r *Request) All() map[string]interface{} {
	return r.data
}
