// Package metrics exposes Prometheus collectors for request validation and
// use case execution. Registration happens on the default registry; hosts
// that serve /metrics pick them up automatically.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsValidated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appcore_requests_validated_total",
			Help: "Total number of request payloads validated, by outcome",
		},
		[]string{"outcome"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appcore_validation_failures_total",
			Help: "Total number of structural validation failures, by failure kind",
		},
		[]string{"kind"},
	)

	UsecasesExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appcore_usecases_executed_total",
			Help: "Total number of use case executions, by use case and status",
		},
		[]string{"usecase", "status"},
	)

	UsecaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "appcore_usecase_duration_seconds",
			Help: "Duration of use case executions in seconds",
		},
		[]string{"usecase"},
	)
)

// Label values recorded by the framework.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"

	FailureMissing      = "missing"
	FailureUnauthorized = "unauthorized"
	FailureConstraint   = "constraint"

	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
