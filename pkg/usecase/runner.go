package usecase

import (
	"context"
	"time"

	"appcore/pkg/apperr"
	"appcore/pkg/logger"
	"appcore/pkg/metrics"
)

// Runner executes use cases with structured logging and metrics around
// them. It changes no semantics: errors are normalized to *apperr.Error and
// returned, never swallowed, and Execute remains directly callable for
// hosts that want none of this.
type Runner struct {
	logger logger.Logger
}

// NewRunner creates a runner logging through log; a nil log discards output.
func NewRunner(log logger.Logger) *Runner {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Runner{logger: log}
}

// Run executes the use case under the given name, which labels the log
// entries and metrics.
func (r *Runner) Run(ctx context.Context, name string, uc Usecase) error {
	log := r.logger.WithFields(map[string]interface{}{"usecase": name})
	log.Debug("executing use case", nil)

	start := time.Now()
	err := uc.Execute(ctx)
	elapsed := time.Since(start)
	metrics.UsecaseDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		appErr := apperr.FromError(err)
		metrics.UsecasesExecuted.WithLabelValues(name, metrics.StatusFailed).Inc()
		log.Error("use case failed", appErr.LogReport())
		return appErr
	}

	metrics.UsecasesExecuted.WithLabelValues(name, metrics.StatusCompleted).Inc()
	log.Info("use case completed", map[string]interface{}{
		"durationMs": elapsed.Milliseconds(),
	})
	return nil
}
