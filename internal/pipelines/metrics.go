package pipelines

import (
	"log-baseline/internal/shared/metrics"
	"log-baseline/internal/shared/svcerrors"
)

const (
	statusOK      = "ok"
	statusSkipped = "skipped"
	statusFailed  = "failed"
)

var (
	metricEnvironmentsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "environments_total",
		},
		[]string{"status"},
	)

	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "run_duration_seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{metrics.FieldErrorCode},
	)

	metricCurrentCount = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "current_count",
			Help:      "Latest 24h count per environment and metric.",
		},
		[]string{"environment", "metric"},
	)

	metricHistoryErrorsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "history_errors_total",
		},
		[]string{},
	)
)

// errorCode labels an outcome with its ServiceError code.
func errorCode(err error) string {
	if err == nil {
		return metrics.ValueNoError
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return "unknown"
}
