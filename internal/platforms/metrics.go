package platforms

import "log-baseline/internal/shared/metrics"

var (
	platformRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPlatform,
			Name:      "requests_total",
			Help:      "Total number of observability platform requests by endpoint and HTTP status",
		},
		[]string{"endpoint", "status"},
	)

	platformRequestDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPlatform,
			Name:      "request_duration_seconds",
			Help:      "Duration of observability platform requests including retries",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"endpoint"},
	)

	platformRetriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPlatform,
			Name:      "retries_total",
			Help:      "Total number of retried platform requests (429 and 5xx)",
		},
		[]string{"endpoint"},
	)
)
