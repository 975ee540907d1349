package fetchers

import "log-baseline/internal/shared/metrics"

var (
	metricPagesFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFetch,
			Name:      "pages_fetched_total",
			Help:      "Total number of pages fetched by kind (logs, synthetics)",
		},
		[]string{"kind"},
	)

	metricEntriesFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFetch,
			Name:      "entries_fetched_total",
			Help:      "Total number of records returned by completed fetches",
		},
		[]string{"kind"},
	)
)
