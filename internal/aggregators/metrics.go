package aggregators

import (
	"log-baseline/internal/shared/metrics"
)

const (
	sourcePlatform = "platform"
	sourceCache    = "cache"
)

// metricCountQueriesTotal counts resolved count queries by where the value came from.
//
// The source label is "platform" when the log platform was queried and "cache"
// when a closed day range was served from the count cache. A baseline over
// two weeks for one metric issues 14 queries on a cold cache; on a warm cache
// only today's open range reaches the platform.
var (
	metricCountQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "count_queries_total",
		},
		[]string{"source"},
	)

	metricCacheErrorsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "cache_errors_total",
		},
		[]string{"op"},
	)
)
