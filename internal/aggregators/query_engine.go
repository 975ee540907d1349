package aggregators

import (
	"context"
	"fmt"
	"time"

	"log-baseline/internal/models"
	"log-baseline/internal/platforms"
	"log-baseline/internal/shared/caches"
	"log-baseline/internal/shared/loggers"
)

// QueryEngine turns time ranges and day buckets into counts from the log platform.
// It never retries; retry policy belongs to the platform client.
//
//go:generate mockgen -source=query_engine.go -destination=./mocks/query_engine_mock.go -package=mocks
type QueryEngine interface {
	// Count returns the number of logs matching q within r.
	Count(ctx context.Context, r models.TimeRange, q models.QuerySpec) (int64, error)
	// SumOver sums Count over every bucket. No buckets sum to 0.
	SumOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (int64, error)
	// AverageOver is SumOver divided by the bucket count, truncated.
	// It fails with ErrNoBuckets when buckets is empty.
	AverageOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (int64, error)
	// BreakdownOver returns one count per bucket keyed by date, oldest first.
	BreakdownOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (*models.DailyBreakdown, error)
	// SummarizeOver returns total, day count and truncated average in one pass.
	SummarizeOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (*models.WindowSummary, error)
}

// DefaultSettle is how long the platform is given to index late logs of a closed range.
const DefaultSettle = 6 * time.Hour

type queryEngine struct {
	platform platforms.LogPlatform
	cache    caches.CountCache
	rolluper DailyCountRolluper
	scope    string
	settle   time.Duration
	now      func() time.Time
}

type QueryEngineOption func(*queryEngine)

// WithSettle sets how long after its end a range must be before its count is cached.
// Negative values are treated as zero.
func WithSettle(d time.Duration) QueryEngineOption {
	return func(e *queryEngine) {
		if d < 0 {
			d = 0
		}
		e.settle = d
	}
}

// NewQueryEngine returns an engine querying platform. Counts over ranges that
// ended at least the settle margin before now() are cached under scope,
// normally the environment name.
func NewQueryEngine(platform platforms.LogPlatform, cache caches.CountCache, scope string, now func() time.Time, opts ...QueryEngineOption) QueryEngine {
	if cache == nil {
		cache = caches.NewNopCountCache()
	}
	if now == nil {
		now = time.Now
	}
	e := &queryEngine{
		platform: platform,
		cache:    cache,
		rolluper: NewDailyCountRolluper(),
		scope:    scope,
		settle:   DefaultSettle,
		now:      now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *queryEngine) Count(ctx context.Context, r models.TimeRange, q models.QuerySpec) (int64, error) {
	logger := loggers.Ctx(ctx)

	cacheable := r.EndsBefore(e.now().Add(-e.settle))
	key := e.cacheKey(r, q)

	if cacheable {
		count, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			metricCacheErrorsTotal.WithLabelValues("get").Inc()
			logger.Warn().Err(err).Str(loggers.FieldMetric, q.MetricName).Msg("count cache read failed, querying platform")
		} else if ok {
			metricCountQueriesTotal.WithLabelValues(sourceCache).Inc()
			return count, nil
		}
	}

	count, err := e.platform.Aggregate(ctx, q.QueryString, r)
	if err != nil {
		return 0, errUpstreamCountFailed(q.MetricName, err)
	}
	if count < 0 {
		return 0, errInternalBadCount(q.MetricName, count)
	}
	metricCountQueriesTotal.WithLabelValues(sourcePlatform).Inc()

	logger.Debug().
		Str(loggers.FieldMetric, q.MetricName).
		Int64("start_ms", r.StartMs).
		Int64("end_ms", r.EndMs).
		Int64("count", count).
		Msg("counted logs")

	if cacheable {
		if err := e.cache.Set(ctx, key, count); err != nil {
			metricCacheErrorsTotal.WithLabelValues("set").Inc()
			logger.Warn().Err(err).Str(loggers.FieldMetric, q.MetricName).Msg("count cache write failed")
		}
	}
	return count, nil
}

func (e *queryEngine) SumOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (int64, error) {
	breakdown, err := e.BreakdownOver(ctx, buckets, q)
	if err != nil {
		return 0, err
	}
	total, ok := models.SumCounts(breakdown.Days)
	if !ok {
		return 0, errInternalCountOverflow(q.MetricName)
	}
	return total, nil
}

func (e *queryEngine) AverageOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (int64, error) {
	summary, err := e.SummarizeOver(ctx, buckets, q)
	if err != nil {
		return 0, err
	}
	return summary.Average, nil
}

func (e *queryEngine) BreakdownOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (*models.DailyBreakdown, error) {
	breakdown := models.NewDailyBreakdown(q.MetricName)
	for _, b := range buckets {
		count, err := e.Count(ctx, b.Range, q)
		if err != nil {
			return nil, err
		}
		breakdown.Add(b.DateKey(), count)
	}
	return breakdown, nil
}

func (e *queryEngine) SummarizeOver(ctx context.Context, buckets []models.DayBucket, q models.QuerySpec) (*models.WindowSummary, error) {
	if len(buckets) == 0 {
		return nil, errNoBuckets(q.MetricName)
	}

	breakdown, err := e.BreakdownOver(ctx, buckets, q)
	if err != nil {
		return nil, err
	}
	return e.rolluper.Rollup(q.MetricName, breakdown.Days)
}

// cacheKey identifies a count by scope, query and exact range. The metric
// name is left out so renamed metrics keep their history.
func (e *queryEngine) cacheKey(r models.TimeRange, q models.QuerySpec) string {
	return fmt.Sprintf("%s|%s|%d|%d", e.scope, q.QueryString, r.StartMs, r.EndMs)
}
