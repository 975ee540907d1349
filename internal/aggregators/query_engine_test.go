package aggregators

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"log-baseline/internal/calendars"
	"log-baseline/internal/models"
	platformmocks "log-baseline/internal/platforms/mocks"
	"log-baseline/internal/shared/caches"
	cachemocks "log-baseline/internal/shared/caches/mocks"
	"log-baseline/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Monday 2026-10-19, mid-afternoon.
var engineNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

var query504 = models.QuerySpec{MetricName: "los_504", QueryString: "service:los status:504"}

func fixedClock() time.Time { return engineNow }

func businessBuckets(t *testing.T, weeksBack int) []models.DayBucket {
	t.Helper()
	buckets, err := calendars.BucketDays(engineNow, weeksBack, models.DayBusiness)
	require.NoError(t, err)
	return buckets
}

func TestQueryEngine_Count(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	r := models.TimeRange{StartMs: 1000, EndMs: 2000}
	platform.EXPECT().Aggregate(gomock.Any(), query504.QueryString, r).Return(int64(12), nil)

	count, err := engine.Count(context.Background(), r, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestQueryEngine_Count_PlatformError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	boom := errors.New("connection reset")
	platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), boom)

	_, err := engine.Count(context.Background(), models.TimeRange{}, query504)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeUpstreamCountFailed, svcErr.Code)
}

func TestQueryEngine_Count_NegativeCountRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(-3), nil)

	_, err := engine.Count(context.Background(), models.TimeRange{}, query504)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalBadCount, svcErr.Code)
}

func TestQueryEngine_SumOver(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	buckets := businessBuckets(t, 1)
	require.Len(t, buckets, 5)
	for i, b := range buckets {
		platform.EXPECT().Aggregate(gomock.Any(), query504.QueryString, b.Range).Return(int64(i+1), nil)
	}

	sum, err := engine.SumOver(context.Background(), buckets, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(1+2+3+4+5), sum)
}

func TestQueryEngine_EmptyBuckets(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)
	ctx := context.Background()

	sum, err := engine.SumOver(ctx, nil, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	_, err = engine.AverageOver(ctx, nil, query504)
	assert.ErrorIs(t, err, ErrNoBuckets)

	_, err = engine.SummarizeOver(ctx, []models.DayBucket{}, query504)
	assert.ErrorIs(t, err, ErrNoBuckets)

	breakdown, err := engine.BreakdownOver(ctx, nil, query504)
	require.NoError(t, err)
	assert.Equal(t, 0, breakdown.Len())
}

func TestQueryEngine_AverageOver_ConstantCount(t *testing.T) {
	t.Parallel()

	for _, weeksBack := range []int{1, 2, 3, 4} {
		for _, c := range []int64{0, 1, 17, 123_456} {
			ctrl := gomock.NewController(t)
			platform := platformmocks.NewMockLogPlatform(ctrl)
			engine := NewQueryEngine(platform, nil, "prod", fixedClock)

			buckets := businessBuckets(t, weeksBack)
			platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(c, nil).Times(len(buckets))

			avg, err := engine.AverageOver(context.Background(), buckets, query504)
			require.NoError(t, err)
			assert.Equal(t, c, avg, "weeksBack=%d c=%d", weeksBack, c)
		}
	}
}

func TestQueryEngine_AverageOver_Truncates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	buckets := businessBuckets(t, 1)
	counts := []int64{3, 3, 3, 3, 4} // 16 / 5 = 3.2
	for i, b := range buckets {
		platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), b.Range).Return(counts[i], nil)
	}

	summary, err := engine.SummarizeOver(context.Background(), buckets, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(16), summary.Total)
	assert.Equal(t, int64(5), summary.DayCount)
	assert.Equal(t, int64(3), summary.Average)
}

func TestQueryEngine_BreakdownOver_Chronological(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	buckets, err := calendars.BucketDays(engineNow, 1, models.AllDayCategories...)
	require.NoError(t, err)
	for i, b := range buckets {
		platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), b.Range).Return(int64(10*i), nil)
	}

	breakdown, err := engine.BreakdownOver(context.Background(), buckets, query504)
	require.NoError(t, err)
	assert.Equal(t, "los_504", breakdown.MetricName)
	assert.Equal(t, []string{
		"2026-10-13", "2026-10-14", "2026-10-15", "2026-10-16", "2026-10-17", "2026-10-18", "2026-10-19",
	}, breakdown.Dates())

	count, ok := breakdown.Get("2026-10-17")
	require.True(t, ok)
	assert.Equal(t, int64(40), count)
}

func TestQueryEngine_BreakdownOver_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	buckets := businessBuckets(t, 1)
	gomock.InOrder(
		platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), buckets[0].Range).Return(int64(1), nil),
		platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), buckets[1].Range).Return(int64(0), errors.New("HTTP 500")),
	)

	_, err := engine.BreakdownOver(context.Background(), buckets, query504)
	assert.Error(t, err)
}

func TestQueryEngine_CachesClosedRangesOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, caches.NewMemoryCountCache(), "prod", fixedClock)
	ctx := context.Background()

	buckets := businessBuckets(t, 1)
	closed := buckets[0].Range
	open := buckets[len(buckets)-1].Range // today, still running
	require.False(t, open.EndsBefore(engineNow))

	platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), closed).Return(int64(5), nil).Times(1)
	platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), open).Return(int64(9), nil).Times(2)

	for i := 0; i < 2; i++ {
		count, err := engine.Count(ctx, closed, query504)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)

		count, err = engine.Count(ctx, open, query504)
		require.NoError(t, err)
		assert.Equal(t, int64(9), count)
	}
}

func TestQueryEngine_CacheScopedByEnvironment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	prodPlatform := platformmocks.NewMockLogPlatform(ctrl)
	stagingPlatform := platformmocks.NewMockLogPlatform(ctrl)
	cache := caches.NewMemoryCountCache()

	closed := businessBuckets(t, 1)[0].Range
	prodPlatform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), closed).Return(int64(5), nil)
	stagingPlatform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), closed).Return(int64(50), nil)

	prod := NewQueryEngine(prodPlatform, cache, "prod", fixedClock)
	staging := NewQueryEngine(stagingPlatform, cache, "staging", fixedClock)

	count, err := prod.Count(context.Background(), closed, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	count, err = staging.Count(context.Background(), closed, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(50), count)
}

func TestQueryEngine_CacheFailuresFallThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	cache := cachemocks.NewMockCountCache(ctrl)
	engine := NewQueryEngine(platform, cache, "prod", fixedClock)

	closed := businessBuckets(t, 1)[0].Range
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(int64(0), false, errors.New("redis down"))
	platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), closed).Return(int64(8), nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), int64(8)).Return(errors.New("redis down"))

	count, err := engine.Count(context.Background(), closed, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)
}

func TestQueryEngine_DoesNotCacheRangesInsideSettleMargin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)

	yesterday := models.TimeRange{
		StartMs: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC).UnixMilli(),
		EndMs:   time.Date(2026, 10, 18, 23, 59, 59, 999_000_000, time.UTC).UnixMilli(),
	}
	now := time.Date(2026, 10, 19, 0, 0, 1, 0, time.UTC)
	clock := func() time.Time { return now }
	engine := NewQueryEngine(platform, caches.NewMemoryCountCache(), "prod", clock, WithSettle(6*time.Hour))
	ctx := context.Background()

	gomock.InOrder(
		platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), yesterday).Return(int64(90), nil),
		platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), yesterday).Return(int64(95), nil),
	)

	count, err := engine.Count(ctx, yesterday, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(90), count)

	// Late logs indexed after the first count are picked up once the margin passes.
	now = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)
	count, err = engine.Count(ctx, yesterday, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(95), count)

	count, err = engine.Count(ctx, yesterday, query504)
	require.NoError(t, err)
	assert.Equal(t, int64(95), count, "settled range is served from cache")
}

func TestQueryEngine_SumOverOverflow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	platform := platformmocks.NewMockLogPlatform(ctrl)
	engine := NewQueryEngine(platform, nil, "prod", fixedClock)

	buckets := businessBuckets(t, 1)[:2]
	platform.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(math.MaxInt64), nil).Times(2)

	_, err := engine.SumOver(context.Background(), buckets, query504)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalOverflow, svcErr.Code)
}
