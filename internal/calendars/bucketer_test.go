package calendars

import (
	"testing"
	"time"

	"log-baseline/internal/models"
	"log-baseline/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-19 is a Monday.
var monday = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

func TestBucketDays_TwoWeeksFromMonday_BusinessOnly(t *testing.T) {
	t.Parallel()

	buckets, err := BucketDays(monday, 2, models.DayBusiness)
	require.NoError(t, err)
	require.Len(t, buckets, 10)

	for _, b := range buckets {
		assert.Equal(t, models.DayBusiness, b.Category)
		assert.NotEqual(t, time.Saturday, b.Date.Weekday())
		assert.NotEqual(t, time.Sunday, b.Date.Weekday())
	}
	assert.Equal(t, "2026-10-06", buckets[0].DateKey())
	assert.Equal(t, "2026-10-19", buckets[len(buckets)-1].DateKey())
}

func TestBucketDays_PartitionIsExhaustiveAndDisjoint(t *testing.T) {
	t.Parallel()

	for weeksBack := 0; weeksBack <= 6; weeksBack++ {
		for offset := 0; offset < 7; offset++ {
			today := monday.AddDate(0, 0, offset)

			all, err := BucketDays(today, weeksBack, models.DayBusiness, models.DayWeekend)
			require.NoError(t, err)
			business, err := BucketDays(today, weeksBack, models.DayBusiness)
			require.NoError(t, err)
			weekend, err := BucketDays(today, weeksBack, models.DayWeekend)
			require.NoError(t, err)

			require.Len(t, all, weeksBack*7)
			assert.Equal(t, len(all), len(business)+len(weekend))
			assert.Equal(t, weeksBack*5, len(business))
			assert.Equal(t, weeksBack*2, len(weekend))

			seen := make(map[string]models.DayCategory)
			for _, b := range business {
				seen[b.DateKey()] = b.Category
			}
			for _, b := range weekend {
				_, dup := seen[b.DateKey()]
				assert.False(t, dup, "%s in both categories", b.DateKey())
				seen[b.DateKey()] = b.Category
			}
			for _, b := range all {
				assert.Equal(t, b.Category, seen[b.DateKey()])
			}
		}
	}
}

func TestBucketDays_ClassifiesEachDayByItsOwnWeekday(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2026, 10, 24, 9, 0, 0, 0, time.UTC)
	buckets, err := BucketDays(saturday, 1, models.DayBusiness, models.DayWeekend)
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	for _, b := range buckets {
		assert.Equal(t, models.CategoryOf(b.Date.Weekday()), b.Category, b.DateKey())
	}
	assert.Equal(t, models.DayWeekend, buckets[6].Category)
	assert.Equal(t, "2026-10-24", buckets[6].DateKey())
}

func TestBucketDays_RangesCoverWholeDays(t *testing.T) {
	t.Parallel()

	buckets, err := BucketDays(monday, 1, models.AllDayCategories...)
	require.NoError(t, err)

	for i, b := range buckets {
		assert.Equal(t, 0, b.Date.Hour())
		assert.Equal(t, b.Date.UnixMilli(), b.Range.StartMs)
		assert.Equal(t, b.Date.AddDate(0, 0, 1).UnixMilli()-1, b.Range.EndMs)
		if i > 0 {
			assert.Equal(t, buckets[i-1].Range.EndMs+1, b.Range.StartMs, "days must be contiguous")
			assert.True(t, buckets[i-1].Date.Before(b.Date), "oldest first")
		}
	}
}

func TestBucketDays_UsesTodaysLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+10", 10*3600)
	today := time.Date(2026, 10, 19, 1, 0, 0, 0, loc)

	buckets, err := BucketDays(today, 1, models.AllDayCategories...)
	require.NoError(t, err)
	last := buckets[len(buckets)-1]
	assert.Equal(t, "2026-10-19", last.DateKey())
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, loc).UnixMilli(), last.Range.StartMs)
}

func TestBucketDays_EdgeCases(t *testing.T) {
	t.Parallel()

	buckets, err := BucketDays(monday, 2)
	require.NoError(t, err)
	assert.Empty(t, buckets, "no categories requested")

	buckets, err = BucketDays(monday, 0, models.AllDayCategories...)
	require.NoError(t, err)
	assert.Empty(t, buckets)

	_, err = BucketDays(monday, -1, models.DayBusiness)
	assert.ErrorIs(t, err, ErrInvalidLookback)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidLookback, svcErr.Code)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	business, weekend, err := Split(monday, 2)
	require.NoError(t, err)
	assert.Len(t, business, 10)
	assert.Len(t, weekend, 4)

	_, _, err = Split(monday, -3)
	assert.ErrorIs(t, err, ErrInvalidLookback)
}
