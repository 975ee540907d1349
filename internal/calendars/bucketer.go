// Package calendars splits a lookback window into calendar days classified as
// business or weekend days.
package calendars

import (
	"time"

	"log-baseline/internal/models"
)

const daysPerWeek = 7

// BucketDays enumerates the weeksBack*7 calendar days ending with today
// (inclusive), oldest first, keeping only the requested categories.
//
// Days are computed in today's location and each bucket spans
// [00:00:00.000, 23:59:59.999] of its own day, so DST transitions yield 23h or
// 25h buckets rather than shifted ones. A Monday with weeksBack=2 therefore
// covers the previous two Tuesdays through today: 10 business days, 4 weekend days.
func BucketDays(today time.Time, weeksBack int, categories ...models.DayCategory) ([]models.DayBucket, error) {
	if weeksBack < 0 {
		return nil, errInvalidLookback(weeksBack)
	}

	wanted := make(map[models.DayCategory]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	totalDays := weeksBack * daysPerWeek
	buckets := make([]models.DayBucket, 0, totalDays)
	if len(wanted) == 0 {
		return buckets, nil
	}

	year, month, day := today.Date()
	loc := today.Location()

	for offset := totalDays - 1; offset >= 0; offset-- {
		start := time.Date(year, month, day-offset, 0, 0, 0, 0, loc)
		category := models.CategoryOf(start.Weekday())
		if !wanted[category] {
			continue
		}

		next := time.Date(year, month, day-offset+1, 0, 0, 0, 0, loc)
		buckets = append(buckets, models.DayBucket{
			Date:     start,
			Range:    models.TimeRange{StartMs: start.UnixMilli(), EndMs: next.UnixMilli() - 1},
			Category: category,
		})
	}

	return buckets, nil
}

// Split returns business and weekend buckets for the same window.
func Split(today time.Time, weeksBack int) (business, weekend []models.DayBucket, err error) {
	all, err := BucketDays(today, weeksBack, models.AllDayCategories...)
	if err != nil {
		return nil, nil, err
	}
	for _, b := range all {
		if b.Category == models.DayWeekend {
			weekend = append(weekend, b)
		} else {
			business = append(business, b)
		}
	}
	return business, weekend, nil
}
