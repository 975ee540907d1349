package models

import "math"

// DailyCount is the count for one calendar date (DateLayout).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DailyBreakdown is a chronologically ordered per-day count series for one metric.
type DailyBreakdown struct {
	MetricName string       `json:"metricName"`
	Days       []DailyCount `json:"days"`
}

func NewDailyBreakdown(metric string) *DailyBreakdown {
	return &DailyBreakdown{MetricName: metric, Days: []DailyCount{}}
}

// Add appends a day. Callers add days oldest first.
func (b *DailyBreakdown) Add(date string, count int64) {
	b.Days = append(b.Days, DailyCount{Date: date, Count: count})
}

func (b *DailyBreakdown) Get(date string) (int64, bool) {
	for _, d := range b.Days {
		if d.Date == date {
			return d.Count, true
		}
	}
	return 0, false
}

func (b *DailyBreakdown) Dates() []string {
	dates := make([]string, len(b.Days))
	for i, d := range b.Days {
		dates[i] = d.Date
	}
	return dates
}

func (b *DailyBreakdown) Len() int { return len(b.Days) }

// Total is the sum of every day, saturating at math.MaxInt64.
func (b *DailyBreakdown) Total() int64 {
	total, ok := SumCounts(b.Days)
	if !ok {
		return math.MaxInt64
	}
	return total
}

// SumCounts adds the counts of days. ok is false when a count is negative
// or the sum does not fit in an int64.
func SumCounts(days []DailyCount) (total int64, ok bool) {
	for _, d := range days {
		if d.Count < 0 || total > math.MaxInt64-d.Count {
			return 0, false
		}
		total += d.Count
	}
	return total, true
}
