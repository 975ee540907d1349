package models

// WindowSummary aggregates one metric over the days of a lookback window.
//
// Example JSON:
//
//	{
//	  "metricName": "los_504",
//	  "total": 1234,
//	  "dayCount": 10,
//	  "average": 123
//	}
type WindowSummary struct {
	MetricName string `json:"metricName"`
	Total      int64  `json:"total"`
	DayCount   int64  `json:"dayCount"`
	Average    int64  `json:"average"`
}

// NewWindowSummary computes the truncated daily average. A window with no days
// has an average of 0; callers that must reject empty windows check DayCount first.
func NewWindowSummary(metric string, total, dayCount int64) WindowSummary {
	s := WindowSummary{MetricName: metric, Total: total, DayCount: dayCount}
	if dayCount > 0 {
		s.Average = total / dayCount
	}
	return s
}
