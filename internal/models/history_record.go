package models

import "time"

// HistoryRecord is one persisted WindowSummary row, keyed by run, environment, metric and day category.
type HistoryRecord struct {
	RunID       string      `json:"runId"`
	Environment string      `json:"environment"`
	MetricName  string      `json:"metricName"`
	Category    DayCategory `json:"category"`
	Total       int64       `json:"total"`
	DayCount    int64       `json:"dayCount"`
	Average     int64       `json:"average"`
	RecordedAt  time.Time   `json:"recordedAt"`
}

// HistoryRecordsOf flattens the window summaries of a snapshot into history rows.
func HistoryRecordsOf(s *Snapshot) []HistoryRecord {
	var records []HistoryRecord
	for _, env := range s.Environments {
		for _, category := range AllDayCategories {
			for _, metric := range env.Metrics() {
				summary, ok := env.Summary(category, metric)
				if !ok {
					continue
				}
				records = append(records, HistoryRecord{
					RunID:       s.RunID,
					Environment: env.Environment,
					MetricName:  metric,
					Category:    category,
					Total:       summary.Total,
					DayCount:    summary.DayCount,
					Average:     summary.Average,
					RecordedAt:  s.GeneratedAt.UTC(),
				})
			}
		}
	}
	return records
}
