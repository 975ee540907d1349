package aggregators

import (
	"log-baseline/internal/models"
)

//go:generate mockgen -source=aggregate_rolluper.go -destination=./mocks/aggregate_rolluper_mock.go -package=mocks
type DailyCountRolluper interface {
	// Rollup folds per-day counts of one metric into a window summary.
	// The average uses truncating integer division.
	Rollup(metric string, days []models.DailyCount) (*models.WindowSummary, error)
}

type dailyCountRolluper struct{}

func NewDailyCountRolluper() DailyCountRolluper {
	return &dailyCountRolluper{}
}

func (r *dailyCountRolluper) Rollup(metric string, days []models.DailyCount) (*models.WindowSummary, error) {
	if len(days) == 0 {
		return nil, errNoBuckets(metric)
	}

	for _, d := range days {
		if d.Count < 0 {
			return nil, errInternalBadCount(metric, d.Count)
		}
	}
	total, ok := models.SumCounts(days)
	if !ok {
		return nil, errInternalCountOverflow(metric)
	}

	summary := models.NewWindowSummary(metric, total, int64(len(days)))
	return &summary, nil
}
