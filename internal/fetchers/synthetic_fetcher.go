package fetchers

import (
	"context"

	"log-baseline/internal/models"
	"log-baseline/internal/platforms"
	"log-baseline/internal/shared/loggers"
)

const kindSynthetics = "synthetics"

// SyntheticFetcher collects synthetic test results over a window.
//
//go:generate mockgen -source=synthetic_fetcher.go -destination=./mocks/synthetic_fetcher_mock.go -package=mocks
type SyntheticFetcher interface {
	// LatestResults returns the results of testID checked within r, walking
	// backwards from r.EndMs until the window stops advancing.
	LatestResults(ctx context.Context, testID string, r models.TimeRange) ([]models.SyntheticResult, error)
}

type syntheticFetcher struct {
	platform platforms.SyntheticPlatform
}

func NewSyntheticFetcher(platform platforms.SyntheticPlatform) SyntheticFetcher {
	return &syntheticFetcher{platform: platform}
}

func (f *syntheticFetcher) LatestResults(ctx context.Context, testID string, r models.TimeRange) ([]models.SyntheticResult, error) {
	logger := loggers.Ctx(ctx)

	results := []models.SyntheticResult{}
	seen := make(map[string]struct{})
	toMs := r.EndMs

	for page := 1; ; page++ {
		resp, err := f.platform.TestResults(ctx, testID, r.StartMs, toMs)
		if err != nil {
			return nil, errFetch(kindSynthetics, page, err)
		}
		metricPagesFetchedTotal.WithLabelValues(kindSynthetics).Inc()

		added := 0
		for _, res := range resp.Results {
			if _, dup := seen[res.ResultID]; dup {
				continue
			}
			seen[res.ResultID] = struct{}{}
			results = append(results, res)
			added++
		}

		logger.Debug().
			Int(loggers.FieldPage, page).
			Str("test_id", testID).
			Int("page_results", added).
			Int64("last_timestamp_fetched", resp.LastTimestampFetched).
			Msg("fetched synthetic results page")

		next := resp.LastTimestampFetched - 1
		if added == 0 || resp.LastTimestampFetched <= r.StartMs || next >= toMs {
			break
		}
		toMs = next
	}

	metricEntriesFetchedTotal.WithLabelValues(kindSynthetics).Add(float64(len(results)))
	return results, nil
}
