package fetchers

import (
	"context"
	"fmt"

	"log-baseline/internal/models"
	"log-baseline/internal/platforms"
	"log-baseline/internal/shared/loggers"
)

const kindLogs = "logs"

// LogFetcher drains a cursor-paginated log listing.
//
//go:generate mockgen -source=log_fetcher.go -destination=./mocks/log_fetcher_mock.go -package=mocks
type LogFetcher interface {
	// FetchAll returns every log matching query within r, newest first, pages
	// concatenated in fetch order. It is all or nothing: if any page fails the
	// entries already fetched are dropped and an ErrFetch is returned.
	//
	// The result is unbounded; callers bound r.
	FetchAll(ctx context.Context, r models.TimeRange, query string, pageSize int) ([]models.LogEntry, error)
}

type logFetcher struct {
	platform platforms.LogPlatform
}

func NewLogFetcher(platform platforms.LogPlatform) LogFetcher {
	return &logFetcher{platform: platform}
}

func (f *logFetcher) FetchAll(ctx context.Context, r models.TimeRange, query string, pageSize int) ([]models.LogEntry, error) {
	if pageSize <= 0 {
		return nil, errInvalidPageSize(pageSize)
	}

	logger := loggers.Ctx(ctx)

	var (
		entries []models.LogEntry
		cursor  string
	)
	for page := 1; ; page++ {
		resp, err := f.platform.ListLogs(ctx, query, r, cursor, pageSize)
		if err != nil {
			return nil, errFetch(kindLogs, page, err)
		}
		metricPagesFetchedTotal.WithLabelValues(kindLogs).Inc()

		entries = append(entries, resp.Entries...)
		logger.Debug().
			Int(loggers.FieldPage, page).
			Int("page_entries", len(resp.Entries)).
			Int("total_entries", len(entries)).
			Msg("fetched log page")

		if resp.NextCursor == "" {
			break
		}
		if resp.NextCursor == cursor {
			return nil, errFetch(kindLogs, page, fmt.Errorf("cursor %q did not advance", cursor))
		}
		cursor = resp.NextCursor
	}

	metricEntriesFetchedTotal.WithLabelValues(kindLogs).Add(float64(len(entries)))
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return entries, nil
}
