package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"log-baseline/internal/models"

	_ "modernc.org/sqlite"
)

const (
	sqliteDriver       = "sqlite"
	sqliteMaxAttempts  = 5
	historyTimeLayout  = "2006-01-02T15:04:05.000000000Z07:00"
	defaultHistoryRows = 50
)

var (
	ErrInvalidHistoryPath = errors.New("invalid history path")
)

const historySchema = `
CREATE TABLE IF NOT EXISTS window_summaries (
  run_id TEXT NOT NULL,
  environment TEXT NOT NULL,
  metric TEXT NOT NULL,
  category TEXT NOT NULL,
  total INTEGER NOT NULL,
  day_count INTEGER NOT NULL,
  average INTEGER NOT NULL,
  recorded_at_utc TEXT NOT NULL,
  PRIMARY KEY (run_id, environment, metric, category)
);
CREATE INDEX IF NOT EXISTS idx_window_summaries_env_metric ON window_summaries(environment, metric, recorded_at_utc);
`

// HistoryStore appends the window summaries of every run so averages can be compared across runs.
//
//go:generate mockgen -source=history_store.go -destination=./mocks/history_store_mock.go -package=mocks
type HistoryStore interface {
	// Record writes one row per environment, metric and day category. Re-recording a run replaces its rows.
	Record(ctx context.Context, snapshot *models.Snapshot) (int, error)
	// List returns the newest rows first. An empty metric matches every metric; limit <= 0 uses a default.
	List(ctx context.Context, environment, metric string, limit int) ([]models.HistoryRecord, error)
	Close() error
}

type sqliteHistoryStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteHistoryStore opens (creating if needed) the SQLite database at path.
func NewSQLiteHistoryStore(path string) (HistoryStore, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("%w: path must not be empty", ErrInvalidHistoryPath)
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrInvalidHistoryPath, cleanPath)
	}
	if dir := filepath.Dir(cleanPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory %q: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)", cleanPath)
	db, err := sql.Open(sqliteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping history %q: %w", cleanPath, err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &sqliteHistoryStore{db: db}, nil
}

func (s *sqliteHistoryStore) Record(ctx context.Context, snapshot *models.Snapshot) (int, error) {
	records := models.HistoryRecordsOf(snapshot)
	if len(records) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	const stmt = `
INSERT INTO window_summaries (run_id, environment, metric, category, total, day_count, average, recorded_at_utc)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(run_id, environment, metric, category) DO UPDATE SET
  total=excluded.total,
  day_count=excluded.day_count,
  average=excluded.average,
  recorded_at_utc=excluded.recorded_at_utc
`
	err := s.withRetry("record history", func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		for _, r := range records {
			if _, err := tx.ExecContext(ctx, stmt,
				r.RunID, r.Environment, r.MetricName, string(r.Category),
				r.Total, r.DayCount, r.Average, r.RecordedAt.UTC().Format(historyTimeLayout),
			); err != nil {
				_ = tx.Rollback()
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *sqliteHistoryStore) List(ctx context.Context, environment, metric string, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryRows
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
SELECT run_id, environment, metric, category, total, day_count, average, recorded_at_utc
FROM window_summaries
WHERE environment = ?`
	args := []any{environment}
	if metric != "" {
		query += " AND metric = ?"
		args = append(args, metric)
	}
	query += " ORDER BY recorded_at_utc DESC, metric ASC, category ASC LIMIT ?"
	args = append(args, limit)

	var rows *sql.Rows
	err := s.withRetry("list history", func() error {
		var qErr error
		rows, qErr = s.db.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.HistoryRecord, 0)
	for rows.Next() {
		var (
			r           models.HistoryRecord
			category    string
			recordedRaw string
		)
		if err := rows.Scan(&r.RunID, &r.Environment, &r.MetricName, &category,
			&r.Total, &r.DayCount, &r.Average, &recordedRaw); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		recordedAt, err := time.Parse(historyTimeLayout, recordedRaw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse history timestamp %q: %w", recordedRaw, err)
		}
		r.Category = models.DayCategory(category)
		r.RecordedAt = recordedAt.UTC()
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}
	return records, nil
}

func (s *sqliteHistoryStore) Close() error {
	return s.db.Close()
}

func (s *sqliteHistoryStore) withRetry(op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= sqliteMaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isLockError(err) || attempt == sqliteMaxAttempts {
			break
		}
		time.Sleep(time.Duration(attempt*25) * time.Millisecond)
	}
	return fmt.Errorf("failed to %s: %w", op, lastErr)
}

func isLockError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy")
}

type nopHistoryStore struct{}

// NewNopHistoryStore returns a HistoryStore that records nothing, used when history is disabled.
func NewNopHistoryStore() HistoryStore {
	return nopHistoryStore{}
}

func (nopHistoryStore) Record(context.Context, *models.Snapshot) (int, error) { return 0, nil }

func (nopHistoryStore) List(context.Context, string, string, int) ([]models.HistoryRecord, error) {
	return []models.HistoryRecord{}, nil
}

func (nopHistoryStore) Close() error { return nil }
