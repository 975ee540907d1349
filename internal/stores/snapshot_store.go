package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"log-baseline/internal/models"
	"log-baseline/internal/shared/filestorages"
)

// LatestRun names the snapshot most recently saved.
const LatestRun = "latest"

var (
	ErrSnapshotNotFound      = errors.New("snapshot not found")
	ErrSnapshotAlreadyExists = errors.New("snapshot already exists")
	ErrInvalidRunID          = errors.New("invalid run id")
)

//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	// Save writes the run's snapshot once and replaces the latest pointer.
	Save(ctx context.Context, snapshot *models.Snapshot) error
	// Load reads a snapshot by run id, or the most recent one for LatestRun.
	Load(ctx context.Context, runID string) (*models.Snapshot, error)
	// ListRuns returns the saved run ids, oldest first.
	ListRuns(ctx context.Context) ([]string, error)
}

type snapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSnapshotStore(fileStorage filestorages.FileStorage) SnapshotStore {
	return &snapshotStore{fileStorage: fileStorage, dir: "snapshots"}
}

func (s *snapshotStore) Save(ctx context.Context, snapshot *models.Snapshot) error {
	if err := validateRunID(snapshot.RunID); err != nil {
		return err
	}

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(snapshot.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrSnapshotAlreadyExists, snapshot.RunID)
		}
		return fmt.Errorf("failed to put snapshot: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(LatestRun), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put latest snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Load(ctx context.Context, runID string) (*models.Snapshot, error) {
	if runID != LatestRun {
		if err := validateRunID(runID); err != nil {
			return nil, err
		}
	}

	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, runID)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *snapshotStore) ListRuns(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	runs := make([]string, 0, len(keys))
	for _, key := range keys {
		if path.Dir(key) != s.dir || path.Ext(key) != ".json" {
			continue
		}
		runID := strings.TrimSuffix(path.Base(key), ".json")
		if runID == LatestRun {
			continue
		}
		runs = append(runs, runID)
	}
	return runs, nil
}

func (s *snapshotStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}

func validateRunID(runID string) error {
	if runID == "" || runID == LatestRun || strings.ContainsAny(runID, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidRunID, runID)
	}
	return nil
}
