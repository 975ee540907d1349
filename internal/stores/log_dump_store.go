package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"log-baseline/internal/models"
	"log-baseline/internal/shared/filestorages"
)

var (
	ErrLogDumpAlreadyExists = errors.New("log dump already exists")
)

// LogDumpStore keeps the raw entries fetched for a pod. Dumps are written once per run:
// a second Put for the same environment, pod and run fails with ErrLogDumpAlreadyExists.
//
//go:generate mockgen -source=log_dump_store.go -destination=./mocks/log_dump_store_mock.go -package=mocks
type LogDumpStore interface {
	Put(ctx context.Context, dump *models.PodLogDump) (string, error)
}

type logDumpStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLogDumpStore(fileStorage filestorages.FileStorage) LogDumpStore {
	return &logDumpStore{fileStorage: fileStorage, dir: "pod-logs"}
}

// Put stores the dump and returns its key.
func (s *logDumpStore) Put(ctx context.Context, dump *models.PodLogDump) (string, error) {
	if err := validateRunID(dump.RunID); err != nil {
		return "", err
	}

	jsonData, err := json.Marshal(dump)
	if err != nil {
		return "", fmt.Errorf("failed to marshal log dump: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s/%s.json", s.dir, dump.Environment, dump.Pod, dump.RunID)

	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrLogDumpAlreadyExists
		}
		return "", fmt.Errorf("failed to put log dump: %w", err)
	}
	return key, nil
}
