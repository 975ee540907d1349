package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"latest.json",
		"snapshots/01J9Z8.json",
		"pod-logs/prod/api-7f9c/2026-10-19.jsonl",
		"file-with-dashes.txt",
		"file_with_underscores.txt",
		"file.with.dots.txt",
		"..hidden-but-inside",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "test data"

			result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_Overwrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		allowOverwrite bool
		wantErr        error
		wantContent    string
	}{
		{name: "rejects existing key", allowOverwrite: false, wantErr: ErrFileAlreadyExists, wantContent: "initial"},
		{name: "replaces existing key", allowOverwrite: true, wantContent: "replacement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := newTestStorage(t)
			ctx := context.Background()
			key := "snapshots/latest.json"

			_, err := storage.Put(ctx, key, strings.NewReader("initial"), PutOptions{})
			require.NoError(t, err)

			_, err = storage.Put(ctx, key, strings.NewReader("replacement"), PutOptions{AllowOverwrite: tt.allowOverwrite})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, string(content))
			assertNoTempFiles(t, filepath.Dir(filepath.Join(storage.(*fileStorage).dir, key)))
		})
	}
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"snapshots/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestPut_CancelledReaderLeavesNothingBehind(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Put(ctx, "dumps/out.jsonl", failingReader{}, PutOptions{})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(storage.(*fileStorage).dir, "dumps/out.jsonl"))
	assert.True(t, os.IsNotExist(statErr))
	assertNoTempFiles(t, filepath.Join(storage.(*fileStorage).dir, "dumps"))
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "snapshots/01J9Z8.json"
	data := `{"run_id":"01J9Z8","environments":{}}`

	result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	rc, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestPut_LargeData(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	data := strings.Repeat("A", 5*1024*1024)

	_, err := storage.Put(ctx, "large.jsonl", strings.NewReader(data), PutOptions{})
	require.NoError(t, err)

	rc, err := storage.Get(ctx, "large.jsonl")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, len(data), len(content))
}

func TestList(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	for _, key := range []string{"snapshots/b.json", "snapshots/a.json", "snapshots/nested/c.json", "other/d.json"} {
		_, err := storage.Put(ctx, key, strings.NewReader("{}"), PutOptions{})
		require.NoError(t, err)
	}

	keys, err := storage.List(ctx, "snapshots")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/a.json", "snapshots/b.json", "snapshots/nested/c.json"}, keys)

	keys, err = storage.List(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = storage.List(ctx, "../outside")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "leftover temp file %s", e.Name())
	}
}

func newTestStorage(t *testing.T) FileStorage {
	tmpDir := t.TempDir()
	storage, err := NewFileStorage(tmpDir)
	require.NoError(t, err)
	return storage
}
