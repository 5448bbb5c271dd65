package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/catalog"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
)

const defaultSnapshotKey = "products.json"

// LocalSnapshotStore keeps the catalog snapshot as a file on disk
type LocalSnapshotStore struct {
	path string
}

// NewLocalSnapshotStore creates the directory if needed
func NewLocalSnapshotStore(dir, key string) (*LocalSnapshotStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &LocalSnapshotStore{path: filepath.Join(dir, snapshotKey(key))}, nil
}

// Put writes the snapshot through a temp file and rename, so readers never
// observe a partial file
func (s *LocalSnapshotStore) Put(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Get reads the snapshot
func (s *LocalSnapshotStore) Get(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, shared.ErrNotFound.WithMessage("No product snapshot has been synced yet")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Path returns the snapshot file path
func (s *LocalSnapshotStore) Path() string {
	return s.path
}

func snapshotKey(key string) string {
	if key == "" {
		return defaultSnapshotKey
	}
	return key
}

var _ catalog.SnapshotStore = (*LocalSnapshotStore)(nil)
