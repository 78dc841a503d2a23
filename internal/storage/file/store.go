// Package file stores snapshots on the local filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dtroode/friendgraph/internal/model"
)

var _ model.SnapshotStore = (*Store)(nil)

// Store reads and writes snapshot files; names are filesystem paths.
type Store struct {
	perm fs.FileMode
}

// NewStore creates a Store writing files with mode 0o644.
func NewStore() *Store {
	return &Store{perm: 0o644}
}

// Put writes data to path atomically: it goes to a temporary file in the
// same directory which is synced and then renamed over path.
func (s *Store) Put(_ context.Context, path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("empty path: %w", model.ErrInvalidInput)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w: %w", model.ErrIO, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w: %w", model.ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w: %w", model.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w: %w", model.ErrIO, err)
	}
	if err := os.Chmod(tmpName, s.perm); err != nil {
		return fmt.Errorf("failed to chmod snapshot: %w: %w", model.ErrIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w: %w", model.ErrIO, err)
	}
	return nil
}

// Get reads the file at path.
func (s *Store) Get(_ context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path: %w", model.ErrInvalidInput)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("snapshot %s: %w", path, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w: %w", model.ErrIO, err)
	}
	return data, nil
}
