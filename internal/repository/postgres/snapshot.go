package postgres

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/friendgraph/internal/model"
)

var _ model.SnapshotStore = (*SnapshotRepository)(nil)

// SnapshotRepository keeps named snapshots in the snapshots table.
type SnapshotRepository struct {
	db *Connection
}

func NewSnapshotRepository(db *Connection) *SnapshotRepository {
	return &SnapshotRepository{
		db: db,
	}
}

// Put inserts the snapshot or replaces the body of an existing one with the same name.
func (r *SnapshotRepository) Put(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("empty snapshot name: %w", model.ErrInvalidInput)
	}
	query := `INSERT INTO snapshots (id, name, body, size_bytes, checksum)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (name) DO UPDATE
			  SET body = EXCLUDED.body, size_bytes = EXCLUDED.size_bytes,
			      checksum = EXCLUDED.checksum, updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), name, data, len(data), checksum(data))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w: %w", model.ErrIO, err)
	}

	return nil
}

// Get returns the body of the snapshot called name after verifying its checksum.
func (r *SnapshotRepository) Get(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("empty snapshot name: %w", model.ErrInvalidInput)
	}
	query := `SELECT body, checksum FROM snapshots WHERE name = $1`

	var (
		body []byte
		sum  string
	)
	err := r.db.QueryRowContext(ctx, query, name).Scan(&body, &sum)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snapshot %s: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w: %w", model.ErrIO, err)
	}

	if checksum(body) != sum {
		return nil, fmt.Errorf("snapshot %s checksum mismatch: %w", name, model.ErrIO)
	}

	return body, nil
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
