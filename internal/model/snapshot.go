package model

import "context"

// SnapshotStore persists encoded snapshots under a name.
type SnapshotStore interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}

// Snapshot is the complete persisted state of a graph.
type Snapshot struct {
	HighWater int
	Users     []SnapshotUser
	Edges     []Edge
}

// SnapshotUser is a single user record of a snapshot.
type SnapshotUser struct {
	ID        int
	Name      string
	Interests []string
}

// Edge is an undirected friendship stored with A < B.
type Edge struct {
	A int
	B int
}
