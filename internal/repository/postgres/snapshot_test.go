package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/friendgraph/internal/model"
)

func newMockRepository(t *testing.T) (*SnapshotRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSnapshotRepository(&Connection{DB: db}), mock
}

func TestNewSnapshotRepository(t *testing.T) {
	db := &Connection{}
	repo := NewSnapshotRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestSnapshotRepository_Put(t *testing.T) {
	data := []byte("USERS 0\nEDGES 0\n")

	tests := []struct {
		name    string
		snap    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "upsert",
			snap: "daily",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO snapshots`)).
					WithArgs(sqlmock.AnyArg(), "daily", data, len(data), checksum(data)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "database error",
			snap: "daily",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO snapshots`)).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: model.ErrIO,
		},
		{
			name:    "empty name",
			snap:    "",
			setup:   func(sqlmock.Sqlmock) {},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			err := repo.Put(context.Background(), tt.snap, data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSnapshotRepository_Get(t *testing.T) {
	data := []byte("USERS 0\nEDGES 0\n")
	query := regexp.QuoteMeta(`SELECT body, checksum FROM snapshots WHERE name = $1`)

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		want    []byte
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("daily").
					WillReturnRows(sqlmock.NewRows([]string{"body", "checksum"}).AddRow(data, checksum(data)))
			},
			want: data,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("daily").
					WillReturnRows(sqlmock.NewRows([]string{"body", "checksum"}))
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "checksum mismatch",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("daily").
					WillReturnRows(sqlmock.NewRows([]string{"body", "checksum"}).AddRow(data, "deadbeef"))
			},
			wantErr: model.ErrIO,
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("daily").WillReturnError(errors.New("timeout"))
			},
			wantErr: model.ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			got, err := repo.Get(context.Background(), "daily")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConnection_PingNil(t *testing.T) {
	c := &Connection{}
	assert.Error(t, c.Ping(context.Background()))
	assert.NoError(t, c.Close())
}
