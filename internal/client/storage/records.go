package storage

import (
	"context"

	"github.com/offlinekit/recordsync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines interface for storing versioned records on the device.
// It also keeps conflict snapshots so that manual resolution can resume
// after a restart without re-fetching the remote side.
type RecordStorage interface {
	// SaveRecord stores or updates a record
	SaveRecord(ctx context.Context, record *models.Record) error

	// GetRecord retrieves a record by ID
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, id string) (*models.Record, error)

	// ListRecords returns all locally stored records
	ListRecords(ctx context.Context) ([]*models.Record, error)

	// ListRecordsByStatus returns records in the given sync status
	ListRecordsByStatus(ctx context.Context, status models.SyncStatus) ([]*models.Record, error)

	// DeleteRecord removes a record from local storage
	DeleteRecord(ctx context.Context, id string) error

	// SaveConflict persists a conflict snapshot next to the record
	SaveConflict(ctx context.Context, state *models.ConflictState) error

	// GetConflict retrieves the conflict snapshot for a record
	// Returns ErrConflictNotFound if none exists
	GetConflict(ctx context.Context, recordID string) (*models.ConflictState, error)

	// ListConflicts returns all parked conflict snapshots
	ListConflicts(ctx context.Context) ([]*models.ConflictState, error)

	// DeleteConflict removes the conflict snapshot after resolution
	DeleteConflict(ctx context.Context, recordID string) error
}
