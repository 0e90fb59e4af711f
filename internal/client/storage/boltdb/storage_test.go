package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/vector"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func makeRecord(id string) *models.Record {
	return &models.Record{
		ID:      id,
		Version: 2,
		VersionVector: vector.Vector{
			"device-a": 2,
		},
		Fields: map[string]any{
			"title":          "Q-100",
			"customer_email": "client@example.com",
			"metadata":       map[string]any{"priority": "high"},
		},
		CreatedAt:  testTime.Add(-time.Hour),
		UpdatedAt:  testTime,
		SyncStatus: models.SyncStatusPending,
	}
}

func TestSaveRecord_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	record := makeRecord("quote-1")
	require.NoError(t, store.SaveRecord(ctx, record))

	got, err := store.GetRecord(ctx, "quote-1")
	require.NoError(t, err)

	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Version, got.Version)
	assert.True(t, vector.Equal(record.VersionVector, got.VersionVector))
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	assert.Equal(t, "Q-100", got.Fields["title"])
	assert.Equal(t, map[string]any{"priority": "high"}, got.Fields["metadata"])
	assert.True(t, record.UpdatedAt.Equal(got.UpdatedAt))
}

func TestGetRecord_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestListRecords(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	records, err := store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, store.SaveRecord(ctx, makeRecord("quote-1")))
	require.NoError(t, store.SaveRecord(ctx, makeRecord("quote-2")))

	records, err = store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListRecordsByStatus(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	pending := makeRecord("quote-1")
	require.NoError(t, store.SaveRecord(ctx, pending))

	synced := makeRecord("quote-2")
	synced.SyncStatus = models.SyncStatusSynced
	require.NoError(t, store.SaveRecord(ctx, synced))

	conflicted := makeRecord("quote-3")
	conflicted.SyncStatus = models.SyncStatusConflict
	require.NoError(t, store.SaveRecord(ctx, conflicted))

	records, err := store.ListRecordsByStatus(ctx, models.SyncStatusConflict)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "quote-3", records[0].ID)
}

func TestDeleteRecord(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRecord(ctx, makeRecord("quote-1")))
	require.NoError(t, store.DeleteRecord(ctx, "quote-1"))

	_, err := store.GetRecord(ctx, "quote-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	// Удаление несуществующей записи не ошибка
	assert.NoError(t, store.DeleteRecord(ctx, "missing"))
}

func TestConflict_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	state := &models.ConflictState{
		RecordID:   "quote-1",
		Remote:     makeRecord("quote-1"),
		DetectedAt: testTime,
		Report: &models.ConflictReport{
			HasConflict:  true,
			LocalVector:  vector.Vector{"a": 5, "b": 2},
			RemoteVector: vector.Vector{"a": 4, "b": 3},
			CriticalFields: []models.ConflictField{
				{
					Path:        "customer_email",
					LocalValue:  "local@example.com",
					RemoteValue: "remote@example.com",
					Severity:    models.SeverityCritical,
				},
			},
		},
	}

	require.NoError(t, store.SaveConflict(ctx, state))

	got, err := store.GetConflict(ctx, "quote-1")
	require.NoError(t, err)

	assert.Equal(t, "quote-1", got.RecordID)
	require.NotNil(t, got.Remote)
	assert.Equal(t, "quote-1", got.Remote.ID)
	require.NotNil(t, got.Report)
	assert.True(t, got.Report.HasConflict)
	require.Len(t, got.Report.CriticalFields, 1)
	assert.Equal(t, "customer_email", got.Report.CriticalFields[0].Path)
	assert.True(t, vector.Equal(vector.Vector{"a": 5, "b": 2}, got.Report.LocalVector))
}

func TestGetConflict_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetConflict(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestListConflicts(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	states, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, states)

	for _, id := range []string{"quote-1", "quote-2"} {
		require.NoError(t, store.SaveConflict(ctx, &models.ConflictState{
			RecordID:   id,
			DetectedAt: testTime,
		}))
	}

	states, err = store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 2)
}

func TestDeleteConflict(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveConflict(ctx, &models.ConflictState{RecordID: "quote-1"}))
	require.NoError(t, store.DeleteConflict(ctx, "quote-1"))

	_, err := store.GetConflict(ctx, "quote-1")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestAuth_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	auth := &storage.AuthData{
		Username:    "testuser",
		AccessToken: "token-123",
		ExpiresAt:   testTime.Unix(),
	}
	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "testuser", got.Username)
	assert.Equal(t, "token-123", got.AccessToken)
	assert.Equal(t, testTime.Unix(), got.ExpiresAt)

	require.NoError(t, store.DeleteAuth(ctx))
	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestDeviceID_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetDeviceID(ctx)
	assert.ErrorIs(t, err, storage.ErrDeviceNotRegistered)

	require.NoError(t, store.SaveDeviceID(ctx, "device-abc"))

	got, err := store.GetDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-abc", got)
}

func TestStorage_Closed(t *testing.T) {
	store := &Storage{}

	_, err := store.GetRecord(context.Background(), "quote-1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.SaveDeviceID(context.Background(), "device-abc")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
