package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/vector"
	"github.com/offlinekit/recordsync/pkg/api"
)

func TestToWire(t *testing.T) {
	record := &models.Record{
		ID:            "quote-1",
		Version:       3,
		VersionVector: vector.Vector{"a": 2},
		Fields:        map[string]any{"title": "Q-100"},
		CreatedAt:     testTime.Add(-time.Hour),
		UpdatedAt:     testTime,
		SyncStatus:    models.SyncStatusPending,
	}

	wire := toWire(record)

	assert.Equal(t, "quote-1", wire.ID)
	assert.Equal(t, int64(3), wire.Version)
	assert.Equal(t, map[string]int64{"a": 2}, wire.VersionVector)
	assert.Equal(t, "Q-100", wire.Fields["title"])
	assert.True(t, testTime.Equal(wire.UpdatedAt))

	// Вектор в wire-структуре независим от записи
	wire.VersionVector["a"] = 99
	assert.Equal(t, int64(2), record.VersionVector["a"])
}

func TestFromWire(t *testing.T) {
	wire := api.Record{
		ID:            "quote-1",
		Version:       5,
		VersionVector: map[string]int64{"a": 2, "b": 1},
		Fields:        map[string]any{"title": "Q-100"},
		CreatedAt:     testTime.Add(-time.Hour),
		UpdatedAt:     testTime,
	}

	record := fromWire(&wire)

	assert.Equal(t, "quote-1", record.ID)
	assert.Equal(t, int64(5), record.Version)
	assert.True(t, vector.Equal(vector.Vector{"a": 2, "b": 1}, record.VersionVector))
	assert.Equal(t, "Q-100", record.Fields["title"])
}

func TestFromWire_NilMaps(t *testing.T) {
	record := fromWire(&api.Record{ID: "quote-1"})

	require.NotNil(t, record.Fields, "Nil wire fields should become an empty map")
	require.NotNil(t, record.VersionVector)
	assert.Empty(t, record.Fields)
}

func TestApiUpdateRequest(t *testing.T) {
	record := &models.Record{
		ID:            "quote-1",
		Version:       3,
		VersionVector: vector.Vector{"a": 2},
		Fields:        map[string]any{"title": "Q-100"},
		UpdatedAt:     testTime,
	}

	req := apiUpdateRequest(record)

	assert.Equal(t, int64(3), req.Version)
	assert.Equal(t, map[string]int64{"a": 2}, req.VersionVector)
	assert.Equal(t, "Q-100", req.Fields["title"])
	assert.True(t, testTime.Equal(req.UpdatedAt))
}
