package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offlinekit/recordsync/internal/vector"
)

func TestRecordClone_DeepCopy(t *testing.T) {
	original := &Record{
		ID:            "quote-1",
		Version:       3,
		VersionVector: vector.Vector{"a": 2, "b": 1},
		Fields: map[string]any{
			"title": "Q-100",
			"metadata": map[string]any{
				"priority": "high",
				"labels":   []any{"rush", "q3"},
			},
		},
		SyncStatus: SyncStatusPending,
		CreatedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.VersionVector["a"] = 99
	clone.Fields["title"] = "changed"
	clone.Fields["metadata"].(map[string]any)["priority"] = "low"
	clone.Fields["metadata"].(map[string]any)["labels"].([]any)[0] = "changed"

	assert.Equal(t, int64(2), original.VersionVector["a"], "Clone must not share the version vector")
	assert.Equal(t, "Q-100", original.Fields["title"], "Clone must not share the fields map")
	assert.Equal(t, "high", original.Fields["metadata"].(map[string]any)["priority"],
		"Clone must not share nested objects")
	assert.Equal(t, "rush", original.Fields["metadata"].(map[string]any)["labels"].([]any)[0],
		"Clone must not share nested arrays")
}

func TestCloneValue_Scalars(t *testing.T) {
	assert.Equal(t, "text", CloneValue("text"))
	assert.Equal(t, float64(1.5), CloneValue(float64(1.5)))
	assert.Equal(t, true, CloneValue(true))
	assert.Nil(t, CloneValue(nil))
}

func TestRecordField(t *testing.T) {
	record := &Record{Fields: map[string]any{"title": "Q-100"}}

	assert.Equal(t, "Q-100", record.Field("title"))
	assert.Nil(t, record.Field("missing"))
	assert.Nil(t, (&Record{}).Field("title"), "Field on a record without fields should return nil")
}
