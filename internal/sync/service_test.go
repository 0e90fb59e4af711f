package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/offlinekit/recordsync/internal/client/api"
	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/conflict"
	"github.com/offlinekit/recordsync/internal/models"
	"github.com/offlinekit/recordsync/internal/netmon"
	"github.com/offlinekit/recordsync/internal/queue"
	"github.com/offlinekit/recordsync/internal/vector"
	"github.com/offlinekit/recordsync/pkg/api"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) AccessToken(context.Context) (string, error) {
	return s.token, s.err
}

// harness собирает оркестратор со всеми замоканными коллабораторами
// и хранилищем в памяти.
type harness struct {
	svc       *service
	api       *apihttp.ClientAPIMock
	queue     *queue.ServiceMock
	monitor   *netmon.MonitorMock
	records   map[string]*models.Record
	conflicts map[string]*models.ConflictState
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		records:   make(map[string]*models.Record),
		conflicts: make(map[string]*models.ConflictState),
	}

	recordStore := &storage.RecordStorageMock{
		SaveRecordFunc: func(_ context.Context, record *models.Record) error {
			h.records[record.ID] = record
			return nil
		},
		GetRecordFunc: func(_ context.Context, id string) (*models.Record, error) {
			record, ok := h.records[id]
			if !ok {
				return nil, storage.ErrRecordNotFound
			}
			return record, nil
		},
		SaveConflictFunc: func(_ context.Context, state *models.ConflictState) error {
			h.conflicts[state.RecordID] = state
			return nil
		},
		GetConflictFunc: func(_ context.Context, recordID string) (*models.ConflictState, error) {
			state, ok := h.conflicts[recordID]
			if !ok {
				return nil, storage.ErrConflictNotFound
			}
			return state, nil
		},
		ListConflictsFunc: func(_ context.Context) ([]*models.ConflictState, error) {
			var states []*models.ConflictState
			for _, state := range h.conflicts {
				states = append(states, state)
			}
			return states, nil
		},
		DeleteConflictFunc: func(_ context.Context, recordID string) error {
			delete(h.conflicts, recordID)
			return nil
		},
	}

	h.api = &apihttp.ClientAPIMock{}
	h.queue = &queue.ServiceMock{
		MarkSuccessFunc:                func(context.Context, string) error { return nil },
		MarkFailureFunc:                func(context.Context, string, string) error { return nil },
		MarkPermanentFailureFunc:       func(context.Context, string, string) error { return nil },
		PromoteIfRepeatedlyFailingFunc: func(context.Context, string) error { return nil },
	}
	h.monitor = &netmon.MonitorMock{
		IsOnlineFunc: func() bool { return true },
	}

	svc := NewService(Config{
		API:      h.api,
		Records:  recordStore,
		Queue:    h.queue,
		Monitor:  h.monitor,
		Tokens:   &staticTokens{token: "test-token"},
		Logger:   testLogger(),
		DeviceID: "device-c",
	})

	h.svc = svc.(*service)
	h.svc.now = func() time.Time { return testTime }
	h.svc.merger = conflict.NewMergerWithClock("device-c", func() time.Time { return testTime })

	return h
}

func queueItem(id, recordID string, op models.Operation) *models.QueueItem {
	return &models.QueueItem{
		ID:        id,
		RecordID:  recordID,
		Entity:    models.EntityQuote,
		Operation: op,
	}
}

func localRecord(id string, v vector.Vector, status models.SyncStatus, fields map[string]any) *models.Record {
	return &models.Record{
		ID:            id,
		Version:       2,
		VersionVector: v,
		Fields:        fields,
		SyncStatus:    status,
		CreatedAt:     testTime.Add(-time.Hour),
		UpdatedAt:     testTime.Add(-time.Minute),
	}
}

func wireRecord(id string, vv map[string]int64, updatedAt time.Time, fields map[string]any) api.Record {
	return api.Record{
		ID:            id,
		Version:       2,
		VersionVector: vv,
		Fields:        fields,
		CreatedAt:     testTime.Add(-time.Hour),
		UpdatedAt:     updatedAt,
	}
}

func TestPush_Offline(t *testing.T) {
	h := newHarness(t)
	h.monitor.IsOnlineFunc = func() bool { return false }

	_, err := h.svc.Push(context.Background(), 10)
	assert.ErrorIs(t, err, ErrOffline)
	assert.Empty(t, h.queue.DequeueBatchCalls(), "Offline push must not touch the queue")
}

func TestPush_TokenFailure(t *testing.T) {
	h := newHarness(t)
	h.svc.tokens = &staticTokens{err: errors.New("not logged in")}

	_, err := h.svc.Push(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get access token")
}

func TestPush_DeliversCreateAndUpdate(t *testing.T) {
	h := newHarness(t)

	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-c": 1}, models.SyncStatusPending,
		map[string]any{"title": "Q-100"})
	h.records["quote-2"] = localRecord("quote-2", vector.Vector{"device-c": 2}, models.SyncStatusPending,
		map[string]any{"title": "Q-200"})

	h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
		return []*models.QueueItem{
			queueItem("item-1", "quote-1", models.OperationCreate),
			queueItem("item-2", "quote-2", models.OperationUpdate),
		}, nil
	}
	h.api.CreateRecordFunc = func(_ context.Context, token string, record api.Record) (*api.Record, error) {
		assert.Equal(t, "test-token", token)
		assert.Equal(t, "quote-1", record.ID)
		return &record, nil
	}
	h.api.UpdateRecordFunc = func(_ context.Context, _ string, id string, req api.UpdateRecordRequest) (*api.Record, error) {
		assert.Equal(t, "quote-2", id)
		assert.Equal(t, "Q-200", req.Fields["title"])
		return &api.Record{ID: id}, nil
	}

	result, err := h.svc.Push(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.True(t, result.Success())

	assert.Len(t, h.queue.MarkSuccessCalls(), 2)
	assert.Equal(t, models.SyncStatusSynced, h.records["quote-1"].SyncStatus)
	assert.Equal(t, models.SyncStatusSynced, h.records["quote-2"].SyncStatus)
}

func TestPush_RecordDeletedBeforeDelivery(t *testing.T) {
	h := newHarness(t)

	h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
		return []*models.QueueItem{queueItem("item-1", "gone", models.OperationCreate)}, nil
	}

	result, err := h.svc.Push(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Succeeded, "Locally deleted record should be skipped, not failed")
	assert.Empty(t, h.api.CreateRecordCalls())
	assert.Len(t, h.queue.MarkSuccessCalls(), 1)
}

func TestPush_Delete(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		succeeded int
		failed    int
	}{
		{
			name:      "Successful delete",
			succeeded: 1,
		},
		{
			name:      "Already deleted on server",
			deleteErr: &apihttp.Error{StatusCode: 404, Message: "not found"},
			succeeded: 1,
		},
		{
			name:      "Server error",
			deleteErr: &apihttp.Error{StatusCode: 500, Message: "boom"},
			failed:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
				return []*models.QueueItem{queueItem("item-1", "quote-1", models.OperationDelete)}, nil
			}
			h.api.DeleteRecordFunc = func(context.Context, string, string) error {
				return tt.deleteErr
			}

			result, err := h.svc.Push(context.Background(), 10)
			require.NoError(t, err)
			assert.Equal(t, tt.succeeded, result.Succeeded)
			assert.Equal(t, tt.failed, result.Failed)
		})
	}
}

func TestPush_TransientFailureRetries(t *testing.T) {
	h := newHarness(t)

	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-c": 1}, models.SyncStatusPending,
		map[string]any{"title": "Q-100"})
	h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
		return []*models.QueueItem{queueItem("item-1", "quote-1", models.OperationUpdate)}, nil
	}
	h.api.UpdateRecordFunc = func(context.Context, string, string, api.UpdateRecordRequest) (*api.Record, error) {
		return nil, context.DeadlineExceeded
	}

	result, err := h.svc.Push(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Success())
	require.Len(t, result.Errors, 1)

	assert.Len(t, h.queue.MarkFailureCalls(), 1, "Transient failure should schedule a retry")
	assert.Len(t, h.queue.PromoteIfRepeatedlyFailingCalls(), 1)
	assert.Empty(t, h.queue.MarkPermanentFailureCalls())
	assert.Equal(t, models.SyncStatusPending, h.records["quote-1"].SyncStatus,
		"Failed delivery must not mark the record synced")
}

func TestPush_PermanentRejection(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		permanent  bool
	}{
		{"Validation rejection dead-letters", 422, true},
		{"Bad request dead-letters", 400, true},
		{"Unauthorized dead-letters", 401, true},
		{"Request timeout retries", 408, false},
		{"Rate limit retries", 429, false},
		{"Server error retries", 500, false},
		{"Bad gateway retries", 502, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-c": 1}, models.SyncStatusPending,
				map[string]any{"title": "Q-100"})
			h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
				return []*models.QueueItem{queueItem("item-1", "quote-1", models.OperationUpdate)}, nil
			}
			h.api.UpdateRecordFunc = func(context.Context, string, string, api.UpdateRecordRequest) (*api.Record, error) {
				return nil, &apihttp.Error{StatusCode: tt.statusCode, Message: "rejected"}
			}

			result, err := h.svc.Push(context.Background(), 10)
			require.NoError(t, err)
			assert.Equal(t, 1, result.Failed)

			if tt.permanent {
				assert.Len(t, h.queue.MarkPermanentFailureCalls(), 1)
				assert.Empty(t, h.queue.MarkFailureCalls())
			} else {
				assert.Empty(t, h.queue.MarkPermanentFailureCalls())
				assert.Len(t, h.queue.MarkFailureCalls(), 1)
			}
		})
	}
}

func TestPush_PartialBatchFailure(t *testing.T) {
	h := newHarness(t)

	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-c": 1}, models.SyncStatusPending, nil)
	h.records["quote-2"] = localRecord("quote-2", vector.Vector{"device-c": 1}, models.SyncStatusPending, nil)

	h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
		return []*models.QueueItem{
			queueItem("item-1", "quote-1", models.OperationUpdate),
			queueItem("item-2", "quote-2", models.OperationUpdate),
		}, nil
	}
	h.api.UpdateRecordFunc = func(_ context.Context, _ string, id string, _ api.UpdateRecordRequest) (*api.Record, error) {
		if id == "quote-1" {
			return nil, context.DeadlineExceeded
		}
		return &api.Record{ID: id}, nil
	}

	result, err := h.svc.Push(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Succeeded, "One failure must not abort the rest of the batch")
	assert.Equal(t, 1, result.Failed)
}

func TestPull_Offline(t *testing.T) {
	h := newHarness(t)
	h.monitor.IsOnlineFunc = func() bool { return false }

	_, err := h.svc.Pull(context.Background())
	assert.ErrorIs(t, err, ErrOffline)
}

func TestPull_InsertsNewRecords(t *testing.T) {
	h := newHarness(t)

	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return []api.Record{
			wireRecord("quote-1", map[string]int64{"device-b": 1}, testTime, map[string]any{"title": "Q-100"}),
		}, nil
	}

	result, err := h.svc.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Fetched)
	assert.Equal(t, 1, result.Inserted)

	got := h.records["quote-1"]
	require.NotNil(t, got)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Equal(t, "Q-100", got.Fields["title"])
}

func TestPull_SkipsUnchangedRecord(t *testing.T) {
	h := newHarness(t)

	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-b": 1}, models.SyncStatusSynced,
		map[string]any{"title": "Q-100"})
	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return []api.Record{
			wireRecord("quote-1", map[string]int64{"device-b": 1}, testTime, map[string]any{"title": "Q-100"}),
		}, nil
	}

	result, err := h.svc.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 0, result.FastForwarded)
	assert.Equal(t, 0, result.Merged)
}

func TestPull_FastForwardsSyncedLocal(t *testing.T) {
	h := newHarness(t)

	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-b": 1}, models.SyncStatusSynced,
		map[string]any{"title": "old"})
	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return []api.Record{
			wireRecord("quote-1", map[string]int64{"device-b": 2}, testTime, map[string]any{"title": "new"}),
		}, nil
	}

	result, err := h.svc.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.FastForwarded)
	assert.Equal(t, "new", h.records["quote-1"].Fields["title"])
	assert.Equal(t, models.SyncStatusSynced, h.records["quote-1"].SyncStatus)
}

func TestPull_KeepsPendingLocalAwaitingPush(t *testing.T) {
	h := newHarness(t)

	// Локальная версия строго новее серверной: она ждет push
	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-b": 1, "device-c": 1},
		models.SyncStatusPending, map[string]any{"title": "local edit"})
	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return []api.Record{
			wireRecord("quote-1", map[string]int64{"device-b": 1}, testTime, map[string]any{"title": "old"}),
		}, nil
	}

	result, err := h.svc.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.FastForwarded)
	assert.Equal(t, "local edit", h.records["quote-1"].Fields["title"])
	assert.Equal(t, models.SyncStatusPending, h.records["quote-1"].SyncStatus)
}

func TestPull_FastForwardsPendingLocalWhenRemoteDominates(t *testing.T) {
	h := newHarness(t)

	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"device-b": 1}, models.SyncStatusPending,
		map[string]any{"title": "stale"})
	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return []api.Record{
			wireRecord("quote-1", map[string]int64{"device-b": 3}, testTime, map[string]any{"title": "newer"}),
		}, nil
	}

	result, err := h.svc.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.FastForwarded)
	assert.Equal(t, "newer", h.records["quote-1"].Fields["title"])
}

func TestPull_AutoMergesConcurrentEdits(t *testing.T) {
	h := newHarness(t)

	local := localRecord("quote-1", vector.Vector{"a": 5, "b": 2}, models.SyncStatusPending,
		map[string]any{"metadata": map[string]any{"priority": "high"}})
	local.UpdatedAt = testTime.Add(time.Minute)
	h.records["quote-1"] = local

	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return []api.Record{
			wireRecord("quote-1", map[string]int64{"a": 4, "b": 3}, testTime,
				map[string]any{"metadata": map[string]any{"priority": "low"}}),
		}, nil
	}

	result, err := h.svc.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Merged)
	assert.Equal(t, 0, result.Conflicts)

	merged := h.records["quote-1"]
	assert.Equal(t, map[string]any{"priority": "high"}, merged.Fields["metadata"])
	assert.True(t, vector.Equal(vector.Vector{"a": 5, "b": 3, "device-c": 1}, merged.VersionVector))
	assert.Equal(t, models.SyncStatusSynced, merged.SyncStatus)
}

func TestPull_ParksCriticalConflict(t *testing.T) {
	h := newHarness(t)

	local := localRecord("quote-1", vector.Vector{"a": 5, "b": 2}, models.SyncStatusPending,
		map[string]any{"customer_email": "local@example.com"})
	h.records["quote-1"] = local

	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return []api.Record{
			wireRecord("quote-1", map[string]int64{"a": 4, "b": 3}, testTime,
				map[string]any{"customer_email": "remote@example.com"}),
		}, nil
	}

	result, err := h.svc.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 0, result.Merged)
	assert.True(t, result.Success(), "A parked conflict is an expected outcome, not a failure")

	assert.Equal(t, models.SyncStatusConflict, h.records["quote-1"].SyncStatus)
	assert.Equal(t, "local@example.com", h.records["quote-1"].Fields["customer_email"],
		"Local value must stay untouched until manual resolution")

	state := h.conflicts["quote-1"]
	require.NotNil(t, state, "Conflict snapshot must be parked")
	assert.Equal(t, testTime, state.DetectedAt)
	require.NotNil(t, state.Remote)
	assert.Equal(t, "remote@example.com", state.Remote.Fields["customer_email"])
	require.NotNil(t, state.Report)
	require.Len(t, state.Report.CriticalFields, 1)
	assert.Equal(t, "customer_email", state.Report.CriticalFields[0].Path)
}

func TestSyncAll_PushThenPull(t *testing.T) {
	h := newHarness(t)

	var order []string
	h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
		order = append(order, "push")
		return nil, nil
	}
	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		order = append(order, "pull")
		return nil, nil
	}

	result, err := h.svc.SyncAll(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success())
	assert.Equal(t, []string{"push", "pull"}, order, "Push must complete before pull starts")
	require.NotNil(t, result.Push)
	require.NotNil(t, result.Pull)
}

func TestSyncAll_PushFailureDoesNotBlockPull(t *testing.T) {
	h := newHarness(t)

	h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) {
		return nil, errors.New("queue corrupted")
	}
	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) {
		return nil, nil
	}

	result, err := h.svc.SyncAll(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Success())
	assert.Nil(t, result.Push)
	require.NotNil(t, result.Pull, "Pull should still run after a push failure")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "push:")
}

func TestConcurrentEntry_Rejected(t *testing.T) {
	h := newHarness(t)
	h.svc.inFlight.Store(true)

	_, err := h.svc.Push(context.Background(), 10)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	_, err = h.svc.Pull(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	_, err = h.svc.SyncAll(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	h.svc.inFlight.Store(false)
	h.queue.DequeueBatchFunc = func(context.Context, int) ([]*models.QueueItem, error) { return nil, nil }
	h.api.ListRecordsFunc = func(context.Context, string) ([]api.Record, error) { return nil, nil }

	_, err = h.svc.SyncAll(context.Background())
	assert.NoError(t, err, "Guard must be released after each entry")
}

func TestResolve(t *testing.T) {
	h := newHarness(t)

	local := localRecord("quote-1", vector.Vector{"a": 5, "b": 2}, models.SyncStatusConflict,
		map[string]any{"customer_email": "local@example.com", "notes": "local notes"})
	local.UpdatedAt = testTime.Add(time.Minute)
	h.records["quote-1"] = local

	remote := localRecord("quote-1", vector.Vector{"a": 4, "b": 3}, models.SyncStatusSynced,
		map[string]any{"customer_email": "remote@example.com", "notes": "remote notes"})
	remote.UpdatedAt = testTime.Add(-time.Minute)

	report := conflict.Detect(local, remote)
	require.Len(t, report.CriticalFields, 1)
	h.conflicts["quote-1"] = &models.ConflictState{
		RecordID:   "quote-1",
		Remote:     remote,
		Report:     report,
		DetectedAt: testTime,
	}

	var enqueued []queue.EnqueueRequest
	h.queue.EnqueueFunc = func(_ context.Context, req queue.EnqueueRequest) (string, error) {
		enqueued = append(enqueued, req)
		return "item-1", nil
	}

	merged, err := h.svc.Resolve(context.Background(), "quote-1",
		map[string]models.Side{"customer_email": models.SideRemote})
	require.NoError(t, err)

	assert.Equal(t, "remote@example.com", merged.Fields["customer_email"])
	assert.Equal(t, "local notes", merged.Fields["notes"], "LWW winner from the parked report applies")
	assert.Equal(t, models.SyncStatusPending, merged.SyncStatus)
	assert.True(t, vector.Equal(vector.Vector{"a": 5, "b": 3, "device-c": 1}, merged.VersionVector))
	assert.Equal(t, int64(3), merged.Version)

	assert.Nil(t, h.conflicts["quote-1"], "Conflict snapshot must be cleared")
	assert.Equal(t, merged, h.records["quote-1"])

	require.Len(t, enqueued, 1)
	assert.Equal(t, models.OperationUpdate, enqueued[0].Operation)
	require.NotNil(t, enqueued[0].Priority)
	assert.Equal(t, models.PriorityHigh, *enqueued[0].Priority, "Resolution should re-push at high priority")
}

func TestResolve_IncompleteChoices(t *testing.T) {
	h := newHarness(t)

	local := localRecord("quote-1", vector.Vector{"a": 5, "b": 2}, models.SyncStatusConflict,
		map[string]any{"customer_email": "local@example.com", "status": "sent"})
	h.records["quote-1"] = local

	remote := localRecord("quote-1", vector.Vector{"a": 4, "b": 3}, models.SyncStatusSynced,
		map[string]any{"customer_email": "remote@example.com", "status": "accepted"})

	h.conflicts["quote-1"] = &models.ConflictState{
		RecordID:   "quote-1",
		Remote:     remote,
		Report:     conflict.Detect(local, remote),
		DetectedAt: testTime,
	}

	_, err := h.svc.Resolve(context.Background(), "quote-1",
		map[string]models.Side{"status": models.SideLocal})

	var incompleteErr *conflict.IncompleteResolutionError
	require.ErrorAs(t, err, &incompleteErr)
	assert.Equal(t, []string{"customer_email"}, incompleteErr.Missing)

	assert.NotNil(t, h.conflicts["quote-1"], "Failed resolution must keep the snapshot parked")
	assert.Equal(t, models.SyncStatusConflict, h.records["quote-1"].SyncStatus)
}

func TestResolve_NoConflictParked(t *testing.T) {
	h := newHarness(t)

	h.records["quote-1"] = localRecord("quote-1", vector.Vector{"a": 1}, models.SyncStatusSynced, nil)

	_, err := h.svc.Resolve(context.Background(), "quote-1", nil)
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestConflicts(t *testing.T) {
	h := newHarness(t)

	h.conflicts["quote-1"] = &models.ConflictState{RecordID: "quote-1"}

	states, err := h.svc.Conflicts(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "quote-1", states[0].RecordID)
}
