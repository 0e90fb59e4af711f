package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/models"
)

const queueColumns = `id, record_id, entity, operation, payload, priority,
	       retry_count, next_retry_at, last_error, dead_letter,
	       failure_reason, failed_at, enqueued_at`

// SaveItem inserts or updates a queue item
func (s *Storage) SaveItem(ctx context.Context, item *models.QueueItem) error {
	payload, err := marshalPayload(item.Payload)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sync_queue (
			id, record_id, entity, operation, payload, priority,
			retry_count, next_retry_at, last_error, dead_letter,
			failure_reason, failed_at, enqueued_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			record_id      = excluded.record_id,
			entity         = excluded.entity,
			operation      = excluded.operation,
			payload        = excluded.payload,
			priority       = excluded.priority,
			retry_count    = excluded.retry_count,
			next_retry_at  = excluded.next_retry_at,
			last_error     = excluded.last_error,
			dead_letter    = excluded.dead_letter,
			failure_reason = excluded.failure_reason,
			failed_at      = excluded.failed_at,
			enqueued_at    = excluded.enqueued_at
	`

	_, err = s.db.ExecContext(ctx, query,
		item.ID,
		item.RecordID,
		string(item.Entity),
		string(item.Operation),
		payload,
		int(item.Priority),
		item.RetryCount,
		timeToMillis(item.NextRetryAt),
		item.LastError,
		boolToInt(item.DeadLetter),
		item.FailureReason,
		timeToMillis(item.FailedAt),
		item.EnqueuedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save queue item: %w", err)
	}

	return nil
}

// GetItem retrieves a queue item by ID
func (s *Storage) GetItem(ctx context.Context, id string) (*models.QueueItem, error) {
	query := `SELECT ` + queueColumns + ` FROM sync_queue WHERE id = ?`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get queue item: %w", err)
	}

	return item, nil
}

// ListReady returns up to limit deliverable items in strict priority order
// with FIFO tie-break within a tier
func (s *Storage) ListReady(ctx context.Context, now time.Time, limit int) ([]*models.QueueItem, error) {
	query := `
		SELECT ` + queueColumns + `
		FROM sync_queue
		WHERE dead_letter = 0
		  AND (next_retry_at IS NULL OR next_retry_at <= ?)
		ORDER BY priority ASC, enqueued_at ASC, seq ASC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, now.UnixMilli(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ready items: %w", err)
	}
	// Ошибки итерации ловит rows.Err в scanItems
	defer func() { _ = rows.Close() }()

	return scanItems(rows)
}

// ListDeadLetters returns all dead-letter items, oldest failure first
func (s *Storage) ListDeadLetters(ctx context.Context) ([]*models.QueueItem, error) {
	query := `
		SELECT ` + queueColumns + `
		FROM sync_queue
		WHERE dead_letter = 1
		ORDER BY failed_at ASC, seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dead letters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanItems(rows)
}

// CountPending returns the number of non-dead-letter items
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sync_queue WHERE dead_letter = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}

	return count, nil
}

// DeleteItem removes a queue item
func (s *Storage) DeleteItem(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete queue item: %w", err)
	}

	return nil
}

// scanner покрывает и *sql.Row, и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*models.QueueItem, error) {
	item := &models.QueueItem{}
	var (
		payload     string
		priority    int
		nextRetryAt sql.NullInt64
		deadLetter  int
		failedAt    sql.NullInt64
		enqueuedAt  int64
	)

	err := row.Scan(
		&item.ID,
		&item.RecordID,
		&item.Entity,
		&item.Operation,
		&payload,
		&priority,
		&item.RetryCount,
		&nextRetryAt,
		&item.LastError,
		&deadLetter,
		&item.FailureReason,
		&failedAt,
		&enqueuedAt,
	)
	if err != nil {
		return nil, err
	}

	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &item.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	item.Priority = models.Priority(priority)
	item.DeadLetter = intToBool(deadLetter)
	item.NextRetryAt = millisToTime(nextRetryAt)
	item.FailedAt = millisToTime(failedAt)
	item.EnqueuedAt = time.UnixMilli(enqueuedAt).UTC()

	return item, nil
}

func scanItems(rows *sql.Rows) ([]*models.QueueItem, error) {
	var items []*models.QueueItem

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return items, nil
}

func marshalPayload(payload map[string]any) (string, error) {
	if payload == nil {
		return "", nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	return string(data), nil
}

func timeToMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func millisToTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).UTC()
	return &t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
