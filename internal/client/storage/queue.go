package storage

import (
	"context"
	"time"

	"github.com/offlinekit/recordsync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines the persistence layer for sync queue items.
// Ordering and retry policy live in the queue service; this layer only
// stores items and answers the "ready for delivery" query.
type QueueStorage interface {
	// SaveItem inserts or updates a queue item
	SaveItem(ctx context.Context, item *models.QueueItem) error

	// GetItem retrieves a queue item by ID
	// Returns ErrItemNotFound if item doesn't exist
	GetItem(ctx context.Context, id string) (*models.QueueItem, error)

	// ListReady returns up to limit non-dead-letter items whose nextRetryAt
	// is unset or <= now, ordered by (priority asc, enqueuedAt asc)
	ListReady(ctx context.Context, now time.Time, limit int) ([]*models.QueueItem, error)

	// ListDeadLetters returns all dead-letter items, oldest failure first
	ListDeadLetters(ctx context.Context) ([]*models.QueueItem, error)

	// CountPending returns the number of non-dead-letter items
	CountPending(ctx context.Context) (int, error)

	// DeleteItem removes a queue item
	DeleteItem(ctx context.Context, id string) error
}
