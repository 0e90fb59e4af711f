package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/offlinekit/recordsync/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	// Аутентификация
	authData, err := c.authService.Status(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Auth: not logged in (run 'recordsync login')")
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	default:
		c.io.Printf("Auth: %s\n", authData.Username)
		if authData.ExpiresAt > 0 {
			expiresAt := time.Unix(authData.ExpiresAt, 0)
			if time.Now().After(expiresAt) {
				c.io.Println("⚠️  Token has expired. Please login again.")
			} else {
				c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
			}
		}
	}

	c.io.Println()

	// Очередь
	pending, err := c.queueService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending items: %w", err)
	}
	if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d item(s) waiting to be delivered\n", pending)
	} else {
		c.io.Println("✓ Queue empty")
	}

	deadLetters, err := c.queueService.DeadLetters(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dead letters: %w", err)
	}
	if len(deadLetters) > 0 {
		c.io.Printf("⚠️  Dead letters: %d item(s) need attention ('recordsync deadletter list')\n", len(deadLetters))
	}

	// Конфликты
	conflicts, err := c.syncService.Conflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		c.io.Printf("⚠️  Conflicts: %d record(s) need your attention ('recordsync resolve <id>')\n", len(conflicts))
	} else {
		c.io.Println("✓ No conflicts")
	}

	return nil
}
