package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runQueue(ctx context.Context) error {
	// Большой лимит: команда показывает всю очередь целиком
	items, err := c.queueService.DequeueBatch(ctx, 1000)
	if err != nil {
		return fmt.Errorf("failed to list queue: %w", err)
	}

	if len(items) == 0 {
		c.io.Println("Queue is empty")
		return nil
	}

	for _, item := range items {
		c.io.Printf("%s  %-8s %-6s  record=%s retries=%d enqueued=%s\n",
			item.ID,
			item.Priority.String(),
			item.Operation,
			item.RecordID,
			item.RetryCount,
			item.EnqueuedAt.Format(time.RFC3339))
		if item.LastError != "" {
			c.io.Printf("    last error: %s\n", item.LastError)
		}
	}
	c.io.Println()
	c.io.Printf("%d item(s) ready for delivery\n", len(items))

	return nil
}
