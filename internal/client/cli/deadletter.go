package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runDeadLetter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: deadletter list | retry <id> | purge <id>")
	}

	switch args[0] {
	case "list":
		return c.runDeadLetterList(ctx)
	case "retry":
		if len(args) != 2 {
			return fmt.Errorf("usage: deadletter retry <id>")
		}
		return c.runDeadLetterRetry(ctx, args[1])
	case "purge":
		if len(args) != 2 {
			return fmt.Errorf("usage: deadletter purge <id>")
		}
		return c.runDeadLetterPurge(ctx, args[1])
	default:
		return fmt.Errorf("unknown deadletter subcommand: %s", args[0])
	}
}

func (c *Cli) runDeadLetterList(ctx context.Context) error {
	items, err := c.queueService.DeadLetters(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dead letters: %w", err)
	}

	if len(items) == 0 {
		c.io.Println("No dead letter items")
		return nil
	}

	for _, item := range items {
		failedAt := ""
		if item.FailedAt != nil {
			failedAt = item.FailedAt.Format(time.RFC3339)
		}
		c.io.Printf("%s  %-6s record=%s failed=%s\n", item.ID, item.Operation, item.RecordID, failedAt)
		c.io.Printf("    reason: %s\n", item.FailureReason)
	}

	return nil
}

func (c *Cli) runDeadLetterRetry(ctx context.Context, itemID string) error {
	if err := c.queueService.RequeueDeadLetter(ctx, itemID, nil); err != nil {
		return fmt.Errorf("failed to requeue item: %w", err)
	}

	c.io.Println("✓ Item requeued; it will be delivered on the next sync")

	return nil
}

func (c *Cli) runDeadLetterPurge(ctx context.Context, itemID string) error {
	if err := c.queueService.PurgeDeadLetter(ctx, itemID); err != nil {
		return fmt.Errorf("failed to purge item: %w", err)
	}

	c.io.Println("✓ Item removed permanently")

	return nil
}
