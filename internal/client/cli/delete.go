package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <id>")
	}

	if err := c.dataService.DeleteRecord(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	c.io.Println("✓ Record deleted (delete queued for sync)")

	return nil
}
