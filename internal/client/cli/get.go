package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <id>")
	}

	record, err := c.dataService.GetRecord(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	c.printRecord(record)

	return nil
}
