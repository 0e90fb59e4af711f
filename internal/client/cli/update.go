package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: update <id> field=value ...")
	}

	fields, err := parseFieldArgs(args[1:])
	if err != nil {
		return err
	}

	record, err := c.dataService.UpdateRecord(ctx, args[0], fields)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	c.io.Println("✓ Record updated")
	c.printRecord(record)

	return nil
}
