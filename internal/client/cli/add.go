package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fields, err := parseFieldArgs(args)
	if err != nil {
		return err
	}

	record, err := c.dataService.CreateRecord(ctx, fields)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	c.io.Println("✓ Record created")
	c.printRecord(record)

	return nil
}
