package cli

import (
	"context"
	"fmt"
	"sort"
)

func (c *Cli) runList(ctx context.Context) error {
	records, err := c.dataService.ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		c.io.Println("No records")
		return nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})

	for _, record := range records {
		title, _ := record.Field("title").(string)
		c.io.Printf("%s  v%-3d %-8s  %s\n", record.ID, record.Version, record.SyncStatus, title)
	}
	c.io.Println()
	c.io.Printf("%d record(s)\n", len(records))

	return nil
}
