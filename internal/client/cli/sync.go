package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/offlinekit/recordsync/internal/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Starting synchronization with server...")

	result, err := c.syncService.SyncAll(ctx)
	if errors.Is(err, sync.ErrOffline) {
		return fmt.Errorf("sync failed: offline")
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	if result.Success() {
		c.io.Println("✓ Synchronization completed successfully!")
	} else {
		c.io.Printf("⚠️  Synchronization finished with %d error(s)\n", len(result.Errors))
	}
	c.io.Println()

	if push := result.Push; push != nil {
		c.io.Printf("Pushed:         %d of %d item(s)\n", push.Succeeded, push.Attempted)
	}
	if pull := result.Pull; pull != nil {
		c.io.Printf("Pulled:         %d record(s)\n", pull.Fetched)
		c.io.Printf("Inserted:       %d\n", pull.Inserted)
		c.io.Printf("Fast-forwarded: %d\n", pull.FastForwarded)
		c.io.Printf("Auto-merged:    %d\n", pull.Merged)
		if pull.Conflicts > 0 {
			c.io.Printf("⚠️  Conflicts:   %d record(s) need manual resolution\n", pull.Conflicts)
		}
	}

	for _, errText := range result.Errors {
		c.io.Printf("  error: %s\n", errText)
	}

	return nil
}
