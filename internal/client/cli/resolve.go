package cli

import (
	"context"
	"fmt"

	"github.com/offlinekit/recordsync/internal/models"
)

// runResolve интерактивно разрешает критический конфликт: для каждого
// критического поля пользователь выбирает локальное или серверное значение.
func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: resolve <record-id>")
	}
	recordID := args[0]

	states, err := c.syncService.Conflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	var state *models.ConflictState
	for _, candidate := range states {
		if candidate.RecordID == recordID {
			state = candidate
			break
		}
	}
	if state == nil {
		return fmt.Errorf("record %s has no pending conflict", recordID)
	}

	c.io.Printf("Resolving conflict for record %s\n", recordID)
	c.io.Printf("Detected at %s\n", state.DetectedAt.Format("2006-01-02 15:04:05"))
	c.io.Println()

	choices := make(map[string]models.Side, len(state.Report.CriticalFields))
	for _, field := range state.Report.CriticalFields {
		c.io.Printf("Field %q:\n", field.Path)
		c.io.Printf("  [l] local  (%s): %v\n", field.LocalUpdatedAt.Format("15:04:05"), field.LocalValue)
		c.io.Printf("  [r] remote (%s): %v\n", field.RemoteUpdatedAt.Format("15:04:05"), field.RemoteValue)

		side, err := c.readChoice(field.Path)
		if err != nil {
			return err
		}
		choices[field.Path] = side
	}

	merged, err := c.syncService.Resolve(ctx, recordID, choices)
	if err != nil {
		return fmt.Errorf("failed to apply resolution: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Conflict resolved; record queued for sync")
	c.printRecord(merged)

	return nil
}

func (c *Cli) readChoice(fieldName string) (models.Side, error) {
	for {
		input, err := c.io.ReadInput("Choose [l/r]: ")
		if err != nil {
			return "", fmt.Errorf("failed to read choice for %s: %w", fieldName, err)
		}

		switch input {
		case "l", "local":
			return models.SideLocal, nil
		case "r", "remote":
			return models.SideRemote, nil
		default:
			c.io.Println("Please answer 'l' or 'r'")
		}
	}
}
