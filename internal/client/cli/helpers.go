package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/offlinekit/recordsync/internal/models"
)

// parseFieldArgs разбирает аргументы вида field=value в доменные поля.
// Значение сначала пробуется как JSON (числа, bool, объекты, массивы);
// все, что не парсится, остается строкой.
func parseFieldArgs(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no field=value arguments given")
	}

	fields := make(map[string]any, len(args))
	for _, arg := range args {
		name, raw, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid argument %q: expected field=value", arg)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		fields[name] = value
	}

	return fields, nil
}

// printRecord печатает запись в человекочитаемом виде.
func (c *Cli) printRecord(record *models.Record) {
	c.io.Printf("ID:      %s\n", record.ID)
	c.io.Printf("Version: %d\n", record.Version)
	c.io.Printf("Status:  %s\n", record.SyncStatus)
	c.io.Printf("Updated: %s\n", record.UpdatedAt.Format(time.RFC3339))
	c.io.Printf("Vector:  %s\n", formatVector(record.VersionVector))

	names := make([]string, 0, len(record.Fields))
	for name := range record.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c.io.Printf("  %-16s %v\n", name+":", record.Fields[name])
	}
}

func formatVector(vv map[string]int64) string {
	devices := make([]string, 0, len(vv))
	for device := range vv {
		devices = append(devices, device)
	}
	sort.Strings(devices)

	parts := make([]string, 0, len(devices))
	for _, device := range devices {
		parts = append(parts, fmt.Sprintf("%s:%d", device, vv[device]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
