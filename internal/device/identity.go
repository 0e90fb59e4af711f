package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/offlinekit/recordsync/internal/client/storage"
)

// EnsureID возвращает стабильный идентификатор устройства, генерируя его
// при первом запуске. ID сохраняется в локальном хранилище и не меняется
// до переустановки: version vectors опираются на его стабильность.
func EnsureID(ctx context.Context, store storage.DeviceStorage) (string, error) {
	deviceID, err := store.GetDeviceID(ctx)
	if err == nil {
		return deviceID, nil
	}
	if !errors.Is(err, storage.ErrDeviceNotRegistered) {
		return "", fmt.Errorf("failed to load device id: %w", err)
	}

	deviceID = uuid.New().String()
	if err := store.SaveDeviceID(ctx, deviceID); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}

	return deviceID, nil
}
