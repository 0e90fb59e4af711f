package storage

import "context"

// DeviceStorage defines interface for persisting the device identity.
// The device ID is generated once per installation and must stay stable
// for the lifetime of the local database.
type DeviceStorage interface {
	// SaveDeviceID persists the generated device identifier
	SaveDeviceID(ctx context.Context, deviceID string) error

	// GetDeviceID retrieves the device identifier
	// Returns ErrDeviceNotRegistered if the device has no identity yet
	GetDeviceID(ctx context.Context) (string, error)
}
