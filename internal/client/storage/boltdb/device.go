package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/offlinekit/recordsync/internal/client/storage"
)

var deviceIDKey = []byte("device_id")

// SaveDeviceID persists the generated device identifier
func (s *Storage) SaveDeviceID(ctx context.Context, deviceID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDevice).Put(deviceIDKey, []byte(deviceID))
	})
	if err != nil {
		return fmt.Errorf("failed to save device id: %w", err)
	}

	return nil
}

// GetDeviceID retrieves the device identifier
func (s *Storage) GetDeviceID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var deviceID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDevice).Get(deviceIDKey)
		if data == nil {
			return storage.ErrDeviceNotRegistered
		}
		deviceID = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return deviceID, nil
}
