package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/models"
)

// SaveRecord stores or updates a record in BoltDB
func (s *Storage) SaveRecord(ctx context.Context, record *models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем запись в JSON
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if err := bucket.Put([]byte(record.ID), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetRecord retrieves a record by ID
func (s *Storage) GetRecord(ctx context.Context, id string) (*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRecords).Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		record = &models.Record{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListRecords returns all locally stored records
func (s *Storage) ListRecords(ctx context.Context) ([]*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).ForEach(func(k, v []byte) error {
			var record models.Record
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			records = append(records, &record)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// ListRecordsByStatus returns records in the given sync status
func (s *Storage) ListRecordsByStatus(ctx context.Context, status models.SyncStatus) ([]*models.Record, error) {
	all, err := s.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	var records []*models.Record
	for _, record := range all {
		if record.SyncStatus == status {
			records = append(records, record)
		}
	}

	return records, nil
}

// DeleteRecord removes a record from local storage
func (s *Storage) DeleteRecord(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}
