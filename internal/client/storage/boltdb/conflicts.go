package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/offlinekit/recordsync/internal/client/storage"
	"github.com/offlinekit/recordsync/internal/models"
)

// SaveConflict persists a conflict snapshot keyed by record ID
func (s *Storage) SaveConflict(ctx context.Context, state *models.ConflictState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict state: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).Put([]byte(state.RecordID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save conflict state: %w", err)
	}

	return nil
}

// GetConflict retrieves the conflict snapshot for a record
func (s *Storage) GetConflict(ctx context.Context, recordID string) (*models.ConflictState, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var state *models.ConflictState

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketConflicts).Get([]byte(recordID))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		state = &models.ConflictState{}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal conflict state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// ListConflicts returns all parked conflict snapshots
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.ConflictState, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var states []*models.ConflictState

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).ForEach(func(k, v []byte) error {
			var state models.ConflictState
			if err := json.Unmarshal(v, &state); err != nil {
				return fmt.Errorf("failed to unmarshal conflict state: %w", err)
			}
			states = append(states, &state)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list conflict states: %w", err)
	}

	return states, nil
}

// DeleteConflict removes the conflict snapshot after resolution
func (s *Storage) DeleteConflict(ctx context.Context, recordID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).Delete([]byte(recordID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete conflict state: %w", err)
	}

	return nil
}
