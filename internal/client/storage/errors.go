package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrRecordNotFound indicates that record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrConflictNotFound indicates that no conflict snapshot exists for the record
	ErrConflictNotFound = errors.New("conflict snapshot not found")

	// ErrItemNotFound indicates that queue item was not found
	ErrItemNotFound = errors.New("queue item not found")

	// ErrDeviceNotRegistered indicates that no device identity has been generated yet
	ErrDeviceNotRegistered = errors.New("device identity not registered")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
