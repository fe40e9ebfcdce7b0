package storage

import "errors"

// Common client storage errors
var (
	// ErrPlanNotFound indicates that plan was not found in the local store
	ErrPlanNotFound = errors.New("plan not found")

	// ErrQueueItemNotFound indicates that sync queue item was not found
	ErrQueueItemNotFound = errors.New("sync queue item not found")

	// ErrNotCached indicates a cache miss in the requested namespace
	ErrNotCached = errors.New("response not cached")

	// ErrNamespaceNotFound indicates that cache namespace does not exist
	ErrNamespaceNotFound = errors.New("cache namespace not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
