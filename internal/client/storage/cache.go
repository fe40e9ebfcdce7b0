package storage

import (
	"context"

	"github.com/iudanet/weekendly/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage defines interface for versioned response-snapshot namespaces.
// Two namespaces are current at any time (static-vN, dynamic-vN); generation
// cleanup on activation is the only eviction mechanism.
type CacheStorage interface {
	// PutEntry writes a response snapshot into the named namespace,
	// creating the namespace if needed. Overwrites whole-value.
	PutEntry(ctx context.Context, namespace string, entry *models.CacheEntry) error

	// GetEntry reads a snapshot by (method, url) key from the named namespace
	// Returns ErrNotCached on miss (missing namespace is also a miss)
	GetEntry(ctx context.Context, namespace, method, url string) (*models.CacheEntry, error)

	// ListNamespaces returns the names of all existing namespaces
	ListNamespaces(ctx context.Context) ([]string, error)

	// DeleteNamespace drops a namespace with all its entries.
	// Deleting a missing namespace is a no-op.
	DeleteNamespace(ctx context.Context, namespace string) error
}
