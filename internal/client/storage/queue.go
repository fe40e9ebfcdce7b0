package storage

import (
	"context"

	"github.com/iudanet/weekendly/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for the durable mutation sync queue.
// Items are created only by the sync coordinator; the queue survives
// restarts so offline mutations are never lost with the process.
type QueueStorage interface {
	// SaveItem stores or replaces a queue item by ID
	SaveItem(ctx context.Context, item models.QueueItem) error

	// GetItem retrieves a queue item by ID
	// Returns ErrQueueItemNotFound if item doesn't exist
	GetItem(ctx context.Context, id string) (models.QueueItem, error)

	// GetItems returns all queue items ordered for draining:
	// priority desc, enqueuedAt asc, ID as deterministic tiebreak
	GetItems(ctx context.Context) ([]models.QueueItem, error)

	// FindByEntity returns the queued item for (entityRef, action), if any.
	// Used to coalesce repeated updates of the same entity.
	// Returns ErrQueueItemNotFound if no such item exists.
	FindByEntity(ctx context.Context, entityRef string, action models.Action) (models.QueueItem, error)

	// DeleteItem removes a queue item by ID
	DeleteItem(ctx context.Context, id string) error

	// Len returns the number of queued items
	Len(ctx context.Context) (int, error)
}
