package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/models"
)

// SaveItem stores or replaces a queue item by ID
func (s *Storage) SaveItem(ctx context.Context, item models.QueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем элемент в JSON
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal queue item: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if err := bucket.Put([]byte(item.ID), data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetItem retrieves a queue item by ID
func (s *Storage) GetItem(ctx context.Context, id string) (models.QueueItem, error) {
	if s.db == nil {
		return models.QueueItem{}, storage.ErrStorageClosed
	}

	var item models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrQueueItemNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrQueueItemNotFound
		}

		if err := json.Unmarshal(data, &item); err != nil {
			return fmt.Errorf("failed to unmarshal queue item: %w", err)
		}

		return nil
	})

	if err != nil {
		return models.QueueItem{}, err
	}

	return item, nil
}

// GetItems returns all queue items ordered for draining:
// priority desc, enqueuedAt asc, ID as deterministic tiebreak
func (s *Storage) GetItems(ctx context.Context) ([]models.QueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var item models.QueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get queue items: %w", err)
	}

	// Порядок дренирования определяется моделью
	sort.Slice(items, func(i, j int) bool { return items[i].Before(items[j]) })

	return items, nil
}

// FindByEntity returns the queued item for (entityRef, action), if any
func (s *Storage) FindByEntity(ctx context.Context, entityRef string, action models.Action) (models.QueueItem, error) {
	if s.db == nil {
		return models.QueueItem{}, storage.ErrStorageClosed
	}

	var found *models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var item models.QueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}

			if item.EntityRef == entityRef && item.Action == action {
				found = &item
			}

			return nil
		})
	})

	if err != nil {
		return models.QueueItem{}, fmt.Errorf("failed to find queue item: %w", err)
	}

	if found == nil {
		return models.QueueItem{}, storage.ErrQueueItemNotFound
	}

	return *found, nil
}

// DeleteItem removes a queue item by ID
func (s *Storage) DeleteItem(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete queue item: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// Len returns the number of queued items
func (s *Storage) Len(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count queue items: %w", err)
	}

	return count, nil
}
