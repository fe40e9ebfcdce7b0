package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/models"
)

// PutEntry writes a response snapshot into the named namespace.
// Namespace buckets are nested under the parent cache bucket and
// created lazily on first write.
func (s *Storage) PutEntry(ctx context.Context, namespace string, entry *models.CacheEntry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем снимок в JSON
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		parent := tx.Bucket(bucketCache)
		if parent == nil {
			return fmt.Errorf("cache bucket not found")
		}

		// Создаем namespace bucket при первой записи
		bucket, err := parent.CreateBucketIfNotExists([]byte(namespace))
		if err != nil {
			return fmt.Errorf("failed to create namespace bucket: %w", err)
		}

		key := models.CacheKey(entry.Method, entry.URL)
		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save cache entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetEntry reads a snapshot by (method, url) key from the named namespace
func (s *Storage) GetEntry(ctx context.Context, namespace, method, url string) (*models.CacheEntry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entry *models.CacheEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		parent := tx.Bucket(bucketCache)
		if parent == nil {
			return storage.ErrNotCached
		}

		// Отсутствующий namespace — это промах, не ошибка
		bucket := parent.Bucket([]byte(namespace))
		if bucket == nil {
			return storage.ErrNotCached
		}

		data := bucket.Get([]byte(models.CacheKey(method, url)))
		if data == nil {
			return storage.ErrNotCached
		}

		entry = &models.CacheEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal cache entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListNamespaces returns the names of all existing namespaces
func (s *Storage) ListNamespaces(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var names []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		parent := tx.Bucket(bucketCache)
		if parent == nil {
			return nil
		}

		return parent.ForEachBucket(func(k []byte) error {
			names = append(names, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	return names, nil
}

// DeleteNamespace drops a namespace with all its entries
func (s *Storage) DeleteNamespace(ctx context.Context, namespace string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		parent := tx.Bucket(bucketCache)
		if parent == nil {
			return nil
		}

		// Удаление отсутствующего namespace — no-op
		if err := parent.DeleteBucket([]byte(namespace)); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete namespace bucket: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("delete namespace transaction failed: %w", err)
	}

	return nil
}
