package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/models"
)

const (
	keyAuth          = "auth"
	keyLastDrainTime = "last_drain_time"
)

// SaveAuth stores authentication data after successful login
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyAuth), data); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetAuth retrieves stored authentication data
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var auth *storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return storage.ErrAuthNotFound
		}

		data := bucket.Get([]byte(keyAuth))
		if data == nil {
			return storage.ErrAuthNotFound
		}

		auth = &storage.AuthData{}
		if err := json.Unmarshal(data, auth); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return auth, nil
}

// DeleteAuth removes stored authentication data (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete([]byte(keyAuth)); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// SaveLastDrainTime saves unix time of the last completed drain pass
func (s *Storage) SaveLastDrainTime(ctx context.Context, unix int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		unixBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(unixBytes, uint64(unix))

		if err := bucket.Put([]byte(keyLastDrainTime), unixBytes); err != nil {
			return fmt.Errorf("failed to save last drain time: %w", err)
		}

		return nil
	})
}

// GetLastDrainTime returns unix time of the last completed drain pass
// Returns 0 if no drain has completed yet
func (s *Storage) GetLastDrainTime(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var unix int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		unixBytes := bucket.Get([]byte(keyLastDrainTime))
		if unixBytes == nil {
			// Drain ещё не выполнялся
			unix = 0
			return nil
		}

		unix = int64(binary.BigEndian.Uint64(unixBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last drain time: %w", err)
	}

	return unix, nil
}

// SaveCatalog replaces the cached activity catalog
func (s *Storage) SaveCatalog(ctx context.Context, activities []models.CatalogActivity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Пересоздаем bucket целиком: каталог заменяется атомарно
		if err := tx.DeleteBucket(bucketCatalog); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete catalog bucket: %w", err)
		}

		bucket, err := tx.CreateBucket(bucketCatalog)
		if err != nil {
			return fmt.Errorf("failed to create catalog bucket: %w", err)
		}

		for _, activity := range activities {
			data, err := json.Marshal(activity)
			if err != nil {
				return fmt.Errorf("failed to marshal catalog activity: %w", err)
			}
			if err := bucket.Put([]byte(activity.ID), data); err != nil {
				return fmt.Errorf("failed to save catalog activity: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("save catalog transaction failed: %w", err)
	}

	return nil
}

// GetCatalog returns the cached activity catalog, empty if never fetched
func (s *Storage) GetCatalog(ctx context.Context) ([]models.CatalogActivity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var activities []models.CatalogActivity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCatalog)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var activity models.CatalogActivity
			if err := json.Unmarshal(v, &activity); err != nil {
				return fmt.Errorf("failed to unmarshal catalog activity: %w", err)
			}
			activities = append(activities, activity)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	return activities, nil
}
