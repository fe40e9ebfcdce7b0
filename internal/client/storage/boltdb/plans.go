package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/models"
)

// SavePlan stores or updates a plan in BoltDB
func (s *Storage) SavePlan(ctx context.Context, plan *models.Plan) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем план в JSON
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return fmt.Errorf("plans bucket not found")
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(plan.ID), data); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetPlan retrieves a plan by ID
func (s *Storage) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var plan *models.Plan

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return storage.ErrPlanNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrPlanNotFound
		}

		// Десериализуем
		plan = &models.Plan{}
		if err := json.Unmarshal(data, plan); err != nil {
			return fmt.Errorf("failed to unmarshal plan: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return plan, nil
}

// GetAllPlans returns all locally stored plans
func (s *Storage) GetAllPlans(ctx context.Context) ([]*models.Plan, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var plans []*models.Plan

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var plan models.Plan
			if err := json.Unmarshal(v, &plan); err != nil {
				return fmt.Errorf("failed to unmarshal plan: %w", err)
			}
			plans = append(plans, &plan)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get all plans: %w", err)
	}

	return plans, nil
}

// GetPlansByStatus returns plans with the given sync status
func (s *Storage) GetPlansByStatus(ctx context.Context, status models.SyncStatus) ([]*models.Plan, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var plans []*models.Plan

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var plan models.Plan
			if err := json.Unmarshal(v, &plan); err != nil {
				return fmt.Errorf("failed to unmarshal plan: %w", err)
			}

			// Фильтруем по статусу
			if plan.SyncStatus == status {
				plans = append(plans, &plan)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get plans by status: %w", err)
	}

	return plans, nil
}

// SetSyncStatus updates only the sync status of an existing plan
func (s *Storage) SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return storage.ErrPlanNotFound
		}

		// Получаем существующий план
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrPlanNotFound
		}

		var plan models.Plan
		if err := json.Unmarshal(data, &plan); err != nil {
			return fmt.Errorf("failed to unmarshal plan: %w", err)
		}

		// Обновляем статус
		plan.SyncStatus = status

		// Сохраняем обратно
		updatedData, err := json.Marshal(&plan)
		if err != nil {
			return fmt.Errorf("failed to marshal updated plan: %w", err)
		}

		if err := bucket.Put([]byte(id), updatedData); err != nil {
			return fmt.Errorf("failed to save updated plan: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrPlanNotFound {
			return err
		}
		return fmt.Errorf("set sync status transaction failed: %w", err)
	}

	return nil
}

// DeletePlan removes a plan from the local store
func (s *Storage) DeletePlan(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return nil
		}

		// Delete отсутствующего ключа в bbolt — no-op, это нам подходит:
		// повторное применение delete из очереди должно быть идемпотентным
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}
