// Package data реализует durable entity store планов: локальная запись
// всегда первична, подтверждение сервером приходит асинхронно.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/weekendly/internal/client/storage"
	clientsync "github.com/iudanet/weekendly/internal/client/sync"
	"github.com/iudanet/weekendly/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс клиентского data сервиса планов
type Service interface {
	// Upsert сохраняет план локально (статус pending) и передаёт
	// мутацию координатору синхронизации. Пустой ID означает create.
	Upsert(ctx context.Context, plan *models.Plan) (*models.Plan, error)

	// Get возвращает план по ID из локального хранилища.
	// Чтение оптимистично: pending-план возвращается наравне с synced.
	Get(ctx context.Context, id string) (*models.Plan, error)

	// GetAll возвращает все локальные планы, отсортированные
	// по дате выходных (новые первыми)
	GetAll(ctx context.Context) ([]*models.Plan, error)

	// GetPending возвращает планы, ожидающие подтверждения сервером
	GetPending(ctx context.Context) ([]*models.Plan, error)

	// Delete удаляет план локально и передаёт delete координатору
	Delete(ctx context.Context, id string) error
}

// service handles the local-first plan lifecycle
type service struct {
	planStorage storage.PlanStorage
	coordinator clientsync.Service
	logger      *slog.Logger
}

// NewService creates a new plan data service
func NewService(planStorage storage.PlanStorage, coordinator clientsync.Service, logger *slog.Logger) Service {
	return &service{
		planStorage: planStorage,
		coordinator: coordinator,
		logger:      logger,
	}
}

// Upsert persists the plan locally and hands the mutation to the sync
// coordinator. Локальная запись выполняется первой: отказ сети или
// сервера не может потерять пользовательские данные.
func (s *service) Upsert(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	action := models.ActionUpdate
	if plan.ID == "" {
		plan.ID = uuid.New().String()
		action = models.ActionCreate
	} else {
		// Существование определяет create/update для очереди:
		// повторный Upsert по неизвестному ID — это create
		if _, err := s.planStorage.GetPlan(ctx, plan.ID); err != nil {
			if !errors.Is(err, storage.ErrPlanNotFound) {
				return nil, fmt.Errorf("failed to check existing plan: %w", err)
			}
			action = models.ActionCreate
		}
	}

	plan.SyncStatus = models.SyncStatusPending
	plan.LastModified = time.Now().UTC()

	if err := s.planStorage.SavePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	// Координатор либо сразу подтвердит план сервером, либо поставит
	// мутацию в durable-очередь. Ошибка здесь не откатывает локальную
	// запись: план останется pending до следующего drain.
	if err := s.coordinator.Submit(ctx, action, plan); err != nil {
		s.logger.Warn("failed to submit mutation to sync coordinator",
			"plan_id", plan.ID, "action", action, "error", err)
	}

	// Возвращаем актуальное состояние: Submit мог пометить план synced
	saved, err := s.planStorage.GetPlan(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload plan: %w", err)
	}

	return saved, nil
}

// Get retrieves a plan by ID
func (s *service) Get(ctx context.Context, id string) (*models.Plan, error) {
	plan, err := s.planStorage.GetPlan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return plan, nil
}

// GetAll returns all locally stored plans, newest weekend first
func (s *service) GetAll(ctx context.Context) ([]*models.Plan, error) {
	plans, err := s.planStorage.GetAllPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].WeekendOf != plans[j].WeekendOf {
			return plans[i].WeekendOf > plans[j].WeekendOf
		}
		return plans[i].ID < plans[j].ID
	})

	return plans, nil
}

// GetPending returns plans awaiting server confirmation
func (s *service) GetPending(ctx context.Context) ([]*models.Plan, error) {
	plans, err := s.planStorage.GetPlansByStatus(ctx, models.SyncStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending plans: %w", err)
	}
	return plans, nil
}

// Delete removes the plan locally and hands the delete to the coordinator.
// Локальное удаление немедленно: план исчезает из списков сразу,
// даже если сервер узнает об этом позже.
func (s *service) Delete(ctx context.Context, id string) error {
	plan, err := s.planStorage.GetPlan(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get plan: %w", err)
	}

	if err := s.planStorage.DeletePlan(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	if err := s.coordinator.Submit(ctx, models.ActionDelete, plan); err != nil {
		s.logger.Warn("failed to submit delete to sync coordinator",
			"plan_id", id, "error", err)
	}

	return nil
}
