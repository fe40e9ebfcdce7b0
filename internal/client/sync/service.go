// Package sync реализует координатор синхронизации: write path для
// мутаций планов и дренирование durable-очереди отложенных мутаций.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/weekendly/internal/client/api"
	"github.com/iudanet/weekendly/internal/client/netmon"
	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/models"
	"github.com/iudanet/weekendly/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// ErrNotAuthenticated синхронизация требует выполненного login
var ErrNotAuthenticated = errors.New("not authenticated: run login first")

// ConnectivitySource сообщает текущее состояние связности
type ConnectivitySource interface {
	IsOnline() bool
}

// Publisher публикует события координатора (sync-abandoned)
type Publisher interface {
	Publish(event netmon.Event)
}

// Service определяет интерфейс координатора синхронизации
type Service interface {
	// Submit проводит мутацию через write path: немедленная попытка
	// на сервере при живой сети, иначе постановка в очередь.
	// Для action=delete у плана достаточно заполненного ID.
	Submit(ctx context.Context, action models.Action, plan *models.Plan) error

	// Drain воспроизводит все отложенные мутации против сервера.
	// Повторный вызов при активном drain — no-op (nil result, nil error).
	Drain(ctx context.Context) (*DrainResult, error)

	// PendingCount возвращает число мутаций, ожидающих синхронизации
	PendingCount(ctx context.Context) (int, error)
}

// service handles the mutation write path and queue draining
type service struct {
	apiClient    httpClient.ClientAPI
	planStorage  storage.PlanStorage
	queueStorage storage.QueueStorage
	metadata     storage.MetadataStorage
	connectivity ConnectivitySource
	events       Publisher
	logger       *slog.Logger

	// draining гарантирует не более одного прохода drain одновременно:
	// триггер во время активного прохода схлопывается в no-op
	draining sync.Mutex
}

// NewService creates a new sync coordinator
func NewService(
	apiClient httpClient.ClientAPI,
	planStorage storage.PlanStorage,
	queueStorage storage.QueueStorage,
	metadata storage.MetadataStorage,
	connectivity ConnectivitySource,
	events Publisher,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:    apiClient,
		planStorage:  planStorage,
		queueStorage: queueStorage,
		metadata:     metadata,
		connectivity: connectivity,
		events:       events,
		logger:       logger,
	}
}

// DrainResult contains drain pass results
type DrainResult struct {
	Attempted int // количество элементов, попытка по которым была сделана
	Succeeded int // подтверждено сервером и удалено из очереди
	Failed    int // неудачных попыток, элемент остался в очереди
	Dropped   int // выброшено после исчерпания лимита попыток
}

// Submit проводит мутацию через write path.
// Локальная копия уже записана durable store'ом со статусом pending;
// задача координатора — либо немедленно подтвердить её сервером,
// либо гарантировать ровно один элемент очереди на эту мутацию.
func (s *service) Submit(ctx context.Context, action models.Action, plan *models.Plan) error {
	if s.connectivity.IsOnline() {
		err := s.pushRemote(ctx, action, plan.ID, plan)
		if err == nil {
			// Сервер подтвердил: для create/update локальная копия synced
			if action != models.ActionDelete {
				if err := s.planStorage.SetSyncStatus(ctx, plan.ID, models.SyncStatusSynced); err != nil {
					return fmt.Errorf("failed to mark plan synced: %w", err)
				}
			}
			// Всё, что стояло в очереди по этой сущности, устарело:
			// его replay откатил бы сервер к промежуточному состоянию
			if err := s.dropSuperseded(ctx, plan.ID); err != nil {
				return err
			}
			return nil
		}

		if errors.Is(err, ErrNotAuthenticated) {
			return err
		}

		// Сетевой сбой (или таймаут) при живой по мнению монитора сети:
		// мутация уходит в очередь, как и в offline
		s.logger.Warn("immediate push failed, queueing mutation",
			"action", action, "plan_id", plan.ID, "error", err)
	}

	return s.enqueue(ctx, action, plan)
}

// enqueue ставит мутацию в durable-очередь с коалесценцией:
// повторная мутация той же сущности складывается в уже стоящий
// элемент (payload заменяется), а не дублируется.
func (s *service) enqueue(ctx context.Context, action models.Action, plan *models.Plan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan payload: %w", err)
	}

	// Update коалесцируется в уже стоящий create или update той же
	// сущности: replay промежуточных состояний никому не нужен
	if action == models.ActionUpdate {
		for _, target := range []models.Action{models.ActionCreate, models.ActionUpdate} {
			existing, err := s.queueStorage.FindByEntity(ctx, plan.ID, target)
			if err == nil {
				updated := existing.WithPayload(payload)
				if err := s.queueStorage.SaveItem(ctx, updated); err != nil {
					return fmt.Errorf("failed to coalesce queue item: %w", err)
				}
				s.logger.Debug("coalesced update into queued item",
					"plan_id", plan.ID, "item_id", existing.ID, "queued_action", target)
				return nil
			}
			if !errors.Is(err, storage.ErrQueueItemNotFound) {
				return fmt.Errorf("failed to check queue for coalescing: %w", err)
			}
		}
	}

	item := models.QueueItem{
		ID:         uuid.New().String(),
		Action:     action,
		EntityRef:  plan.ID,
		State:      models.ItemStatePending,
		Payload:    payload,
		Priority:   s.entityPriority(ctx, action, plan.ID),
		EnqueuedAt: time.Now().UTC(),
	}

	if err := s.queueStorage.SaveItem(ctx, item); err != nil {
		return fmt.Errorf("failed to enqueue mutation: %w", err)
	}

	s.logger.Info("mutation queued for sync",
		"action", action, "plan_id", plan.ID, "item_id", item.ID, "priority", item.Priority)

	return nil
}

// dropSuperseded удаляет из очереди все элементы сущности, мутацию
// которой сервер только что подтвердил напрямую. Stale-элемент при
// следующем drain воспроизвёл бы более старый payload поверх уже
// подтверждённого состояния (а queued delete — уничтожил бы
// пересозданный план).
func (s *service) dropSuperseded(ctx context.Context, entityRef string) error {
	for _, action := range []models.Action{models.ActionCreate, models.ActionUpdate, models.ActionDelete} {
		existing, err := s.queueStorage.FindByEntity(ctx, entityRef, action)
		if errors.Is(err, storage.ErrQueueItemNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to check queue for superseded items: %w", err)
		}
		if err := s.queueStorage.DeleteItem(ctx, existing.ID); err != nil {
			return fmt.Errorf("failed to drop superseded queue item: %w", err)
		}
		s.logger.Debug("dropped superseded queue item",
			"plan_id", entityRef, "item_id", existing.ID, "queued_action", action)
	}
	return nil
}

// entityPriority возвращает приоритет нового элемента. Если по той же
// сущности уже стоят элементы, приоритет не поднимается выше их:
// операции одной сущности обязаны применяться в порядке постановки
// (create перед delete), иначе drain воскресит удалённый план.
func (s *service) entityPriority(ctx context.Context, action models.Action, entityRef string) int {
	priority := models.DefaultPriority(action)

	for _, earlier := range []models.Action{models.ActionCreate, models.ActionUpdate, models.ActionDelete} {
		existing, err := s.queueStorage.FindByEntity(ctx, entityRef, earlier)
		if err != nil {
			continue
		}
		if existing.Priority < priority {
			priority = existing.Priority
		}
	}

	return priority
}

// Drain воспроизводит отложенные мутации: снимок очереди в порядке
// (priority desc, enqueuedAt asc), строго последовательная обработка,
// продолжение после неудач. Новый триггер во время прохода — no-op.
func (s *service) Drain(ctx context.Context) (*DrainResult, error) {
	if !s.draining.TryLock() {
		s.logger.Debug("drain already in progress, trigger coalesced")
		return nil, nil
	}
	defer s.draining.Unlock()

	items, err := s.queueStorage.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync queue: %w", err)
	}

	result := &DrainResult{}
	if len(items) == 0 {
		// Пустая очередь — no-op
		return result, nil
	}

	s.logger.Info("drain pass started", "items", len(items))

	for _, item := range items {
		result.Attempted++

		// Pending → Inflight
		inflight := item.WithInflight()
		if err := s.queueStorage.SaveItem(ctx, inflight); err != nil {
			return result, fmt.Errorf("failed to mark item inflight: %w", err)
		}

		pushErr := s.replayItem(ctx, inflight)
		if pushErr == nil {
			// Inflight → Succeeded: элемент удаляется, сущность synced
			if err := s.queueStorage.DeleteItem(ctx, item.ID); err != nil {
				return result, fmt.Errorf("failed to dequeue succeeded item: %w", err)
			}
			if item.Action != models.ActionDelete {
				if err := s.planStorage.SetSyncStatus(ctx, item.EntityRef, models.SyncStatusSynced); err != nil {
					// План мог быть удалён локально после постановки в очередь
					if !errors.Is(err, storage.ErrPlanNotFound) {
						return result, fmt.Errorf("failed to mark plan synced: %w", err)
					}
				}
			}
			result.Succeeded++
			continue
		}

		if errors.Is(pushErr, ErrNotAuthenticated) {
			// Без токена нет смысла пробовать остальные элементы
			return result, pushErr
		}

		// Inflight → Failed→Pending либо Dropped
		failed := inflight.WithFailure()
		if failed.Exhausted() {
			if err := s.queueStorage.DeleteItem(ctx, item.ID); err != nil {
				return result, fmt.Errorf("failed to drop exhausted item: %w", err)
			}
			result.Dropped++

			s.logger.Warn("sync abandoned after retry limit",
				"item_id", item.ID, "plan_id", item.EntityRef, "action", item.Action)
			if s.events != nil {
				s.events.Publish(netmon.Event{Topic: netmon.TopicSyncAbandoned, Payload: item.EntityRef})
			}
			continue
		}

		// Повтор на следующем триггере drain, не в этом же проходе
		if err := s.queueStorage.SaveItem(ctx, failed); err != nil {
			return result, fmt.Errorf("failed to requeue failed item: %w", err)
		}
		result.Failed++

		s.logger.Warn("queue item replay failed",
			"item_id", item.ID, "plan_id", item.EntityRef,
			"retry_count", failed.RetryCount, "error", pushErr)
	}

	if err := s.metadata.SaveLastDrainTime(ctx, time.Now().Unix()); err != nil {
		s.logger.Warn("failed to save last drain time", "error", err)
		// Drain состоялся, ошибку метаданных не поднимаем
	}

	s.logger.Info("drain pass completed",
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"dropped", result.Dropped)

	return result, nil
}

// PendingCount возвращает число мутаций, ожидающих синхронизации
func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.queueStorage.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return count, nil
}

// replayItem воспроизводит один элемент очереди против сервера
func (s *service) replayItem(ctx context.Context, item models.QueueItem) error {
	var plan models.Plan
	if err := json.Unmarshal(item.Payload, &plan); err != nil {
		return fmt.Errorf("failed to unmarshal queued payload: %w", err)
	}
	return s.pushRemote(ctx, item.Action, item.EntityRef, &plan)
}

// pushRemote выполняет удалённую операцию, соответствующую action
func (s *service) pushRemote(ctx context.Context, action models.Action, planID string, plan *models.Plan) error {
	auth, err := s.metadata.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to load auth data: %w", err)
	}

	switch action {
	case models.ActionCreate:
		_, err = s.apiClient.CreatePlan(ctx, auth.AccessToken, toWirePlan(plan))
	case models.ActionUpdate:
		_, err = s.apiClient.UpdatePlan(ctx, auth.AccessToken, toWirePlan(plan))
	case models.ActionDelete:
		err = s.apiClient.DeletePlan(ctx, auth.AccessToken, planID)
	default:
		return fmt.Errorf("unknown queue action: %s", action)
	}

	if err != nil {
		return fmt.Errorf("remote %s failed: %w", action, err)
	}
	return nil
}

// toWirePlan конвертирует доменный план в wire-формат
func toWirePlan(plan *models.Plan) api.Plan {
	activities := make([]api.Activity, 0, len(plan.Activities))
	for _, a := range plan.Activities {
		activities = append(activities, api.Activity{Name: a.Name, Slot: a.Slot, Notes: a.Notes})
	}
	return api.Plan{
		ID:           plan.ID,
		Title:        plan.Title,
		WeekendOf:    plan.WeekendOf,
		LastModified: plan.LastModified,
		Activities:   activities,
	}
}
