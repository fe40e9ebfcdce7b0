// Package engine собирает подсистемы офлайн-движка в единый фасад:
// кэшируемые запросы, операции над планами, подписки на события
// и управляющий канал хост-приложения.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/weekendly/internal/client/cache"
	"github.com/iudanet/weekendly/internal/client/data"
	"github.com/iudanet/weekendly/internal/client/netmon"
	clientsync "github.com/iudanet/weekendly/internal/client/sync"
	"github.com/iudanet/weekendly/internal/models"
)

// Control messages accepted from the host application.
const (
	// ControlActivate немедленно активирует новое поколение кэша
	ControlActivate = "activate-new-version"

	// ControlCacheRefresh принудительно перезаполняет static-namespace
	// из канонического списка ассетов
	ControlCacheRefresh = "request-cache-refresh"
)

// ErrUnknownControl возвращается на нераспознанное управляющее сообщение
var ErrUnknownControl = fmt.Errorf("unknown control message")

// ErrMutationNotAllowed возвращается на не-GET запрос через Request:
// мутации не проходят через исполнителя кеш-политик, их единственный
// путь — Upsert/Delete и write path координатора синхронизации
var ErrMutationNotAllowed = fmt.Errorf("mutating requests must go through plan operations")

// Engine is the single entry point the host application talks to.
// Прямой доступ к cache store и очереди снаружи запрещён: все записи
// проходят только через операции фасада.
type Engine struct {
	monitor     *netmon.Monitor
	executor    *cache.Executor
	plans       data.Service
	coordinator clientsync.Service
	assetURLs   []string
	logger      *slog.Logger
}

// New creates the engine facade over already-wired subsystems.
// assetURLs — канонический список статических ассетов для прогрева
// и принудительного обновления static-namespace.
func New(
	monitor *netmon.Monitor,
	executor *cache.Executor,
	plans data.Service,
	coordinator clientsync.Service,
	assetURLs []string,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		monitor:     monitor,
		executor:    executor,
		plans:       plans,
		coordinator: coordinator,
		assetURLs:   assetURLs,
		logger:      logger,
	}
}

// IsOnline reports current connectivity state
func (e *Engine) IsOnline() bool {
	return e.monitor.IsOnline()
}

// Subscribe registers a handler for the given event topic
func (e *Engine) Subscribe(topic netmon.Topic, handler netmon.Handler) int {
	return e.monitor.Subscribe(topic, handler)
}

// Unsubscribe removes a previously registered handler
func (e *Engine) Unsubscribe(topic netmon.Topic, id int) {
	e.monitor.Unsubscribe(topic, id)
}

// Request runs a read request through classifier and policy executor.
// Пустой метод трактуется как GET.
func (e *Engine) Request(ctx context.Context, req cache.Request) (*cache.Response, error) {
	if req.Method != "" && req.Method != http.MethodGet {
		return nil, fmt.Errorf("%w: %s %s", ErrMutationNotAllowed, req.Method, req.URL)
	}
	return e.executor.Do(ctx, req)
}

// Upsert сохраняет план локально и передаёт мутацию координатору
func (e *Engine) Upsert(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	return e.plans.Upsert(ctx, plan)
}

// Get возвращает план по ID
func (e *Engine) Get(ctx context.Context, id string) (*models.Plan, error) {
	return e.plans.Get(ctx, id)
}

// GetAll возвращает все локальные планы
func (e *Engine) GetAll(ctx context.Context) ([]*models.Plan, error) {
	return e.plans.GetAll(ctx)
}

// Delete удаляет план локально и ставит delete в очередь синхронизации
func (e *Engine) Delete(ctx context.Context, id string) error {
	return e.plans.Delete(ctx, id)
}

// Sync triggers a drain pass on demand
func (e *Engine) Sync(ctx context.Context) (*clientsync.DrainResult, error) {
	return e.coordinator.Drain(ctx)
}

// PendingCount возвращает число мутаций, ожидающих синхронизации
func (e *Engine) PendingCount(ctx context.Context) (int, error) {
	return e.coordinator.PendingCount(ctx)
}

// HandleControl dispatches a control message from the host application.
// Неизвестное сообщение — ошибка: управляющий канал закрытый, опечатка
// в сообщении не должна молча превращаться в no-op.
func (e *Engine) HandleControl(ctx context.Context, message string) error {
	switch message {
	case ControlActivate:
		e.logger.Info("control: activating new cache generation")
		if err := e.executor.Activate(ctx); err != nil {
			return fmt.Errorf("failed to activate cache generation: %w", err)
		}
		return nil

	case ControlCacheRefresh:
		e.logger.Info("control: refreshing static cache", "assets", len(e.assetURLs))
		if err := e.executor.Refresh(ctx, e.assetURLs); err != nil {
			return fmt.Errorf("failed to refresh static cache: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownControl, message)
	}
}

// Close дожидается фоновых ревалидаций executor'а
func (e *Engine) Close() {
	e.executor.Flush()
}
