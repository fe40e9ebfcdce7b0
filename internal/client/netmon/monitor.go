// Package netmon отслеживает состояние связности с сервером и раздаёт
// события online/offline/sync-abandoned/cache-updated подписчикам.
package netmon

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Topic тема события для подписки
type Topic string

const (
	// TopicOnline связь с сервером появилась
	TopicOnline Topic = "online"
	// TopicOffline связь с сервером пропала
	TopicOffline Topic = "offline"
	// TopicSyncAbandoned элемент очереди выброшен после исчерпания попыток
	TopicSyncAbandoned Topic = "sync-abandoned"
	// TopicCacheUpdated фоновая ревалидация обновила кеш-запись
	TopicCacheUpdated Topic = "cache-updated"
)

// Event событие, доставляемое подписчику
type Event struct {
	Topic   Topic  // Topic тема события
	Payload string // Payload опциональные детали (ID плана, URL и т.п.)
}

// Handler обработчик события
type Handler func(Event)

// Prober проверяет фактическую доступность сервера
type Prober interface {
	// Health возвращает nil, если сервер доступен
	Health(ctx context.Context) error
}

// Drainer запускается ровно один раз на каждый переход offline→online
type Drainer interface {
	// Drain пытается воспроизвести все отложенные мутации.
	// Сам по себе fallible: ошибки не считаются откатом перехода.
	Drain(ctx context.Context) error
}

// Monitor наблюдает за связностью и владеет pub/sub каналом событий.
// Подписчики получают события в детерминированном порядке подписки.
// forced-offline перекрывает результат probe: пока установлен флаг,
// монитор считается offline независимо от фактической сети.
type Monitor struct {
	prober   Prober
	drainer  Drainer
	logger   *slog.Logger
	handlers map[Topic][]subscription

	mu            sync.Mutex
	online        bool
	forcedOffline bool
	nextSubID     int
	probeInterval time.Duration
}

type subscription struct {
	handler Handler
	id      int
}

// New creates a new connectivity monitor.
// Начальное состояние — offline: до первого успешного probe
// мы не знаем, есть ли сеть, и ведём себя консервативно.
func New(prober Prober, logger *slog.Logger, probeInterval time.Duration) *Monitor {
	if probeInterval <= 0 {
		probeInterval = 30 * time.Second
	}
	return &Monitor{
		prober:        prober,
		logger:        logger,
		handlers:      make(map[Topic][]subscription),
		probeInterval: probeInterval,
	}
}

// SetDrainer привязывает координатор синхронизации.
// Отдельный сеттер разрывает циклическую зависимость инициализации:
// координатору нужен монитор для публикации sync-abandoned.
func (m *Monitor) SetDrainer(d Drainer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drainer = d
}

// IsOnline возвращает текущее состояние связности
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online && !m.forcedOffline
}

// Subscribe регистрирует обработчик темы и возвращает ID подписки
func (m *Monitor) Subscribe(topic Topic, handler Handler) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSubID++
	m.handlers[topic] = append(m.handlers[topic], subscription{id: m.nextSubID, handler: handler})
	return m.nextSubID
}

// Unsubscribe удаляет подписку по ID
func (m *Monitor) Unsubscribe(topic Topic, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := m.handlers[topic]
	for i, sub := range subs {
		if sub.id == id {
			m.handlers[topic] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Publish доставляет событие всем подписчикам темы в порядке подписки.
// Вызывается и самим монитором, и координатором (sync-abandoned),
// и исполнителем кеш-политик (cache-updated).
func (m *Monitor) Publish(event Event) {
	m.mu.Lock()
	subs := make([]subscription, len(m.handlers[event.Topic]))
	copy(subs, m.handlers[event.Topic])
	m.mu.Unlock()

	// Порядок фиксирован порядком подписки
	sort.Slice(subs, func(i, j int) bool { return subs[i].id < subs[j].id })

	for _, sub := range subs {
		sub.handler(event)
	}
}

// SetForcedOffline включает или выключает режим forced-offline.
// Выключение режима при живой сети трактуется как переход в online.
func (m *Monitor) SetForcedOffline(ctx context.Context, forced bool) {
	m.mu.Lock()
	wasOnline := m.online && !m.forcedOffline
	m.forcedOffline = forced
	nowOnline := m.online && !m.forcedOffline
	m.mu.Unlock()

	m.handleTransition(ctx, wasOnline, nowOnline)
}

// Probe выполняет одну проверку связности и обрабатывает переход.
// Возвращает состояние после проверки.
func (m *Monitor) Probe(ctx context.Context) bool {
	err := m.prober.Health(ctx)

	m.mu.Lock()
	wasOnline := m.online && !m.forcedOffline
	m.online = err == nil
	nowOnline := m.online && !m.forcedOffline
	m.mu.Unlock()

	if err != nil {
		m.logger.Debug("connectivity probe failed", "error", err)
	}

	m.handleTransition(ctx, wasOnline, nowOnline)
	return nowOnline
}

// Run запускает периодический probe до отмены контекста
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	// Первый probe сразу, не дожидаясь тика
	m.Probe(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

// handleTransition публикует событие перехода и дергает drain
// ровно один раз на переход offline→online (не по разу на подписчика)
func (m *Monitor) handleTransition(ctx context.Context, wasOnline, nowOnline bool) {
	if wasOnline == nowOnline {
		return
	}

	if nowOnline {
		m.logger.Info("connectivity restored")
		m.Publish(Event{Topic: TopicOnline})

		m.mu.Lock()
		drainer := m.drainer
		m.mu.Unlock()

		if drainer != nil {
			// Drain сам по себе fallible и повторяется внутри
			// координатора; здесь ошибки только логируются
			if err := drainer.Drain(ctx); err != nil {
				m.logger.Warn("drain after online transition failed", "error", err)
			}
		}
		return
	}

	m.logger.Info("connectivity lost")
	m.Publish(Event{Topic: TopicOffline})
}
