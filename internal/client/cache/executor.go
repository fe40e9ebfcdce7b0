package cache

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/weekendly/internal/client/netmon"
	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/models"
)

//go:embed offline.html
var offlineDocument []byte

// legacyNamespace зонтичное имя кеша из ранних версий приложения.
// Оставлено в списке живых имён для обратной совместимости:
// при активации не удаляется, хотя новые записи в него не пишутся.
const legacyNamespace = "weekendly-cache"

// Publisher публикует события движка (cache-updated)
type Publisher interface {
	Publish(event netmon.Event)
}

// Executor исполняет кеш-политики против Cache Store и сети.
// Запись в кеш происходит только для успешных (HTTP 200) ответов;
// неудачные ответы не кешируются никогда.
type Executor struct {
	store      storage.CacheStorage
	fetcher    Fetcher
	classifier *Classifier
	events     Publisher
	logger     *slog.Logger

	staticNS  string
	dynamicNS string
	timeout   time.Duration

	// background отслеживает фоновые SWR-ревалидации
	background sync.WaitGroup
}

// NewExecutor creates a cache policy executor.
// version — семантическая версия сборки, она вшивается в имена
// namespace'ов: смена версии на деплое делает старые поколения
// мусором при следующей активации.
func NewExecutor(
	store storage.CacheStorage,
	fetcher Fetcher,
	classifier *Classifier,
	events Publisher,
	logger *slog.Logger,
	version string,
) *Executor {
	return &Executor{
		store:      store,
		fetcher:    fetcher,
		classifier: classifier,
		events:     events,
		logger:     logger,
		staticNS:   "static-v" + version,
		dynamicNS:  "dynamic-v" + version,
		timeout:    10 * time.Second,
	}
}

// StaticNamespace возвращает имя текущего static namespace
func (e *Executor) StaticNamespace() string { return e.staticNS }

// DynamicNamespace возвращает имя текущего dynamic namespace
func (e *Executor) DynamicNamespace() string { return e.dynamicNS }

// Activate удаляет все поколения кеша, кроме текущих static/dynamic
// и legacy-имени. Это единственный механизм вытеснения: ни LRU,
// ни ограничения по размеру нет.
func (e *Executor) Activate(ctx context.Context) error {
	namespaces, err := e.store.ListNamespaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cache namespaces: %w", err)
	}

	current := map[string]bool{
		e.staticNS:      true,
		e.dynamicNS:     true,
		legacyNamespace: true,
	}

	for _, ns := range namespaces {
		if current[ns] {
			continue
		}
		if err := e.store.DeleteNamespace(ctx, ns); err != nil {
			return fmt.Errorf("failed to delete stale namespace %q: %w", ns, err)
		}
		e.logger.Info("deleted stale cache namespace", "namespace", ns)
	}

	return nil
}

// Refresh принудительно перезаполняет static namespace из канонического
// списка ассетов (control message "request-cache-refresh").
// Ошибка отдельного ассета не прерывает остальные.
func (e *Executor) Refresh(ctx context.Context, assetURLs []string) error {
	var failed int

	for _, assetURL := range assetURLs {
		req := Request{Method: http.MethodGet, URL: assetURL}

		resp, err := e.fetchWithTimeout(ctx, req)
		if err != nil {
			e.logger.Warn("failed to refresh asset", "url", assetURL, "error", err)
			failed++
			continue
		}
		if resp.Status != http.StatusOK {
			e.logger.Warn("asset refresh returned non-200", "url", assetURL, "status", resp.Status)
			failed++
			continue
		}

		if err := e.writeThrough(ctx, e.staticNS, req, resp); err != nil {
			e.logger.Warn("failed to cache refreshed asset", "url", assetURL, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("cache refresh completed with %d of %d assets failed", failed, len(assetURLs))
	}
	return nil
}

// Do применяет назначенную классификатором политику к запросу
func (e *Executor) Do(ctx context.Context, req Request) (*Response, error) {
	policy := e.classifier.Classify(req)

	switch policy {
	case PolicyCacheFirst:
		return e.cacheFirst(ctx, req)
	case PolicyNetworkFirst:
		return e.networkFirst(ctx, req)
	case PolicyStaleWhileRevalidate:
		return e.staleWhileRevalidate(ctx, req)
	default:
		// PassThrough: сеть без кеширования
		return e.fetchWithTimeout(ctx, req)
	}
}

// Flush дожидается завершения фоновых SWR-ревалидаций.
// Нужен при останове процесса, чтобы не бросать запись в кеш на середине.
func (e *Executor) Flush() {
	e.background.Wait()
}

// cacheFirst: кеш, затем сеть; промах без сети — синтетический 503.
// Статика не критична для мутаций, поэтому сбой не ретраится.
func (e *Executor) cacheFirst(ctx context.Context, req Request) (*Response, error) {
	if cached, err := e.store.GetEntry(ctx, e.staticNS, methodOf(req), req.URL); err == nil {
		// Попадание: сеть не трогаем вовсе
		return cachedResponse(cached), nil
	}

	resp, err := e.fetchWithTimeout(ctx, req)
	if err != nil {
		e.logger.Debug("cache-first miss with network failure", "url", req.URL, "error", err)
		return syntheticUnavailable(), nil
	}

	if resp.Status == http.StatusOK {
		if err := e.writeThrough(ctx, e.staticNS, req, resp); err != nil {
			e.logger.Warn("failed to write-through static cache", "url", req.URL, "error", err)
		}
	}

	return resp, nil
}

// networkFirst: сеть, затем кеш; последний рубеж для навигаций —
// офлайн-документ, для остального — синтетический 503
func (e *Executor) networkFirst(ctx context.Context, req Request) (*Response, error) {
	resp, err := e.fetchWithTimeout(ctx, req)
	if err == nil {
		if resp.Status == http.StatusOK {
			if err := e.writeThrough(ctx, e.dynamicNS, req, resp); err != nil {
				e.logger.Warn("failed to write-through dynamic cache", "url", req.URL, "error", err)
			}
		}
		return resp, nil
	}

	e.logger.Debug("network-first falling back to cache", "url", req.URL, "error", err)

	if cached, cacheErr := e.store.GetEntry(ctx, e.dynamicNS, methodOf(req), req.URL); cacheErr == nil {
		return cachedResponse(cached), nil
	}

	if req.Navigation {
		return offlineFallback(), nil
	}

	return syntheticUnavailable(), nil
}

// staleWhileRevalidate: кеш отдаётся сразу, сеть стартует параллельно.
// Сетевой результат в любом случае пишется в dynamic namespace —
// fire-and-forget относительно уже отданного ответа.
func (e *Executor) staleWhileRevalidate(ctx context.Context, req Request) (*Response, error) {
	cached, cacheErr := e.store.GetEntry(ctx, e.dynamicNS, methodOf(req), req.URL)

	type fetchResult struct {
		resp *Response
		err  error
	}
	resultCh := make(chan fetchResult, 1)

	// Сетевое плечо ограничено таймаутом независимо от вызывающего контекста:
	// ревалидация переживает возврат ответа вызывающему
	netCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)

	e.background.Add(1)
	go func() {
		defer e.background.Done()
		defer cancel()

		resp, err := e.fetcher.Fetch(netCtx, req)
		if err == nil && resp.Status == http.StatusOK {
			if werr := e.writeThrough(netCtx, e.dynamicNS, req, resp); werr != nil {
				e.logger.Warn("failed to revalidate cache entry", "url", req.URL, "error", werr)
			} else if e.events != nil {
				e.events.Publish(netmon.Event{Topic: netmon.TopicCacheUpdated, Payload: req.URL})
			}
		}
		resultCh <- fetchResult{resp: resp, err: err}
	}()

	if cacheErr == nil {
		// Попадание: отвечаем кешем немедленно, судьбу сети не ждём.
		// Её сбой после отданного ответа молча поглощается.
		return cachedResponse(cached), nil
	}

	// Промах: единственная надежда — сеть
	result := <-resultCh
	if result.err != nil {
		return nil, fmt.Errorf("stale-while-revalidate miss: %w", result.err)
	}
	return result.resp, nil
}

// fetchWithTimeout ограничивает сетевой вызов таймаутом исполнителя.
// Истёкший таймаут неотличим от сетевого сбоя для вызывающего кода.
func (e *Executor) fetchWithTimeout(ctx context.Context, req Request) (*Response, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.fetcher.Fetch(fetchCtx, req)
}

// writeThrough сохраняет успешный ответ целиком в указанный namespace
func (e *Executor) writeThrough(ctx context.Context, namespace string, req Request, resp *Response) error {
	entry := &models.CacheEntry{
		Method:   methodOf(req),
		URL:      req.URL,
		Status:   resp.Status,
		Headers:  resp.Headers,
		Body:     resp.Body,
		StoredAt: time.Now().UTC(),
	}
	return e.store.PutEntry(ctx, namespace, entry)
}

func methodOf(req Request) string {
	if req.Method == "" {
		return http.MethodGet
	}
	return req.Method
}

func cachedResponse(entry *models.CacheEntry) *Response {
	return &Response{
		Status:    entry.Status,
		Headers:   entry.Headers,
		Body:      entry.Body,
		FromCache: true,
	}
}

// syntheticUnavailable возвращается, когда нет ни сети, ни кеша
func syntheticUnavailable() *Response {
	return &Response{
		Status:  http.StatusServiceUnavailable,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    []byte(`{"error":"offline and not cached"}`),
	}
}

// offlineFallback — назначенный офлайн-документ для top-level навигаций
func offlineFallback() *Response {
	return &Response{
		Status:  http.StatusOK,
		Headers: map[string]string{"Content-Type": "text/html; charset=utf-8"},
		Body:    offlineDocument,
	}
}
