// Package cache реализует выбор и исполнение кеш-политик для исходящих
// запросов: CacheFirst для статики, NetworkFirst для документов,
// StaleWhileRevalidate для внешних API.
package cache

import (
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Policy кеш-политика, назначаемая запросу
type Policy string

const (
	// PolicyCacheFirst сначала кеш, сеть только на промахе
	PolicyCacheFirst Policy = "cache-first"
	// PolicyNetworkFirst сначала сеть, кеш как fallback
	PolicyNetworkFirst Policy = "network-first"
	// PolicyStaleWhileRevalidate кеш сразу, сеть — фоновое обновление
	PolicyStaleWhileRevalidate Policy = "stale-while-revalidate"
	// PolicyPassThrough без кеширования вообще
	PolicyPassThrough Policy = "pass-through"
)

// staticSuffixes расширения, считающиеся неизменяемой статикой сборки
var staticSuffixes = []string{
	".js", ".mjs", ".css",
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico",
	".woff", ".woff2", ".ttf", ".otf",
}

// Request минимальное представление исходящего запроса для классификации
type Request struct {
	Method     string            // Method HTTP метод
	URL        string            // URL полный URL запроса
	Headers    map[string]string // Headers заголовки запроса
	Body       []byte            // Body тело (для мутаций)
	Navigation bool              // Navigation top-level навигация (запрос документа)
}

// Classifier назначает запросу кеш-политику.
// Решение чистое: зависит только от запроса и конфигурации классификатора.
type Classifier struct {
	apiAllowlist []string // хосты внешних API (погода, AI и т.п.)
}

// NewClassifier creates a new classifier.
// apiAllowlist — список хостов, ответы которых обслуживаются
// по политике stale-while-revalidate.
func NewClassifier(apiAllowlist []string) *Classifier {
	return &Classifier{apiAllowlist: apiAllowlist}
}

// Classify возвращает политику для запроса. Правила в порядке приоритета:
//  1. не-HTTP схема → PassThrough
//  2. статический суффикс → CacheFirst
//  3. корень или документ → NetworkFirst
//  4. хост из allowlist внешних API → StaleWhileRevalidate
//  5. по умолчанию → NetworkFirst
//
// Кешируются только GET: мутации минуют исполнителя политик
// и уходят в write path координатора синхронизации.
func (c *Classifier) Classify(req Request) Policy {
	if req.Method != "" && req.Method != http.MethodGet {
		return PolicyPassThrough
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		return PolicyPassThrough
	}

	// Правило 1: локальные схемы расширений, file: и прочее не кешируем
	if u.Scheme != "http" && u.Scheme != "https" {
		return PolicyPassThrough
	}

	// Правило 2: статика сборки
	ext := strings.ToLower(path.Ext(u.Path))
	for _, suffix := range staticSuffixes {
		if ext == suffix {
			return PolicyCacheFirst
		}
	}

	// Правило 3: корень и документы
	if u.Path == "" || u.Path == "/" || ext == ".html" || req.Navigation {
		return PolicyNetworkFirst
	}

	// Правило 4: внешние API из allowlist
	for _, host := range c.apiAllowlist {
		if strings.EqualFold(u.Host, host) {
			return PolicyStaleWhileRevalidate
		}
	}

	// Правило 5: по умолчанию
	return PolicyNetworkFirst
}
