package cache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate moq -out fetcher_mock.go . Fetcher

// Response снимок HTTP-ответа, возвращаемый исполнителем политик
type Response struct {
	Headers   map[string]string // Headers заголовки ответа
	Body      []byte            // Body тело ответа
	Status    int               // Status HTTP статус
	FromCache bool              // FromCache ответ пришёл из кеша, а не из сети
}

// Fetcher выполняет фактический сетевой вызов
type Fetcher interface {
	// Fetch выполняет запрос и возвращает снимок ответа.
	// Ошибка означает сетевой сбой или таймаут; HTTP-статусы
	// любого значения ошибкой не считаются.
	Fetch(ctx context.Context, req Request) (*Response, error)
}

// HTTPFetcher реализует Fetcher поверх net/http
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with a per-call timeout.
// Таймаут трактуется выше по стеку так же, как сетевой сбой.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch выполняет запрос и возвращает снимок ответа
func (f *HTTPFetcher) Fetch(ctx context.Context, req Request) (*Response, error) {
	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Снимок заголовков: первое значение каждого
	headers := make(map[string]string, len(resp.Header))
	for name := range resp.Header {
		headers[name] = resp.Header.Get(name)
	}

	return &Response{
		Status:  resp.StatusCode,
		Headers: headers,
		Body:    body,
	}, nil
}
