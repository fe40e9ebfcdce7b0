package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/weekendly/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// DefaultTimeout ограничивает каждый сетевой вызов к серверу.
// Истёкший таймаут обрабатывается вызывающим кодом так же,
// как сетевая ошибка.
const DefaultTimeout = 10 * time.Second

// ClientAPI defines interface for talking to the weekendly server
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// GetSalt получает public_salt пользователя
	GetSalt(ctx context.Context, username string) (*api.SaltResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// CreatePlan создает план на сервере
	CreatePlan(ctx context.Context, accessToken string, plan api.Plan) (*api.PlanResponse, error)

	// UpdatePlan перезаписывает план на сервере (last-write-wins)
	UpdatePlan(ctx context.Context, accessToken string, plan api.Plan) (*api.PlanResponse, error)

	// DeletePlan удаляет план на сервере
	DeletePlan(ctx context.Context, accessToken, planID string) error

	// ListPlans возвращает все планы пользователя с сервера
	ListPlans(ctx context.Context, accessToken string) (*api.ListPlansResponse, error)

	// GetCatalog возвращает справочник активностей
	GetCatalog(ctx context.Context) (*api.CatalogResponse, error)

	// Health проверяет доступность сервера
	Health(ctx context.Context) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, username string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	url := fmt.Sprintf("/api/v1/auth/salt/%s", username)
	err := c.doRequest(ctx, http.MethodGet, url, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreatePlan создает план на сервере
func (c *Client) CreatePlan(ctx context.Context, accessToken string, plan api.Plan) (*api.PlanResponse, error) {
	var resp api.PlanResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/plans", accessToken, plan, &resp)
	if err != nil {
		return nil, fmt.Errorf("create plan request failed: %w", err)
	}
	return &resp, nil
}

// UpdatePlan перезаписывает план на сервере.
// Сервер применяет last-write-wins: конфликт с более свежей серверной
// версией не детектируется, локальная правка побеждает.
func (c *Client) UpdatePlan(ctx context.Context, accessToken string, plan api.Plan) (*api.PlanResponse, error) {
	var resp api.PlanResponse
	url := fmt.Sprintf("/api/v1/plans/%s", plan.ID)
	err := c.doRequest(ctx, http.MethodPut, url, accessToken, plan, &resp)
	if err != nil {
		return nil, fmt.Errorf("update plan request failed: %w", err)
	}
	return &resp, nil
}

// DeletePlan удаляет план на сервере
func (c *Client) DeletePlan(ctx context.Context, accessToken, planID string) error {
	url := fmt.Sprintf("/api/v1/plans/%s", planID)
	err := c.doRequest(ctx, http.MethodDelete, url, accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("delete plan request failed: %w", err)
	}
	return nil
}

// ListPlans возвращает все планы пользователя с сервера
func (c *Client) ListPlans(ctx context.Context, accessToken string) (*api.ListPlansResponse, error) {
	var resp api.ListPlansResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/plans", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list plans request failed: %w", err)
	}
	return &resp, nil
}

// GetCatalog возвращает справочник активностей
func (c *Client) GetCatalog(ctx context.Context) (*api.CatalogResponse, error) {
	var resp api.CatalogResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/catalog", "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get catalog request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера.
// Используется монитором связности как probe.
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
