package storage

import (
	"context"

	"github.com/iudanet/weekendly/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// AuthData данные аутентификации, сохранённые после login
type AuthData struct {
	Username    string `json:"username"`     // Username имя пользователя
	UserID      string `json:"user_id"`      // UserID UUID пользователя
	AccessToken string `json:"access_token"` // AccessToken JWT для запросов к серверу
}

// MetadataStorage defines interface for client metadata: auth session,
// last drain time and the cached activity catalog read-model.
type MetadataStorage interface {
	// SaveAuth stores authentication data after successful login
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if user is not logged in
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error

	// SaveLastDrainTime saves unix time of the last completed drain pass
	SaveLastDrainTime(ctx context.Context, unix int64) error

	// GetLastDrainTime returns unix time of the last completed drain pass,
	// 0 if no drain has completed yet
	GetLastDrainTime(ctx context.Context) (int64, error)

	// SaveCatalog replaces the cached activity catalog.
	// The catalog is advisory: it may always be rebuilt from the server.
	SaveCatalog(ctx context.Context, activities []models.CatalogActivity) error

	// GetCatalog returns the cached activity catalog, empty if never fetched
	GetCatalog(ctx context.Context) ([]models.CatalogActivity, error)
}
