package storage

import (
	"context"

	"github.com/iudanet/weekendly/internal/models"
)

// CatalogStorage defines interface for the read-only activity catalog
type CatalogStorage interface {
	// GetActivities returns all catalog activities ordered by category and name
	GetActivities(ctx context.Context) ([]models.CatalogActivity, error)
}
