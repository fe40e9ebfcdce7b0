package storage

import (
	"context"

	"github.com/iudanet/weekendly/internal/models"
)

//go:generate moq -out plans_mock.go . PlanStorage

// PlanStorage defines interface for the durable plan store on client.
// Reads always return the latest local value regardless of sync status:
// the UI is never blocked by pending remote confirmation.
type PlanStorage interface {
	// SavePlan stores or updates a plan (whole-value overwrite)
	SavePlan(ctx context.Context, plan *models.Plan) error

	// GetPlan retrieves a plan by ID
	// Returns ErrPlanNotFound if plan doesn't exist
	GetPlan(ctx context.Context, id string) (*models.Plan, error)

	// GetAllPlans returns all locally stored plans
	GetAllPlans(ctx context.Context) ([]*models.Plan, error)

	// GetPlansByStatus returns plans with the given sync status
	GetPlansByStatus(ctx context.Context, status models.SyncStatus) ([]*models.Plan, error)

	// SetSyncStatus updates only the sync status of an existing plan
	// Returns ErrPlanNotFound if plan doesn't exist
	SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error

	// DeletePlan removes a plan from the local store
	DeletePlan(ctx context.Context, id string) error
}
