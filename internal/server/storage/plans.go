package storage

import (
	"context"

	"github.com/iudanet/weekendly/internal/models"
)

// PlanStorage defines interface for server-side plan persistence.
// Планы принадлежат пользователю: все операции принимают userID и
// никогда не видят планы других пользователей.
type PlanStorage interface {
	// SavePlan inserts or overwrites a plan (last-write-wins by plan ID)
	SavePlan(ctx context.Context, userID string, plan *models.Plan) error

	// GetPlan retrieves a single plan by ID
	// Returns ErrPlanNotFound if plan doesn't exist for this user
	GetPlan(ctx context.Context, userID, planID string) (*models.Plan, error)

	// GetUserPlans retrieves all plans of a user, newest weekend first
	GetUserPlans(ctx context.Context, userID string) ([]*models.Plan, error)

	// DeletePlan removes a plan. Deleting a missing plan is not an error:
	// клиент может повторить delete после ретрая, операция идемпотентна.
	DeletePlan(ctx context.Context, userID, planID string) error
}
