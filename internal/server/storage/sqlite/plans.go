package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/weekendly/internal/models"
	"github.com/iudanet/weekendly/internal/server/storage"
)

// SavePlan inserts or overwrites a plan (last-write-wins by plan ID).
// Activities хранятся одним JSON-полем: сервер не делает запросов
// по отдельным активностям, читает план только целиком.
func (s *Storage) SavePlan(ctx context.Context, userID string, plan *models.Plan) error {
	activities, err := json.Marshal(plan.Activities)
	if err != nil {
		return fmt.Errorf("failed to marshal activities: %w", err)
	}

	query := `
		INSERT INTO plans (id, user_id, title, weekend_of, activities, last_modified)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			weekend_of = excluded.weekend_of,
			activities = excluded.activities,
			last_modified = excluded.last_modified
		WHERE plans.user_id = excluded.user_id
	`

	_, err = s.db.ExecContext(ctx, query,
		plan.ID,
		userID,
		plan.Title,
		plan.WeekendOf,
		string(activities),
		plan.LastModified,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	return nil
}

// GetPlan retrieves a single plan by ID
func (s *Storage) GetPlan(ctx context.Context, userID, planID string) (*models.Plan, error) {
	query := `
		SELECT id, title, weekend_of, activities, last_modified
		FROM plans
		WHERE id = ? AND user_id = ?
	`

	plan, err := scanPlan(s.db.QueryRowContext(ctx, query, planID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return plan, nil
}

// GetUserPlans retrieves all plans of a user, newest weekend first
func (s *Storage) GetUserPlans(ctx context.Context, userID string) ([]*models.Plan, error) {
	query := `
		SELECT id, title, weekend_of, activities, last_modified
		FROM plans
		WHERE user_id = ?
		ORDER BY weekend_of DESC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*models.Plan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}

	return plans, nil
}

// DeletePlan removes a plan. Idempotent: missing plan is not an error.
func (s *Storage) DeletePlan(ctx context.Context, userID, planID string) error {
	query := `DELETE FROM plans WHERE id = ? AND user_id = ?`

	if _, err := s.db.ExecContext(ctx, query, planID, userID); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	return nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*models.Plan, error) {
	plan := &models.Plan{}
	var activities string

	err := row.Scan(
		&plan.ID,
		&plan.Title,
		&plan.WeekendOf,
		&activities,
		&plan.LastModified,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(activities), &plan.Activities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activities: %w", err)
	}

	return plan, nil
}
