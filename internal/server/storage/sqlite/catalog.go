package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/weekendly/internal/models"
)

// GetActivities returns all catalog activities ordered by category and name.
// Справочник заполняется миграцией и меняется только новыми миграциями.
func (s *Storage) GetActivities(ctx context.Context) ([]models.CatalogActivity, error) {
	query := `
		SELECT id, name, category, indoor
		FROM catalog_activities
		ORDER BY category ASC, name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	activities := make([]models.CatalogActivity, 0)
	for rows.Next() {
		var a models.CatalogActivity
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Indoor); err != nil {
			return nil, fmt.Errorf("failed to scan catalog activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog: %w", err)
	}

	return activities, nil
}
