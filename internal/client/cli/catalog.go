package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/weekendly/internal/models"
)

func (c *Cli) runCatalog(ctx context.Context) error {
	c.io.Println("=== Activity Catalog ===")
	c.io.Println()

	activities, fromCache, err := c.loadCatalog(ctx)
	if err != nil {
		return err
	}

	if len(activities) == 0 {
		c.io.Println("Catalog is empty.")
		return nil
	}

	for _, activity := range activities {
		indoor := "outdoor"
		if activity.Indoor {
			indoor = "indoor"
		}
		c.io.Printf("%-20s %-10s %s\n", activity.Name, activity.Category, indoor)
	}

	if fromCache {
		c.io.Println()
		c.io.Println("(served from local cache)")
	}

	return nil
}

// loadCatalog берёт справочник с сервера, при недоступности — из
// локального read-model. Справочник advisory: устаревшая копия лучше,
// чем отказ команды.
func (c *Cli) loadCatalog(ctx context.Context) ([]models.CatalogActivity, bool, error) {
	resp, err := c.apiClient.GetCatalog(ctx)
	if err == nil {
		activities := make([]models.CatalogActivity, 0, len(resp.Activities))
		for _, a := range resp.Activities {
			activities = append(activities, models.CatalogActivity{
				ID:       a.ID,
				Name:     a.Name,
				Category: a.Category,
				Indoor:   a.Indoor,
			})
		}
		if err := c.metadata.SaveCatalog(ctx, activities); err != nil {
			c.logger.Warn("failed to cache catalog", "error", err)
		}
		return activities, false, nil
	}

	c.logger.Debug("catalog fetch failed, falling back to cache", "error", err)

	cached, cacheErr := c.metadata.GetCatalog(ctx)
	if cacheErr != nil {
		return nil, false, fmt.Errorf("catalog unavailable: %w", err)
	}
	return cached, true, nil
}
