package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/weekendly/internal/models"
)

func (c *Cli) runList(ctx context.Context) error {
	plans, err := c.plans.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	c.io.Println("=== Weekend Plans ===")
	c.io.Println()

	if len(plans) == 0 {
		c.io.Println("No plans yet. Run 'weekendly add' to create one.")
		return nil
	}

	for _, plan := range plans {
		marker := "✓"
		if plan.SyncStatus == models.SyncStatusPending {
			marker = "…"
		}
		c.io.Printf("%s %s  %s  (%d activities)\n", marker, plan.WeekendOf, plan.Title, len(plan.Activities))
		c.io.Printf("  id: %s\n", plan.ID)
	}

	c.io.Println()
	c.io.Println("✓ synced   … pending sync")

	return nil
}
