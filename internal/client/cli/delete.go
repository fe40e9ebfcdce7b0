package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing plan ID. Usage: weekendly delete <id>")
	}
	id := args[0]

	plan, err := c.plans.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get plan: %w", err)
	}

	answer, err := c.io.ReadInput(fmt.Sprintf("Delete plan %q (%s)? [y/N]: ", plan.Title, plan.WeekendOf))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	c.io.Println("✓ Plan deleted locally.")
	if !c.engine.IsOnline() {
		c.io.Println("The server will be notified on the next sync.")
	}

	return nil
}
