package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	if c.engine.IsOnline() {
		c.io.Println("Network: online")
	} else {
		c.io.Println("Network: offline")
	}

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if isAuth {
		auth, err := c.authService.CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("failed to get auth data: %w", err)
		}
		c.io.Printf("Account: %s\n", auth.Username)
	} else {
		c.io.Println("Account: not authenticated (run 'weekendly login')")
	}

	pending, err := c.coordinator.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}
	if pending > 0 {
		c.io.Printf("⚠ Pending sync: %d mutation(s) queued\n", pending)
		c.io.Println("Run 'weekendly sync' to synchronize.")
	} else {
		c.io.Println("✓ All mutations synchronized")
	}

	lastDrain, err := c.metadata.GetLastDrainTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last drain time: %w", err)
	}
	if lastDrain > 0 {
		c.io.Printf("Last sync pass: %s\n", time.Unix(lastDrain, 0).Format(time.RFC3339))
	} else {
		c.io.Println("Last sync pass: never")
	}

	return nil
}
