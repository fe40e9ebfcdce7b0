package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/weekendly/internal/models"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if !c.engine.IsOnline() {
		c.io.Println("⚠ Network looks offline. Attempting anyway...")
	}

	result, err := c.engine.Sync(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}
	if result == nil {
		// Другой drain уже идёт (например, в агенте)
		c.io.Println("Sync already in progress, skipped.")
		return nil
	}

	if result.Attempted == 0 {
		c.io.Println("✓ Nothing to sync, queue is empty.")
		return nil
	}

	c.io.Println("✓ Sync pass completed.")
	c.io.Printf("Attempted: %d\n", result.Attempted)
	c.io.Printf("Succeeded: %d\n", result.Succeeded)
	if result.Failed > 0 {
		c.io.Printf("Failed (will retry): %d\n", result.Failed)
	}
	if result.Dropped > 0 {
		c.io.Printf("⚠ Abandoned after %d attempts: %d\n", models.MaxRetries, result.Dropped)
	}

	return nil
}
