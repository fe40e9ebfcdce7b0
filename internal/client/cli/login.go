package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	passphrase, err := c.io.ReadPassword("Passphrase: ")
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}

	result, err := c.authService.Login(ctx, username, passphrase)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", result.Username)
	c.io.Printf("Token expires in: %s\n", time.Duration(result.ExpiresIn)*time.Second)

	// Сразу после логина имеет смысл догнать очередь
	pending, err := c.coordinator.PendingCount(ctx)
	if err == nil && pending > 0 {
		c.io.Println()
		c.io.Printf("⚠ %d pending mutation(s) in the sync queue. Run 'weekendly sync'.\n", pending)
	}

	return nil
}
