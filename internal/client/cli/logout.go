package cli

import (
	"context"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Logged out.")
	c.io.Println("Local plans and the sync queue are kept on this device.")
	return nil
}
