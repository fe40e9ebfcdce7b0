package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/weekendly/internal/client/cache"
)

func (c *Cli) runFetch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing URL. Usage: weekendly fetch <url>")
	}
	url := args[0]

	resp, err := c.engine.Request(ctx, cache.Request{
		Method: http.MethodGet,
		URL:    url,
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	source := "network"
	if resp.FromCache {
		source = "cache"
	}

	c.io.Printf("Status: %d\n", resp.Status)
	c.io.Printf("Source: %s\n", source)
	c.io.Printf("Bytes:  %d\n", len(resp.Body))
	c.io.Println()

	if _, err := c.io.Write(resp.Body); err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}
	c.io.Println()

	return nil
}
