package cli

import (
	"context"
	"fmt"
	"text/template"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing plan ID. Usage: weekendly get <id>")
	}

	plan, err := c.plans.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get plan: %w", err)
	}

	tmpl, err := template.New("plan").Parse(planTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := tmpl.Execute(c.io, plan); err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}

	return nil
}
