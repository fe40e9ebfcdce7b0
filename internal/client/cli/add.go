package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/weekendly/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	id := fs.String("id", "", "plan ID (empty creates a new plan)")
	title := fs.String("title", "", "plan title")
	weekend := fs.String("weekend", "", "weekend date, YYYY-MM-DD (a Saturday)")
	activities := fs.String("activities", "", "comma-separated slot:name pairs, e.g. morning:Hike,evening:Movie")
	notes := fs.String("notes", "", "free-form notes attached to every activity")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" {
		return fmt.Errorf("missing -title")
	}
	if *weekend == "" {
		return fmt.Errorf("missing -weekend")
	}
	if _, err := time.Parse("2006-01-02", *weekend); err != nil {
		return fmt.Errorf("invalid -weekend date: %w", err)
	}

	parsed, err := parseActivities(*activities, *notes)
	if err != nil {
		return err
	}

	plan := &models.Plan{
		ID:         *id,
		Title:      *title,
		WeekendOf:  *weekend,
		Activities: parsed,
	}

	saved, err := c.plans.Upsert(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	c.io.Println("✓ Plan saved.")
	c.io.Printf("ID: %s\n", saved.ID)
	if saved.SyncStatus == models.SyncStatusSynced {
		c.io.Println("Sync: confirmed by server")
	} else {
		c.io.Println("Sync: pending (will sync when online)")
	}

	return nil
}

// parseActivities разбирает "slot:name,slot:name" в список активностей
func parseActivities(raw, notes string) ([]models.Activity, error) {
	if raw == "" {
		return nil, nil
	}

	var out []models.Activity
	for _, pair := range strings.Split(raw, ",") {
		slot, name, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || slot == "" || name == "" {
			return nil, fmt.Errorf("invalid activity %q, expected slot:name", pair)
		}
		out = append(out, models.Activity{
			Name:  strings.TrimSpace(name),
			Slot:  strings.TrimSpace(slot),
			Notes: notes,
		})
	}
	return out, nil
}
