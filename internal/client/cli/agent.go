package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sethvargo/go-retry"
)

// runAgent запускает долгоживущий фоновый агент: монитор связности
// (drain на переходе offline→online) плюс cron-расписание регулярных
// drain-проходов. Завершается по отмене контекста.
func (c *Cli) runAgent(ctx context.Context) error {
	c.io.Println("=== Sync Agent ===")
	c.io.Printf("Drain schedule: %s\n", c.drainCron)
	c.io.Println("Press Ctrl+C to stop.")

	scheduler := cron.New()
	_, err := scheduler.AddFunc(c.drainCron, func() {
		c.scheduledDrain(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid drain schedule %q: %w", c.drainCron, err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	// Блокируется до отмены контекста; здесь же живёт health-проба
	// и публикация online/offline переходов
	c.monitor.Run(ctx)

	c.io.Println()
	c.io.Println("Agent stopped.")
	return nil
}

// scheduledDrain выполняет плановый drain с fibonacci-backoff на случай
// когда сервер кратковременно недоступен в момент срабатывания cron
func (c *Cli) scheduledDrain(ctx context.Context) {
	if !c.monitor.IsOnline() {
		c.logger.Debug("scheduled drain skipped, offline")
		return
	}

	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(2*time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		result, err := c.coordinator.Drain(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		if result != nil && result.Failed > 0 {
			// Частичная неудача: даём серверу передышку и пробуем ещё раз
			return retry.RetryableError(fmt.Errorf("%d item(s) failed", result.Failed))
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("scheduled drain did not fully succeed", "error", err)
	}
}
