package service

import (
	"context"
	"fmt"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/reminder"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// reminderChanges tracks the scheduler writes made while a store transaction
// runs. The scheduler is not part of the transaction, so settle puts back
// whatever a rolled back or retried attempt changed.
type reminderChanges struct {
	scheduler reminder.Scheduler

	// original is the task each touched name held before the first write.
	original map[string]*models.ReminderTask
	// latest holds the names written by the current attempt.
	latest map[string]struct{}
}

func newReminderChanges(scheduler reminder.Scheduler) *reminderChanges {
	return &reminderChanges{
		scheduler: scheduler,
		original:  make(map[string]*models.ReminderTask),
		latest:    make(map[string]struct{}),
	}
}

// begin starts a transaction attempt; store.WithinTx may call the callback
// more than once.
func (c *reminderChanges) begin() {
	clear(c.latest)
}

func (c *reminderChanges) schedule(ctx context.Context, req models.ReminderRequest) error {
	previous, err := c.scheduler.Schedule(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	c.touched(req.TaskName(), previous)

	logger.FromContext(ctx).Debug().Str("task", req.TaskName()).Time("fire_at", req.FireAt).Msg("reminder scheduled")
	return nil
}

func (c *reminderChanges) cancel(ctx context.Context, name string) error {
	previous, err := c.scheduler.Cancel(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	c.touched(name, previous)

	logger.FromContext(ctx).Debug().Str("task", name).Msg("reminder cancelled")
	return nil
}

func (c *reminderChanges) touched(name string, previous *models.ReminderTask) {
	if _, seen := c.original[name]; !seen {
		c.original[name] = previous
	}
	c.latest[name] = struct{}{}
}

// settle keeps the writes of the committed attempt and undoes the rest.
// When txErr is not nil nothing was committed and every write is undone.
func (c *reminderChanges) settle(ctx context.Context, txErr error) {
	ctx = context.WithoutCancel(ctx)

	for name, task := range c.original {
		if _, kept := c.latest[name]; kept && txErr == nil {
			continue
		}
		if err := c.scheduler.Restore(ctx, name, task); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "reminderChanges.settle").
				Str("task", name).
				Msg("failed to undo reminder change")
		}
	}
}
