// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/mailer"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

const (
	dueTopic = "reminders.due"

	// maxAttempts caps deliveries of one task before it is dropped.
	maxAttempts = 5
)

type pubSub interface {
	message.Publisher
	message.Subscriber
}

// Dispatcher polls the queue for due reminders and mails them.
type Dispatcher struct {
	queue  Queue
	mailer mailer.Mailer
	pubsub pubSub

	interval   time.Duration
	batchSize  int
	retryDelay time.Duration
	now        func() time.Time

	// inFlight holds tasks that were claimed and published but not yet taken
	// by deliver, keyed by message UUID. They go back to the queue on shutdown.
	mu       sync.Mutex
	inFlight map[string]models.ReminderTask

	logger *logger.Logger
}

func NewDispatcher(queue Queue, m mailer.Mailer, cfg config.Workers, log *logger.Logger) *Dispatcher {
	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: int64(cfg.ReminderBatchSize),
	}, newWatermillLogger(log))

	return &Dispatcher{
		queue:      queue,
		mailer:     m,
		pubsub:     ps,
		interval:   cfg.ReminderPollInterval,
		batchSize:  cfg.ReminderBatchSize,
		retryDelay: cfg.ReminderRetryDelay,
		now:        time.Now,
		inFlight:   make(map[string]models.ReminderTask),
		logger:     log,
	}
}

// Run polls until ctx is cancelled. Due tasks are claimed every interval
// and delivered by a subscriber of the in-process channel. On shutdown the
// reminder being mailed is finished and every claimed task still waiting in
// the channel is put back into the queue.
func (d *Dispatcher) Run(ctx context.Context) error {
	// the subscription outlives ctx until the waiting tasks are requeued
	subCtx, cancelSub := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelSub()

	messages, err := d.pubsub.Subscribe(subCtx, dueTopic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", dueTopic, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range messages {
			d.deliver(msg)
		}
	}()

	d.logger.Info().
		Dur("interval", d.interval).
		Int("batch_size", d.batchSize).
		Msg("reminder dispatcher started")

	t := time.NewTicker(d.interval)
	defer t.Stop()

	d.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			d.requeueInFlight(ctx)
			cancelSub()
			err = d.pubsub.Close()
			<-done
			d.logger.Info().Msg("reminder dispatcher stopped")
			return err
		case <-t.C:
			d.poll(ctx)
		}
	}
}

// poll claims due tasks and publishes each on the due topic.
func (d *Dispatcher) poll(ctx context.Context) {
	tasks, err := d.queue.ClaimDue(ctx, d.now(), d.batchSize)
	if err != nil {
		d.logger.Err(err).Str("func", "Dispatcher.poll").Msg("failed to claim due reminders")
	}

	for _, task := range tasks {
		payload, err := json.Marshal(task)
		if err != nil {
			d.logger.Err(err).Str("task", task.Name).Msg("failed to encode reminder")
			continue
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set("task", task.Name)

		d.track(msg.UUID, task)
		if err = d.pubsub.Publish(dueTopic, msg); err != nil {
			d.logger.Err(err).Str("task", task.Name).Msg("failed to publish reminder")
			if _, ok := d.take(msg.UUID); ok {
				d.retry(ctx, task)
			}
		}
	}
}

// deliver mails one reminder. The message is always acked: a failed send
// is retried through the queue, not through redelivery. A message whose
// task was already requeued by shutdown is skipped.
func (d *Dispatcher) deliver(msg *message.Message) {
	defer msg.Ack()

	if _, ok := d.take(msg.UUID); !ok {
		return
	}

	var task models.ReminderTask
	if err := json.Unmarshal(msg.Payload, &task); err != nil {
		d.logger.Err(err).Str("message_uuid", msg.UUID).Msg("dropping malformed reminder")
		return
	}

	log := d.logger.With().Str("task", task.Name).Int64("note_id", task.Payload.NoteID).Logger()
	ctx := log.WithContext(context.Background())

	if err := d.mailer.SendReminder(ctx, task.Payload.Recipient, task.Payload.Message); err != nil {
		log.Warn().Err(err).Int("attempt", task.Attempt).Msg("reminder delivery failed")
		d.retry(ctx, task)
		return
	}

	log.Info().Msg("reminder delivered")
}

func (d *Dispatcher) track(id string, task models.ReminderTask) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight[id] = task
}

func (d *Dispatcher) take(id string) (models.ReminderTask, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	task, ok := d.inFlight[id]
	delete(d.inFlight, id)
	return task, ok
}

// requeueInFlight puts every task not yet taken by deliver back into the
// queue unchanged, so the next dispatcher claims it again.
func (d *Dispatcher) requeueInFlight(ctx context.Context) {
	d.mu.Lock()
	waiting := d.inFlight
	d.inFlight = make(map[string]models.ReminderTask)
	d.mu.Unlock()

	for _, task := range waiting {
		if err := d.queue.Retry(context.WithoutCancel(ctx), task); err != nil {
			d.logger.Err(err).Str("task", task.Name).Msg("failed to requeue reminder on shutdown")
			continue
		}
		d.logger.Debug().Str("task", task.Name).Msg("reminder requeued on shutdown")
	}
}

func (d *Dispatcher) retry(ctx context.Context, task models.ReminderTask) {
	task.Attempt++
	if task.Attempt >= maxAttempts {
		d.logger.Error().
			Str("task", task.Name).
			Int("attempt", task.Attempt).
			Msg("giving up on reminder")
		return
	}

	task.FireAt = d.now().Add(d.retryDelay)
	if err := d.queue.Retry(context.WithoutCancel(ctx), task); err != nil {
		d.logger.Err(err).Str("task", task.Name).Msg("failed to reschedule reminder")
	}
}
