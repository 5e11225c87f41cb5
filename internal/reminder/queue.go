// Package reminder stores note reminders in Redis and delivers them by
// email once they are due.
//
// The notes service writes tasks through [Scheduler]. The reminders process
// runs a [Dispatcher] that claims due tasks, fans them out over a watermill
// channel and mails them. A failed delivery is pushed back by the retry
// delay, so delivery is at least once.
package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

const (
	dueKey     = "fundoo:reminders:due"
	payloadKey = "fundoo:reminders:tasks"
)

var (
	ErrSchedulingTask = errors.New("failed to schedule reminder")
	ErrCancellingTask = errors.New("failed to cancel reminder")
	ErrClaimingTasks  = errors.New("failed to claim due reminders")
)

//go:generate mockgen -source=queue.go -destination=../mock/reminder_mock.go -package=mock

// Scheduler registers reminders for later delivery.
//
// Schedule and Cancel return the task they displaced so that a caller whose
// own transaction failed can hand it back to Restore.
type Scheduler interface {
	// Schedule stores the reminder under its task name. A reminder with the
	// same name replaces the earlier one, which is returned.
	Schedule(ctx context.Context, req models.ReminderRequest) (*models.ReminderTask, error)
	// Cancel removes the task called name and returns it; nil if there was none.
	Cancel(ctx context.Context, name string) (*models.ReminderTask, error)
	// Restore makes name hold task again, or removes name when task is nil.
	Restore(ctx context.Context, name string, task *models.ReminderTask) error
}

// Queue is the dispatcher's view of the task store.
type Queue interface {
	// ClaimDue removes and returns at most limit tasks due at or before now.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]models.ReminderTask, error)
	// Retry stores task again unless a task with the same name was
	// scheduled in the meantime.
	Retry(ctx context.Context, task models.ReminderTask) error
}

// claimScript pops due task names together with their payloads atomically,
// so two dispatchers never claim the same task.
var claimScript = redis.NewScript(`
local names = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, ARGV[2])
local out = {}
for _, name in ipairs(names) do
	redis.call('ZREM', KEYS[1], name)
	local payload = redis.call('HGET', KEYS[2], name)
	redis.call('HDEL', KEYS[2], name)
	if payload then
		table.insert(out, payload)
	end
end
return out
`)

// scheduleScript stores a task and returns the payload it replaced.
var scheduleScript = redis.NewScript(`
local previous = redis.call('HGET', KEYS[2], ARGV[1])
redis.call('HSET', KEYS[2], ARGV[1], ARGV[2])
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[1])
return previous
`)

// cancelScript removes a task and returns its payload.
var cancelScript = redis.NewScript(`
local previous = redis.call('HGET', KEYS[2], ARGV[1])
redis.call('HDEL', KEYS[2], ARGV[1])
redis.call('ZREM', KEYS[1], ARGV[1])
return previous
`)

// retryScript re-adds a task only if its name is free.
var retryScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[2], ARGV[1], ARGV[2]) == 1 then
	redis.call('ZADD', KEYS[1], ARGV[3], ARGV[1])
	return 1
end
return 0
`)

// RedisQueue keeps tasks in a sorted set scored by fire time plus a hash of
// JSON payloads, both keyed by task name.
type RedisQueue struct {
	rdb *redis.Client
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb}
}

func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func (q *RedisQueue) Schedule(ctx context.Context, req models.ReminderRequest) (*models.ReminderTask, error) {
	task := models.ReminderTask{
		Name:    req.TaskName(),
		FireAt:  req.FireAt,
		Payload: req,
	}

	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchedulingTask, err)
	}

	previous, err := scheduleScript.Run(ctx, q.rdb,
		[]string{dueKey, payloadKey},
		task.Name, payload, score(task.FireAt),
	).Text()
	return decodePrevious(previous, err, ErrSchedulingTask)
}

func (q *RedisQueue) Cancel(ctx context.Context, name string) (*models.ReminderTask, error) {
	previous, err := cancelScript.Run(ctx, q.rdb, []string{dueKey, payloadKey}, name).Text()
	return decodePrevious(previous, err, ErrCancellingTask)
}

func (q *RedisQueue) Restore(ctx context.Context, name string, task *models.ReminderTask) error {
	if task == nil {
		_, err := q.Cancel(ctx, name)
		return err
	}

	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchedulingTask, err)
	}

	_, err = q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, payloadKey, name, payload)
		pipe.ZAdd(ctx, dueKey, redis.Z{Score: score(task.FireAt), Member: name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchedulingTask, err)
	}
	return nil
}

// decodePrevious turns the payload returned by a script into a task.
// A nil reply means no task was stored under the name.
func decodePrevious(payload string, err, wrap error) (*models.ReminderTask, error) {
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wrap, err)
	}

	var task models.ReminderTask
	if err = json.Unmarshal([]byte(payload), &task); err != nil {
		return nil, fmt.Errorf("%w: %w", wrap, err)
	}
	return &task, nil
}

func (q *RedisQueue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]models.ReminderTask, error) {
	if limit <= 0 {
		limit = 1
	}

	raw, err := claimScript.Run(ctx, q.rdb,
		[]string{dueKey, payloadKey},
		strconv.FormatFloat(score(now), 'f', 0, 64), limit,
	).StringSlice()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %w", ErrClaimingTasks, err)
	}

	tasks := make([]models.ReminderTask, 0, len(raw))
	for _, payload := range raw {
		var task models.ReminderTask
		if err = json.Unmarshal([]byte(payload), &task); err != nil {
			return tasks, fmt.Errorf("%w: %w", ErrClaimingTasks, err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (q *RedisQueue) Retry(ctx context.Context, task models.ReminderTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchedulingTask, err)
	}

	err = retryScript.Run(ctx, q.rdb,
		[]string{dueKey, payloadKey},
		task.Name, payload, score(task.FireAt),
	).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %w", ErrSchedulingTask, err)
	}

	return nil
}
