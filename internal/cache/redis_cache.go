// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// snapshotField marks a filled hash so an owner without notes is still a hit.
const snapshotField = "snapshot"

// putScript bumps the generation in KEYS[2] and writes a field only into a
// hash that already exists.
var putScript = redis.NewScript(`
redis.call('INCR', KEYS[2])
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// deleteScript bumps the generation in KEYS[2] and drops one field.
var deleteScript = redis.NewScript(`
redis.call('INCR', KEYS[2])
return redis.call('HDEL', KEYS[1], ARGV[1])
`)

// redisCache stores each owner's snapshot as the hash user_{id} with one
// JSON encoded note per field note_{id}. The write generation lives in the
// plain counter gen_user_{id}, which has no TTL.
type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) NoteCache {
	return &redisCache{rdb: rdb, ttl: ttl}
}

func (c *redisCache) Notes(ctx context.Context, userID int64) ([]models.Note, bool, error) {
	fields, err := c.rdb.HGetAll(ctx, userKey(userID)).Result()
	if err != nil {
		return nil, false, err
	}
	if _, ok := fields[snapshotField]; !ok {
		return nil, false, nil
	}

	notes := make([]models.Note, 0, len(fields)-1)
	for field, raw := range fields {
		if field == snapshotField {
			continue
		}
		var note models.Note
		if err = json.Unmarshal([]byte(raw), &note); err != nil {
			return nil, false, fmt.Errorf("%w: %s: %w", ErrDecodingPayload, field, err)
		}
		notes = append(notes, note)
	}
	sortNotes(notes)

	return notes, true, nil
}

func (c *redisCache) Generation(ctx context.Context, userID int64) (int64, error) {
	return c.generation(ctx, c.rdb, userID)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (c *redisCache) generation(ctx context.Context, cmd getter, userID int64) (int64, error) {
	gen, err := cmd.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *redisCache) Fill(ctx context.Context, userID, gen int64, notes []models.Note) error {
	values := make([]any, 0, 2*len(notes)+2)
	values = append(values, snapshotField, "1")
	for _, note := range notes {
		payload, err := json.Marshal(note)
		if err != nil {
			return err
		}
		values = append(values, noteField(note.ID), payload)
	}

	key := userKey(userID)
	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx, userID)
		if err != nil {
			return err
		}
		if current != gen {
			return ErrStaleSnapshot
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.HSet(ctx, key, values...)
			if c.ttl > 0 {
				pipe.Expire(ctx, key, c.ttl)
			}
			return nil
		})
		return err
	}, generationKey(userID))
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStaleSnapshot
	}
	return err
}

func (c *redisCache) Put(ctx context.Context, userID int64, note models.Note) error {
	payload, err := json.Marshal(note)
	if err != nil {
		return err
	}
	keys := []string{userKey(userID), generationKey(userID)}
	return putScript.Run(ctx, c.rdb, keys, noteField(note.ID), payload).Err()
}

func (c *redisCache) Delete(ctx context.Context, userID, noteID int64) error {
	keys := []string{userKey(userID), generationKey(userID)}
	return deleteScript.Run(ctx, c.rdb, keys, noteField(noteID)).Err()
}

// sortNotes orders a snapshot the way the store lists notes: most recently
// modified first.
func sortNotes(notes []models.Note) {
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].ModifiedAt.Equal(notes[j].ModifiedAt) {
			return notes[i].ID > notes[j].ID
		}
		return notes[i].ModifiedAt.After(notes[j].ModifiedAt)
	})
}
