// Package cache keeps per-owner snapshots of notes in front of the notes
// database. Every backend is best-effort: callers log failures and fall
// back to the store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendNone   = "none"
)

var (
	ErrUnknownBackend  = errors.New("unknown cache backend")
	ErrRedisRequired   = errors.New("redis cache backend requires a redis client")
	ErrDecodingPayload = errors.New("failed to decode cached note")
	ErrStaleSnapshot   = errors.New("notes changed while the snapshot was read")
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// NoteCache stores the notes of one owner as a snapshot.
//
// A snapshot exists only after Fill; Put and Delete adjust an existing
// snapshot and are no-ops otherwise, so a partially known set of notes is
// never served as the owner's full list.
//
// Every Put and Delete bumps the owner's generation. A reader takes the
// generation before it reads the store and hands it to Fill, which refuses
// the snapshot if a write happened in between.
type NoteCache interface {
	// Notes returns the cached snapshot of the owner's notes. ok is false
	// when no snapshot exists.
	Notes(ctx context.Context, userID int64) (notes []models.Note, ok bool, err error)
	// Generation returns the owner's current write generation.
	Generation(ctx context.Context, userID int64) (int64, error)
	// Fill replaces the owner's snapshot with notes read at generation gen.
	// It returns ErrStaleSnapshot when the generation has moved on.
	Fill(ctx context.Context, userID, gen int64, notes []models.Note) error
	// Put refreshes one note inside an existing snapshot.
	Put(ctx context.Context, userID int64, note models.Note) error
	// Delete removes one note from an existing snapshot.
	Delete(ctx context.Context, userID, noteID int64) error
}

// New returns the backend selected by cfg.Backend. rdb is required only
// for the redis backend.
func New(cfg config.Cache, rdb *redis.Client, log *logger.Logger) (NoteCache, error) {
	switch cfg.Backend {
	case BackendRedis, "":
		if rdb == nil {
			return nil, ErrRedisRequired
		}
		log.Debug().Str("backend", BackendRedis).Msg("creating note cache")
		return NewRedisCache(rdb, cfg.TTL), nil
	case BackendMemory:
		log.Debug().Str("backend", BackendMemory).Msg("creating note cache")
		return NewMemoryCache(cfg.TTL), nil
	case BackendNone:
		return Nop(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func userKey(userID int64) string {
	return "user_" + strconv.FormatInt(userID, 10)
}

func generationKey(userID int64) string {
	return "gen_user_" + strconv.FormatInt(userID, 10)
}

func noteField(noteID int64) string {
	return "note_" + strconv.FormatInt(noteID, 10)
}

type nopCache struct{}

// Nop returns a cache that never holds anything.
func Nop() NoteCache {
	return nopCache{}
}

func (nopCache) Notes(context.Context, int64) ([]models.Note, bool, error) { return nil, false, nil }
func (nopCache) Generation(context.Context, int64) (int64, error)          { return 0, nil }
func (nopCache) Fill(context.Context, int64, int64, []models.Note) error   { return nil }
func (nopCache) Put(context.Context, int64, models.Note) error             { return nil }
func (nopCache) Delete(context.Context, int64, int64) error                { return nil }
