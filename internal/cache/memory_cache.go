package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// memoryCache keeps snapshots in process. It suits a single notes instance
// or local development without Redis.
type memoryCache struct {
	mu    sync.Mutex
	cache *gocache.Cache
	gens  map[int64]int64
}

func NewMemoryCache(ttl time.Duration) NoteCache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &memoryCache{
		cache: gocache.New(ttl, 10*time.Minute),
		gens:  make(map[int64]int64),
	}
}

func (c *memoryCache) snapshot(userID int64) (map[int64]models.Note, bool) {
	if x, found := c.cache.Get(userKey(userID)); found {
		return x.(map[int64]models.Note), true
	}
	return nil, false
}

func (c *memoryCache) Notes(_ context.Context, userID int64) ([]models.Note, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, ok := c.snapshot(userID)
	if !ok {
		return nil, false, nil
	}

	notes := make([]models.Note, 0, len(snap))
	for _, note := range snap {
		notes = append(notes, note)
	}
	sortNotes(notes)

	return notes, true, nil
}

func (c *memoryCache) Generation(_ context.Context, userID int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gens[userID], nil
}

func (c *memoryCache) Fill(_ context.Context, userID, gen int64, notes []models.Note) error {
	snap := make(map[int64]models.Note, len(notes))
	for _, note := range notes {
		snap[note.ID] = note
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[userID] != gen {
		return ErrStaleSnapshot
	}
	c.cache.Set(userKey(userID), snap, gocache.DefaultExpiration)
	return nil
}

func (c *memoryCache) Put(_ context.Context, userID int64, note models.Note) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[userID]++
	if snap, ok := c.snapshot(userID); ok {
		snap[note.ID] = note
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, userID, noteID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[userID]++
	if snap, ok := c.snapshot(userID); ok {
		delete(snap, noteID)
	}
	return nil
}
