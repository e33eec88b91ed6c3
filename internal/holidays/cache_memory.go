package holidays

import (
	"context"
	"sync"
	"time"

	"workdays/pkg/platform/sentinel"
)

// MemoryCache is a process-local Cache with per-entry TTL.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	set       Set
	expiresAt time.Time
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Load returns the entry for key, or sentinel.ErrNotFound if absent or expired.
func (c *MemoryCache) Load(_ context.Context, key string) (Set, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		return Set{}, sentinel.ErrNotFound
	}
	return e.set, nil
}

// Store saves set under key. A non-positive ttl stores nothing.
func (c *MemoryCache) Store(_ context.Context, key string, set Set, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{set: set, expiresAt: c.now().Add(ttl)}
	return nil
}
