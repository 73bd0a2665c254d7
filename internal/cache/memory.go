package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a MemoryCache when no limit is given.
const DefaultMaxEntries = 1024

type memoryEntry struct {
	page      []byte
	storedAt  time.Time
	expiresAt time.Time
}

// MemoryCache keeps pages in process memory. It holds at most maxEntries
// pages; when full, expired pages are swept first and then the oldest page
// is evicted.
type MemoryCache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu          sync.Mutex
	generations map[string]int64
	entries     map[string]map[string]memoryEntry // path -> key -> entry
	size        int
}

type MemoryOption func(*MemoryCache)

// WithMaxEntries caps the number of stored pages across all paths.
func WithMaxEntries(n int) MemoryOption {
	return func(c *MemoryCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// NewMemoryCache returns a cache whose entries expire after ttl. A zero ttl
// keeps entries until their route is revalidated or they are evicted.
func NewMemoryCache(ttl time.Duration, opts ...MemoryOption) *MemoryCache {
	c := &MemoryCache{
		ttl:         ttl,
		maxEntries:  DefaultMaxEntries,
		now:         time.Now,
		generations: make(map[string]int64),
		entries:     make(map[string]map[string]memoryEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryCache) Get(_ context.Context, path, key string) (Lookup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l := Lookup{Generation: c.generations[path]}
	e, ok := c.entries[path][key]
	if !ok {
		return l, nil
	}
	if c.expired(e, c.now()) {
		c.removeLocked(path, key)
		return l, nil
	}
	l.Page, l.Hit = e.page, true
	return l, nil
}

func (c *MemoryCache) Set(_ context.Context, path, key string, generation int64, page []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generations[path] {
		return nil
	}

	now := c.now()
	if _, exists := c.entries[path][key]; !exists {
		if c.size >= c.maxEntries {
			c.sweepLocked(now)
		}
		if c.size >= c.maxEntries {
			c.evictOldestLocked()
		}
		c.size++
	}

	e := memoryEntry{
		page:     append([]byte(nil), page...),
		storedAt: now,
	}
	if c.ttl > 0 {
		e.expiresAt = now.Add(c.ttl)
	}
	keys := c.entries[path]
	if keys == nil {
		keys = make(map[string]memoryEntry)
		c.entries[path] = keys
	}
	keys[key] = e
	return nil
}

// Revalidate bumps the generation of path and frees its pages.
func (c *MemoryCache) Revalidate(_ context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[path]++
	c.size -= len(c.entries[path])
	delete(c.entries, path)
	return nil
}

// Len reports the number of stored pages, including expired ones not yet
// swept.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *MemoryCache) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (c *MemoryCache) removeLocked(path, key string) {
	keys := c.entries[path]
	if _, ok := keys[key]; !ok {
		return
	}
	delete(keys, key)
	c.size--
	if len(keys) == 0 {
		delete(c.entries, path)
	}
}

func (c *MemoryCache) sweepLocked(now time.Time) {
	for path, keys := range c.entries {
		for key, e := range keys {
			if c.expired(e, now) {
				c.removeLocked(path, key)
			}
		}
	}
}

func (c *MemoryCache) evictOldestLocked() {
	var (
		oldestPath, oldestKey string
		oldestAt              time.Time
		found                 bool
	)
	for path, keys := range c.entries {
		for key, e := range keys {
			if !found || e.storedAt.Before(oldestAt) {
				oldestPath, oldestKey, oldestAt, found = path, key, e.storedAt, true
			}
		}
	}
	if found {
		c.removeLocked(oldestPath, oldestKey)
	}
}
