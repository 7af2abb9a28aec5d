package external

import (
	"sync"
	"time"
)

// entry is a single cached suggestions response, keyed by "<query>:<lang>".
type entry struct {
	results   []string
	expiresAt time.Time
}

// cache is a bounded, insertion-ordered map with FIFO eviction: strictly
// FIFO-by-insertion, TTL-only, in-memory, and bounded (unlike an LRU-by-touch
// cache with HTTP-header-derived expiry and disk persistence).
//
// A single mutex guards the map and the insertion-order slice together, so
// the size check, eviction, and insert happen atomically.
type cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[string]entry
	order    []string // insertion order, oldest first
}

func newCache(ttl time.Duration, capacity int) *cache {
	if capacity <= 0 {
		capacity = 500
	}
	return &cache{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]entry, capacity),
		order:    make([]string, 0, capacity),
	}
}

// get returns a cached result list if present and not expired. Expired
// entries are lazily removed on read.
func (c *cache) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		c.removeFromOrderLocked(key)
		return nil, false
	}
	return e.results, true
}

// removeFromOrderLocked drops key's insertion-order marker. Called whenever
// an entry is removed outside of evictOldestLocked's own pop, so a later
// re-insertion of the same key can't leave two markers in order (which would
// let eviction later delete a freshly-reinserted live entry under the guise
// of evicting a long-gone stale one).
func (c *cache) removeFromOrderLocked(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// set inserts or refreshes a cache entry. If the cache is at capacity and
// key is new, the oldest insertion is evicted first, so the bound is never
// exceeded and eviction order is deterministic.
func (c *cache) set(key string, results []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.capacity {
			c.evictOldestLocked()
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = entry{
		results:   results,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *cache) evictOldestLocked() {
	for len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if _, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			return
		}
	}
}

// size reports the current number of live entries (test/diagnostic use).
func (c *cache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
