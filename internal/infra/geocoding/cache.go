package geocoding

import (
	"sync"
	"time"
)

// responseCache is a bounded TTL cache of raw geocoder payloads keyed
// by the exact query string. Expired entries are evicted lazily on
// lookup; there is no background sweeper. Safe for concurrent use:
// verification requests from different advertisers can race on the
// same query.
type responseCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

type cacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

func newResponseCache(maxEntries int, ttl time.Duration) *responseCache {
	return &responseCache{
		entries:    make(map[string]cacheEntry, maxEntries),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Get returns the cached payload for the query, treating expired
// entries as absent and dropping them on the way out.
func (c *responseCache) Get(query string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, query)

		return nil, false
	}

	return entry.payload, true
}

// Set stores a payload for the query. When the cache is full, one
// entry makes room: an already-expired one if any exists, otherwise
// the entry closest to expiry.
func (c *responseCache) Set(query string, payload []byte) {
	if c.maxEntries <= 0 || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[query]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOne()
	}

	c.entries[query] = cacheEntry{
		payload:   payload,
		expiresAt: c.now().Add(c.ttl),
	}
}

// evictOne removes a single entry; caller holds the lock.
func (c *responseCache) evictOne() {
	now := c.now()
	var oldestKey string
	var oldestExpiry time.Time

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)

			return
		}
		if oldestKey == "" || entry.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiresAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Len returns the current number of entries, expired ones included.
func (c *responseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
