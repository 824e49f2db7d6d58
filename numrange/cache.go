package numrange

import (
	"fmt"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheCapacity = 4096

// Cache memoizes IsInRange results. Pass it through Options.Cache to enable
// it for a call. A Cache is safe for concurrent use. Once full, it evicts
// the least recently used entry.
type Cache struct {
	entries  *lru.Cache[string, bool]
	capacity int
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// CacheEntry is one memoized result.
type CacheEntry struct {
	Key     string
	InRange bool
}

// CacheStats is a point-in-time snapshot of a Cache.
type CacheStats struct {
	Size     int
	Capacity int
	Hits     uint64
	Misses   uint64
	// Entries are ordered from least to most recently used.
	Entries []CacheEntry
}

// NewCache returns a Cache holding at most capacity entries. A capacity of
// zero or less selects DefaultCacheCapacity.
func NewCache(capacity int) (*Cache, error) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	entries, err := lru.New[string, bool](capacity)
	if err != nil {
		return nil, fmt.Errorf("create range cache: %w", err)
	}
	return &Cache{entries: entries, capacity: capacity}, nil
}

func (c *Cache) lookup(key string, compute func() bool) bool {
	if v, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)
	v := compute()
	c.entries.Add(key, v)
	return v
}

// Len returns the number of memoized results.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Clear drops every entry and resets the hit and miss counters.
func (c *Cache) Clear() {
	c.entries.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns a snapshot of the cache. Entries evicted while the snapshot
// is taken are skipped.
func (c *Cache) Stats() CacheStats {
	keys := c.entries.Keys()
	entries := make([]CacheEntry, 0, len(keys))
	for _, k := range keys {
		if v, ok := c.entries.Peek(k); ok {
			entries = append(entries, CacheEntry{Key: k, InRange: v})
		}
	}
	return CacheStats{
		Size:     len(entries),
		Capacity: c.capacity,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Entries:  entries,
	}
}

// cacheKey renders promoted operands exactly; String keeps the domain
// suffix, so 10 and 10n never collide.
func cacheKey(v, lower, upper Scalar, exclusive bool) string {
	var sb strings.Builder
	sb.WriteString(v.String())
	sb.WriteByte('|')
	sb.WriteString(lower.String())
	sb.WriteByte('|')
	sb.WriteString(upper.String())
	if exclusive {
		sb.WriteString("|x")
	}
	return sb.String()
}
