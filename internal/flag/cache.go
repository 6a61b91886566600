package flag

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
)

// entry is what the cache stores per image ref. When NoColors is set the
// image produced nothing usable and every caller gets its own fallback.
type entry struct {
	Primary   colormath.RGB
	Secondary *colormath.RGB
	NoColors  bool
}

// CachedResult is the exported form of one cache entry, used for persistence.
type CachedResult struct {
	Ref       string         `json:"ref"`
	Primary   colormath.RGB  `json:"primary"`
	Secondary *colormath.RGB `json:"secondary,omitempty"`
	NoColors  bool           `json:"no_colors"`
}

// Cache memoizes extraction results by image ref for the life of the process.
// It is bounded; evicting an entry only costs a re-extraction.
type Cache struct {
	lru    *lru.Cache[string, entry]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates a cache holding up to size results.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, entry](size)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &Cache{lru: c}
}

func (c *Cache) get(ref string) (entry, bool) {
	e, ok := c.lru.Get(ref)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return e, ok
}

func (c *Cache) put(ref string, e entry) {
	c.lru.Add(ref, e)
}

// Len is the number of cached refs.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Hits returns the number of cache hits so far.
func (c *Cache) Hits() int64 {
	return c.hits.Load()
}

// Misses returns the number of cache misses so far.
func (c *Cache) Misses() int64 {
	return c.misses.Load()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Entries exports the cache contents, oldest first.
func (c *Cache) Entries() []CachedResult {
	keys := c.lru.Keys()
	out := make([]CachedResult, 0, len(keys))
	for _, k := range keys {
		e, ok := c.lru.Peek(k)
		if !ok {
			continue
		}
		out = append(out, CachedResult{Ref: k, Primary: e.Primary, Secondary: e.Secondary, NoColors: e.NoColors})
	}
	return out
}

// Restore seeds the cache from exported entries.
func (c *Cache) Restore(results []CachedResult) {
	for _, r := range results {
		if r.Ref == "" {
			continue
		}
		c.put(r.Ref, entry{Primary: r.Primary, Secondary: r.Secondary, NoColors: r.NoColors})
	}
}

// peek reads without touching hit/miss counters.
func (c *Cache) peek(ref string) (entry, bool) {
	return c.lru.Peek(ref)
}
