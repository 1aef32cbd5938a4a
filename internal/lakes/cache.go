package lakes

import (
	"strconv"
	"sync"
	"time"

	"github.com/ecolake/ecolake-backend-go/internal/models"
)

// CacheKey builds the cache key for a query. Latitude and longitude are
// rounded to 3 decimal places (~110 m), so near-duplicate coordinates
// intentionally collide. The radius keeps its full precision: a changed
// radius always forces a fresh query.
func CacheKey(lat, lng, radiusKm float64) string {
	return strconv.FormatFloat(lat, 'f', 3, 64) + "," +
		strconv.FormatFloat(lng, 'f', 3, 64) + "," +
		strconv.FormatFloat(radiusKm, 'f', -1, 64)
}

type cacheEntry struct {
	lakes     []models.NearbyWaterBody
	fetchedAt time.Time
}

// Cache is a TTL-bounded in-process cache of resolver results. Entries
// are immutable snapshots, so concurrent check-then-write races cost at
// most a redundant network call.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates a cache with the given TTL
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached list for key if present and younger than the TTL
func (c *Cache) Get(key string) ([]models.NearbyWaterBody, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.lakes, true
}

// Put stores a result list under key, replacing any previous entry
func (c *Cache) Put(key string, lakes []models.NearbyWaterBody) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		lakes:     lakes,
		fetchedAt: c.now(),
	}
}
