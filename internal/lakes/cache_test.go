package lakes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolake/ecolake-backend-go/internal/models"
)

func TestCacheKeyRounding(t *testing.T) {
	// Go's FormatFloat rounds half away from zero on the decimal
	// representation, so both spellings land on the same key
	assert.Equal(t, "12.346,77.123,50", CacheKey(12.34567, 77.12345, 50))
	assert.Equal(t, CacheKey(12.34567, 77.12345, 50), CacheKey(12.3459, 77.1234, 50))
}

func TestCacheKeyNegativeCoordinates(t *testing.T) {
	assert.Equal(t, "-33.865,-70.674,25", CacheKey(-33.86543, -70.67389, 25))
}

func TestCacheKeyFractionalRadius(t *testing.T) {
	assert.Equal(t, "1.000,2.000,12.5", CacheKey(1, 2, 12.5))
}

func TestCacheKeyRadiusChangesKey(t *testing.T) {
	assert.NotEqual(t, CacheKey(1, 2, 25), CacheKey(1, 2, 50))
}

func TestCacheGetPut(t *testing.T) {
	c := NewCache(10 * time.Minute)

	_, ok := c.Get("k")
	require.False(t, ok)

	lakes := []models.NearbyWaterBody{{ID: "osm-way-1", Name: "Lake One"}}
	c.Put("k", lakes)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, lakes, got)
}

func TestCacheExpiry(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache(10 * time.Minute)
	c.now = func() time.Time { return current }

	c.Put("k", []models.NearbyWaterBody{})

	current = current.Add(9 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCacheEmptyResultIsCached(t *testing.T) {
	c := NewCache(10 * time.Minute)
	c.Put("k", []models.NearbyWaterBody{})

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Empty(t, got)
}
