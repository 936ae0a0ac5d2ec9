package ingredient

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmorales/recetario/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedEntry wraps an ingredient with version metadata for cache invalidation
type cachedEntry struct {
	Version    string             `json:"version"`
	Ingredient *domain.Ingredient `json:"ingredient"`
	CachedAt   time.Time          `json:"cached_at"`
}

// ingredientCache provides an in-memory LRU cache for catalog lookups
// with time-based expiration and version-based invalidation. The catalog
// is read on every recipe search and every cook, so lookups are hot.
type ingredientCache struct {
	lru *expirable.LRU[string, *cachedEntry]
}

func newIngredientCache(size int, ttl time.Duration) *ingredientCache {
	return &ingredientCache{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// Get retrieves an ingredient by id.
// Returns (nil, false) if not cached, expired, or from an older schema.
func (c *ingredientCache) Get(id string) (*domain.Ingredient, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}

	return entry.Ingredient, true
}

// Set stores an ingredient under its id with the current schema version.
func (c *ingredientCache) Set(ing *domain.Ingredient) {
	c.lru.Add(ing.ID, &cachedEntry{
		Version:    CacheSchemaVersion,
		Ingredient: ing,
		CachedAt:   time.Now(),
	})
}

// Invalidate removes an ingredient from the cache after an update or delete.
func (c *ingredientCache) Invalidate(id string) {
	c.lru.Remove(id)
}

// Clear removes all entries from the cache.
func (c *ingredientCache) Clear() {
	c.lru.Purge()
}
