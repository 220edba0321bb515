// Package cache memoizes match results per normalized utterance.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"knowbot/internal/model"
)

// ResultCache caches MatchResults keyed by normalized utterance. Entries
// expire after the configured TTL; any knowledge-base mutation must Flush
// so stale results never outlive the corpus they were computed from.
type ResultCache struct {
	cache *gocache.Cache
}

// NewResultCache creates a result cache with the given TTL. A zero TTL
// returns nil, which disables caching at every call site.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		return nil
	}
	return &ResultCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Get retrieves a cached result for the key
func (c *ResultCache) Get(key string) (model.MatchResult, bool) {
	if c == nil {
		return model.MatchResult{}, false
	}
	if val, found := c.cache.Get(key); found {
		return val.(model.MatchResult), true
	}
	return model.MatchResult{}, false
}

// Set stores a result under the key with the default TTL
func (c *ResultCache) Set(key string, result model.MatchResult) {
	if c == nil {
		return
	}
	c.cache.SetDefault(key, result)
}

// Flush drops every cached result
func (c *ResultCache) Flush() {
	if c == nil {
		return
	}
	c.cache.Flush()
}
