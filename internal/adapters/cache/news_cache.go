package cache

import (
	"fmt"
	"fxwatch/internal/domain"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoNewsCache keeps provider responses warm for a short TTL.
// It only ever caches external feed data, never store state.
type RistrettoNewsCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewNewsCache(maxItems int64, ttl time.Duration) (*RistrettoNewsCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create news cache failed: %w", err)
	}
	return &RistrettoNewsCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoNewsCache) Get(country string) ([]domain.NewsItem, bool) {
	if v, ok := c.cache.Get(country); ok {
		items, ok := v.([]domain.NewsItem)
		return items, ok
	}
	return nil, false
}

func (c *RistrettoNewsCache) Set(country string, items []domain.NewsItem) {
	c.cache.SetWithTTL(country, items, 1, c.ttl)
}

func (c *RistrettoNewsCache) Close() { c.cache.Close() }
