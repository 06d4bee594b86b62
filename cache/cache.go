// Package cache holds recently assembled signals in memory so repeated
// dashboard queries within the TTL don't regenerate (or re-fetch) anything.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-sentinel/signal"
	"go-sentinel/types"
)

const DefaultTTL = 10 * time.Minute

type entry struct {
	sig      types.Signal
	storedAt time.Time
}

// SignalCache is a TTL map keyed by (disease, city, geo). Safe for
// concurrent use.
type SignalCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *SignalCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SignalCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *SignalCache) Get(disease, city, geo string) (types.Signal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key(disease, city, geo)]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return types.Signal{}, false
	}
	return e.sig, true
}

func (c *SignalCache) Put(disease, city, geo string, sig types.Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(disease, city, geo)] = entry{sig: sig, storedAt: c.now()}
}

// Sweep drops expired entries and reports how many were removed.
func (c *SignalCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if c.now().Sub(e.storedAt) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

func (c *SignalCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func key(disease, city, geo string) string {
	return fmt.Sprintf("%s|%s|%s", disease, city, geo)
}

// CachedSource layers the cache over any signal source.
type CachedSource struct {
	src   signal.Source
	cache *SignalCache
}

func NewCachedSource(src signal.Source, c *SignalCache) *CachedSource {
	return &CachedSource{src: src, cache: c}
}

func (s *CachedSource) Signal(ctx context.Context, profile types.DiseaseProfile, city, geo string) (types.Signal, error) {
	if sig, ok := s.cache.Get(profile.Slug, city, geo); ok {
		return sig, nil
	}

	sig, err := s.src.Signal(ctx, profile, city, geo)
	if err != nil {
		return sig, err
	}

	s.cache.Put(profile.Slug, city, geo, sig)
	return sig, nil
}
