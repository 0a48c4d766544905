// Package statscache implements the TTL response cache that sits between
// the tool handlers and the provider client. Concurrent requests for the
// same key are coalesced into a single upstream fetch.
package statscache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/reeeeemo/mcp-sports/internal/sports"
	"github.com/reeeeemo/mcp-sports/internal/telemetry"
)

// Key identifies a cached response. Two requests for the same sport, kind
// and parameter set always produce the same key regardless of the order
// parameters were supplied in.
type Key struct {
	Sport  sports.ID
	Kind   sports.Kind
	Params map[string]string
}

// NewKey builds a cache key. The params map is copied, so callers may
// reuse theirs.
func NewKey(sport sports.ID, kind sports.Kind, params map[string]string) Key {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return Key{Sport: sport, Kind: kind, Params: copied}
}

// String returns the canonical form of the key: sport and kind followed by
// the parameters sorted by name.
func (k Key) String() string {
	names := make([]string, 0, len(k.Params))
	for name := range k.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s", k.Sport, k.Kind)
	for i, name := range names {
		if i == 0 {
			b.WriteString("?")
		} else {
			b.WriteString("&")
		}
		fmt.Fprintf(&b, "%s=%s", name, k.Params[name])
	}
	return b.String()
}

type entry struct {
	key       Key
	record    sports.Record
	fetchedAt time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.fetchedAt) >= e.ttl
}

// FetchFunc produces a fresh record for a cache miss.
type FetchFunc func(ctx context.Context) (sports.Record, error)

// Cache is a thread-safe TTL response cache with per-key fetch coalescing.
// Fetch errors are never cached; the next request triggers a fresh fetch.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	metrics *telemetry.MetricsCollector
	now     func() time.Time
}

// New creates an empty cache.
func New(metrics *telemetry.MetricsCollector) *Cache {
	if metrics == nil {
		metrics = telemetry.NewMetricsCollector()
	}
	return &Cache{
		entries: make(map[string]entry),
		metrics: metrics,
		now:     time.Now,
	}
}

// GetOrFetch returns the cached record for key if one exists and is still
// live, otherwise runs fetch and caches the result. Concurrent callers for
// the same key share one fetch. A caller whose context is cancelled while
// waiting gets the context error, but the in-flight fetch finishes and its
// result is cached for later requests.
func (c *Cache) GetOrFetch(ctx context.Context, key Key, ttl time.Duration, fetch FetchFunc) (sports.Record, error) {
	ks := key.String()

	if rec, ok := c.lookupLive(ks); ok {
		c.metrics.IncrementCounter(telemetry.MetricCacheHits, 1)
		return rec, nil
	}

	ch := c.group.DoChan(ks, func() (interface{}, error) {
		// Another caller may have populated the entry between our miss
		// and this flight starting.
		if rec, ok := c.lookupLive(ks); ok {
			return rec, nil
		}

		c.metrics.IncrementCounter(telemetry.MetricCacheMisses, 1)

		// Detach from the caller: a cancelled waiter must not abort a
		// fetch that other callers are sharing.
		rec, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[ks] = entry{key: key, record: rec, fetchedAt: c.now(), ttl: ttl}
		size := len(c.entries)
		c.mu.Unlock()
		c.metrics.SetGauge(telemetry.MetricCacheSize, float64(size))

		return rec, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(sports.Record), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) lookupLive(ks string) (sports.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[ks]
	if !ok || e.expired(c.now()) {
		return nil, false
	}
	return e.record, true
}

// Lookup returns the live cached record matching a kind and canonical key
// string, used by the cache-inspection resources.
func (c *Cache) Lookup(kind sports.Kind, keyString string) (sports.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[keyString]
	if !ok || e.key.Kind != kind || e.expired(c.now()) {
		return nil, false
	}
	return e.record, true
}

// Keys returns the canonical key strings of all live entries for a kind,
// sorted for stable listing.
func (c *Cache) Keys(kind sports.Kind) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	var keys []string
	for ks, e := range c.entries {
		if e.key.Kind == kind && !e.expired(now) {
			keys = append(keys, ks)
		}
	}
	sort.Strings(keys)
	return keys
}

// Invalidate removes the entry for key, if any. Returns whether an entry
// was removed.
func (c *Cache) Invalidate(key Key) bool {
	ks := key.String()

	c.mu.Lock()
	_, ok := c.entries[ks]
	if ok {
		delete(c.entries, ks)
	}
	size := len(c.entries)
	c.mu.Unlock()

	if ok {
		c.metrics.IncrementCounter(telemetry.MetricCacheInvalidations, 1)
		c.metrics.SetGauge(telemetry.MetricCacheSize, float64(size))
	}
	return ok
}

// Clear drops every entry and returns how many were removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[string]entry)
	c.mu.Unlock()

	if n > 0 {
		c.metrics.IncrementCounter(telemetry.MetricCacheInvalidations, int64(n))
	}
	c.metrics.SetGauge(telemetry.MetricCacheSize, 0)
	return n
}

// Len reports the number of entries currently held, including expired
// entries not yet overwritten.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
