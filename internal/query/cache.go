// Package query mediates between the HTTP client and the fallback provider.
// It owns the process-wide read cache, deduplicates in-flight fetches, and
// invalidates resources after successful mutations.
package query

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	apperrors "ardoise/internal/errors"
)

// Key addresses one cached read: a resource name plus its serialized
// parameters. Identical filters produce identical keys.
type Key struct {
	Resource string
	Params   map[string]string
}

func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Resource
	}

	names := make([]string, 0, len(k.Params))
	for name := range k.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(k.Resource)
	for _, name := range names {
		b.WriteByte('?')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(k.Params[name])
	}
	return b.String()
}

// Source records where a cache entry came from. Fallback entries never go
// stale; there is nothing fresher to fetch while the backend is out of reach.
type Source int

const (
	SourceNetwork Source = iota
	SourceFallback
)

type FetchFunc func(ctx context.Context) (any, error)

// FallbackFunc supplies substitute data. A nil FallbackFunc means the
// resource has no offline representation.
type FallbackFunc func() (any, error)

type entry struct {
	resource  string
	data      any
	source    Source
	fetchedAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	ttl     time.Duration
	offline bool
	logger  *zap.Logger
	now     func() time.Time
}

func NewCache(ttl time.Duration, offline bool, logger *zap.Logger) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		offline: offline,
		logger:  logger,
		now:     time.Now,
	}
}

// Offline reports whether the source-selection policy bypasses the network
// entirely.
func (c *Cache) Offline() bool {
	return c.offline
}

type resolved struct {
	data   any
	source Source
}

// Read returns the cached value for key, fetching it if the entry is missing
// or stale. Concurrent reads of the same key share a single fetch.
func (c *Cache) Read(ctx context.Context, key Key, fetch FetchFunc, fb FallbackFunc) (any, error) {
	id := key.String()

	if data, ok := c.fresh(id); ok {
		return data, nil
	}

	value, err, _ := c.group.Do(id, func() (any, error) {
		// A concurrent caller may have populated the entry while this
		// one waited on the group.
		if data, ok := c.fresh(id); ok {
			return resolved{data: data}, nil
		}

		data, source, err := c.resolve(ctx, key, fetch, fb)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[id] = entry{
			resource:  key.Resource,
			data:      data,
			source:    source,
			fetchedAt: c.now(),
		}
		c.mu.Unlock()

		return resolved{data: data, source: source}, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(resolved).data, nil
}

// resolve applies the source-selection policy: offline mode always serves
// fallback data; online mode fetches and substitutes fallback only when the
// failure is transport-class.
func (c *Cache) resolve(ctx context.Context, key Key, fetch FetchFunc, fb FallbackFunc) (any, Source, error) {
	if c.offline {
		if fb == nil {
			return nil, 0, apperrors.NewInternalError("offline mode with no fallback for "+key.Resource, nil)
		}
		data, err := fb()
		if err != nil {
			return nil, 0, err
		}
		return data, SourceFallback, nil
	}

	data, err := fetch(ctx)
	if err == nil {
		return data, SourceNetwork, nil
	}

	if _, ok := apperrors.IsTransportError(err); ok && fb != nil {
		c.logger.Warn("backend unreachable, serving fallback data",
			zap.String("resource", key.Resource),
			zap.Error(err),
		)
		if data, fbErr := fb(); fbErr == nil {
			return data, SourceFallback, nil
		}
	}

	return nil, 0, err
}

func (c *Cache) fresh(id string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	if e.source == SourceFallback {
		return e.data, true
	}
	if c.now().Sub(e.fetchedAt) < c.ttl {
		return e.data, true
	}
	return nil, false
}

// Invalidate drops every cached entry belonging to the named resources. The
// next read of any of them refetches.
func (c *Cache) Invalidate(resources ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, e := range c.entries {
		for _, resource := range resources {
			if e.resource == resource {
				delete(c.entries, id)
				break
			}
		}
	}
}

// Mutate runs a write action. On success the named resources are invalidated;
// on failure the cache is left exactly as it was.
func (c *Cache) Mutate(ctx context.Context, action func(ctx context.Context) error, invalidates ...string) error {
	if err := action(ctx); err != nil {
		return err
	}
	c.Invalidate(invalidates...)
	return nil
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// ReadAs is the typed wrapper services use over Cache.Read.
func ReadAs[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error), fb func() (T, error)) (T, error) {
	var fbFn FallbackFunc
	if fb != nil {
		fbFn = func() (any, error) { return fb() }
	}

	data, err := c.Read(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}, fbFn)
	if err != nil {
		var zero T
		return zero, err
	}

	return data.(T), nil
}
