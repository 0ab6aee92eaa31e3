// Package covers is the cache-aside layer over remembered cover art URLs.
// It knows the difference between "never looked up" and "looked up and
// confirmed missing" and it schedules background revalidation of entries
// which have become stale.
package covers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fungalore/aurral/src/metrics"
	"github.com/fungalore/aurral/src/settings"
)

const (
	// notFoundCacheTTL is how long a cached cover row is considered fresh.
	// Once a row is older than this a lookup schedules one background
	// re-resolution. The same window applies to found and not-found rows.
	notFoundCacheTTL = 7 * 24 * time.Hour

	// notFoundRetryDelay is waited out before re-resolving a stale
	// not-found row. Covers which were missing for a week will in all
	// likelihood still be missing so there is no hurry.
	notFoundRetryDelay = 5 * time.Minute
)

// Entry is one remembered cover. Exactly one of URL and NotFound is
// meaningful: either the cover URL is known or its absence was confirmed.
type Entry struct {
	// URL of the cover image.
	URL string

	// NotFound is set when the cover was searched for and is missing
	// from all providers.
	NotFound bool

	// CachedAt is the time the entry was last resolved.
	CachedAt time.Time
}

// ResolveFunc re-resolves one cover from the upstream providers. Returning
// an empty URL with a nil error means the cover is confirmed missing. A
// non-nil error means the resolution failed transiently and nothing is
// remembered.
type ResolveFunc func(ctx context.Context) (string, error)

// Storage is the part of the settings store the cache needs.
type Storage interface {
	GetImage(ctx context.Context, key string) (settings.ImageRow, error)
	GetImages(ctx context.Context, keys []string) (map[string]settings.ImageRow, error)
	SetImage(ctx context.Context, key, url string) error
}

// Cache implements the cover cache policy on top of a persistent Storage.
type Cache struct {
	store Storage
	ctx   context.Context

	staleAfter time.Duration
	retryDelay time.Duration

	mu         sync.Mutex
	inFlight   map[string]struct{}
	background sync.WaitGroup
}

// NewCache returns a cover cache over this storage. The context bounds the
// lifetime of background revalidations which have not started their upstream
// call yet.
func NewCache(ctx context.Context, store Storage) *Cache {
	return &Cache{
		store:      store,
		ctx:        ctx,
		staleAfter: notFoundCacheTTL,
		retryDelay: notFoundRetryDelay,
		inFlight:   map[string]struct{}{},
	}
}

// Lookup returns the remembered entry for this key. The second return value
// is false on a cache miss, in which case the caller resolves the cover
// itself and stores the outcome. Storage errors count as misses.
func (c *Cache) Lookup(ctx context.Context, key string) (Entry, bool) {
	row, err := c.store.GetImage(ctx, key)
	if err == settings.ErrNotFound {
		metrics.CoverCacheLookups.WithLabelValues("miss").Inc()
		return Entry{}, false
	} else if err != nil {
		log.Printf("Error reading cover cache row %s: %s", key, err)
		metrics.CoverCacheLookups.WithLabelValues("miss").Inc()
		return Entry{}, false
	}

	metrics.CoverCacheLookups.WithLabelValues("hit").Inc()
	return entryFromRow(row), true
}

// LookupMany returns the remembered entries for the subset of keys which
// have one. Storage errors count as a miss for all keys.
func (c *Cache) LookupMany(ctx context.Context, keys []string) map[string]Entry {
	rows, err := c.store.GetImages(ctx, keys)
	if err != nil {
		log.Printf("Error reading cover cache rows: %s", err)
		return nil
	}

	entries := make(map[string]Entry, len(rows))
	for key, row := range rows {
		entries[key] = entryFromRow(row)
	}

	metrics.CoverCacheLookups.WithLabelValues("hit").Add(float64(len(entries)))
	metrics.CoverCacheLookups.WithLabelValues("miss").Add(float64(len(keys) - len(entries)))
	return entries
}

// Store remembers a resolved cover URL for this key.
func (c *Cache) Store(ctx context.Context, key, url string) error {
	return c.store.SetImage(ctx, key, url)
}

// StoreNotFound remembers that the cover for this key is confirmed missing.
func (c *Cache) StoreNotFound(ctx context.Context, key string) error {
	return c.store.SetImage(ctx, key, "")
}

// RevalidateIfStale kicks off one background re-resolution for the entry if
// it is older than the staleness window. It never blocks the caller and it
// makes sure at most one re-resolution is running per key. Stale not-found
// entries are retried only after a cool-down delay so that consistently
// missing covers do not hammer the providers.
func (c *Cache) RevalidateIfStale(key string, entry Entry, resolve ResolveFunc) {
	if time.Since(entry.CachedAt) <= c.staleAfter {
		return
	}

	c.mu.Lock()
	if _, running := c.inFlight[key]; running {
		c.mu.Unlock()
		return
	}
	c.inFlight[key] = struct{}{}
	c.background.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.background.Done()
		defer func() {
			c.mu.Lock()
			delete(c.inFlight, key)
			c.mu.Unlock()
		}()

		if entry.NotFound && !c.coolDown() {
			return
		}

		c.resolveAndStore(key, resolve)
	}()
}

// coolDown waits out the not-found retry delay. It returns false when the
// cache context was cancelled while waiting.
func (c *Cache) coolDown() bool {
	select {
	case <-time.After(c.retryDelay):
		return true
	case <-c.ctx.Done():
		return false
	}
}

func (c *Cache) resolveAndStore(key string, resolve ResolveFunc) {
	url, err := resolve(c.ctx)
	if err != nil {
		log.Printf("Error revalidating cover %s: %s", key, err)
		return
	}

	if err := c.store.SetImage(c.ctx, key, url); err != nil {
		log.Printf("Error storing revalidated cover %s: %s", key, err)
	}
}

func entryFromRow(row settings.ImageRow) Entry {
	return Entry{
		URL:      row.URL,
		NotFound: row.URL == "",
		CachedAt: row.UpdatedAt,
	}
}
