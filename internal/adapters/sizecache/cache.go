package sizecache

import (
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.SizeCache = (*Cache)(nil)

// Cache is the in-memory size cache backed by a CacheStore. All reads
// and writes go through the entry map under a read-write lock; disk
// persistence happens outside that lock under a separate persist lock,
// so a slow disk never blocks lookups.
type Cache struct {
	config domain.CacheConfig
	store  ports.CacheStore
	log    ports.Logger
	now    func() time.Time

	mu    sync.RWMutex
	doc   *domain.CacheDocument
	dirty bool

	persistMu sync.Mutex
}

// New loads the persisted document and returns a ready cache. A document
// that cannot be loaded or reset fails construction; callers are
// expected to degrade to uncached operation rather than abort.
func New(config domain.CacheConfig, store ports.CacheStore, log ports.Logger) (*Cache, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheInitFailed.Error())
	}
	return &Cache{
		config: config,
		store:  store,
		log:    log,
		now:    time.Now,
		doc:    doc,
	}, nil
}

// Key derives the entry key for a canonical project path.
func Key(path string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(path))
}

// Get returns the entry for the path. An expired entry is removed on the
// spot and reported as absent.
func (c *Cache) Get(path string) (domain.CacheEntry, bool) {
	key := Key(path)
	now := c.now()

	c.mu.Lock()
	entry, ok := c.doc.Entries[key]
	if !ok {
		c.mu.Unlock()
		return domain.CacheEntry{}, false
	}
	if entry.Expired(now, c.config.ExpiryDuration) {
		delete(c.doc.Entries, key)
		c.doc.UpdatedAt = now
		c.dirty = true
		c.mu.Unlock()
		c.persist()
		return domain.CacheEntry{}, false
	}
	c.mu.Unlock()
	return entry, true
}

// Peek returns the entry without removing it, even when expired.
func (c *Cache) Peek(path string) (domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.doc.Entries[Key(path)]
	return entry, ok
}

// Put inserts or replaces the entry for the path and enforces the
// capacity bound, evicting oldest entries first.
func (c *Cache) Put(path string, info domain.SizeInfo, signature time.Time) {
	now := c.now()

	c.mu.Lock()
	c.doc.Entries[Key(path)] = domain.CacheEntry{
		Path:      path,
		SizeInfo:  info,
		Signature: signature,
		CachedAt:  now,
	}
	c.evictLocked()
	c.doc.UpdatedAt = now
	c.dirty = true
	c.mu.Unlock()

	c.persist()
}

// evictLocked drops entries until the capacity bound holds. The oldest
// entry by CachedAt goes first; on equal timestamps the lexicographically
// smaller path goes first.
func (c *Cache) evictLocked() {
	if c.config.MaxEntries <= 0 {
		return
	}
	for len(c.doc.Entries) > c.config.MaxEntries {
		var victimKey string
		var victim domain.CacheEntry
		first := true
		for key, entry := range c.doc.Entries {
			if first || olderThan(entry, victim) {
				victimKey, victim = key, entry
				first = false
			}
		}
		delete(c.doc.Entries, victimKey)
	}
}

func olderThan(a, b domain.CacheEntry) bool {
	if !a.CachedAt.Equal(b.CachedAt) {
		return a.CachedAt.Before(b.CachedAt)
	}
	return a.Path < b.Path
}

// Invalidate removes the entry for the path unconditionally.
func (c *Cache) Invalidate(path string) {
	key := Key(path)

	c.mu.Lock()
	if _, ok := c.doc.Entries[key]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.doc.Entries, key)
	c.doc.UpdatedAt = c.now()
	c.dirty = true
	c.mu.Unlock()

	c.persist()
}

// CleanupExpired removes every expired entry in one pass and records the
// cleanup time, then persists once.
func (c *Cache) CleanupExpired() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for key, entry := range c.doc.Entries {
		if entry.Expired(now, c.config.ExpiryDuration) {
			delete(c.doc.Entries, key)
			removed++
		}
	}
	c.doc.LastCleanup = now
	c.doc.UpdatedAt = now
	c.dirty = true
	c.mu.Unlock()

	c.persist()
	return removed
}

// LastCleanup reports when CleanupExpired last completed.
func (c *Cache) LastCleanup() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc.LastCleanup
}

// TTL is the configured entry lifetime.
func (c *Cache) TTL() time.Duration {
	return c.config.ExpiryDuration
}

// Stats derives a read-only summary of the cache contents.
func (c *Cache) Stats() domain.CacheStats {
	now := c.now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := domain.CacheStats{TotalEntries: len(c.doc.Entries)}
	for _, entry := range c.doc.Entries {
		if entry.Expired(now, c.config.ExpiryDuration) {
			stats.ExpiredEntries++
		}
		stats.TotalCachedSize += entry.SizeInfo.TotalSize
		stats.TotalCodeSize += entry.SizeInfo.CodeSize
		stats.TotalDependencySize += entry.SizeInfo.DependencySize
	}
	return stats
}

// persist snapshots the document under the map lock and writes it to the
// store outside of it. Failures are soft: the dirty flag stays set and
// the next mutating call retries.
func (c *Cache) persist() {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return
	}
	snapshot := &domain.CacheDocument{
		Version:     c.doc.Version,
		CreatedAt:   c.doc.CreatedAt,
		UpdatedAt:   c.doc.UpdatedAt,
		LastCleanup: c.doc.LastCleanup,
		Entries:     make(map[string]domain.CacheEntry, len(c.doc.Entries)),
	}
	for key, entry := range c.doc.Entries {
		snapshot.Entries[key] = entry
	}
	c.dirty = false
	c.mu.Unlock()

	if err := c.store.Save(snapshot); err != nil {
		c.mu.Lock()
		c.dirty = true
		c.mu.Unlock()
		c.log.Warn(domain.ErrCachePersistFailed.Error(), "error", err)
	}
}
