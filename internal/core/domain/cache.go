package domain

import "time"

// CacheDocumentVersion is the schema marker written into the persisted
// cache document. A document with a different version is discarded and
// the cache starts empty.
const CacheDocumentVersion = 1

// CacheConfig configures a size cache instance. It is supplied once at
// construction and never mutated; a new configuration requires a new
// cache.
type CacheConfig struct {
	Enabled         bool
	ExpiryDuration  time.Duration
	MaxEntries      int
	CleanupInterval time.Duration
}

// DefaultCacheConfig mirrors the settings defaults: 24h TTL, 1000
// entries, cleanup once per hour.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:         true,
		ExpiryDuration:  24 * time.Hour,
		MaxEntries:      1000,
		CleanupInterval: time.Hour,
	}
}

// CacheEntry is one cached size result. Entries are owned exclusively by
// the size cache; they are replaced on recomputation, never mutated.
type CacheEntry struct {
	// Path is the canonical project path the entry belongs to.
	Path string `json:"path"`

	// SizeInfo is the cached computation result.
	SizeInfo SizeInfo `json:"size_info"`

	// Signature is the filesystem signature observed when the entry was
	// computed: the maximum modification time across the project's
	// non-ignored files and its quick-check paths. A later quick check
	// that exceeds it marks the project as changed.
	Signature time.Time `json:"signature"`

	// CachedAt is when the entry was created; drives TTL expiry and
	// oldest-first eviction.
	CachedAt time.Time `json:"cached_at"`
}

// Expired reports whether the entry's TTL has lapsed at the given time.
func (e CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CachedAt) > ttl
}

// CacheDocument is the persisted form of the whole cache: the entry
// mapping plus format metadata. The store serializes it as a single
// document and holds no semantic state of its own.
type CacheDocument struct {
	Version     int                   `json:"version"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	LastCleanup time.Time             `json:"last_cleanup,omitzero"`
	Entries     map[string]CacheEntry `json:"entries"`
}

// NewCacheDocument returns an empty document stamped with the current
// schema version.
func NewCacheDocument(now time.Time) *CacheDocument {
	return &CacheDocument{
		Version:   CacheDocumentVersion,
		CreatedAt: now,
		UpdatedAt: now,
		Entries:   make(map[string]CacheEntry),
	}
}

// CacheStats is a derived, read-only view over the cache. It is computed
// on demand and never persisted.
type CacheStats struct {
	TotalEntries        int
	ExpiredEntries      int
	TotalCachedSize     uint64
	TotalCodeSize       uint64
	TotalDependencySize uint64
}

// CacheStatus classifies a single project's standing in the cache.
type CacheStatus string

const (
	// CacheStatusFresh means a valid entry exists and the quick signature
	// check agrees with it.
	CacheStatusFresh CacheStatus = "fresh"
	// CacheStatusStale means an entry exists but is expired or the
	// project changed on disk since it was cached.
	CacheStatusStale CacheStatus = "stale"
	// CacheStatusMissing means no entry exists for the project.
	CacheStatusMissing CacheStatus = "missing"
	// CacheStatusDisabled means the calculator runs without a cache.
	CacheStatusDisabled CacheStatus = "disabled"
)
