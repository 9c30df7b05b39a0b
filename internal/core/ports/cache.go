package ports

import (
	"time"

	"go.trai.ch/footprint/internal/core/domain"
)

// SizeCache stores computed size results keyed by canonical project path,
// validated by filesystem signature, bounded by TTL and capacity.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type SizeCache interface {
	// Get returns the entry for the path, or false if absent or
	// TTL-expired. Expired entries are removed lazily on read.
	Get(path string) (domain.CacheEntry, bool)

	// Peek returns the entry without side effects, even when expired.
	// Used for status introspection only.
	Peek(path string) (domain.CacheEntry, bool)

	// Put inserts or replaces the entry for the path, enforces the
	// capacity bound by evicting oldest entries, and persists. Persist
	// failures are soft: logged and retried on the next mutating call.
	Put(path string, info domain.SizeInfo, signature time.Time)

	// Invalidate removes a single entry unconditionally.
	Invalidate(path string)

	// CleanupExpired removes all TTL-expired entries in one pass and
	// persists once. Returns the number of entries removed. It is driven
	// externally, never self-scheduled.
	CleanupExpired() int

	// LastCleanup reports when CleanupExpired last completed, so the
	// caller can honor the configured cleanup interval.
	LastCleanup() time.Time

	// TTL is the configured entry lifetime.
	TTL() time.Duration

	// Stats derives a read-only view of the cache contents.
	Stats() domain.CacheStats
}

// CacheStore persists the cache as one serialized document. It holds no
// semantic state; the size cache is its only consumer.
type CacheStore interface {
	// Load reads the persisted document, returning an empty one when no
	// document exists yet. A corrupt or version-mismatched document is
	// reset; if the reset cannot be persisted, Load fails and cache
	// construction fails with it.
	Load() (*domain.CacheDocument, error)

	// Save atomically replaces the persisted document.
	Save(doc *domain.CacheDocument) error
}
