// Package sizer implements the project size calculation engine: ignore
// aware traversal, code and dependency bucketing, and the cached fast
// path guarded by the filesystem signature check.
package sizer

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

// Calculator computes the on-disk footprint of single projects. It is
// safe for concurrent use; the cache it may hold carries its own locking.
type Calculator struct {
	walker   ports.Walker
	detector ports.Detector
	builder  ports.MatcherBuilder
	log      ports.Logger
	cache    ports.SizeCache
	maxDepth int
}

// New creates a Calculator without a cache; every calculation walks.
func New(walker ports.Walker, detector ports.Detector, builder ports.MatcherBuilder, log ports.Logger) *Calculator {
	return &Calculator{
		walker:   walker,
		detector: detector,
		builder:  builder,
		log:      log,
	}
}

// WithCache attaches a size cache. A nil cache leaves the calculator
// uncached.
func (c *Calculator) WithCache(cache ports.SizeCache) *Calculator {
	c.cache = cache
	return c
}

// WithMaxDepth bounds traversal depth below each project root.
func (c *Calculator) WithMaxDepth(depth int) *Calculator {
	c.maxDepth = depth
	return c
}

// CalculateProjectSize sizes the project at path. It serves from the
// cache when a valid entry exists and the quick signature check shows no
// change on disk; otherwise it walks the tree, stores the fresh result
// and returns it. The second return reports whether the result came from
// the cache.
func (c *Calculator) CalculateProjectSize(ctx context.Context, path string) (domain.SizeInfo, bool, error) {
	canonical, err := domain.CanonicalPath(path)
	if err != nil {
		return domain.SizeInfo{}, false, err
	}

	fi, err := os.Stat(canonical)
	if err != nil {
		return domain.SizeInfo{}, false, zerr.With(domain.ErrProjectNotAccessible, "path", canonical)
	}
	if !fi.IsDir() {
		return domain.SizeInfo{}, false, zerr.With(domain.ErrNotADirectory, "path", canonical)
	}

	profile := c.detector.Detect(canonical)
	quickSig := c.quickSignature(canonical, profile)

	if c.cache != nil {
		if entry, ok := c.cache.Get(canonical); ok && !quickSig.After(entry.Signature) {
			c.log.Debug("cache hit", "path", canonical)
			return entry.SizeInfo, true, nil
		}
	}

	info, signature, err := c.walk(ctx, canonical, profile)
	if err != nil {
		return domain.SizeInfo{}, false, err
	}
	if err := ctx.Err(); err != nil {
		return domain.SizeInfo{}, false, err
	}

	if quickSig.After(signature) {
		signature = quickSig
	}
	if c.cache != nil {
		c.cache.Put(canonical, info, signature)
	}
	return info, false, nil
}

func (c *Calculator) walk(ctx context.Context, root string, profile domain.ProjectProfile) (domain.SizeInfo, time.Time, error) {
	var matcher ports.IgnoreMatcher
	if profile.IsGitRepo {
		var err error
		matcher, err = c.builder.Build(root)
		if err != nil {
			// Partial or implicit rules still classify; the scan goes on.
			c.log.Warn("failed to read ignore rules, using partial rules", "path", root, "error", err)
		}
	}

	seq, stats := c.walker.Walk(ctx, root, ports.WalkOptions{
		Matcher:        matcher,
		DependencyDirs: profile.DependencyDirs,
		MaxDepth:       c.maxDepth,
	})

	var codeSize, depSize uint64
	var codeFiles, depFiles int
	var signature time.Time

	for entry := range seq {
		if entry.Dependency {
			depSize += entry.Size
			depFiles++
		} else {
			codeSize += entry.Size
			codeFiles++
		}
		if entry.ModTime.After(signature) {
			signature = entry.ModTime
		}
	}

	if stats.RootErr != nil {
		return domain.SizeInfo{}, time.Time{}, zerr.With(zerr.With(domain.ErrProjectNotAccessible, "path", root), "error", stats.RootErr.Error())
	}
	if stats.SkippedErrors > 0 {
		c.log.Debug("skipped unreadable entries", "path", root, "count", stats.SkippedErrors)
	}

	return domain.NewSizeInfo(codeSize, depSize, codeFiles, depFiles), signature, nil
}

// quickSignature derives the cheap change indicator for a project: the
// latest modification time across the root directory itself, its ignore
// rule files and any ecosystem manifests present. Touching one of these
// invalidates a cached entry without a full walk.
func (c *Calculator) quickSignature(root string, profile domain.ProjectProfile) time.Time {
	var sig time.Time

	observe := func(path string) {
		if fi, err := os.Stat(path); err == nil && fi.ModTime().After(sig) {
			sig = fi.ModTime()
		}
	}

	observe(root)
	if profile.IsGitRepo {
		observe(filepath.Join(root, ".gitignore"))
		observe(filepath.Join(root, ".git", "info", "exclude"))
	}
	for _, manifest := range domain.ManifestFiles {
		observe(filepath.Join(root, manifest))
	}
	return sig
}

// CacheStatus classifies the project's standing in the cache without
// mutating it.
func (c *Calculator) CacheStatus(path string) (domain.CacheStatus, error) {
	if c.cache == nil {
		return domain.CacheStatusDisabled, nil
	}

	canonical, err := domain.CanonicalPath(path)
	if err != nil {
		return "", err
	}

	entry, ok := c.cache.Peek(canonical)
	if !ok {
		return domain.CacheStatusMissing, nil
	}
	if entry.Expired(time.Now(), c.cache.TTL()) {
		return domain.CacheStatusStale, nil
	}

	profile := c.detector.Detect(canonical)
	if c.quickSignature(canonical, profile).After(entry.Signature) {
		return domain.CacheStatusStale, nil
	}
	return domain.CacheStatusFresh, nil
}

// InvalidateProject drops the project's cache entry.
func (c *Calculator) InvalidateProject(path string) error {
	if c.cache == nil {
		return domain.ErrCacheDisabled
	}
	canonical, err := domain.CanonicalPath(path)
	if err != nil {
		return err
	}
	c.cache.Invalidate(canonical)
	return nil
}

// CacheStats summarizes the attached cache.
func (c *Calculator) CacheStats() (domain.CacheStats, error) {
	if c.cache == nil {
		return domain.CacheStats{}, domain.ErrCacheDisabled
	}
	return c.cache.Stats(), nil
}

// CleanupCache removes expired entries, returning how many went away.
func (c *Calculator) CleanupCache() (int, error) {
	if c.cache == nil {
		return 0, domain.ErrCacheDisabled
	}
	return c.cache.CleanupExpired(), nil
}

// MaybeCleanupCache runs a cleanup pass only when the configured interval
// has elapsed since the last one. Driven by the caller, never scheduled.
func (c *Calculator) MaybeCleanupCache(interval time.Duration) int {
	if c.cache == nil || interval <= 0 {
		return 0
	}
	if time.Since(c.cache.LastCleanup()) < interval {
		return 0
	}
	removed := c.cache.CleanupExpired()
	if removed > 0 {
		c.log.Debug("cache cleanup removed expired entries", "count", removed)
	}
	return removed
}
