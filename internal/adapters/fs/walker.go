// Package fs provides the filesystem adapters: tree walking, ecosystem
// detection and project discovery.
package fs

import (
	"context"
	iofs "io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.Walker = (*Walker)(nil)

// Walker traverses a project tree and yields file entries. It never
// follows symlinks, prunes ignored directories without opening them, and
// treats unreadable entries as soft errors.
type Walker struct {
	skipDirs map[string]struct{}
}

// NewWalker creates a new Walker using the default skip-directory
// denylist for projects without ignore rules.
func NewWalker() *Walker {
	return &Walker{skipDirs: domain.DefaultSkipDirs()}
}

// Walk returns a lazy sequence of files under root along with the stats
// record populated during iteration. The sequence is finite and not
// restartable; a fresh call re-walks from scratch.
func (w *Walker) Walk(ctx context.Context, root string, opts ports.WalkOptions) (iter.Seq[domain.FileEntry], *domain.WalkStats) {
	stats := &domain.WalkStats{}

	seq := func(yield func(domain.FileEntry) bool) {
		_ = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return filepath.SkipAll
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				stats.SkippedErrors++
				return nil
			}
			rel = filepath.ToSlash(rel)

			if err != nil {
				if rel == "." {
					stats.RootErr = err
					return filepath.SkipAll
				}
				stats.SkippedErrors++
				return nil
			}

			if rel == "." {
				return nil
			}

			segments := strings.Split(rel, "/")

			if d.IsDir() {
				if opts.MaxDepth > 0 && len(segments) > opts.MaxDepth {
					return filepath.SkipDir
				}
				if w.shouldPruneDir(segments, opts) {
					return filepath.SkipDir
				}
				return nil
			}

			// Symlinks and other non-regular entries carry no content
			// bytes of their own.
			if !d.Type().IsRegular() {
				return nil
			}

			if opts.Matcher != nil && !isDependencyPath(segments, opts.DependencyDirs) &&
				opts.Matcher.Match(segments, false) {
				return nil
			}

			info, statErr := d.Info()
			if statErr != nil {
				stats.SkippedErrors++
				return nil
			}

			entry := domain.FileEntry{
				RelPath:    rel,
				Size:       uint64(info.Size()),
				ModTime:    info.ModTime(),
				Dependency: isDependencyPath(segments, opts.DependencyDirs),
			}

			if !yield(entry) {
				return filepath.SkipAll
			}
			return nil
		})
	}

	return seq, stats
}

// shouldPruneDir decides whether a directory subtree is skipped entirely.
func (w *Walker) shouldPruneDir(segments []string, opts ports.WalkOptions) bool {
	name := segments[len(segments)-1]

	// VCS metadata is always ignored, rule files notwithstanding.
	if name == ".git" || name == ".jj" {
		return true
	}

	// Dependency directories are counted (in their own bucket) even when
	// ignore rules or the denylist would exclude them.
	if isDependencyPath(segments, opts.DependencyDirs) {
		return false
	}

	if opts.Matcher != nil {
		return opts.Matcher.Match(segments, true)
	}

	_, skip := w.skipDirs[name]
	return skip
}

// isDependencyPath reports whether any path segment names a
// dependency-classified directory.
func isDependencyPath(segments []string, depDirs map[string]struct{}) bool {
	if len(depDirs) == 0 {
		return false
	}
	for _, seg := range segments {
		if _, ok := depDirs[seg]; ok {
			return true
		}
	}
	return false
}
