// Package ports defines the interfaces between the scanning core and its
// adapters.
package ports

import (
	"context"
	"iter"

	"go.trai.ch/footprint/internal/core/domain"
)

// WalkOptions configures a single walk.
type WalkOptions struct {
	// Matcher classifies paths against the project's ignore rules. When
	// nil the project is not under version control and the walker applies
	// the fixed skip-directory denylist instead.
	Matcher IgnoreMatcher

	// DependencyDirs are directory names whose contents count toward the
	// dependency bucket rather than the code bucket.
	DependencyDirs map[string]struct{}

	// MaxDepth bounds descent below the root. 0 means unlimited.
	MaxDepth int
}

// Walker traverses a project tree and yields its files lazily.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// Walk returns a finite, non-restartable sequence of file entries
	// under root, plus the stats record the walker fills in while the
	// sequence is drained. Ignored directories are pruned, never opened.
	// Unreadable entries are counted in the stats and skipped.
	Walk(ctx context.Context, root string, opts WalkOptions) (iter.Seq[domain.FileEntry], *domain.WalkStats)
}
