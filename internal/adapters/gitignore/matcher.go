// Package gitignore builds ignore matchers from a repository's rule
// files using go-git's gitignore implementation.
package gitignore

import (
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.trai.ch/zerr"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.MatcherBuilder = (*Builder)(nil)

// Builder constructs ignore matchers for version-controlled project
// roots.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build reads every .gitignore under root plus .git/info/exclude and
// returns a matcher over the combined rule set, honoring negations and
// per-directory scoping. On a read failure it returns a matcher over
// the rules parsed so far together with the error, so the caller can
// degrade to partial rules instead of aborting the scan.
func (b *Builder) Build(root string) (ports.IgnoreMatcher, error) {
	patterns, err := gitignore.ReadPatterns(osfs.New(root), nil)
	matcher := gitignore.NewMatcher(patterns)
	if err != nil {
		return matcher, zerr.With(zerr.With(domain.ErrIgnoreRulesUnreadable, "root", root), "error", err.Error())
	}
	return matcher, nil
}
