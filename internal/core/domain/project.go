package domain

import (
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

// CanonicalPath resolves a project path to its canonical absolute form:
// absolute, cleaned, with symlinks resolved. Two equal canonical paths
// identify the same project; the result is the cache key.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(ErrProjectNotAccessible, "path", abs)
	}

	return filepath.Clean(resolved), nil
}

// ProjectProfile describes what the ecosystem detector learned about a
// project root before sizing it.
type ProjectProfile struct {
	// IsGitRepo reports whether the root carries version-control metadata.
	IsGitRepo bool

	// DependencyDirs is the set of directory names that hold fetched or
	// generated dependencies for the detected ecosystems, counted in the
	// dependency bucket instead of the code bucket.
	DependencyDirs map[string]struct{}
}

// ProjectReport is the outcome of sizing one project during a batch scan.
// Err is set when the calculation failed; the rest of the batch is
// unaffected.
type ProjectReport struct {
	Path      string
	SizeInfo  SizeInfo
	FromCache bool
	Duration  time.Duration
	Err       error
}
