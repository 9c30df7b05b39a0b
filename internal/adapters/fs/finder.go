package fs

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.ProjectFinder = (*Finder)(nil)

// Finder discovers project roots under the configured scan paths.
type Finder struct {
	detector ports.Detector
}

// NewFinder creates a Finder that recognizes roots via the given detector.
func NewFinder(detector ports.Detector) *Finder {
	return &Finder{detector: detector}
}

// Find walks each scan path up to the configured depth and collects the
// project roots it detects. Detected projects are not descended into, so
// nested repositories inside a project are attributed to their parent.
// Unreadable subdirectories are skipped; an unreadable scan path is an
// error.
func (f *Finder) Find(ctx context.Context, roots []string, settings domain.Settings) ([]string, error) {
	if len(roots) == 0 {
		return nil, domain.ErrNoScanPaths
	}

	seen := make(map[string]struct{})
	var projects []string

	for _, root := range roots {
		canonical, err := domain.CanonicalPath(root)
		if err != nil {
			return nil, zerr.Wrap(err, "resolving scan path")
		}

		err = filepath.WalkDir(canonical, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				if path == canonical {
					return zerr.With(domain.ErrProjectNotAccessible, "path", canonical)
				}
				return fs.SkipDir
			}
			if !d.IsDir() {
				return nil
			}
			if path != canonical && f.skipDir(path, d.Name(), settings) {
				return fs.SkipDir
			}
			if settings.Scan.MaxDepth > 0 && depth(canonical, path) > settings.Scan.MaxDepth {
				return fs.SkipDir
			}

			if f.detector.IsProjectRoot(path) {
				if !ignoredProject(path, settings.Ignore.Projects) {
					if _, ok := seen[path]; !ok {
						seen[path] = struct{}{}
						projects = append(projects, path)
					}
				}
				if path != canonical {
					return fs.SkipDir
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(projects)
	return projects, nil
}

func (f *Finder) skipDir(path, name string, settings domain.Settings) bool {
	if !settings.Scan.ScanHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, dir := range settings.Ignore.Directories {
		if name == dir {
			return true
		}
	}
	for _, fragment := range settings.Ignore.Paths {
		if fragment != "" && strings.Contains(filepath.ToSlash(path), fragment) {
			return true
		}
	}
	if _, skip := defaultSkipSet[name]; skip {
		return true
	}
	return false
}

func ignoredProject(path string, ignored []string) bool {
	for _, p := range ignored {
		if abs, err := filepath.Abs(p); err == nil && path == abs {
			return true
		}
	}
	return false
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(filepath.ToSlash(rel), "/"))
}

var defaultSkipSet = domain.DefaultSkipDirs()
