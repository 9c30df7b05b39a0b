package domain

import "time"

// Settings is the plain configuration structure consumed by the scanner.
// It is produced by the settings loader; the scanner itself never merges
// or persists configuration.
type Settings struct {
	// ScanPaths are the root directories searched for projects.
	ScanPaths []string

	Scan   ScanSettings
	Ignore IgnoreSettings
	Cache  CacheSettings
}

// ScanSettings bounds project discovery and sizing.
type ScanSettings struct {
	// MaxDepth limits discovery depth below each scan path. 0 means
	// unlimited.
	MaxDepth int

	// ConcurrentScans caps the number of projects sized at the same time.
	ConcurrentScans int

	// ScanHidden includes hidden directories during discovery.
	ScanHidden bool
}

// IgnoreSettings lists locations discovery skips outright.
type IgnoreSettings struct {
	// Directories are directory names never descended into.
	Directories []string

	// Paths are path fragments that exclude any root containing them.
	Paths []string

	// Projects are fully resolved project paths excluded from scans.
	Projects []string
}

// CacheSettings is the cache section of the settings file, translated
// 1:1 into a CacheConfig.
type CacheSettings struct {
	Enabled              bool
	ExpiryHours          int
	MaxEntries           int
	CleanupIntervalHours int
}

// CacheConfig converts the settings representation into the cache's
// construction parameters.
func (s CacheSettings) CacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:         s.Enabled,
		ExpiryDuration:  time.Duration(s.ExpiryHours) * time.Hour,
		MaxEntries:      s.MaxEntries,
		CleanupInterval: time.Duration(s.CleanupIntervalHours) * time.Hour,
	}
}

// DefaultSettings returns the configuration used when no settings file
// exists.
func DefaultSettings() Settings {
	return Settings{
		ScanPaths: nil,
		Scan: ScanSettings{
			MaxDepth:        10,
			ConcurrentScans: 4,
			ScanHidden:      false,
		},
		Ignore: IgnoreSettings{},
		Cache: CacheSettings{
			Enabled:              true,
			ExpiryHours:          24,
			MaxEntries:           1000,
			CleanupIntervalHours: 1,
		},
	}
}

// DefaultSkipDirs is the fixed denylist applied when a project is not
// under version control: dependency and build-output trees that are
// never worth descending into, plus VCS metadata and editor state.
func DefaultSkipDirs() map[string]struct{} {
	names := []string{
		"node_modules", "bower_components",
		"target", "build", "dist", "out", "bin", "obj",
		"vendor",
		"__pycache__", "site-packages", ".pytest_cache",
		"venv", "env", ".venv", ".env",
		".git", ".svn", ".hg", ".jj",
		".gradle",
		".vscode", ".idea", ".vs",
	}

	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// ManifestFiles are the ecosystem manifests whose modification times feed
// the quick signature check. Touching one of these (or the root itself,
// or its ignore rules) is enough to invalidate a cached size.
var ManifestFiles = []string{
	"package.json",
	"Cargo.toml",
	"go.mod",
	"pyproject.toml",
	"requirements.txt",
	"setup.py",
	"pom.xml",
	"build.gradle",
	"build.gradle.kts",
}
