package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectNotAccessible is returned when a project root cannot be
	// resolved or stat'd. Hard for the single calculation it occurred in.
	ErrProjectNotAccessible = zerr.New("project path is not accessible")

	// ErrNotADirectory is returned when a scan target is not a directory.
	ErrNotADirectory = zerr.New("path is not a directory")

	// ErrNoScanPaths is returned when a scan is requested with no roots,
	// neither as arguments nor in the settings file.
	ErrNoScanPaths = zerr.New("no scan paths specified")

	// ErrIgnoreRulesUnreadable is returned when a project's ignore-rule
	// files exist but cannot be read or parsed. Soft: the caller falls
	// back to the implicit rules only.
	ErrIgnoreRulesUnreadable = zerr.New("failed to read ignore rules")

	// ErrCacheInitFailed is returned when the persisted cache cannot be
	// loaded or created at construction. Callers degrade to uncached
	// operation instead of failing the calculation.
	ErrCacheInitFailed = zerr.New("failed to initialize size cache")

	// ErrCacheStoreCorrupt is returned when the persisted cache document
	// is unreadable and resetting it also failed.
	ErrCacheStoreCorrupt = zerr.New("cache store is corrupt and could not be reset")

	// ErrCachePersistFailed is returned when writing the cache document
	// fails after construction. Soft: logged and retried on the next
	// mutating call.
	ErrCachePersistFailed = zerr.New("failed to persist size cache")

	// ErrCacheDisabled is returned by cache maintenance operations when
	// the calculator runs without a cache.
	ErrCacheDisabled = zerr.New("size cache is disabled")

	// ErrSettingsReadFailed is returned when the settings file exists but
	// cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file is not
	// valid YAML.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
)
