// Package config provides the settings loader for footprint.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.SettingsLoader = (*FileSettingsLoader)(nil)

// FileSettingsLoader implements ports.SettingsLoader using a YAML file.
type FileSettingsLoader struct {
	log ports.Logger
}

// NewLoader creates a new FileSettingsLoader.
func NewLoader(log ports.Logger) *FileSettingsLoader {
	return &FileSettingsLoader{log: log}
}

// DefaultSettingsPath returns the settings file location under the user
// configuration directory.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(dir, "footprint", "settings.yaml"), nil
}

// Load reads the settings file at the given path, or the default
// location when the path is empty. A missing file yields the defaults;
// present keys override them, absent keys keep them.
func (l *FileSettingsLoader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if path == "" {
		var err error
		path, err = DefaultSettingsPath()
		if err != nil {
			return settings, err
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Debug("no settings file found, using defaults", "path", path)
			return settings, nil
		}
		return settings, zerr.With(zerr.With(domain.ErrSettingsReadFailed, "path", path), "error", err.Error())
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(zerr.With(domain.ErrSettingsParseFailed, "path", path), "error", err.Error())
	}

	apply(&settings, file)
	return settings, nil
}

func apply(settings *domain.Settings, file SettingsFile) {
	if len(file.ScanPaths) > 0 {
		settings.ScanPaths = file.ScanPaths
	}
	if file.Scan != nil {
		if file.Scan.MaxDepth != nil {
			settings.Scan.MaxDepth = *file.Scan.MaxDepth
		}
		if file.Scan.ConcurrentScans != nil {
			settings.Scan.ConcurrentScans = *file.Scan.ConcurrentScans
		}
		if file.Scan.ScanHidden != nil {
			settings.Scan.ScanHidden = *file.Scan.ScanHidden
		}
	}
	if file.Ignore != nil {
		settings.Ignore.Directories = file.Ignore.Directories
		settings.Ignore.Paths = file.Ignore.Paths
		settings.Ignore.Projects = file.Ignore.Projects
	}
	if file.Cache != nil {
		if file.Cache.Enabled != nil {
			settings.Cache.Enabled = *file.Cache.Enabled
		}
		if file.Cache.ExpiryHours != nil {
			settings.Cache.ExpiryHours = *file.Cache.ExpiryHours
		}
		if file.Cache.MaxEntries != nil {
			settings.Cache.MaxEntries = *file.Cache.MaxEntries
		}
		if file.Cache.CleanupIntervalHours != nil {
			settings.Cache.CleanupIntervalHours = *file.Cache.CleanupIntervalHours
		}
	}
}
