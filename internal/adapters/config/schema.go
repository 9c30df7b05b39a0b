package config

// SettingsFile represents the structure of the settings.yaml file.
// Optional scalars are pointers so an absent key falls back to the
// default instead of the zero value.
type SettingsFile struct {
	ScanPaths []string         `yaml:"scan_paths"`
	Scan      *ScanSectionDTO  `yaml:"scan"`
	Ignore    *IgnoreDTO       `yaml:"ignore"`
	Cache     *CacheSectionDTO `yaml:"cache"`
}

// ScanSectionDTO represents the scan section of the settings file.
type ScanSectionDTO struct {
	MaxDepth        *int  `yaml:"max_depth"`
	ConcurrentScans *int  `yaml:"concurrent_scans"`
	ScanHidden      *bool `yaml:"scan_hidden"`
}

// IgnoreDTO represents the ignore section of the settings file.
type IgnoreDTO struct {
	Directories []string `yaml:"directories"`
	Paths       []string `yaml:"paths"`
	Projects    []string `yaml:"projects"`
}

// CacheSectionDTO represents the cache section of the settings file.
type CacheSectionDTO struct {
	Enabled              *bool `yaml:"enabled"`
	ExpiryHours          *int  `yaml:"expiry_hours"`
	MaxEntries           *int  `yaml:"max_entries"`
	CleanupIntervalHours *int  `yaml:"cleanup_interval_hours"`
}
