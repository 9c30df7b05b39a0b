package ports

import "go.trai.ch/footprint/internal/core/domain"

// SettingsLoader reads the settings file into the plain structure the
// scanner consumes.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path, or the default location when
	// path is empty. A missing file yields the defaults, not an error.
	Load(path string) (domain.Settings, error)
}
