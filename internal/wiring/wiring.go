// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/footprint/internal/adapters/config"
	_ "go.trai.ch/footprint/internal/adapters/fs"
	_ "go.trai.ch/footprint/internal/adapters/gitignore"
	_ "go.trai.ch/footprint/internal/adapters/logger"
	_ "go.trai.ch/footprint/internal/adapters/sizecache"
	// Register app nodes.
	_ "go.trai.ch/footprint/internal/app"
)
