package ports

import (
	"context"

	"go.trai.ch/footprint/internal/core/domain"
)

// Detector inspects a project root for ecosystem markers.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type Detector interface {
	// Detect returns the project's profile: whether it is under version
	// control and which directory names hold its dependencies.
	Detect(root string) domain.ProjectProfile

	// IsProjectRoot reports whether the directory carries VCS metadata
	// or an ecosystem marker file.
	IsProjectRoot(root string) bool
}

// ProjectFinder discovers project roots under the configured scan paths.
type ProjectFinder interface {
	// Find walks the given roots and returns the project roots it
	// detects, pruning into each detected project. Unreadable
	// directories are skipped.
	Find(ctx context.Context, roots []string, settings domain.Settings) ([]string, error)
}
