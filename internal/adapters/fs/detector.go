package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.Detector = (*Detector)(nil)

// ecosystems maps marker files to the directory names that hold the
// ecosystem's fetched or generated dependencies.
var ecosystems = []struct {
	markers []string
	depDirs []string
}{
	{
		markers: []string{"package.json"},
		depDirs: []string{"node_modules", "bower_components"},
	},
	{
		markers: []string{"Cargo.toml"},
		depDirs: []string{"target"},
	},
	{
		markers: []string{"go.mod"},
		depDirs: []string{"vendor"},
	},
	{
		markers: []string{"pyproject.toml", "requirements.txt", "setup.py"},
		depDirs: []string{"venv", "env", ".venv", ".env", "__pycache__", "site-packages", ".pytest_cache"},
	},
	{
		markers: []string{"pom.xml", "build.gradle", "build.gradle.kts"},
		depDirs: []string{"target", "build", ".gradle"},
	},
}

// Detector inspects a project root for ecosystem markers and version
// control metadata.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect builds the project's profile from the files physically present
// at the root. A missing root yields an empty profile; the subsequent
// walk or signature check surfaces the error.
func (d *Detector) Detect(root string) domain.ProjectProfile {
	profile := domain.ProjectProfile{
		DependencyDirs: make(map[string]struct{}),
	}

	if info, err := os.Stat(filepath.Join(root, ".git")); err == nil && info.IsDir() {
		profile.IsGitRepo = true
	}

	for _, eco := range ecosystems {
		if !hasAnyMarker(root, eco.markers) {
			continue
		}
		for _, dir := range eco.depDirs {
			profile.DependencyDirs[dir] = struct{}{}
		}
	}

	return profile
}

// IsProjectRoot reports whether the directory looks like the top of a
// manageable codebase: it carries VCS metadata or an ecosystem marker.
func (d *Detector) IsProjectRoot(root string) bool {
	if info, err := os.Stat(filepath.Join(root, ".git")); err == nil && info.IsDir() {
		return true
	}
	for _, eco := range ecosystems {
		if hasAnyMarker(root, eco.markers) {
			return true
		}
	}
	return false
}

func hasAnyMarker(root string, markers []string) bool {
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(root, m)); err == nil {
			return true
		}
	}
	return false
}
