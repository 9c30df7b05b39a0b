package fs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.trai.ch/footprint/internal/adapters/fs"
	"go.trai.ch/footprint/internal/core/domain"
)

func TestFinder_FindsProjects(t *testing.T) {
	// tmp/
	//   webapp/package.json
	//   tools/cli/go.mod
	//   docs/guide.md            (no marker, not a project)
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "webapp", "package.json"), "{}")
	writeFile(t, filepath.Join(tmpDir, "tools", "cli", "go.mod"), "module example.com/cli")
	writeFile(t, filepath.Join(tmpDir, "docs", "guide.md"), "# Guide")

	finder := fs.NewFinder(fs.NewDetector())
	projects, err := finder.Find(context.Background(), []string{tmpDir}, domain.DefaultSettings())
	require.NoError(t, err)

	resolved, err := domain.CanonicalPath(tmpDir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(resolved, "tools", "cli"),
		filepath.Join(resolved, "webapp"),
	}, projects)
}

func TestFinder_DoesNotDescendIntoProjects(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "app", "package.json"), "{}")
	writeFile(t, filepath.Join(tmpDir, "app", "embedded", "go.mod"), "module example.com/embedded")

	finder := fs.NewFinder(fs.NewDetector())
	projects, err := finder.Find(context.Background(), []string{tmpDir}, domain.DefaultSettings())
	require.NoError(t, err)

	require.Len(t, projects, 1)
	require.Equal(t, "app", filepath.Base(projects[0]))
}

func TestFinder_HonorsIgnoreSettings(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "keep", "go.mod"), "module example.com/keep")
	writeFile(t, filepath.Join(tmpDir, "scratch", "go.mod"), "module example.com/scratch")
	writeFile(t, filepath.Join(tmpDir, "archive", "old", "go.mod"), "module example.com/old")

	settings := domain.DefaultSettings()
	settings.Ignore.Directories = []string{"scratch"}
	settings.Ignore.Paths = []string{"archive"}

	finder := fs.NewFinder(fs.NewDetector())
	projects, err := finder.Find(context.Background(), []string{tmpDir}, settings)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	require.Equal(t, "keep", filepath.Base(projects[0]))
}

func TestFinder_IgnoredProjectPath(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "app", "go.mod"), "module example.com/app")

	resolved, err := domain.CanonicalPath(tmpDir)
	require.NoError(t, err)

	settings := domain.DefaultSettings()
	settings.Ignore.Projects = []string{filepath.Join(resolved, "app")}

	finder := fs.NewFinder(fs.NewDetector())
	projects, err := finder.Find(context.Background(), []string{tmpDir}, settings)
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestFinder_SkipsHiddenByDefault(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".config", "nvim", "go.mod"), "module example.com/nvim")
	writeFile(t, filepath.Join(tmpDir, "visible", "go.mod"), "module example.com/visible")

	finder := fs.NewFinder(fs.NewDetector())

	projects, err := finder.Find(context.Background(), []string{tmpDir}, domain.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	settings := domain.DefaultSettings()
	settings.Scan.ScanHidden = true
	projects, err = finder.Find(context.Background(), []string{tmpDir}, settings)
	require.NoError(t, err)
	require.Len(t, projects, 2)
}

func TestFinder_NoScanPaths(t *testing.T) {
	finder := fs.NewFinder(fs.NewDetector())
	_, err := finder.Find(context.Background(), nil, domain.DefaultSettings())
	require.ErrorIs(t, err, domain.ErrNoScanPaths)
}

func TestFinder_MissingScanPath(t *testing.T) {
	finder := fs.NewFinder(fs.NewDetector())
	_, err := finder.Find(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, domain.DefaultSettings())
	require.ErrorIs(t, err, domain.ErrProjectNotAccessible)
}
