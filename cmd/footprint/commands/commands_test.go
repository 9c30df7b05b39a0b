package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/footprint/cmd/footprint/commands"
	"go.trai.ch/footprint/internal/app"
	"go.trai.ch/footprint/internal/build"
	"go.trai.ch/footprint/internal/core/domain"
)

type mockApp struct {
	scanFunc       func(ctx context.Context, paths []string, opts app.ScanOptions) ([]domain.ProjectReport, error)
	statsFunc      func(configPath string) (domain.CacheStats, error)
	cleanupFunc    func(configPath string) (int, error)
	statusFunc     func(path, configPath string) (domain.CacheStatus, error)
	invalidateFunc func(path, configPath string) error
}

func (m *mockApp) Scan(ctx context.Context, paths []string, opts app.ScanOptions) ([]domain.ProjectReport, error) {
	if m.scanFunc != nil {
		return m.scanFunc(ctx, paths, opts)
	}
	return nil, nil
}

func (m *mockApp) CacheStats(configPath string) (domain.CacheStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(configPath)
	}
	return domain.CacheStats{}, nil
}

func (m *mockApp) CleanupCache(configPath string) (int, error) {
	if m.cleanupFunc != nil {
		return m.cleanupFunc(configPath)
	}
	return 0, nil
}

func (m *mockApp) CacheStatus(path, configPath string) (domain.CacheStatus, error) {
	if m.statusFunc != nil {
		return m.statusFunc(path, configPath)
	}
	return domain.CacheStatusMissing, nil
}

func (m *mockApp) InvalidateProject(path, configPath string) error {
	if m.invalidateFunc != nil {
		return m.invalidateFunc(path, configPath)
	}
	return nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Scan(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ScanOptions
		var capturedPaths []string

		mock := &mockApp{
			scanFunc: func(_ context.Context, paths []string, opts app.ScanOptions) ([]domain.ProjectReport, error) {
				capturedPaths = paths
				capturedOpts = opts
				return nil, nil
			},
		}

		_, err := execute(t, mock, "scan", "/proj", "--no-cache", "--config", "custom.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"/proj"}, capturedPaths)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, "custom.yaml", capturedOpts.ConfigPath)
	})

	t.Run("prints sizes with cache marker", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ []string, _ app.ScanOptions) ([]domain.ProjectReport, error) {
				return []domain.ProjectReport{
					{
						Path:      "/proj",
						SizeInfo:  domain.NewSizeInfo(100, 900, 1, 1),
						FromCache: true,
					},
				}, nil
			},
		}

		out, err := execute(t, mock, "scan", "/proj")
		require.NoError(t, err)
		assert.Contains(t, out, "/proj (cached)")
		assert.Contains(t, out, "1000 B")
		assert.Contains(t, out, "2 files")
	})

	t.Run("reports per-project failures without aborting", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ []string, _ app.ScanOptions) ([]domain.ProjectReport, error) {
				return []domain.ProjectReport{
					{Path: "/good", SizeInfo: domain.NewSizeInfo(1, 0, 1, 0)},
					{Path: "/bad", Err: domain.ErrProjectNotAccessible},
				}, nil
			},
		}

		out, err := execute(t, mock, "scan", "/good", "/bad")
		require.NoError(t, err)
		assert.Contains(t, out, "/good")
		assert.Contains(t, out, "1 of 2 projects failed")
	})

	t.Run("returns error on scan failure", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ []string, _ app.ScanOptions) ([]domain.ProjectReport, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "scan", "/proj")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_CacheStats(t *testing.T) {
	mock := &mockApp{
		statsFunc: func(string) (domain.CacheStats, error) {
			return domain.CacheStats{
				TotalEntries:        3,
				ExpiredEntries:      1,
				TotalCachedSize:     2048,
				TotalCodeSize:       1024,
				TotalDependencySize: 1024,
			}, nil
		},
	}

	out, err := execute(t, mock, "cache", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "3 (1 expired)")
	assert.Contains(t, out, "2.0 KiB")
}

func TestCommands_CacheClean(t *testing.T) {
	mock := &mockApp{
		cleanupFunc: func(string) (int, error) { return 5, nil },
	}

	out, err := execute(t, mock, "cache", "clean")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 5 expired entries")
}

func TestCommands_CacheStatus(t *testing.T) {
	mock := &mockApp{
		statusFunc: func(path, _ string) (domain.CacheStatus, error) {
			assert.Equal(t, "/proj", path)
			return domain.CacheStatusFresh, nil
		},
	}

	out, err := execute(t, mock, "cache", "status", "/proj")
	require.NoError(t, err)
	assert.Contains(t, out, "/proj: fresh")
}

func TestCommands_CacheInvalidate(t *testing.T) {
	invalidated := false
	mock := &mockApp{
		invalidateFunc: func(path, _ string) error {
			invalidated = true
			assert.Equal(t, "/proj", path)
			return nil
		},
	}

	out, err := execute(t, mock, "cache", "invalidate", "/proj")
	require.NoError(t, err)
	assert.True(t, invalidated)
	assert.Contains(t, out, "invalidated /proj")
}

func TestCommands_CacheDisabledError(t *testing.T) {
	mock := &mockApp{
		statsFunc: func(string) (domain.CacheStats, error) {
			return domain.CacheStats{}, domain.ErrCacheDisabled
		},
	}

	_, err := execute(t, mock, "cache", "stats")
	require.ErrorIs(t, err, domain.ErrCacheDisabled)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "footprint version "+build.Version)
}
