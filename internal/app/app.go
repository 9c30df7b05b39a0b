// Package app implements the application layer for footprint.
package app

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/footprint/internal/adapters/sizecache"
	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
	"go.trai.ch/footprint/internal/engine/sizer"
)

// App represents the main application logic.
type App struct {
	loader   ports.SettingsLoader
	walker   ports.Walker
	detector ports.Detector
	builder  ports.MatcherBuilder
	finder   ports.ProjectFinder
	store    ports.CacheStore
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.SettingsLoader,
	walker ports.Walker,
	detector ports.Detector,
	builder ports.MatcherBuilder,
	finder ports.ProjectFinder,
	store ports.CacheStore,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		walker:   walker,
		detector: detector,
		builder:  builder,
		finder:   finder,
		store:    store,
		logger:   log,
	}
}

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	// ConfigPath overrides the default settings file location.
	ConfigPath string

	// NoCache forces a full recomputation and skips the cache entirely.
	NoCache bool
}

// Scan sizes the given project paths. With no paths it falls back to
// discovering projects under the configured scan paths. One failing
// project does not abort the batch; its report carries the error.
func (a *App) Scan(ctx context.Context, paths []string, opts ScanOptions) ([]domain.ProjectReport, error) {
	settings, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	projects := paths
	if len(projects) == 0 {
		projects, err = a.finder.Find(ctx, settings.ScanPaths, settings)
		if err != nil {
			return nil, err
		}
		a.logger.Info("discovered projects", "count", len(projects))
	}
	if len(projects) == 0 {
		return nil, domain.ErrNoScanPaths
	}

	calc := a.newCalculator(settings, opts.NoCache)

	reports := make([]domain.ProjectReport, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	limit := settings.Scan.ConcurrentScans
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, path := range projects {
		g.Go(func() error {
			start := time.Now()
			info, fromCache, err := calc.CalculateProjectSize(gctx, path)
			reports[i] = domain.ProjectReport{
				Path:      path,
				SizeInfo:  info,
				FromCache: fromCache,
				Duration:  time.Since(start),
				Err:       err,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	calc.MaybeCleanupCache(settings.Cache.CacheConfig().CleanupInterval)

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].SizeInfo.TotalSize > reports[j].SizeInfo.TotalSize
	})
	return reports, nil
}

// CacheStatus reports the project's standing in the cache.
func (a *App) CacheStatus(path, configPath string) (domain.CacheStatus, error) {
	calc, err := a.calculator(configPath)
	if err != nil {
		return "", err
	}
	return calc.CacheStatus(path)
}

// CacheStats summarizes the persisted cache.
func (a *App) CacheStats(configPath string) (domain.CacheStats, error) {
	calc, err := a.calculator(configPath)
	if err != nil {
		return domain.CacheStats{}, err
	}
	return calc.CacheStats()
}

// CleanupCache removes expired cache entries, returning how many were
// dropped.
func (a *App) CleanupCache(configPath string) (int, error) {
	calc, err := a.calculator(configPath)
	if err != nil {
		return 0, err
	}
	return calc.CleanupCache()
}

// InvalidateProject drops a single project's cache entry.
func (a *App) InvalidateProject(path, configPath string) error {
	calc, err := a.calculator(configPath)
	if err != nil {
		return err
	}
	return calc.InvalidateProject(path)
}

func (a *App) calculator(configPath string) (*sizer.Calculator, error) {
	settings, err := a.loader.Load(configPath)
	if err != nil {
		return nil, err
	}
	return a.newCalculator(settings, false), nil
}

// newCalculator builds a calculator for one command invocation. A cache
// that cannot be initialized degrades to uncached scanning instead of
// failing the run.
func (a *App) newCalculator(settings domain.Settings, noCache bool) *sizer.Calculator {
	calc := sizer.New(a.walker, a.detector, a.builder, a.logger).
		WithMaxDepth(settings.Scan.MaxDepth)

	if !settings.Cache.Enabled || noCache {
		return calc
	}

	cache, err := sizecache.New(settings.Cache.CacheConfig(), a.store, a.logger)
	if err != nil {
		a.logger.Warn("cache unavailable, scanning uncached", "error", err)
		return calc
	}
	return calc.WithCache(cache)
}
