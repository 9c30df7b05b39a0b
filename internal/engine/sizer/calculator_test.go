package sizer_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/footprint/internal/core/domain"
	"go.trai.ch/footprint/internal/core/ports"
	"go.trai.ch/footprint/internal/core/ports/mocks"
	"go.trai.ch/footprint/internal/engine/sizer"
)

type deps struct {
	walker   *mocks.MockWalker
	detector *mocks.MockDetector
	builder  *mocks.MockMatcherBuilder
	cache    *mocks.MockSizeCache
	log      *mocks.MockLogger
}

func newDeps(t *testing.T) deps {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return deps{
		walker:   mocks.NewMockWalker(ctrl),
		detector: mocks.NewMockDetector(ctrl),
		builder:  mocks.NewMockMatcherBuilder(ctrl),
		cache:    mocks.NewMockSizeCache(ctrl),
		log:      log,
	}
}

func projectDir(t *testing.T) string {
	t.Helper()
	canonical, err := domain.CanonicalPath(t.TempDir())
	require.NoError(t, err)
	return canonical
}

func entrySeq(entries ...domain.FileEntry) iter.Seq[domain.FileEntry] {
	return func(yield func(domain.FileEntry) bool) {
		for _, e := range entries {
			if !yield(e) {
				return
			}
		}
	}
}

func TestCalculator_PartitionsCodeAndDependencies(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)
	now := time.Now()

	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{
		DependencyDirs: map[string]struct{}{"deps": {}},
	})
	d.walker.EXPECT().Walk(gomock.Any(), root, gomock.Any()).Return(entrySeq(
		domain.FileEntry{RelPath: "src/main.x", Size: 100, ModTime: now},
		domain.FileEntry{RelPath: "deps/lib.x", Size: 900, ModTime: now, Dependency: true},
	), &domain.WalkStats{})

	calc := sizer.New(d.walker, d.detector, d.builder, d.log)
	info, fromCache, err := calc.CalculateProjectSize(context.Background(), root)
	require.NoError(t, err)
	require.False(t, fromCache)

	require.Equal(t, uint64(100), info.CodeSize)
	require.Equal(t, uint64(900), info.DependencySize)
	require.Equal(t, uint64(1000), info.TotalSize)
	require.Equal(t, 1, info.CodeFileCount)
	require.Equal(t, 1, info.DependencyFileCount)
	require.Equal(t, 2, info.TotalFileCount)
}

func TestCalculator_CacheHitSkipsWalk(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)
	info := domain.NewSizeInfo(100, 900, 1, 1)

	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{})
	d.cache.EXPECT().Get(root).Return(domain.CacheEntry{
		Path:      root,
		SizeInfo:  info,
		Signature: time.Now().Add(time.Hour),
		CachedAt:  time.Now(),
	}, true)

	calc := sizer.New(d.walker, d.detector, d.builder, d.log).WithCache(d.cache)
	got, fromCache, err := calc.CalculateProjectSize(context.Background(), root)
	require.NoError(t, err)
	require.True(t, fromCache)
	require.Equal(t, info, got)
}

func TestCalculator_ChangedProjectIsRecomputed(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)
	now := time.Now()

	// The stored signature predates the root's current mtime, so the
	// quick check rejects the entry.
	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{})
	d.cache.EXPECT().Get(root).Return(domain.CacheEntry{
		Path:      root,
		SizeInfo:  domain.NewSizeInfo(1, 0, 1, 0),
		Signature: now.Add(-time.Hour),
		CachedAt:  now.Add(-time.Hour),
	}, true)
	d.walker.EXPECT().Walk(gomock.Any(), root, gomock.Any()).Return(entrySeq(
		domain.FileEntry{RelPath: "main.x", Size: 42, ModTime: now},
	), &domain.WalkStats{})
	d.cache.EXPECT().Put(root, domain.NewSizeInfo(42, 0, 1, 0), gomock.Any())

	calc := sizer.New(d.walker, d.detector, d.builder, d.log).WithCache(d.cache)
	info, fromCache, err := calc.CalculateProjectSize(context.Background(), root)
	require.NoError(t, err)
	require.False(t, fromCache)
	require.Equal(t, uint64(42), info.TotalSize)
}

func TestCalculator_StoredSignatureCoversRootMtime(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)

	// Files older than the root directory itself: the stored signature
	// must still not be behind the quick signature, or every later run
	// would treat the project as changed.
	old := time.Now().Add(-24 * time.Hour)
	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{})
	d.cache.EXPECT().Get(root).Return(domain.CacheEntry{}, false)
	d.walker.EXPECT().Walk(gomock.Any(), root, gomock.Any()).Return(entrySeq(
		domain.FileEntry{RelPath: "main.x", Size: 1, ModTime: old},
	), &domain.WalkStats{})

	rootInfo, err := os.Stat(root)
	require.NoError(t, err)
	d.cache.EXPECT().Put(root, gomock.Any(), gomock.Any()).Do(
		func(_ string, _ domain.SizeInfo, signature time.Time) {
			require.False(t, signature.Before(rootInfo.ModTime()))
		},
	)

	calc := sizer.New(d.walker, d.detector, d.builder, d.log).WithCache(d.cache)
	_, _, err = calc.CalculateProjectSize(context.Background(), root)
	require.NoError(t, err)
}

func TestCalculator_EmptyProject(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)

	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{})
	d.walker.EXPECT().Walk(gomock.Any(), root, gomock.Any()).Return(entrySeq(), &domain.WalkStats{})

	calc := sizer.New(d.walker, d.detector, d.builder, d.log)
	info, _, err := calc.CalculateProjectSize(context.Background(), root)
	require.NoError(t, err)
	require.Zero(t, info.TotalSize)
	require.Zero(t, info.TotalFileCount)
}

func TestCalculator_MissingProject(t *testing.T) {
	d := newDeps(t)
	calc := sizer.New(d.walker, d.detector, d.builder, d.log)

	_, _, err := calc.CalculateProjectSize(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrProjectNotAccessible)
}

func TestCalculator_FileInsteadOfDirectory(t *testing.T) {
	d := newDeps(t)
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	calc := sizer.New(d.walker, d.detector, d.builder, d.log)
	_, _, err := calc.CalculateProjectSize(context.Background(), file)
	require.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestCalculator_UnreadableRoot(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)

	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{})
	d.walker.EXPECT().Walk(gomock.Any(), root, gomock.Any()).Return(
		entrySeq(), &domain.WalkStats{RootErr: os.ErrPermission},
	)

	calc := sizer.New(d.walker, d.detector, d.builder, d.log)
	_, _, err := calc.CalculateProjectSize(context.Background(), root)
	require.ErrorIs(t, err, domain.ErrProjectNotAccessible)
}

func TestCalculator_IgnoreRuleFailureIsSoft(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)
	ctrl := gomock.NewController(t)
	matcher := mocks.NewMockIgnoreMatcher(ctrl)

	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{IsGitRepo: true})
	d.builder.EXPECT().Build(root).Return(matcher, domain.ErrIgnoreRulesUnreadable)
	d.log.EXPECT().Warn(gomock.Any(), gomock.Any())
	d.walker.EXPECT().Walk(gomock.Any(), root, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, opts ports.WalkOptions) (iter.Seq[domain.FileEntry], *domain.WalkStats) {
			require.Same(t, matcher, opts.Matcher)
			return entrySeq(), &domain.WalkStats{}
		},
	)

	calc := sizer.New(d.walker, d.detector, d.builder, d.log)
	_, _, err := calc.CalculateProjectSize(context.Background(), root)
	require.NoError(t, err)
}

func TestCalculator_CacheStatus(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)

	uncached := sizer.New(d.walker, d.detector, d.builder, d.log)
	status, err := uncached.CacheStatus(root)
	require.NoError(t, err)
	require.Equal(t, domain.CacheStatusDisabled, status)

	calc := sizer.New(d.walker, d.detector, d.builder, d.log).WithCache(d.cache)

	d.cache.EXPECT().Peek(root).Return(domain.CacheEntry{}, false)
	status, err = calc.CacheStatus(root)
	require.NoError(t, err)
	require.Equal(t, domain.CacheStatusMissing, status)

	d.cache.EXPECT().Peek(root).Return(domain.CacheEntry{
		Path:     root,
		CachedAt: time.Now().Add(-2 * time.Hour),
	}, true)
	d.cache.EXPECT().TTL().Return(time.Hour)
	status, err = calc.CacheStatus(root)
	require.NoError(t, err)
	require.Equal(t, domain.CacheStatusStale, status)

	d.cache.EXPECT().Peek(root).Return(domain.CacheEntry{
		Path:      root,
		Signature: time.Now().Add(time.Hour),
		CachedAt:  time.Now(),
	}, true)
	d.cache.EXPECT().TTL().Return(24 * time.Hour)
	d.detector.EXPECT().Detect(root).Return(domain.ProjectProfile{})
	status, err = calc.CacheStatus(root)
	require.NoError(t, err)
	require.Equal(t, domain.CacheStatusFresh, status)
}

func TestCalculator_CacheMaintenanceWithoutCache(t *testing.T) {
	d := newDeps(t)
	calc := sizer.New(d.walker, d.detector, d.builder, d.log)

	_, err := calc.CacheStats()
	require.ErrorIs(t, err, domain.ErrCacheDisabled)

	_, err = calc.CleanupCache()
	require.ErrorIs(t, err, domain.ErrCacheDisabled)

	require.Zero(t, calc.MaybeCleanupCache(time.Hour))
}

func TestCalculator_MaybeCleanupHonorsInterval(t *testing.T) {
	d := newDeps(t)
	calc := sizer.New(d.walker, d.detector, d.builder, d.log).WithCache(d.cache)

	d.cache.EXPECT().LastCleanup().Return(time.Now())
	require.Zero(t, calc.MaybeCleanupCache(time.Hour))

	d.cache.EXPECT().LastCleanup().Return(time.Now().Add(-2 * time.Hour))
	d.cache.EXPECT().CleanupExpired().Return(3)
	require.Equal(t, 3, calc.MaybeCleanupCache(time.Hour))
}

func TestCalculator_InvalidateProject(t *testing.T) {
	d := newDeps(t)
	root := projectDir(t)

	uncached := sizer.New(d.walker, d.detector, d.builder, d.log)
	require.ErrorIs(t, uncached.InvalidateProject(root), domain.ErrCacheDisabled)

	d.cache.EXPECT().Invalidate(root)
	calc := sizer.New(d.walker, d.detector, d.builder, d.log).WithCache(d.cache)
	require.NoError(t, calc.InvalidateProject(root))
}
