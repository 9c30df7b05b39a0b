package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/footprint/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	DetectorNodeID graft.ID = "adapter.fs.detector"
	FinderNodeID   graft.ID = "adapter.fs.finder"
)

func init() {
	graft.Register(graft.Node[ports.Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Detector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Detector, error) {
			return NewDetector(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{DetectorNodeID},
		Run: func(ctx context.Context) (ports.ProjectFinder, error) {
			detector, err := graft.Dep[ports.Detector](ctx)
			if err != nil {
				return nil, err
			}
			return NewFinder(detector), nil
		},
	})
}
