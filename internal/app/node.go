package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/footprint/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/footprint/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/footprint/internal/adapters/gitignore" //nolint:depguard // Wired in app layer
	"go.trai.ch/footprint/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/footprint/internal/adapters/sizecache" //nolint:depguard // Wired in app layer
	"go.trai.ch/footprint/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WalkerNodeID,
			fs.DetectorNodeID,
			fs.FinderNodeID,
			gitignore.NodeID,
			sizecache.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[ports.Walker](ctx)
	if err != nil {
		return nil, err
	}
	detector, err := graft.Dep[ports.Detector](ctx)
	if err != nil {
		return nil, err
	}
	finder, err := graft.Dep[ports.ProjectFinder](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.MatcherBuilder](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, walker, detector, builder, finder, store, log), nil
}
