package sizecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/footprint/internal/core/ports"
)

const NodeID graft.ID = "adapter.sizecache.store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			path, err := DefaultStorePath()
			if err != nil {
				return nil, err
			}
			return NewFileStore(path), nil
		},
	})
}
