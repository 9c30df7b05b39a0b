package gitignore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/footprint/internal/core/ports"
)

const NodeID graft.ID = "adapter.gitignore.builder"

func init() {
	graft.Register(graft.Node[ports.MatcherBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.MatcherBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
