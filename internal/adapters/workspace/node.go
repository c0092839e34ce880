package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/venvkit/internal/adapters/logger"
	"go.trai.ch/venvkit/internal/adapters/probe"
	"go.trai.ch/venvkit/internal/core/ports"
)

// NodeID is the unique identifier for the workspace locator Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{probe.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLocator, error) {
			p, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(p, log), nil
		},
	})
}
