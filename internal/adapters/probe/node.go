package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/venvkit/internal/core/ports"
)

// NodeID is the unique identifier for the path probe Graft node.
const NodeID graft.ID = "adapter.probe"

func init() {
	graft.Register(graft.Node[ports.PathProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathProbe, error) {
			return New(), nil
		},
	})
}
