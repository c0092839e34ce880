package interpreter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/venvkit/internal/adapters/probe"
	"go.trai.ch/venvkit/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter resolver Graft node.
const NodeID graft.ID = "adapter.interpreter"

func init() {
	graft.Register(graft.Node[ports.InterpreterResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{probe.NodeID},
		Run: func(ctx context.Context) (ports.InterpreterResolver, error) {
			p, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(p), nil
		},
	})
}
