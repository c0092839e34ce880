package virtualenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/venvkit/internal/adapters/interpreter"
	"go.trai.ch/venvkit/internal/adapters/probe"
	"go.trai.ch/venvkit/internal/adapters/shell"
	"go.trai.ch/venvkit/internal/core/ports"
)

// NodeID is the unique identifier for the virtualenv manager Graft node.
const NodeID graft.ID = "adapter.virtualenv"

func init() {
	graft.Register(graft.Node[ports.VirtualenvManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{interpreter.NodeID, shell.NodeID, probe.NodeID},
		Run: func(ctx context.Context) (ports.VirtualenvManager, error) {
			resolver, err := graft.Dep[ports.InterpreterResolver](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.CommandExecutor](ctx)
			if err != nil {
				return nil, err
			}
			p, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(resolver, executor, p), nil
		},
	})
}
