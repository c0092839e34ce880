package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/venvkit/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/venvkit/internal/adapters/interpreter" //nolint:depguard // Wired in app layer
	"go.trai.ch/venvkit/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/venvkit/internal/adapters/shell"       //nolint:depguard // Wired in app layer
	"go.trai.ch/venvkit/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/venvkit/internal/adapters/virtualenv"  //nolint:depguard // Wired in app layer
	"go.trai.ch/venvkit/internal/adapters/workspace"   //nolint:depguard // Wired in app layer
	"go.trai.ch/venvkit/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			interpreter.NodeID,
			shell.NodeID,
			virtualenv.NodeID,
			workspace.NodeID,
			logger.NodeID,
			telemetry.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InterpreterResolver](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.CommandExecutor](ctx)
	if err != nil {
		return nil, err
	}

	venvs, err := graft.Dep[ports.VirtualenvManager](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.WorkspaceLocator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, executor, venvs, locator, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
