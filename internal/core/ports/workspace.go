package ports

import (
	"context"

	"go.trai.ch/venvkit/internal/core/domain"
)

// Workspace is the per-target working area on a node.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Home returns the workspace home directory.
	Home() string
	// VirtualenvHome returns the home of the named virtualenv inside the workspace.
	VirtualenvHome(name string) string
	// PackagesDir returns the package cache visible to the node, or an empty
	// string when none exists. Satellite workspaces refresh their mirror first.
	PackagesDir(ctx context.Context) (string, error)
	// PackagesPath returns the location PackagesDir would return without
	// touching the filesystem.
	PackagesPath() string
	// Delete removes the workspace home.
	Delete() error
}

// WorkspaceLocator derives workspace homes for targets.
type WorkspaceLocator interface {
	// Locate returns the workspace of target on node.
	Locate(node domain.Node, settings domain.WorkspaceSettings, target domain.TargetID) Workspace
	// Delete removes the workspace of target and of each of its children.
	Delete(
		ctx context.Context,
		node domain.Node,
		settings domain.WorkspaceSettings,
		target domain.TargetID,
		children []string,
	) error
}
