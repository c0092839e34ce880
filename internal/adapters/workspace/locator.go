// Package workspace derives per-target working areas on execution nodes and
// keeps satellite copies of the shared package store.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Locator implements ports.WorkspaceLocator.
type Locator struct {
	probe  ports.PathProbe
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(probe ports.PathProbe, logger ports.Logger) *Locator {
	return &Locator{probe: probe, logger: logger}
}

// Root returns the directory holding the workspace homes of node.
// The node override wins over the global one, which wins over the node root default.
func Root(node domain.Node, settings domain.WorkspaceSettings) string {
	switch {
	case node.HomeRoot != "":
		return node.HomeRoot
	case settings.HomeRoot != "":
		return settings.HomeRoot
	default:
		return domain.DefaultHomeRoot(node.Root)
	}
}

// Locate returns the workspace of target on node. The home is
// <root>/<target hash>, so distinct targets never share a directory.
func (l *Locator) Locate(node domain.Node, settings domain.WorkspaceSettings, target domain.TargetID) ports.Workspace {
	home := filepath.Join(Root(node, settings), target.Hash())
	base := workspace{home: home, shared: settings.PackagesDir, probe: l.probe}
	if node.Central {
		return &centralWorkspace{workspace: base}
	}
	return &satelliteWorkspace{workspace: base}
}

// Delete removes the workspace of target and of each child concurrently.
// Failures are logged and do not fail the call.
func (l *Locator) Delete(
	ctx context.Context,
	node domain.Node,
	settings domain.WorkspaceSettings,
	target domain.TargetID,
	children []string,
) error {
	targets := make([]domain.TargetID, 0, len(children)+1)
	for _, child := range children {
		targets = append(targets, target.Child(child))
	}
	targets = append(targets, target)

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ws := l.Locate(node, settings, t)
			if err := ws.Delete(); err != nil {
				l.logger.Error(zerr.With(err, "target", t.String()))
				return nil
			}
			l.logger.Info(fmt.Sprintf("deleted workspace %s (%s)", t, ws.Home()))
			return nil
		})
	}
	return g.Wait()
}

type workspace struct {
	home   string
	shared string
	probe  ports.PathProbe
}

// Home returns the workspace home directory.
func (w *workspace) Home() string {
	return w.home
}

// VirtualenvHome returns <home>/virtualenvs/<name>.
func (w *workspace) VirtualenvHome(name string) string {
	return filepath.Join(w.home, domain.VirtualenvsDirName, name)
}

// Delete removes the workspace home. A missing home is not an error.
func (w *workspace) Delete() error {
	if err := os.RemoveAll(w.home); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkspaceDeleteFailed.Error()), "home", w.home)
	}
	return nil
}

func (w *workspace) sharedStore() (string, bool) {
	if w.shared == "" || !w.probe.IsDir(w.shared) {
		return "", false
	}
	return w.shared, true
}

// centralWorkspace lives on the node that owns the shared package store.
type centralWorkspace struct {
	workspace
}

// PackagesDir returns the shared store, or an empty string when it does not exist.
func (w *centralWorkspace) PackagesDir(context.Context) (string, error) {
	dir, _ := w.sharedStore()
	return dir, nil
}

// PackagesPath returns the shared store, or an empty string when it does not exist.
func (w *centralWorkspace) PackagesPath() string {
	dir, _ := w.sharedStore()
	return dir
}

// satelliteWorkspace lives on a node that reads a mirror of the shared store.
type satelliteWorkspace struct {
	workspace
}

func (w *satelliteWorkspace) mirror() string {
	return filepath.Join(w.home, domain.PackagesDirName)
}

// PackagesPath returns <home>/packages without refreshing it. It returns an
// empty string when the shared store does not exist.
func (w *satelliteWorkspace) PackagesPath() string {
	if _, ok := w.sharedStore(); !ok {
		return ""
	}
	return w.mirror()
}

// PackagesDir refreshes <home>/packages from the shared store and returns it.
// It returns an empty string when the shared store does not exist.
func (w *satelliteWorkspace) PackagesDir(ctx context.Context) (string, error) {
	shared, ok := w.sharedStore()
	if !ok {
		return "", nil
	}

	mirror := w.mirror()
	if err := mirrorDir(ctx, w.probe, shared, mirror); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageSyncFailed.Error()), "mirror", mirror)
	}
	return mirror, nil
}
