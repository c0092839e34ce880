// Package interpreter identifies Python installations from their home directory.
package interpreter

import (
	"path/filepath"

	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
)

// Resolver implements ports.InterpreterResolver.
type Resolver struct {
	probe ports.PathProbe
}

// NewResolver creates a Resolver inspecting homes through probe.
func NewResolver(probe ports.PathProbe) *Resolver {
	return &Resolver{probe: probe}
}

// Resolve tries every variant in priority order and returns the first one
// that accepts home. The home is made absolute once, before any probing.
func (r *Resolver) Resolve(node domain.Node, home string) (*domain.Interpreter, bool) {
	if home == "" {
		return nil, false
	}
	abs, err := filepath.Abs(home)
	if err != nil {
		return nil, false
	}

	for _, variant := range domain.Variants() {
		exe, ok := r.accept(node, variant, abs)
		if !ok {
			continue
		}
		return &domain.Interpreter{
			Home:       abs,
			Variant:    variant,
			Executable: exe,
			OS:         node.OS,
		}, true
	}
	return nil, false
}

// FindExecutable searches bin, Scripts and home itself for one of names,
// honoring the executable suffixes of the node operating system.
func (r *Resolver) FindExecutable(node domain.Node, home string, names ...string) (string, bool) {
	return r.find(home, domain.ExecutableCandidates(r.naming(node), names...))
}

// naming returns the operating system whose file layout applies on node.
func (r *Resolver) naming(node domain.Node) domain.OS {
	if r.probe.IsWindows(node) {
		return domain.OSWindows
	}
	return node.OS
}

func (r *Resolver) accept(node domain.Node, variant domain.Variant, home string) (string, bool) {
	if variant.HomeIsFile() {
		if r.probe.IsFile(home) {
			return home, true
		}
		return "", false
	}

	if !r.probe.IsDir(home) {
		return "", false
	}

	osys := r.naming(node)
	if markers := variant.Markers(osys); markers != nil && !r.anyFile(home, markers) {
		return "", false
	}

	return r.find(home, variant.ExecutableNames(osys))
}

func (r *Resolver) anyFile(home string, rel []string) bool {
	for _, p := range rel {
		if r.probe.IsFile(filepath.Join(home, p)) {
			return true
		}
	}
	return false
}

func (r *Resolver) find(home string, candidates []string) (string, bool) {
	for _, dir := range domain.SearchDirs(home) {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if r.probe.IsFile(path) {
				return path, true
			}
		}
	}
	return "", false
}
