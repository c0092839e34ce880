// Package probe answers filesystem questions about execution nodes.
package probe

import (
	"slices"

	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Probe implements ports.PathProbe on top of a FileSystem.
type Probe struct {
	fs FileSystem
}

// New creates a Probe reading the local filesystem.
func New() *Probe {
	return &Probe{fs: NewOSFS()}
}

// NewWithFS creates a Probe reading fsys.
func NewWithFS(fsys FileSystem) *Probe {
	return &Probe{fs: fsys}
}

// IsFile reports whether path exists and is a regular file.
func (p *Probe) IsFile(path string) bool {
	info, err := p.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func (p *Probe) IsDir(path string) bool {
	info, err := p.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListFiles returns the sorted names of the regular files directly inside dir.
func (p *Probe) ListFiles(dir string) ([]string, error) {
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list directory"), "dir", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}

// IsWindows reports whether the node runs Windows.
func (p *Probe) IsWindows(node domain.Node) bool {
	return node.OS.IsWindows()
}
