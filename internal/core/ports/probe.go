package ports

import "go.trai.ch/venvkit/internal/core/domain"

// PathProbe inspects the filesystem of an execution node.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type PathProbe interface {
	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) bool
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
	// ListFiles returns the sorted names of the regular files directly inside dir.
	ListFiles(dir string) ([]string, error)
	// IsWindows reports whether the node runs Windows.
	IsWindows(node domain.Node) bool
}
