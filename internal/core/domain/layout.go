package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "venvkit.yaml"

	// HomeDirName is the per-node directory that holds all venvkit state.
	HomeDirName = "venvkit"

	// JobsDirName holds one workspace home per target.
	JobsDirName = "jobs"

	// PackagesDirName is the name of the shared package cache directory.
	PackagesDirName = "packages"

	// VirtualenvsDirName holds the virtualenvs of a workspace home.
	VirtualenvsDirName = "virtualenvs"

	// SignatureFileName is the file inside a virtualenv home that records its signature.
	SignatureFileName = ".signature"

	// ScriptPrefix is the name prefix of materialized script files.
	ScriptPrefix = "venvkit-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// ScriptPerm is the permission of materialized scripts (rwx------).
	ScriptPerm = 0o700
)

// DefaultHomeRoot returns the workspace root used when neither the node
// nor the global configuration overrides it.
// It joins the node root, venvkit and jobs.
func DefaultHomeRoot(nodeRoot string) string {
	return filepath.Join(nodeRoot, HomeDirName, JobsDirName)
}

// DefaultPackagesDir returns the central package store location.
// It joins the central node root, venvkit and packages.
func DefaultPackagesDir(centralRoot string) string {
	return filepath.Join(centralRoot, HomeDirName, PackagesDirName)
}
