// Package domain contains the core types of venvkit: nodes, interpreters,
// commands, environments and workspace targets.
package domain

import (
	"runtime"
	"strings"
)

// OS identifies the operating system of an execution host.
type OS string

const (
	// OSLinux is a Linux host.
	OSLinux OS = "linux"
	// OSDarwin is a macOS host.
	OSDarwin OS = "darwin"
	// OSWindows is a Windows host.
	OSWindows OS = "windows"
)

// HostOS returns the operating system venvkit is running on.
func HostOS() OS {
	switch runtime.GOOS {
	case "windows":
		return OSWindows
	case "darwin":
		return OSDarwin
	default:
		return OSLinux
	}
}

// ParseOS parses a configured operating system name. An empty name means the host.
func ParseOS(s string) (OS, error) {
	switch OS(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return HostOS(), nil
	case OSLinux:
		return OSLinux, nil
	case OSDarwin, "macos":
		return OSDarwin, nil
	case OSWindows:
		return OSWindows, nil
	default:
		return "", ErrInvalidOS
	}
}

// IsWindows reports whether the operating system is Windows.
func (o OS) IsWindows() bool {
	return o == OSWindows
}

// PathListSeparator returns the separator used between entries of PATH-like variables.
func (o OS) PathListSeparator() string {
	if o.IsWindows() {
		return ";"
	}
	return ":"
}

// Node is an execution host. Exactly one node is the central node, the one
// holding the authoritative package store.
type Node struct {
	// Name is the node identifier from the configuration.
	Name string
	// OS is the operating system of the node.
	OS OS
	// Root is a writable directory on the node.
	Root string
	// HomeRoot overrides the workspace root for this node.
	HomeRoot string
	// Central is true for the node owning the shared package store.
	Central bool
}

// LocalNodeName is the name of the implicit node used when none is configured.
const LocalNodeName = "local"
