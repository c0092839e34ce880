package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// targetHashBytes is the number of SHA-256 bytes kept in a workspace directory name.
const targetHashBytes = 8

// TargetID identifies a build target. Parent is empty for top-level targets
// and holds the composite target name for matrix children.
type TargetID struct {
	Parent string
	Name   string
}

// ParseTarget parses "name" or "parent/name".
func ParseTarget(s string) (TargetID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TargetID{}, ErrInvalidTarget
	}
	parent, name, ok := strings.Cut(s, "/")
	if !ok {
		return TargetID{Name: s}, nil
	}
	if parent == "" || name == "" || strings.Contains(name, "/") {
		return TargetID{}, ErrInvalidTarget
	}
	return TargetID{Parent: parent, Name: name}, nil
}

// String returns the qualified form of the target.
func (t TargetID) String() string {
	if t.Parent == "" {
		return t.Name
	}
	return t.Parent + "/" + t.Name
}

// Child returns the identifier of a matrix child of t.
func (t TargetID) Child(name string) TargetID {
	return TargetID{Parent: t.String(), Name: name}
}

// Hash returns the fixed-width directory name derived from the qualified target.
// It is stable across runs and hosts.
func (t TargetID) Hash() string {
	sum := sha256.Sum256([]byte(t.String()))
	return hex.EncodeToString(sum[:targetHashBytes])
}

// WorkspaceSettings are the global workspace overrides from the configuration.
type WorkspaceSettings struct {
	// HomeRoot replaces the default root of workspace homes on every node.
	HomeRoot string
	// PackagesDir is the central package store on the central node.
	PackagesDir string
}

// Virtualenv describes an isolated environment managed below a workspace home.
type Virtualenv struct {
	// Home is the directory the virtualenv is created in.
	Home string
	// Node is the host the virtualenv lives on.
	Node Node
	// PackagesDir is the package cache visible to the node, or empty when none exists.
	PackagesDir string
}

// SignatureFile returns the path of the signature record inside the virtualenv.
func (v Virtualenv) SignatureFile() string {
	return filepath.Join(v.Home, SignatureFileName)
}

// VirtualenvOptions controls virtualenv creation.
type VirtualenvOptions struct {
	// Name selects the directory below the workspace virtualenvs dir.
	Name string
	// SystemSitePackages exposes the base interpreter site-packages.
	SystemSitePackages bool
	// Clear forces recreation on every run.
	Clear bool
	// Environment holds the step overrides. Create applies them after the
	// clean base interpreter contribution.
	Environment EnvVars
}

// VirtualenvState is the lifecycle state of a virtualenv.
type VirtualenvState string

const (
	// VirtualenvAbsent means no valid virtualenv exists at the home.
	VirtualenvAbsent VirtualenvState = "absent"
	// VirtualenvFresh means the recorded signature matches the current one.
	VirtualenvFresh VirtualenvState = "fresh"
	// VirtualenvStale means the virtualenv exists but must be recreated.
	VirtualenvStale VirtualenvState = "stale"
)

// VirtualenvStatus is the outcome of comparing a recorded signature with the current one.
type VirtualenvStatus struct {
	State VirtualenvState
	// Recorded is the content of the signature file, empty when missing.
	Recorded string
	// Current is the signature computed from the present inputs.
	Current string
}

// Diff returns the current signature lines that differ from the recorded ones.
func (s VirtualenvStatus) Diff() []string {
	recorded := make(map[string]bool)
	for _, line := range strings.Split(s.Recorded, "\n") {
		recorded[line] = true
	}

	var diff []string
	for _, line := range strings.Split(s.Current, "\n") {
		if line != "" && !recorded[line] {
			diff = append(diff, line)
		}
	}
	return diff
}
