package domain

import (
	"maps"
	"slices"
)

// Config is an immutable snapshot of a loaded venvkit.yaml.
type Config struct {
	// Root is the directory containing the configuration file.
	Root string
	// Workspace holds the global workspace overrides.
	Workspace WorkspaceSettings
	// Nodes are the declared execution hosts by name.
	Nodes map[string]Node
	// Interpreters map interpreter names to installation homes.
	Interpreters map[string]string
	// Steps are the declared build steps by name.
	Steps map[string]*Step
}

// Step is one build step: an interpreter, an optional virtualenv and the
// work to run inside it.
type Step struct {
	Name        string
	Target      TargetID
	Children    []string
	Node        string
	Interpreter string
	Virtualenv  *VirtualenvOptions
	Packages    []string
	Command     *CommandSpec
	Tox         *ToxOptions
	Buildout    *BuildoutOptions
	Environment EnvVars
	EnvFile     string
	WorkingDir  string
}

// ToxOptions configures a tox run inside the step virtualenv.
type ToxOptions struct {
	Config   string
	Recreate bool
}

// BuildoutOptions configures a buildout run inside the step virtualenv.
type BuildoutOptions struct {
	Config string
}

// Step returns the named step.
func (c *Config) Step(name string) (*Step, bool) {
	s, ok := c.Steps[name]
	return s, ok
}

// StepNames returns the declared step names in sorted order.
func (c *Config) StepNames() []string {
	return slices.Sorted(maps.Keys(c.Steps))
}

// Node returns the named node. An empty name selects the central node.
func (c *Config) Node(name string) (Node, bool) {
	if name == "" {
		n, ok := c.CentralNode()
		return n, ok
	}
	n, ok := c.Nodes[name]
	return n, ok
}

// CentralNode returns the node owning the shared package store.
func (c *Config) CentralNode() (Node, bool) {
	for _, name := range slices.Sorted(maps.Keys(c.Nodes)) {
		if n := c.Nodes[name]; n.Central {
			return n, true
		}
	}
	return Node{}, false
}
