package config

// File represents the structure of the venvkit.yaml configuration file.
type File struct {
	Version      string              `yaml:"version"`
	Root         string              `yaml:"root"`
	HomeRoot     string              `yaml:"home_root"`
	PackagesDir  string              `yaml:"packages_dir"`
	Nodes        map[string]*NodeDTO `yaml:"nodes"`
	Interpreters map[string]string   `yaml:"interpreters"`
	Steps        map[string]*StepDTO `yaml:"steps"`
}

// NodeDTO represents an execution host in the configuration.
type NodeDTO struct {
	OS       string `yaml:"os"`
	Root     string `yaml:"root"`
	HomeRoot string `yaml:"home_root"`
	Central  bool   `yaml:"central"`
}

// StepDTO represents a step definition in the configuration.
type StepDTO struct {
	Target         string            `yaml:"target"`
	Children       []string          `yaml:"children"`
	Node           string            `yaml:"node"`
	Interpreter    string            `yaml:"interpreter"`
	Virtualenv     *VirtualenvDTO    `yaml:"virtualenv"`
	Packages       []string          `yaml:"packages"`
	Nature         string            `yaml:"nature"`
	Script         string            `yaml:"script"`
	IgnoreExitCode bool              `yaml:"ignore_exit_code"`
	Tox            *ToxDTO           `yaml:"tox"`
	Buildout       *BuildoutDTO      `yaml:"buildout"`
	Environment    map[string]string `yaml:"environment"`
	EnvFile        string            `yaml:"env_file"`
	WorkingDir     string            `yaml:"working_dir"`
}

// VirtualenvDTO configures the step virtualenv.
type VirtualenvDTO struct {
	Name               string `yaml:"name"`
	SystemSitePackages bool   `yaml:"system_site_packages"`
	Clear              bool   `yaml:"clear"`
}

// ToxDTO configures a tox run.
type ToxDTO struct {
	Config   string `yaml:"config"`
	Recreate bool   `yaml:"recreate"`
}

// BuildoutDTO configures a buildout run.
type BuildoutDTO struct {
	Config string `yaml:"config"`
}
