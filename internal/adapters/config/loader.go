// Package config provides the configuration loader for venvkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// NodeRoot returns the root of nodes that do not declare one.
	NodeRoot func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, NodeRoot: os.UserCacheDir}
}

// Load finds venvkit.yaml in cwd or one of its parents and returns its snapshot.
// Every path of the snapshot is absolute, whatever form cwd takes.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	configPath, err := findConfiguration(abs)
	if err != nil {
		return nil, err
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg := &domain.Config{
		Root:         resolveRoot(configPath, file.Root),
		Interpreters: make(map[string]string, len(file.Interpreters)),
		Steps:        make(map[string]*domain.Step, len(file.Steps)),
	}

	nodes, err := l.buildNodes(cfg.Root, file.Nodes)
	if err != nil {
		return nil, err
	}
	cfg.Nodes = nodes

	central, _ := cfg.CentralNode()
	cfg.Workspace = domain.WorkspaceSettings{
		HomeRoot:    resolvePath(cfg.Root, file.HomeRoot),
		PackagesDir: resolvePath(cfg.Root, file.PackagesDir),
	}
	if cfg.Workspace.PackagesDir == "" {
		cfg.Workspace.PackagesDir = domain.DefaultPackagesDir(central.Root)
	}

	for name, home := range file.Interpreters {
		if home == "" {
			return nil, zerr.With(domain.ErrInterpreterNotDeclared, "interpreter", name)
		}
		cfg.Interpreters[name] = resolvePath(cfg.Root, home)
	}

	for name, dto := range file.Steps {
		step, err := l.buildStep(cfg, name, dto)
		if err != nil {
			return nil, zerr.With(err, "step", name)
		}
		cfg.Steps[name] = step
	}

	return cfg, nil
}

// LoadEnvFile reads a dotenv file into environment variables.
func (l *Loader) LoadEnvFile(path string) (domain.EnvVars, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}
	return domain.EnvVars(vars), nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildNodes(root string, dtos map[string]*NodeDTO) (map[string]domain.Node, error) {
	nodes := make(map[string]domain.Node, len(dtos)+1)

	if len(dtos) == 0 {
		nodeRoot, err := l.defaultNodeRoot()
		if err != nil {
			return nil, err
		}
		nodes[domain.LocalNodeName] = domain.Node{
			Name:    domain.LocalNodeName,
			OS:      domain.HostOS(),
			Root:    nodeRoot,
			Central: true,
		}
		return nodes, nil
	}

	centrals := 0
	for name, dto := range dtos {
		if dto == nil {
			dto = &NodeDTO{}
		}
		osys, err := domain.ParseOS(dto.OS)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "os", dto.OS), "node", name)
		}

		nodeRoot := resolvePath(root, dto.Root)
		if nodeRoot == "" {
			if nodeRoot, err = l.defaultNodeRoot(); err != nil {
				return nil, err
			}
		}

		nodes[name] = domain.Node{
			Name:     name,
			OS:       osys,
			Root:     nodeRoot,
			HomeRoot: resolvePath(root, dto.HomeRoot),
			Central:  dto.Central,
		}
		if dto.Central {
			centrals++
		}
	}

	switch {
	case centrals > 1:
		return nil, zerr.With(domain.ErrMultipleCentralNodes, "count", centrals)
	case centrals == 0 && len(nodes) == 1:
		for name, n := range nodes {
			n.Central = true
			nodes[name] = n
		}
	case centrals == 0:
		return nil, domain.ErrNoCentralNode
	}
	return nodes, nil
}

func (l *Loader) defaultNodeRoot() (string, error) {
	if l.NodeRoot == nil {
		return os.TempDir(), nil
	}
	root, err := l.NodeRoot()
	if err != nil || root == "" {
		l.Logger.Warn(fmt.Sprintf("no user cache directory, using %s", os.TempDir()))
		return os.TempDir(), nil //nolint:nilerr // Fall back to the temp dir
	}
	return root, nil
}

func (l *Loader) buildStep(cfg *domain.Config, name string, dto *StepDTO) (*domain.Step, error) {
	if strings.Contains(name, "/") || strings.TrimSpace(name) == "" {
		return nil, zerr.With(domain.ErrInvalidStep, "reason", "step names must be non-empty and contain no '/'")
	}
	if dto == nil {
		dto = &StepDTO{}
	}

	targetName := dto.Target
	if targetName == "" {
		targetName = name
	}
	target, err := domain.ParseTarget(targetName)
	if err != nil {
		return nil, zerr.With(err, "target", targetName)
	}

	if _, ok := cfg.Node(dto.Node); !ok {
		return nil, zerr.With(domain.ErrNodeNotFound, "node", dto.Node)
	}
	if dto.Interpreter != "" {
		if _, ok := cfg.Interpreters[dto.Interpreter]; !ok {
			return nil, zerr.With(domain.ErrInterpreterNotDeclared, "interpreter", dto.Interpreter)
		}
	}

	step := &domain.Step{
		Name:        name,
		Target:      target,
		Children:    append([]string(nil), dto.Children...),
		Node:        dto.Node,
		Interpreter: dto.Interpreter,
		Packages:    append([]string(nil), dto.Packages...),
		Environment: domain.EnvVars(dto.Environment),
		EnvFile:     resolvePath(cfg.Root, dto.EnvFile),
		WorkingDir:  resolvePath(cfg.Root, dto.WorkingDir),
	}
	if step.WorkingDir == "" {
		step.WorkingDir = cfg.Root
	}

	if dto.Virtualenv != nil {
		venvName := dto.Virtualenv.Name
		if venvName == "" {
			venvName = dto.Interpreter
		}
		step.Virtualenv = &domain.VirtualenvOptions{
			Name:               venvName,
			SystemSitePackages: dto.Virtualenv.SystemSitePackages,
			Clear:              dto.Virtualenv.Clear,
		}
	}
	if dto.Tox != nil {
		step.Tox = &domain.ToxOptions{Config: resolvePath(cfg.Root, dto.Tox.Config), Recreate: dto.Tox.Recreate}
	}
	if dto.Buildout != nil {
		step.Buildout = &domain.BuildoutOptions{Config: resolvePath(cfg.Root, dto.Buildout.Config)}
	}
	if dto.Script != "" {
		nature, err := domain.ParseNature(dto.Nature)
		if err != nil {
			return nil, err
		}
		spec := domain.NewCommandSpec(nature, dto.Script, dto.IgnoreExitCode)
		step.Command = &spec
	}

	if err := validateStep(step); err != nil {
		return nil, err
	}
	return step, nil
}

func validateStep(step *domain.Step) error {
	invalid := func(reason string) error {
		return zerr.With(domain.ErrInvalidStep, "reason", reason)
	}

	needsVenv := len(step.Packages) > 0 || step.Tox != nil || step.Buildout != nil
	switch {
	case needsVenv && step.Virtualenv == nil:
		return invalid("packages, tox and buildout require a virtualenv")
	case step.Virtualenv != nil && step.Interpreter == "":
		return invalid("a virtualenv requires an interpreter")
	case step.Virtualenv != nil && step.Virtualenv.Name == "":
		return invalid("the virtualenv needs a name")
	case step.Command != nil && step.Command.Nature == domain.NaturePython && step.Interpreter == "":
		return invalid("python scripts require an interpreter")
	case step.Tox != nil && step.Tox.Config == "":
		return invalid("tox requires a config")
	case step.Buildout != nil && step.Buildout.Config == "":
		return invalid("buildout requires a config")
	case step.Command == nil && step.Virtualenv == nil:
		return invalid("nothing to do, declare a script or a virtualenv")
	}
	return nil
}

// resolveRoot returns the configured root relative to the config file directory.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

// resolvePath makes p absolute against base. Empty paths stay empty.
func resolvePath(base, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
