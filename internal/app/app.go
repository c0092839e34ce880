// Package app implements the application layer for venvkit.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/venvkit/internal/adapters/logger" //nolint:depguard // Listener adapter
	"go.trai.ch/venvkit/internal/adapters/shell"  //nolint:depguard // Script preview and tty context
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.InterpreterResolver
	executor     ports.CommandExecutor
	venvs        ports.VirtualenvManager
	locator      ports.WorkspaceLocator
	logger       ports.Logger
	tracer       ports.Tracer
	environ      func() []string
	cwd          string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.InterpreterResolver,
	executor ports.CommandExecutor,
	venvs ports.VirtualenvManager,
	locator ports.WorkspaceLocator,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		executor:     executor,
		venvs:        venvs,
		locator:      locator,
		logger:       log,
		tracer:       tracer,
		environ:      os.Environ,
		cwd:          ".",
	}
}

// WithEnviron replaces the source of the base build environment.
// This is primarily used for testing.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// SetVerbose toggles reporting of successful step phases.
func (a *App) SetVerbose(enabled bool) {
	if v, ok := a.tracer.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(enabled)
	}
}

// RunOptions configuration for the RunStep method.
type RunOptions struct {
	// Recreate forces the virtualenv to be rebuilt.
	Recreate bool
	// TTY attaches child processes to a pseudo terminal.
	TTY bool
}

// stepContext is everything a step needs after the configuration is loaded.
type stepContext struct {
	cfg      *domain.Config
	step     *domain.Step
	node     domain.Node
	ws       ports.Workspace
	base     domain.EnvVars
	listener *logger.StepListener
}

func (a *App) prepare(name string) (*stepContext, error) {
	cfg, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	step, ok := cfg.Step(name)
	if !ok {
		return nil, zerr.With(domain.ErrStepNotFound, "step", name)
	}
	node, ok := cfg.Node(step.Node)
	if !ok {
		return nil, zerr.With(domain.ErrNodeNotFound, "node", step.Node)
	}

	base := domain.EnvFromSlice(a.environ())
	if step.EnvFile != "" {
		fileEnv, err := a.configLoader.LoadEnvFile(step.EnvFile)
		if err != nil {
			return nil, zerr.With(err, "step", name)
		}
		base = domain.ComposeEnv(node.OS, base, fileEnv)
	}

	return &stepContext{
		cfg:      cfg,
		step:     step,
		node:     node,
		ws:       a.locator.Locate(node, cfg.Workspace, step.Target),
		base:     base,
		listener: logger.NewListener(a.logger, step.Name),
	}, nil
}

// interpreter resolves the step interpreter. A step without one yields nil.
func (a *App) interpreter(sc *stepContext) (*domain.Interpreter, error) {
	if sc.step.Interpreter == "" {
		return nil, nil
	}
	home := sc.cfg.Interpreters[sc.step.Interpreter]
	ip, ok := a.resolver.Resolve(sc.node, home)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrInterpreterNotFound, "interpreter", sc.step.Interpreter), "home", home)
	}
	return ip, nil
}

// virtualenv describes the step virtualenv after refreshing the package mirror.
func (a *App) virtualenv(ctx context.Context, sc *stepContext) (domain.Virtualenv, error) {
	pkgs, err := sc.ws.PackagesDir(ctx)
	if err != nil {
		return domain.Virtualenv{}, err
	}
	return virtualenvAt(sc, pkgs), nil
}

// virtualenvAt describes the step virtualenv without touching the workspace.
func virtualenvAt(sc *stepContext, pkgs string) domain.Virtualenv {
	return domain.Virtualenv{
		Home:        sc.ws.VirtualenvHome(sc.step.Virtualenv.Name),
		Node:        sc.node,
		PackagesDir: pkgs,
	}
}

// environment layers the interpreter and virtualenv contributions over the
// base environment and applies the step overrides last.
func environment(sc *stepContext, ip *domain.Interpreter, venv *domain.Virtualenv) domain.EnvVars {
	var layers []domain.EnvVars
	if ip != nil {
		layers = append(layers, ip.Environment(false))
	}
	if venv != nil {
		venvIP := &domain.Interpreter{Home: venv.Home, Variant: domain.VariantVirtualenv, OS: sc.node.OS}
		layers = append(layers, venvIP.Environment(false))
	}
	layers = append(layers, sc.step.Environment)
	return domain.ComposeEnv(sc.node.OS, sc.base, layers...)
}

// stepFailure reports a failed phase along with the fatal lines the step emitted.
func stepFailure(step, phase string, fatals []string) error {
	cause := zerr.New(phase + " failed")
	if len(fatals) > 0 {
		cause = zerr.Wrap(zerr.New(strings.Join(fatals, "; ")), phase+" failed")
	}
	return errors.Join(domain.ErrStepFailed, zerr.With(zerr.With(cause, "step", step), "phase", phase))
}

// RunStep executes the named step: interpreter resolution, virtualenv
// provisioning, package installation, tox, buildout and finally the script.
// Phases run strictly in that order and the first failure ends the step.
//
//nolint:cyclop // orchestration function
func (a *App) RunStep(ctx context.Context, name string, opts RunOptions) error {
	sc, err := a.prepare(name)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "step "+name)
	defer span.End()
	span.SetAttribute("step", name)
	span.SetAttribute("node", sc.node.Name)
	span.SetAttribute("target", sc.step.Target.String())

	fail := func(phase string) error {
		err := stepFailure(name, phase, sc.listener.Fatals())
		span.RecordError(err)
		return err
	}

	ip, err := a.interpreter(sc)
	if err != nil {
		sc.listener.Fatal(fmt.Sprintf("%s: %s", domain.ErrInterpreterNotFound.Error(), sc.cfg.Interpreters[sc.step.Interpreter]))
		return fail("interpreter")
	}

	var venv *domain.Virtualenv
	if sc.step.Virtualenv != nil {
		v, ok := a.provision(ctx, sc, ip, opts.Recreate)
		if !ok {
			return fail("virtualenv")
		}
		venv = &v
	}

	env := environment(sc, ip, venv)

	if venv != nil {
		for _, pkg := range sc.step.Packages {
			if !a.phase(ctx, "pip "+pkg, func(ctx context.Context) bool {
				return a.venvs.PipInstall(ctx, *venv, pkg, env, sc.listener)
			}) {
				return fail("pip")
			}
		}
		if tox := sc.step.Tox; tox != nil && !a.phase(ctx, "tox", func(ctx context.Context) bool {
			return a.venvs.Tox(ctx, *venv, *tox, env, sc.listener)
		}) {
			return fail("tox")
		}
		if bo := sc.step.Buildout; bo != nil && !a.phase(ctx, "buildout", func(ctx context.Context) bool {
			return a.venvs.Buildout(ctx, *venv, *bo, env, sc.listener)
		}) {
			return fail("buildout")
		}
	}

	if sc.step.Command != nil {
		spec, ok := a.commandSpec(sc, ip, venv)
		if !ok {
			return fail("command")
		}
		runCtx := shell.WithTTY(ctx, opts.TTY)
		if !a.phase(runCtx, "command", func(ctx context.Context) bool {
			return a.executor.Run(ctx, sc.node, spec, env, sc.step.WorkingDir, sc.listener)
		}) {
			return fail("command")
		}
	}

	if sc.listener.Failed() {
		return fail("step")
	}
	return nil
}

// phase runs fn inside its own span.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context) bool) bool {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	ok := fn(ctx)
	if !ok {
		span.RecordError(zerr.New(name + " failed"))
	}
	return ok
}

// provision returns the step virtualenv, creating it when it is outdated,
// declared to be cleared or recreation is forced.
func (a *App) provision(ctx context.Context, sc *stepContext, ip *domain.Interpreter, force bool) (domain.Virtualenv, bool) {
	venv, err := a.virtualenv(ctx, sc)
	if err != nil {
		sc.listener.Fatal(err.Error())
		return domain.Virtualenv{}, false
	}

	opts := *sc.step.Virtualenv
	if !force && !opts.Clear && !a.venvs.IsOutdated(ctx, venv, ip, opts.SystemSitePackages) {
		return venv, true
	}

	opts.Environment = sc.step.Environment
	ok := a.phase(ctx, "venv.create", func(ctx context.Context) bool {
		sc.listener.Info(fmt.Sprintf("creating virtualenv %s", venv.Home))
		return a.venvs.Create(ctx, venv, ip, opts, sc.base, sc.listener)
	})
	return venv, ok
}

func (a *App) commandSpec(sc *stepContext, ip *domain.Interpreter, venv *domain.Virtualenv) (domain.CommandSpec, bool) {
	spec := *sc.step.Command
	if spec.Nature != domain.NaturePython {
		return spec, true
	}

	switch {
	case venv != nil:
		exe, ok := a.resolver.FindExecutable(sc.node, venv.Home, "python3", "python")
		if !ok {
			sc.listener.Fatal(fmt.Sprintf("%s: python in %s", domain.ErrMissingExecutable.Error(), venv.Home))
			return spec, false
		}
		spec.Executable = exe
	case ip != nil:
		spec.Executable = ip.Executable
	}
	return spec, true
}

// Plan is the dry-run preview of a step.
type Plan struct {
	Step            string
	Node            domain.Node
	Workspace       string
	Interpreter     *domain.Interpreter
	Virtualenv      string
	VirtualenvState domain.VirtualenvState
	Packages        []string
	Script          string
	Argv            []string
	Env             domain.EnvVars
}

// PlanStep resolves everything RunStep would do without running any process
// or writing to the workspace.
func (a *App) PlanStep(ctx context.Context, name string) (*Plan, error) {
	sc, err := a.prepare(name)
	if err != nil {
		return nil, err
	}
	ip, err := a.interpreter(sc)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Step:        name,
		Node:        sc.node,
		Workspace:   sc.ws.Home(),
		Interpreter: ip,
		Packages:    sc.step.Packages,
	}

	var venv *domain.Virtualenv
	if sc.step.Virtualenv != nil {
		v := virtualenvAt(sc, sc.ws.PackagesPath())
		venv = &v
		plan.Virtualenv = v.Home
		status, err := a.venvs.Inspect(v, ip, sc.step.Virtualenv.SystemSitePackages)
		if err != nil {
			return nil, err
		}
		plan.VirtualenvState = status.State
	}
	plan.Env = environment(sc, ip, venv)

	if sc.step.Command != nil {
		spec := *sc.step.Command
		if spec.Nature == domain.NaturePython {
			spec.Executable = pythonPreview(sc.node, ip, venv)
		}
		script := shell.Materialize(sc.node.OS, spec, sc.step.WorkingDir)
		path := filepath.Join(sc.step.WorkingDir, domain.ScriptPrefix+"XXXXXX"+script.Ext)
		argv, err := shell.Invocation(sc.node.OS, spec, script, path)
		if err != nil {
			return nil, err
		}
		plan.Script = script.Content
		plan.Argv = argv
		plan.Env = domain.ComposeEnv(sc.node.OS, plan.Env, script.Env)
	}
	return plan, nil
}

func pythonPreview(node domain.Node, ip *domain.Interpreter, venv *domain.Virtualenv) string {
	switch {
	case venv != nil:
		name := "python3"
		if node.OS.IsWindows() {
			name = "python.exe"
		}
		return filepath.Join(domain.BinDir(venv.Home, node.OS), name)
	case ip != nil:
		return ip.Executable
	default:
		return ""
	}
}

// ResolveResult is the outcome of resolving an installation home.
type ResolveResult struct {
	Interpreter *domain.Interpreter
	Env         domain.EnvVars
}

// Resolve identifies the installation at home as seen by a node running osName.
// A home naming a configured interpreter resolves that interpreter.
func (a *App) Resolve(home, osName string, clean bool) (*ResolveResult, error) {
	osys, err := domain.ParseOS(osName)
	if err != nil {
		return nil, zerr.With(err, "os", osName)
	}

	if cfg, err := a.configLoader.Load(a.cwd); err == nil {
		if configured, ok := cfg.Interpreters[home]; ok {
			home = configured
		}
	}

	node := domain.Node{Name: domain.LocalNodeName, OS: osys}
	ip, ok := a.resolver.Resolve(node, home)
	if !ok {
		return nil, zerr.With(domain.ErrInterpreterNotFound, "home", home)
	}
	return &ResolveResult{Interpreter: ip, Env: ip.Environment(clean)}, nil
}

// VenvStatus inspects the virtualenv of the named step.
func (a *App) VenvStatus(ctx context.Context, name string) (string, domain.VirtualenvStatus, error) {
	sc, venv, ip, err := a.venvStep(name)
	if err != nil {
		return "", domain.VirtualenvStatus{}, err
	}
	status, err := a.venvs.Inspect(venv, ip, sc.step.Virtualenv.SystemSitePackages)
	if err != nil {
		return "", domain.VirtualenvStatus{}, err
	}
	return venv.Home, status, nil
}

// CreateVenv recreates the virtualenv of the named step and installs its packages.
func (a *App) CreateVenv(ctx context.Context, name string) error {
	sc, err := a.prepare(name)
	if err != nil {
		return err
	}
	if sc.step.Virtualenv == nil {
		return zerr.With(zerr.With(domain.ErrInvalidStep, "reason", "step declares no virtualenv"), "step", name)
	}
	ip, err := a.interpreter(sc)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "venv "+name)
	defer span.End()

	venv, ok := a.provision(ctx, sc, ip, true)
	if !ok {
		return stepFailure(name, "virtualenv", sc.listener.Fatals())
	}
	env := environment(sc, ip, &venv)
	for _, pkg := range sc.step.Packages {
		if !a.venvs.PipInstall(ctx, venv, pkg, env, sc.listener) {
			return stepFailure(name, "pip", sc.listener.Fatals())
		}
	}
	return nil
}

// DeleteVenv removes the virtualenv of the named step.
func (a *App) DeleteVenv(ctx context.Context, name string) error {
	_, venv, _, err := a.venvStep(name)
	if err != nil {
		return err
	}
	if err := a.venvs.Delete(venv); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("deleted virtualenv %s", venv.Home))
	return nil
}

func (a *App) venvStep(name string) (*stepContext, domain.Virtualenv, *domain.Interpreter, error) {
	sc, err := a.prepare(name)
	if err != nil {
		return nil, domain.Virtualenv{}, nil, err
	}
	if sc.step.Virtualenv == nil {
		err := zerr.With(zerr.With(domain.ErrInvalidStep, "reason", "step declares no virtualenv"), "step", name)
		return nil, domain.Virtualenv{}, nil, err
	}
	ip, err := a.interpreter(sc)
	if err != nil {
		return nil, domain.Virtualenv{}, nil, err
	}
	return sc, virtualenvAt(sc, sc.ws.PackagesPath()), ip, nil
}

// WorkspacePath returns the workspace home of the named step.
func (a *App) WorkspacePath(name string) (string, error) {
	sc, err := a.prepare(name)
	if err != nil {
		return "", err
	}
	return sc.ws.Home(), nil
}

// DeleteWorkspace removes the workspace of the named step and of its matrix children.
func (a *App) DeleteWorkspace(ctx context.Context, name string) error {
	sc, err := a.prepare(name)
	if err != nil {
		return err
	}
	return a.locator.Delete(ctx, sc.node, sc.cfg.Workspace, sc.step.Target, sc.step.Children)
}

// Steps returns the declared step names.
func (a *App) Steps() ([]string, error) {
	cfg, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.StepNames(), nil
}

// Shutdown flushes telemetry.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}
