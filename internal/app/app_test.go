package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/venvkit/internal/adapters/probe"
	"go.trai.ch/venvkit/internal/adapters/workspace"
	"go.trai.ch/venvkit/internal/app"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/venvkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	pyHome   = "/opt/py"
	venvHome = "/w/h/virtualenvs/py312"
	wsHome   = "/w/h"
	pkgsDir  = "/w/packages"
)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockInterpreterResolver
	executor *mocks.MockCommandExecutor
	venvs    *mocks.MockVirtualenvManager
	locator  *mocks.MockWorkspaceLocator
	ws       *mocks.MockWorkspace
	logger   *mocks.MockLogger
	tracer   *mocks.MockTracer
	span     *mocks.MockSpan
	spans    []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockInterpreterResolver(ctrl),
		executor: mocks.NewMockCommandExecutor(ctrl),
		venvs:    mocks.NewMockVirtualenvManager(ctrl),
		locator:  mocks.NewMockWorkspaceLocator(ctrl),
		ws:       mocks.NewMockWorkspace(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
		span:     mocks.NewMockSpan(ctrl),
	}
	f.app = app.New(f.loader, f.resolver, f.executor, f.venvs, f.locator, f.logger, f.tracer).
		WithEnviron(func() []string {
			return []string{"PATH=/usr/bin", "PYTHONHOME=/stale", "HOME=/root"}
		})

	f.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string) (context.Context, ports.Span) {
			f.spans = append(f.spans, name)
			return ctx, f.span
		}).AnyTimes()
	f.span.EXPECT().End().AnyTimes()
	f.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	return f
}

var local = domain.Node{Name: domain.LocalNodeName, OS: domain.OSLinux, Root: "/w", Central: true}

func testConfig() *domain.Config {
	return &domain.Config{
		Root:         "/src",
		Nodes:        map[string]domain.Node{local.Name: local},
		Interpreters: map[string]string{"py312": pyHome},
		Steps: map[string]*domain.Step{
			"test": {
				Name:        "test",
				Target:      domain.TargetID{Name: "test"},
				Node:        local.Name,
				Interpreter: "py312",
				Virtualenv:  &domain.VirtualenvOptions{Name: "py312"},
				Packages:    []string{"pytest"},
				Command:     &domain.CommandSpec{Nature: domain.NaturePython, Script: "import sys\n"},
				Environment: domain.EnvVars{"CI": "1"},
				WorkingDir:  "/src",
			},
			"lint": {
				Name:       "lint",
				Target:     domain.TargetID{Name: "lint"},
				Node:       local.Name,
				Children:   []string{"a", "b"},
				Command:    &domain.CommandSpec{Nature: domain.NatureShell, Script: "ruff check ."},
				WorkingDir: "/src",
			},
		},
	}
}

var cpython = &domain.Interpreter{
	Home:       pyHome,
	Variant:    domain.VariantCPython,
	Executable: pyHome + "/bin/python3",
	OS:         domain.OSLinux,
}

var wantVenv = domain.Virtualenv{Home: venvHome, Node: local, PackagesDir: pkgsDir}

func (f *fixture) expectStep(cfg *domain.Config, step string) {
	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.locator.EXPECT().Locate(local, cfg.Workspace, cfg.Steps[step].Target).Return(f.ws)
}

func (f *fixture) expectVenv() {
	f.resolver.EXPECT().Resolve(local, pyHome).Return(cpython, true)
	f.ws.EXPECT().PackagesDir(gomock.Any()).Return(pkgsDir, nil)
	f.ws.EXPECT().VirtualenvHome("py312").Return(venvHome)
}

// expectVenvPath is expectVenv for read-only operations, which never refresh
// the package mirror.
func (f *fixture) expectVenvPath() {
	f.resolver.EXPECT().Resolve(local, pyHome).Return(cpython, true)
	f.ws.EXPECT().PackagesPath().Return(pkgsDir)
	f.ws.EXPECT().VirtualenvHome("py312").Return(venvHome)
}

func TestRunStep_FullPipeline(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.expectVenv()

	wantEnv := domain.EnvVars{
		"PATH":            venvHome + "/bin:" + pyHome + "/bin:/usr/bin",
		"LD_LIBRARY_PATH": pyHome + "/lib",
		"VIRTUAL_ENV":     venvHome,
		"HOME":            "/root",
		"CI":              "1",
	}

	wantOpts := *cfg.Steps["test"].Virtualenv
	wantOpts.Environment = domain.EnvVars{"CI": "1"}

	gomock.InOrder(
		f.venvs.EXPECT().IsOutdated(gomock.Any(), wantVenv, cpython, false).Return(true),
		f.logger.EXPECT().Info("creating virtualenv "+venvHome),
		f.venvs.EXPECT().Create(gomock.Any(), wantVenv, cpython, wantOpts, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Virtualenv, _ *domain.Interpreter,
				_ domain.VirtualenvOptions, env domain.EnvVars, _ ports.Listener,
			) bool {
				// The build environment carries no interpreter or virtualenv
				// layer, and the step overrides travel in the options.
				assert.Equal(t, "/stale", env["PYTHONHOME"])
				assert.Empty(t, env["VIRTUAL_ENV"])
				assert.NotContains(t, env, "CI")
				return true
			}),
		f.venvs.EXPECT().PipInstall(gomock.Any(), wantVenv, "pytest", wantEnv, gomock.Any()).Return(true),
		f.resolver.EXPECT().FindExecutable(local, venvHome, "python3", "python").Return(venvHome+"/bin/python3", true),
		f.executor.EXPECT().Run(gomock.Any(), local, gomock.Any(), wantEnv, "/src", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Node, spec domain.CommandSpec,
				_ domain.EnvVars, _ string, _ ports.Listener,
			) bool {
				assert.Equal(t, venvHome+"/bin/python3", spec.Executable)
				return true
			}),
	)

	require.NoError(t, f.app.RunStep(context.Background(), "test", app.RunOptions{}))
	assert.Equal(t, []string{"step test", "venv.create", "pip pytest", "command"}, f.spans)
}

func TestRunStep_FreshVirtualenvIsReused(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.Steps["test"].Packages = nil
	f.expectStep(cfg, "test")
	f.expectVenv()

	f.venvs.EXPECT().IsOutdated(gomock.Any(), wantVenv, cpython, false).Return(false)
	f.resolver.EXPECT().FindExecutable(local, venvHome, "python3", "python").Return(venvHome+"/bin/python3", true)
	f.executor.EXPECT().Run(gomock.Any(), local, gomock.Any(), gomock.Any(), "/src", gomock.Any()).Return(true)

	require.NoError(t, f.app.RunStep(context.Background(), "test", app.RunOptions{}))
	assert.NotContains(t, f.spans, "venv.create")
}

func TestRunStep_RecreateForcesCreate(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.Steps["test"].Packages = nil
	cfg.Steps["test"].Command = nil
	cfg.Steps["test"].Tox = &domain.ToxOptions{Config: "/src/tox.ini"}
	f.expectStep(cfg, "test")
	f.expectVenv()

	f.logger.EXPECT().Info(gomock.Any())
	f.venvs.EXPECT().Create(gomock.Any(), wantVenv, cpython, gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	f.venvs.EXPECT().Tox(gomock.Any(), wantVenv, *cfg.Steps["test"].Tox, gomock.Any(), gomock.Any()).Return(true)

	require.NoError(t, f.app.RunStep(context.Background(), "test", app.RunOptions{Recreate: true}))
}

func TestRunStep_StepNotFound(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(testConfig(), nil)

	err := f.app.RunStep(context.Background(), "missing", app.RunOptions{})
	require.ErrorContains(t, err, domain.ErrStepNotFound.Error())
}

func TestRunStep_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	err := f.app.RunStep(context.Background(), "test", app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestRunStep_InterpreterNotFound(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.resolver.EXPECT().Resolve(local, pyHome).Return(nil, false)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Equal(t, domain.ErrInterpreterNotFound.Error()+": "+pyHome, err.Error())
	})
	f.span.EXPECT().RecordError(gomock.Any())

	err := f.app.RunStep(context.Background(), "test", app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.Contains(t, err.Error(), "interpreter failed")
	assert.Contains(t, err.Error(), domain.ErrInterpreterNotFound.Error()+": "+pyHome, "fatal line is part of the error")
}

func TestRunStep_PipFailureStopsStep(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.Steps["test"].Packages = []string{"pytest", "coverage"}
	f.expectStep(cfg, "test")
	f.expectVenv()

	f.venvs.EXPECT().IsOutdated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	f.venvs.EXPECT().PipInstall(gomock.Any(), wantVenv, "pytest", gomock.Any(), gomock.Any()).Return(false)
	f.span.EXPECT().RecordError(gomock.Any()).Times(2)

	err := f.app.RunStep(context.Background(), "test", app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.Contains(t, err.Error(), "pip failed")
}

func TestRunStep_CreateFailure(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.expectVenv()

	f.venvs.EXPECT().IsOutdated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	f.logger.EXPECT().Info(gomock.Any())
	f.venvs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Virtualenv, _ *domain.Interpreter,
			_ domain.VirtualenvOptions, _ domain.EnvVars, l ports.Listener,
		) bool {
			l.Fatal("virtualenv exited with status 3")
			return false
		})
	f.logger.EXPECT().Error(gomock.Any())
	f.span.EXPECT().RecordError(gomock.Any()).Times(2)

	err := f.app.RunStep(context.Background(), "test", app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.Contains(t, err.Error(), "virtualenv failed")
	assert.Contains(t, err.Error(), "virtualenv exited with status 3")
}

func TestRunStep_ShellStepWithoutInterpreter(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "lint")

	wantEnv := domain.EnvVars{"PATH": "/usr/bin", "PYTHONHOME": "/stale", "HOME": "/root"}
	f.executor.EXPECT().Run(gomock.Any(), local, *cfg.Steps["lint"].Command, wantEnv, "/src", gomock.Any()).Return(true)

	require.NoError(t, f.app.RunStep(context.Background(), "lint", app.RunOptions{TTY: true}))
}

func TestRunStep_CommandFailure(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "lint")
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	f.span.EXPECT().RecordError(gomock.Any()).Times(2)

	err := f.app.RunStep(context.Background(), "lint", app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.Contains(t, err.Error(), "command failed")
}

func TestRunStep_EnvFile(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.Steps["lint"].EnvFile = "/src/.env"
	f.expectStep(cfg, "lint")
	f.loader.EXPECT().LoadEnvFile("/src/.env").Return(domain.EnvVars{"TOKEN": "x", "PYTHONHOME": ""}, nil)

	wantEnv := domain.EnvVars{"PATH": "/usr/bin", "HOME": "/root", "TOKEN": "x"}
	f.executor.EXPECT().Run(gomock.Any(), local, gomock.Any(), wantEnv, "/src", gomock.Any()).Return(true)

	require.NoError(t, f.app.RunStep(context.Background(), "lint", app.RunOptions{}))
}

func TestPlanStep(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "lint")
	f.ws.EXPECT().Home().Return(wsHome)

	plan, err := f.app.PlanStep(context.Background(), "lint")
	require.NoError(t, err)
	assert.Equal(t, wsHome, plan.Workspace)
	assert.Nil(t, plan.Interpreter)
	assert.Empty(t, plan.Virtualenv)
	assert.Equal(t, "\nruff check .", plan.Script)
	require.Len(t, plan.Argv, 3)
	assert.Equal(t, []string{"sh", "-xe"}, plan.Argv[:2])
}

func TestPlanStep_Virtualenv(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.expectVenvPath()
	f.ws.EXPECT().Home().Return(wsHome)
	f.venvs.EXPECT().Inspect(wantVenv, cpython, false).Return(domain.VirtualenvStatus{State: domain.VirtualenvStale}, nil)

	plan, err := f.app.PlanStep(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, venvHome, plan.Virtualenv)
	assert.Equal(t, domain.VirtualenvStale, plan.VirtualenvState)
	assert.Equal(t, []string{"pytest"}, plan.Packages)
	assert.Equal(t, venvHome+"/bin/python3", plan.Argv[0])
	assert.Equal(t, venvHome, plan.Env["VIRTUAL_ENV"])
}

func TestPlanStep_SatelliteLeavesWorkspaceUntouched(t *testing.T) {
	f := newFixture(t)
	shared := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(shared, "pytest-8.0.whl"), []byte("whl"), domain.FilePerm))

	remote := domain.Node{Name: "remote", OS: domain.OSLinux, Root: t.TempDir()}
	cfg := testConfig()
	cfg.Nodes[remote.Name] = remote
	cfg.Workspace = domain.WorkspaceSettings{PackagesDir: shared}
	step := cfg.Steps["test"]
	step.Node = remote.Name

	ws := workspace.NewLocator(probe.New(), f.logger).Locate(remote, cfg.Workspace, step.Target)
	mirror := filepath.Join(ws.Home(), domain.PackagesDirName)

	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.locator.EXPECT().Locate(remote, cfg.Workspace, step.Target).Return(ws)
	f.resolver.EXPECT().Resolve(remote, pyHome).Return(cpython, true)
	f.venvs.EXPECT().Inspect(gomock.Any(), cpython, false).DoAndReturn(
		func(v domain.Virtualenv, _ *domain.Interpreter, _ bool) (domain.VirtualenvStatus, error) {
			assert.Equal(t, mirror, v.PackagesDir)
			return domain.VirtualenvStatus{State: domain.VirtualenvAbsent}, nil
		})

	plan, err := f.app.PlanStep(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, domain.VirtualenvAbsent, plan.VirtualenvState)
	assert.NoDirExists(t, mirror)
	assert.NoDirExists(t, ws.Home())
}

func TestResolve(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(testConfig(), nil)
	node := domain.Node{Name: domain.LocalNodeName, OS: domain.OSLinux}
	f.resolver.EXPECT().Resolve(node, pyHome).Return(cpython, true)

	res, err := f.app.Resolve("py312", "linux", true)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantCPython, res.Interpreter.Variant)
	assert.Equal(t, cpython.Environment(true), res.Env)
}

func TestResolve_WithoutConfig(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)
	f.resolver.EXPECT().Resolve(gomock.Any(), "/nowhere").Return(nil, false)

	_, err := f.app.Resolve("/nowhere", "linux", false)
	require.ErrorContains(t, err, domain.ErrInterpreterNotFound.Error())
}

func TestResolve_InvalidOS(t *testing.T) {
	f := newFixture(t)
	_, err := f.app.Resolve(pyHome, "plan9", false)
	require.ErrorContains(t, err, domain.ErrInvalidOS.Error())
}

func TestVenvStatus(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.expectVenvPath()
	f.venvs.EXPECT().Inspect(wantVenv, cpython, false).Return(domain.VirtualenvStatus{State: domain.VirtualenvFresh}, nil)

	home, status, err := f.app.VenvStatus(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, venvHome, home)
	assert.Equal(t, domain.VirtualenvFresh, status.State)
}

func TestVenvStatus_StepWithoutVirtualenv(t *testing.T) {
	f := newFixture(t)
	f.expectStep(testConfig(), "lint")

	_, _, err := f.app.VenvStatus(context.Background(), "lint")
	require.ErrorContains(t, err, domain.ErrInvalidStep.Error())
}

func TestCreateVenv(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.expectVenv()

	f.logger.EXPECT().Info("creating virtualenv " + venvHome)
	f.venvs.EXPECT().Create(gomock.Any(), wantVenv, cpython, gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	f.venvs.EXPECT().PipInstall(gomock.Any(), wantVenv, "pytest", gomock.Any(), gomock.Any()).Return(true)

	require.NoError(t, f.app.CreateVenv(context.Background(), "test"))
}

func TestDeleteVenv(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.expectVenvPath()

	f.venvs.EXPECT().Delete(wantVenv).Return(nil)
	f.logger.EXPECT().Info("deleted virtualenv " + venvHome)

	require.NoError(t, f.app.DeleteVenv(context.Background(), "test"))
}

func TestDeleteVenv_Failure(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "test")
	f.expectVenvPath()

	f.venvs.EXPECT().Delete(wantVenv).Return(domain.ErrVirtualenvDeleteFailed)

	err := f.app.DeleteVenv(context.Background(), "test")
	require.ErrorIs(t, err, domain.ErrVirtualenvDeleteFailed)
}

func TestWorkspacePath(t *testing.T) {
	f := newFixture(t)
	f.expectStep(testConfig(), "lint")
	f.ws.EXPECT().Home().Return(wsHome)

	got, err := f.app.WorkspacePath("lint")
	require.NoError(t, err)
	assert.Equal(t, wsHome, got)
}

func TestDeleteWorkspace(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectStep(cfg, "lint")
	f.locator.EXPECT().Delete(gomock.Any(), local, cfg.Workspace, domain.TargetID{Name: "lint"}, []string{"a", "b"}).
		Return(nil)

	require.NoError(t, f.app.DeleteWorkspace(context.Background(), "lint"))
}

func TestSteps(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(testConfig(), nil)

	got, err := f.app.Steps()
	require.NoError(t, err)
	assert.Equal(t, []string{"lint", "test"}, got)
}

func TestShutdown(t *testing.T) {
	f := newFixture(t)
	f.tracer.EXPECT().Shutdown(gomock.Any()).Return(errors.New("flush failed"))

	require.EqualError(t, f.app.Shutdown(context.Background()), "flush failed")
}
