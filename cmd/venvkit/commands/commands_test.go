package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/venvkit/cmd/venvkit/commands"
	"go.trai.ch/venvkit/internal/app"
	"go.trai.ch/venvkit/internal/build"
	"go.trai.ch/venvkit/internal/core/domain"
)

type mockApp struct {
	runFunc    func(ctx context.Context, name string, opts app.RunOptions) error
	planFunc   func(ctx context.Context, name string) (*app.Plan, error)
	status     domain.VirtualenvStatus
	deleted    []string
	verbose    bool
	resolveErr error
}

func (m *mockApp) RunStep(ctx context.Context, name string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, name, opts)
	}
	return nil
}

func (m *mockApp) PlanStep(ctx context.Context, name string) (*app.Plan, error) {
	if m.planFunc != nil {
		return m.planFunc(ctx, name)
	}
	return &app.Plan{Step: name}, nil
}

func (m *mockApp) Resolve(home, osName string, clean bool) (*app.ResolveResult, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	ip := &domain.Interpreter{Home: home, Variant: domain.VariantCPython, Executable: home + "/bin/python3", OS: domain.OSLinux}
	return &app.ResolveResult{Interpreter: ip, Env: ip.Environment(clean)}, nil
}

func (m *mockApp) VenvStatus(_ context.Context, _ string) (string, domain.VirtualenvStatus, error) {
	return "/w/virtualenvs/py312", m.status, nil
}

func (m *mockApp) CreateVenv(_ context.Context, _ string) error { return nil }

func (m *mockApp) DeleteVenv(_ context.Context, name string) error {
	m.deleted = append(m.deleted, "venv:"+name)
	return nil
}

func (m *mockApp) WorkspacePath(_ string) (string, error) { return "/w/jobs/76b5a357391276b2", nil }

func (m *mockApp) DeleteWorkspace(_ context.Context, name string) error {
	m.deleted = append(m.deleted, "workspace:"+name)
	return nil
}

func (m *mockApp) Steps() ([]string, error) { return []string{"lint", "test"}, nil }

func (m *mockApp) SetVerbose(enabled bool) { m.verbose = enabled }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a, commands.WithTTYDetector(func() bool { return false }))
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		var capturedStep string
		mock := &mockApp{
			runFunc: func(_ context.Context, name string, opts app.RunOptions) error {
				captured = opts
				capturedStep = name
				return nil
			},
		}

		_, err := execute(t, mock, "run", "test", "--recreate", "--tty", "always", "-v")
		require.NoError(t, err)
		assert.Equal(t, "test", capturedStep)
		assert.True(t, captured.Recreate)
		assert.True(t, captured.TTY)
		assert.True(t, mock.verbose)
	})

	t.Run("tty follows detection by default", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "run", "test")
		require.NoError(t, err)
		assert.False(t, captured.TTY)
	})

	t.Run("rejects invalid tty mode", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "run", "test", "--tty", "sometimes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid tty mode")
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "run", "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no step provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "run")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})

	t.Run("dry run prints the plan", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
			planFunc: func(_ context.Context, name string) (*app.Plan, error) {
				return &app.Plan{
					Step:            name,
					Node:            domain.Node{Name: "local", OS: domain.OSLinux},
					Workspace:       "/w/h",
					Virtualenv:      "/w/h/virtualenvs/py312",
					VirtualenvState: domain.VirtualenvFresh,
					Packages:        []string{"pytest"},
					Script:          "\npytest -q",
					Argv:            []string{"sh", "-xe", "/src/venvkit-XXXXXX.sh"},
				}, nil
			},
		}

		out, err := execute(t, mock, "run", "test", "--dry-run")
		require.NoError(t, err)
		assert.Equal(t, "step:       test\n"+
			"node:       local (linux)\n"+
			"workspace:  /w/h\n"+
			"virtualenv: /w/h/virtualenvs/py312\n"+
			"status:     ✓ up to date\n"+
			"packages:   pytest\n"+
			"command:    sh -xe /src/venvkit-XXXXXX.sh\n"+
			"\npytest -q\n", out)
	})
}

func TestCommands_Resolve(t *testing.T) {
	out, err := execute(t, &mockApp{}, "resolve", "/opt/py", "--os", "linux")
	require.NoError(t, err)
	assert.Contains(t, out, "variant:    cpython\n")
	assert.Contains(t, out, "executable: /opt/py/bin/python3\n")
	assert.Contains(t, out, "PYTHONHOME=/opt/py\n")

	_, err = execute(t, &mockApp{resolveErr: domain.ErrInterpreterNotFound}, "resolve", "/nowhere")
	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
}

func TestCommands_VenvStatus(t *testing.T) {
	mock := &mockApp{status: domain.VirtualenvStatus{
		State:    domain.VirtualenvStale,
		Recorded: "packages=a.whl",
		Current:  "packages=a.whl,b.whl",
	}}

	out, err := execute(t, mock, "venv", "status", "test")
	require.NoError(t, err)
	assert.Equal(t, "home:    /w/virtualenvs/py312\n"+
		"status:  ! outdated\n"+
		"changed: packages=a.whl,b.whl\n", out)
}

func TestCommands_Delete(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "venv", "delete", "test")
	require.NoError(t, err)
	_, err = execute(t, mock, "workspace", "delete", "lint")
	require.NoError(t, err)

	assert.Equal(t, []string{"venv:test", "workspace:lint"}, mock.deleted)
}

func TestCommands_WorkspacePath(t *testing.T) {
	out, err := execute(t, &mockApp{}, "workspace", "path", "lint")
	require.NoError(t, err)
	assert.Equal(t, "/w/jobs/76b5a357391276b2\n", out)
}

func TestCommands_Steps(t *testing.T) {
	out, err := execute(t, &mockApp{}, "steps")
	require.NoError(t, err)
	assert.Equal(t, "lint\ntest\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
