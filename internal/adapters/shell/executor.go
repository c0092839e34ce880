// Package shell runs user scripts and tool invocations as child processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long output is drained after a cancelled process is killed.
const waitDelay = 2 * time.Second

// Executor implements ports.CommandExecutor using os/exec and, optionally, a pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

type ttyKey struct{}

// WithTTY returns a context under which child processes run attached to a
// pseudo terminal, merging stdout and stderr.
func WithTTY(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, ttyKey{}, enabled)
}

func ttyEnabled(ctx context.Context) bool {
	enabled, _ := ctx.Value(ttyKey{}).(bool)
	return enabled
}

// Run materializes spec as a temporary script inside workDir and executes it.
// The script file is removed on every path, including failures and cancellation.
func (e *Executor) Run(
	ctx context.Context,
	node domain.Node,
	spec domain.CommandSpec,
	env domain.EnvVars,
	workDir string,
	listener ports.Listener,
) bool {
	// The script path must stay valid once the process runs inside workDir.
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	script := Materialize(node.OS, spec, workDir)

	path, err := writeScript(workDir, script)
	if err != nil {
		listener.Fatal(err.Error())
		return false
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			listener.Warn(fmt.Sprintf("failed to delete script %s: %v", path, err))
		}
	}()

	argv, err := Invocation(node.OS, spec, script, path)
	if err != nil {
		listener.Fatal(err.Error())
		return false
	}

	code, err := e.execute(ctx, argv, domain.ComposeEnv(node.OS, env, script.Env), workDir, listener)
	if err != nil {
		listener.Fatal(err.Error())
		return false
	}
	if spec.IgnoreExitCode {
		return true
	}
	if code != 0 {
		listener.Warn(fmt.Sprintf("script exited with status %d", code))
		return false
	}
	return true
}

// Launch executes argv and succeeds only on a zero exit status.
func (e *Executor) Launch(
	ctx context.Context,
	_ domain.Node,
	argv []string,
	env domain.EnvVars,
	workDir string,
	listener ports.Listener,
) bool {
	if len(argv) == 0 {
		listener.Fatal("empty command")
		return false
	}

	code, err := e.execute(ctx, argv, env, workDir, listener)
	if err != nil {
		listener.Fatal(err.Error())
		return false
	}
	if code != 0 {
		listener.Warn(fmt.Sprintf("%s exited with status %d", filepath.Base(argv[0]), code))
		return false
	}
	return true
}

// execute runs argv to completion and returns its exit status. An error is
// returned only when the process could not be run or was cancelled.
func (e *Executor) execute(
	ctx context.Context,
	argv []string,
	env domain.EnvVars,
	workDir string,
	listener ports.Listener,
) (int, error) {
	listener.Info("$ " + strings.Join(argv, " "))

	name := argv[0]
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	newCmd := func() *exec.Cmd {
		cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command
		cmd.Args[0] = name
		cmd.Dir = workDir
		cmd.Env = env.Slice()
		// Grandchildren may hold the output pipes open after a cancelled process is killed.
		cmd.WaitDelay = waitDelay
		return cmd
	}

	stdout := newLogWriter(listener.Info)
	stderr := newLogWriter(listener.Warn)

	var err error
	ran := false
	if ttyEnabled(ctx) {
		ran, err = runPTY(newCmd(), stdout)
		if !ran {
			e.logger.Warn(fmt.Sprintf("pty unavailable, falling back to pipes: %v", err))
		}
	}
	if !ran {
		cmd := newCmd()
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		err = cmd.Run()
	}
	_ = stdout.Close()
	_ = stderr.Close()

	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, zerr.With(zerr.Wrap(ctxErr, "command cancelled"), "command", name)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.With(zerr.Wrap(err, domain.ErrProcessStartFailed.Error()), "command", name)
}

func writeScript(workDir string, script Script) (string, error) {
	f, err := os.CreateTemp(workDir, domain.ScriptPrefix+"*"+script.Ext)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "dir", workDir)
	}
	path := f.Name()

	_, werr := f.WriteString(script.Content)
	cerr := f.Close()
	if err := errors.Join(werr, cerr, os.Chmod(path, domain.ScriptPerm)); err != nil {
		_ = os.Remove(path)
		return "", zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "path", path)
	}
	return path, nil
}

// runPTY runs cmd on a pseudo terminal. It reports false when the
// terminal could not be allocated and cmd was never started.
func runPTY(cmd *exec.Cmd, out io.Writer) (bool, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		if cmd.Process == nil {
			return false, err
		}
		return true, zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// A pty merges stdout and stderr.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return true, err
}

// logWriter splits a byte stream into lines and forwards each to sink.
type logWriter struct {
	mu   sync.Mutex
	sink func(string)
	buf  []byte
}

func newLogWriter(sink func(string)) *logWriter {
	return &logWriter{sink: sink}
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	w.sink(strings.TrimSuffix(string(line), "\r"))
}

// lookPath searches for an executable in the directories named by the PATH of env.
func lookPath(file string, env domain.EnvVars) (string, error) {
	path, _ := env.Get(domain.HostOS(), "PATH")
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
