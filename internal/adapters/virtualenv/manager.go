// Package virtualenv creates, fingerprints and drives Python virtualenvs.
//
// Concurrent Create calls against the same home are not guarded here;
// callers serialize work per target.
package virtualenv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/venvkit/internal/adapters/fs"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.VirtualenvManager.
type Manager struct {
	resolver ports.InterpreterResolver
	executor ports.CommandExecutor
	probe    ports.PathProbe
}

// NewManager creates a new Manager.
func NewManager(
	resolver ports.InterpreterResolver,
	executor ports.CommandExecutor,
	probe ports.PathProbe,
) *Manager {
	return &Manager{resolver: resolver, executor: executor, probe: probe}
}

// Signature returns the newline-joined facts a virtualenv created from base records:
// the base executable, its content digest, the site-packages flag, the package
// cache file names and the base shared libraries. Package contents are not part of it.
func (m *Manager) Signature(venv domain.Virtualenv, base *domain.Interpreter, systemSitePackages bool) (string, error) {
	digest, err := fs.ComputeFileHash(base.Executable)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrSignatureComputeFailed.Error())
	}

	var packages []string
	if venv.PackagesDir != "" && m.probe.IsDir(venv.PackagesDir) {
		packages, err = m.probe.ListFiles(venv.PackagesDir)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrSignatureComputeFailed.Error())
		}
	}

	var libraries []string
	if lib := base.LibDir(); m.probe.IsDir(lib) {
		names, err := m.probe.ListFiles(lib)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrSignatureComputeFailed.Error())
		}
		for _, name := range names {
			if domain.IsSharedLibrary(name) {
				libraries = append(libraries, name)
			}
		}
	}
	slices.Sort(packages)
	slices.Sort(libraries)

	return strings.Join([]string{
		"executable=" + base.Executable,
		"digest=" + fs.FormatHash(digest),
		"system_site_packages=" + strconv.FormatBool(systemSitePackages),
		"packages=" + strings.Join(packages, ","),
		"libraries=" + strings.Join(libraries, ","),
	}, "\n"), nil
}

// Inspect compares the signature recorded in venv with the current one.
func (m *Manager) Inspect(
	venv domain.Virtualenv,
	base *domain.Interpreter,
	systemSitePackages bool,
) (domain.VirtualenvStatus, error) {
	current, err := m.Signature(venv, base, systemSitePackages)
	if err != nil {
		return domain.VirtualenvStatus{}, err
	}
	status := domain.VirtualenvStatus{State: domain.VirtualenvAbsent, Current: current}

	ip, ok := m.resolver.Resolve(venv.Node, venv.Home)
	if !ok || ip.Variant != domain.VariantVirtualenv {
		return status, nil
	}

	data, err := os.ReadFile(venv.SignatureFile())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			status.State = domain.VirtualenvStale
			return status, nil
		}
		return domain.VirtualenvStatus{}, zerr.With(
			zerr.Wrap(err, domain.ErrSignatureComputeFailed.Error()),
			"path", venv.SignatureFile(),
		)
	}

	status.Recorded = string(data)
	if status.Recorded == current {
		status.State = domain.VirtualenvFresh
	} else {
		status.State = domain.VirtualenvStale
	}
	return status, nil
}

// IsOutdated reports whether venv is invalid, unsigned or signed differently.
// Any inspection error counts as outdated.
func (m *Manager) IsOutdated(
	_ context.Context,
	venv domain.Virtualenv,
	base *domain.Interpreter,
	systemSitePackages bool,
) bool {
	status, err := m.Inspect(venv, base, systemSitePackages)
	if err != nil {
		return true
	}
	return status.State != domain.VirtualenvFresh
}

// Create removes venv, recreates it from base with virtualenv and records its signature.
// The base contribution is applied clean so home variables of the base do not
// leak into the new environment. opts.Environment is layered last.
func (m *Manager) Create(
	ctx context.Context,
	venv domain.Virtualenv,
	base *domain.Interpreter,
	opts domain.VirtualenvOptions,
	env domain.EnvVars,
	listener ports.Listener,
) bool {
	if strings.ContainsFunc(venv.Home, unicode.IsSpace) {
		listener.Fatal(fmt.Sprintf("%s: %q", domain.ErrHomeContainsWhitespace.Error(), venv.Home))
		return false
	}

	if err := os.RemoveAll(venv.Home); err != nil {
		listener.Fatal(fmt.Sprintf("%s %s: %v", domain.ErrVirtualenvDeleteFailed.Error(), venv.Home, err))
		return false
	}
	parent := filepath.Dir(venv.Home)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		listener.Fatal(fmt.Sprintf("failed to create %s: %v", parent, err))
		return false
	}

	argv := []string{base.Executable, "-m", "virtualenv"}
	if opts.SystemSitePackages {
		argv = append(argv, "--system-site-packages")
	}
	if venv.PackagesDir != "" {
		argv = append(argv, "--no-download", "--extra-search-dir", venv.PackagesDir)
	} else {
		argv = append(argv, "--download")
	}
	argv = append(argv, venv.Home)

	createEnv := domain.ComposeEnv(venv.Node.OS, env, base.Environment(true), opts.Environment)
	if !m.executor.Launch(ctx, venv.Node, argv, createEnv, parent, listener) {
		return false
	}

	sig, err := m.Signature(venv, base, opts.SystemSitePackages)
	if err != nil {
		listener.Fatal(err.Error())
		return false
	}
	if err := os.WriteFile(venv.SignatureFile(), []byte(sig), domain.FilePerm); err != nil {
		listener.Fatal(fmt.Sprintf("%s %s: %v", domain.ErrSignatureWriteFailed.Error(), venv.SignatureFile(), err))
		return false
	}
	return true
}

// PipInstall installs or upgrades pkg with the virtualenv's own interpreter.
// The package cache, when present, is passed as a find-links location.
func (m *Manager) PipInstall(
	ctx context.Context,
	venv domain.Virtualenv,
	pkg string,
	env domain.EnvVars,
	listener ports.Listener,
) bool {
	python, ok := m.tool(venv, listener, "python3", "python")
	if !ok {
		return false
	}

	argv := []string{python, "-m", "pip", "install", "--upgrade"}
	if venv.PackagesDir != "" {
		argv = append(argv, "-f", venv.PackagesDir)
	}
	argv = append(argv, pkg)

	return m.executor.Launch(ctx, venv.Node, argv, env, venv.Home, listener)
}

// Tox runs the tox installed in venv against opts.Config from the config directory.
func (m *Manager) Tox(
	ctx context.Context,
	venv domain.Virtualenv,
	opts domain.ToxOptions,
	env domain.EnvVars,
	listener ports.Listener,
) bool {
	if !m.requireConfig(opts.Config, listener) {
		return false
	}
	tox, ok := m.tool(venv, listener, "tox")
	if !ok {
		return false
	}

	argv := []string{tox, "-c", opts.Config}
	if opts.Recreate {
		argv = append(argv, "--recreate")
	}
	return m.executor.Launch(ctx, venv.Node, argv, env, filepath.Dir(opts.Config), listener)
}

// Buildout bootstraps buildout next to opts.Config and then runs the
// bootstrapped script. A failed bootstrap stops before the run.
func (m *Manager) Buildout(
	ctx context.Context,
	venv domain.Virtualenv,
	opts domain.BuildoutOptions,
	env domain.EnvVars,
	listener ports.Listener,
) bool {
	if !m.requireConfig(opts.Config, listener) {
		return false
	}
	dir := filepath.Dir(opts.Config)

	var bootstrap []string
	if script := filepath.Join(dir, "bootstrap.py"); m.probe.IsFile(script) {
		python, ok := m.tool(venv, listener, "python3", "python")
		if !ok {
			return false
		}
		bootstrap = []string{python, script, "-c", opts.Config}
	} else {
		buildout, ok := m.tool(venv, listener, "buildout")
		if !ok {
			return false
		}
		bootstrap = []string{buildout, "-c", opts.Config, "bootstrap"}
	}
	if !m.executor.Launch(ctx, venv.Node, bootstrap, env, dir, listener) {
		return false
	}

	local, ok := m.resolver.FindExecutable(venv.Node, dir, "buildout")
	if !ok {
		listener.Fatal(fmt.Sprintf("%s: buildout in %s", domain.ErrMissingExecutable.Error(), dir))
		return false
	}
	return m.executor.Launch(ctx, venv.Node, []string{local, "-c", opts.Config}, env, dir, listener)
}

// Delete removes the virtualenv home.
func (m *Manager) Delete(venv domain.Virtualenv) error {
	if err := os.RemoveAll(venv.Home); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVirtualenvDeleteFailed.Error()), "home", venv.Home)
	}
	return nil
}

func (m *Manager) tool(venv domain.Virtualenv, listener ports.Listener, names ...string) (string, bool) {
	path, ok := m.resolver.FindExecutable(venv.Node, venv.Home, names...)
	if !ok {
		listener.Fatal(fmt.Sprintf("%s: %s in %s", domain.ErrMissingExecutable.Error(), names[0], venv.Home))
	}
	return path, ok
}

func (m *Manager) requireConfig(path string, listener ports.Listener) bool {
	if m.probe.IsFile(path) {
		return true
	}
	listener.Fatal(fmt.Sprintf("%s: %s", domain.ErrConfigurationFileNotFound.Error(), path))
	return false
}
