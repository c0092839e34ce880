package ports

import (
	"context"

	"go.trai.ch/venvkit/internal/core/domain"
)

// VirtualenvManager provisions and drives virtualenvs.
//
//go:generate mockgen -source=virtualenv.go -destination=mocks/mock_virtualenv.go -package=mocks
type VirtualenvManager interface {
	// Signature computes the fingerprint a virtualenv created from base would record.
	Signature(venv domain.Virtualenv, base *domain.Interpreter, systemSitePackages bool) (string, error)

	// Inspect compares the recorded signature of venv with the current one.
	Inspect(venv domain.Virtualenv, base *domain.Interpreter, systemSitePackages bool) (domain.VirtualenvStatus, error)
	// IsOutdated reports whether venv must be recreated.
	IsOutdated(ctx context.Context, venv domain.Virtualenv, base *domain.Interpreter, systemSitePackages bool) bool

	// Create deletes and recreates venv from base, then records its signature.
	Create(
		ctx context.Context,
		venv domain.Virtualenv,
		base *domain.Interpreter,
		opts domain.VirtualenvOptions,
		env domain.EnvVars,
		listener Listener,
	) bool

	// PipInstall installs or upgrades a package inside venv.
	PipInstall(ctx context.Context, venv domain.Virtualenv, pkg string, env domain.EnvVars, listener Listener) bool

	// Tox runs tox against a configuration file.
	Tox(
		ctx context.Context,
		venv domain.Virtualenv,
		opts domain.ToxOptions,
		env domain.EnvVars,
		listener Listener,
	) bool

	// Buildout bootstraps and runs buildout against a configuration file.
	Buildout(
		ctx context.Context,
		venv domain.Virtualenv,
		opts domain.BuildoutOptions,
		env domain.EnvVars,
		listener Listener,
	) bool

	// Delete removes the virtualenv home.
	Delete(venv domain.Virtualenv) error
}
