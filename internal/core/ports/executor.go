package ports

import (
	"context"

	"go.trai.ch/venvkit/internal/core/domain"
)

// CommandExecutor runs user scripts and tool invocations on a node.
// Failures are reported to the listener; the boolean result is true on success.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandExecutor interface {
	// Run materializes spec into a temporary script inside workDir and executes it.
	Run(
		ctx context.Context,
		node domain.Node,
		spec domain.CommandSpec,
		env domain.EnvVars,
		workDir string,
		listener Listener,
	) bool

	// Launch executes argv directly and succeeds only on a zero exit status.
	Launch(
		ctx context.Context,
		node domain.Node,
		argv []string,
		env domain.EnvVars,
		workDir string,
		listener Listener,
	) bool
}
