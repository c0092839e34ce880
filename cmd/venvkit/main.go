// Package main is the entry point for the venvkit virtualenv tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/venvkit/cmd/venvkit/commands"
	"go.trai.ch/venvkit/internal/app"
	"go.trai.ch/venvkit/internal/core/domain"
	_ "go.trai.ch/venvkit/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App, commands.WithLogger(components.Logger))
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	err = cli.Execute(ctx)
	if shutdownErr := components.App.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
		components.Logger.Warn("failed to flush telemetry: " + shutdownErr.Error())
	}
	if err != nil {
		// Step failures were already reported line by line.
		if errors.Is(err, domain.ErrStepFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
