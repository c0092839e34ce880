package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/venvkit/internal/app"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	tracer *mocks.MockTracer
}

func newProvider(t *testing.T) (ComponentProvider, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
	}
	application := app.New(
		deps.loader,
		mocks.NewMockInterpreterResolver(ctrl),
		mocks.NewMockCommandExecutor(ctrl),
		mocks.NewMockVirtualenvManager(ctrl),
		mocks.NewMockWorkspaceLocator(ctrl),
		deps.logger,
		deps.tracer,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: deps.logger,
		}, func() {}, nil
	}
	return provider, deps
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, deps := newProvider(t)
	deps.tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "venvkit version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, deps := newProvider(t)
	deps.tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)
	deps.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)
	deps.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	exitCode := run(context.Background(), []string{"steps"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ShutdownFailureIsReported verifies that a telemetry flush failure only warns.
func TestRun_ShutdownFailureIsReported(t *testing.T) {
	provider, deps := newProvider(t)
	deps.tracer.EXPECT().Shutdown(gomock.Any()).Return(errors.New("exporter down"))
	deps.logger.EXPECT().Warn("failed to flush telemetry: exporter down")

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_AppliesOptions verifies that options are applied to the App.
func TestRun_AppliesOptions(t *testing.T) {
	provider, deps := newProvider(t)
	deps.tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	called := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider,
		func(*app.App) { called = true })

	assert.Equal(t, 0, exitCode)
	assert.True(t, called)
}
