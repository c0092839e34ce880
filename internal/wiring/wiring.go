// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/venvkit/internal/adapters/config"
	_ "go.trai.ch/venvkit/internal/adapters/interpreter"
	_ "go.trai.ch/venvkit/internal/adapters/logger"
	_ "go.trai.ch/venvkit/internal/adapters/probe"
	_ "go.trai.ch/venvkit/internal/adapters/shell"
	_ "go.trai.ch/venvkit/internal/adapters/telemetry"
	_ "go.trai.ch/venvkit/internal/adapters/virtualenv"
	_ "go.trai.ch/venvkit/internal/adapters/workspace"
	// Register app nodes.
	_ "go.trai.ch/venvkit/internal/app"
)
