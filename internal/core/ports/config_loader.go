package ports

import "go.trai.ch/venvkit/internal/core/domain"

// ConfigLoader defines the interface for loading the venvkit configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds venvkit.yaml by walking up from cwd and returns its snapshot.
	Load(cwd string) (*domain.Config, error)

	// LoadEnvFile reads a dotenv file into environment variables.
	LoadEnvFile(path string) (domain.EnvVars, error)
}
