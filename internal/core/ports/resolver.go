package ports

import "go.trai.ch/venvkit/internal/core/domain"

// InterpreterResolver identifies the Python installation at a home directory.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InterpreterResolver interface {
	// Resolve returns the first variant, in priority order, that accepts home.
	// It returns false when no variant recognizes the home.
	Resolve(node domain.Node, home string) (*domain.Interpreter, bool)

	// FindExecutable locates one of names below home using the interpreter
	// discovery convention.
	FindExecutable(node domain.Node, home string, names ...string) (string, bool)
}
