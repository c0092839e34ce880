package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no venvkit.yaml exists in the directory tree.
	ErrConfigNotFound = zerr.New("could not find venvkit.yaml")

	// ErrEnvFileReadFailed is returned when a step env_file cannot be read.
	ErrEnvFileReadFailed = zerr.New("failed to read env file")

	// ErrStepNotFound is returned when a requested step is not declared.
	ErrStepNotFound = zerr.New("step not found")

	// ErrNodeNotFound is returned when a step references an undeclared node.
	ErrNodeNotFound = zerr.New("node not found")

	// ErrInterpreterNotDeclared is returned when a step references an undeclared interpreter.
	ErrInterpreterNotDeclared = zerr.New("interpreter not declared")

	// ErrInvalidStep is returned when a step declaration is inconsistent.
	ErrInvalidStep = zerr.New("invalid step")

	// ErrInvalidNature is returned when a command nature is not one of python, shell or xshell.
	ErrInvalidNature = zerr.New("invalid command nature, expected 'python', 'shell' or 'xshell'")

	// ErrInvalidOS is returned when a node declares an unsupported operating system.
	ErrInvalidOS = zerr.New("invalid node os, expected 'linux', 'darwin' or 'windows'")

	// ErrMultipleCentralNodes is returned when more than one node is marked central.
	ErrMultipleCentralNodes = zerr.New("only one node can be central")

	// ErrNoCentralNode is returned when several nodes are declared and none is central.
	ErrNoCentralNode = zerr.New("one node must be central when several nodes are declared")

	// ErrInvalidTarget is returned when a target identifier cannot be parsed.
	ErrInvalidTarget = zerr.New("invalid target, expected 'name' or 'parent/name'")

	// ErrInterpreterNotFound is returned when no variant recognizes an installation home.
	ErrInterpreterNotFound = zerr.New("no Python installation found")

	// ErrHomeContainsWhitespace is returned when a virtualenv home path contains whitespace.
	ErrHomeContainsWhitespace = zerr.New("virtualenv home must not contain whitespace")

	// ErrConfigurationFileNotFound is returned when a tox or buildout configuration is missing.
	ErrConfigurationFileNotFound = zerr.New("configuration file not found")

	// ErrMissingExecutable is returned when a tool cannot be located inside an environment.
	ErrMissingExecutable = zerr.New("executable not found")

	// ErrScriptWriteFailed is returned when a script cannot be materialized to disk.
	ErrScriptWriteFailed = zerr.New("failed to write script file")

	// ErrProcessStartFailed is returned when a child process cannot be spawned.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrSignatureWriteFailed is returned when a virtualenv signature cannot be persisted.
	ErrSignatureWriteFailed = zerr.New("failed to write virtualenv signature")

	// ErrSignatureComputeFailed is returned when a virtualenv signature cannot be computed.
	ErrSignatureComputeFailed = zerr.New("failed to compute virtualenv signature")

	// ErrVirtualenvDeleteFailed is returned when a virtualenv home cannot be removed.
	ErrVirtualenvDeleteFailed = zerr.New("failed to delete virtualenv")

	// ErrPackageSyncFailed is returned when the satellite package mirror cannot be refreshed.
	ErrPackageSyncFailed = zerr.New("failed to synchronize package cache")

	// ErrWorkspaceDeleteFailed is returned when a workspace home cannot be removed.
	ErrWorkspaceDeleteFailed = zerr.New("failed to delete workspace")

	// ErrStepFailed is returned when any phase of a step reports failure.
	ErrStepFailed = zerr.New("step failed")
)
