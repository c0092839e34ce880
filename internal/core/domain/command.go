package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Nature selects how a command script is materialized and invoked.
type Nature string

const (
	// NaturePython runs the script with the resolved Python interpreter.
	NaturePython Nature = "python"
	// NatureShell runs the script with the native shell of the node.
	NatureShell Nature = "shell"
	// NatureXShell translates the script to the native shell dialect before running it.
	NatureXShell Nature = "xshell"
)

// ParseNature parses a configured nature name. An empty name means shell.
func ParseNature(s string) (Nature, error) {
	switch Nature(strings.ToLower(strings.TrimSpace(s))) {
	case "", NatureShell:
		return NatureShell, nil
	case NaturePython:
		return NaturePython, nil
	case NatureXShell:
		return NatureXShell, nil
	default:
		return "", zerr.With(ErrInvalidNature, "nature", s)
	}
}

// CommandSpec is a user script to run inside a composed environment.
type CommandSpec struct {
	// Nature selects materialization and invocation.
	Nature Nature
	// Script is the script body. Line endings are normalized to "\n".
	Script string
	// IgnoreExitCode reports success regardless of the process exit status.
	IgnoreExitCode bool
	// Executable is the Python interpreter used by the python nature.
	Executable string
}

// NewCommandSpec builds a CommandSpec with its script line endings normalized.
func NewCommandSpec(nature Nature, script string, ignoreExitCode bool) CommandSpec {
	return CommandSpec{
		Nature:         nature,
		Script:         NormalizeLineEndings(script),
		IgnoreExitCode: ignoreExitCode,
	}
}

// NormalizeLineEndings converts CRLF line endings to LF.
func NormalizeLineEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
