// Package detector inspects the terminal and CI environment to pick the
// process attachment mode.
package detector

import (
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// TTYMode is the user choice for attaching child processes to a pseudo terminal.
type TTYMode string

const (
	// TTYAuto attaches a pseudo terminal when stdout is a terminal outside CI.
	TTYAuto TTYMode = "auto"
	// TTYAlways always attaches a pseudo terminal.
	TTYAlways TTYMode = "always"
	// TTYNever never attaches a pseudo terminal.
	TTYNever TTYMode = "never"
)

// ErrInvalidTTYMode is returned for an unknown --tty value.
var ErrInvalidTTYMode = zerr.New("invalid tty mode, expected 'auto', 'always' or 'never'")

// IsCI reports whether the CI environment variable is set to a true value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// DetectTTY reports whether stdout is a terminal and the process does not run in CI.
func DetectTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && !IsCI()
}

// ResolveTTY applies the user flag to the detected value.
func ResolveTTY(detected bool, flag string) (bool, error) {
	switch TTYMode(flag) {
	case TTYAlways:
		return true, nil
	case TTYNever:
		return false, nil
	case TTYAuto, "":
		return detected, nil
	default:
		return false, zerr.With(ErrInvalidTTYMode, "tty", flag)
	}
}
