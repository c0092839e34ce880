package logger

import (
	"sync"

	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// StepListener implements ports.Listener on top of a Logger and remembers
// whether a fatal line was reported. It is safe for concurrent use.
type StepListener struct {
	logger ports.Logger

	mu     sync.Mutex
	failed bool
	fatals []string
}

// NewListener creates a listener for the named step. Output is attributed
// to the step when log supports it.
func NewListener(log ports.Logger, step string) *StepListener {
	if s, ok := log.(interface{ ForStep(string) ports.Logger }); ok && step != "" {
		log = s.ForStep(step)
	}
	return &StepListener{logger: log}
}

// Info forwards a regular output line.
func (l *StepListener) Info(msg string) {
	l.logger.Info(msg)
}

// Warn forwards a diagnostic output line.
func (l *StepListener) Warn(msg string) {
	l.logger.Warn(msg)
}

// Fatal records a step failure and logs it as an error.
func (l *StepListener) Fatal(msg string) {
	l.mu.Lock()
	l.failed = true
	l.fatals = append(l.fatals, msg)
	l.mu.Unlock()

	l.logger.Error(zerr.New(msg))
}

// Failed reports whether Fatal was called.
func (l *StepListener) Failed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failed
}

// Fatals returns the fatal messages in the order they were reported.
func (l *StepListener) Fatals() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.fatals...)
}
