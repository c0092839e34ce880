package ports

// Listener receives the diagnostic output of a single step.
// Process output lines are delivered as they are produced.
//
//go:generate mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks
type Listener interface {
	// Info records a line of regular output.
	Info(msg string)
	// Warn records a line of diagnostic output, such as a child process stderr.
	Warn(msg string)
	// Fatal records a failure that terminates the step.
	Fatal(msg string)
}
