// Package commands implements the CLI commands for venvkit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/venvkit/internal/adapters/detector" //nolint:depguard // TTY resolution for the CLI
	"go.trai.ch/venvkit/internal/app"
	"go.trai.ch/venvkit/internal/build"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
)

// CLI represents the command line interface for venvkit.
type CLI struct {
	app       Application
	logger    ports.Logger
	detectTTY func() bool
	rootCmd   *cobra.Command

	json    bool
	verbose bool
	tty     string
}

// Application represents the application logic interface.
type Application interface {
	RunStep(ctx context.Context, name string, opts app.RunOptions) error
	PlanStep(ctx context.Context, name string) (*app.Plan, error)
	Resolve(home, osName string, clean bool) (*app.ResolveResult, error)
	VenvStatus(ctx context.Context, name string) (string, domain.VirtualenvStatus, error)
	CreateVenv(ctx context.Context, name string) error
	DeleteVenv(ctx context.Context, name string) error
	WorkspacePath(name string) (string, error)
	DeleteWorkspace(ctx context.Context, name string) error
	Steps() ([]string, error)
	SetVerbose(enabled bool)
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogger lets the root flags switch the logger into JSON mode.
func WithLogger(log ports.Logger) Option {
	return func(c *CLI) { c.logger = log }
}

// WithTTYDetector replaces terminal detection. Used for testing.
func WithTTYDetector(fn func() bool) Option {
	return func(c *CLI) { c.detectTTY = fn }
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "venvkit",
		Short:         "Provision Python virtualenvs and run build steps inside them",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:       a,
		detectTTY: detector.DetectTTY,
		rootCmd:   rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&c.json, "json", false, "Emit log records as JSON")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "Report every completed step phase")
	pf.StringVar(&c.tty, "tty", string(detector.TTYAuto), "Attach child processes to a pseudo terminal: auto, always or never")
	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVenvCmd())
	rootCmd.AddCommand(c.newWorkspaceCmd())
	rootCmd.AddCommand(c.newStepsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configure(_ *cobra.Command, _ []string) error {
	if j, ok := c.logger.(interface{ SetJSON(bool) }); ok {
		j.SetJSON(c.json)
	}
	c.app.SetVerbose(c.verbose)
	return nil
}

func (c *CLI) ttyEnabled() (bool, error) {
	return detector.ResolveTTY(c.detectTTY(), c.tty)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
