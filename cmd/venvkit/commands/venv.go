package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/ui/output"
	"go.trai.ch/venvkit/internal/ui/style"
)

func (c *CLI) newVenvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venv",
		Short: "Inspect and manage step virtualenvs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status <step>",
		Short: "Report whether the step virtualenv is up to date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, status, err := c.app.VenvStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r := &output.Report{}
			r.Add("home", home)
			addState(r, status.State)
			for _, line := range status.Diff() {
				r.AddStyled("changed", line, style.Stale)
			}
			return r.Render(cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <step>",
		Short: "Recreate the step virtualenv and install its packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.CreateVenv(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <step>",
		Short: "Delete the step virtualenv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DeleteVenv(cmd.Context(), args[0])
		},
	})

	return cmd
}

func addState(r *output.Report, state domain.VirtualenvState) {
	switch state {
	case domain.VirtualenvFresh:
		r.AddStyled("status", style.Check+" up to date", style.Good)
	case domain.VirtualenvStale:
		r.AddStyled("status", style.Warning+" outdated", style.Stale)
	default:
		r.AddStyled("status", style.Circle+" absent", style.Bad)
	}
}
