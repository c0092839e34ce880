package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/venvkit/internal/app"
	"go.trai.ch/venvkit/internal/ui/output"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [step]",
		Short: "Provision the step virtualenv and run the step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			recreate, _ := cmd.Flags().GetBool("recreate")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			if dryRun {
				plan, err := c.app.PlanStep(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return renderPlan(cmd.OutOrStdout(), plan)
			}

			tty, err := c.ttyEnabled()
			if err != nil {
				return err
			}
			return c.app.RunStep(cmd.Context(), args[0], app.RunOptions{
				Recreate: recreate,
				TTY:      tty,
			})
		},
	}
	cmd.Flags().BoolP("recreate", "r", false, "Recreate the virtualenv even when it is up to date")
	cmd.Flags().BoolP("dry-run", "n", false, "Print what the step would run without running it")
	return cmd
}

func renderPlan(w io.Writer, plan *app.Plan) error {
	r := &output.Report{}
	r.Add("step", plan.Step).
		Add("node", fmt.Sprintf("%s (%s)", plan.Node.Name, plan.Node.OS)).
		Add("workspace", plan.Workspace)
	if plan.Interpreter != nil {
		r.Add("interpreter", fmt.Sprintf("%s (%s)", plan.Interpreter.Home, plan.Interpreter.Variant))
	}
	if plan.Virtualenv != "" {
		r.Add("virtualenv", plan.Virtualenv)
		addState(r, plan.VirtualenvState)
	}
	if len(plan.Packages) > 0 {
		r.Add("packages", strings.Join(plan.Packages, " "))
	}
	if len(plan.Argv) > 0 {
		r.Add("command", strings.Join(plan.Argv, " "))
	}
	if err := r.Render(w); err != nil {
		return err
	}

	if plan.Script != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(plan.Script))
		return err
	}
	return nil
}
