package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/venvkit/internal/ui/output"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <home|interpreter>",
		Short: "Identify the Python installation at a home and print its environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			osName, _ := cmd.Flags().GetString("os")
			clean, _ := cmd.Flags().GetBool("clean")

			res, err := c.app.Resolve(args[0], osName, clean)
			if err != nil {
				return err
			}

			r := &output.Report{}
			r.Add("home", res.Interpreter.Home).
				Add("variant", string(res.Interpreter.Variant)).
				Add("executable", res.Interpreter.Executable)
			if err := r.Render(cmd.OutOrStdout()); err != nil {
				return err
			}

			if len(res.Env) == 0 {
				return nil
			}
			var b strings.Builder
			b.WriteString("\n")
			for _, kv := range slices.Sorted(slices.Values(res.Env.Slice())) {
				fmt.Fprintln(&b, kv)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().String("os", "", "Operating system of the node: linux, darwin or windows (default: host)")
	cmd.Flags().Bool("clean", false, "Print the clean contribution used to build virtualenvs")
	return cmd
}
