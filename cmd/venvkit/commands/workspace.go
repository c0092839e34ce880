package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newWorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Locate and delete step workspaces",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path <step>",
		Short: "Print the workspace home of a step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := c.app.WorkspacePath(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), home)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <step>",
		Short: "Delete the workspace of a step and of its children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DeleteWorkspace(cmd.Context(), args[0])
		},
	})

	return cmd
}
