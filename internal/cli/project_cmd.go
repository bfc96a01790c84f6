package cli

import (
	"fmt"

	"github.com/hbfa/milestones/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project names and aliases",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the selectable projects",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, p := range app.Projects.Options() {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "resolve NAME",
			Short: "Show the canonical id and lookup order for a project name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResolution(app.Projects.Resolve(args[0])))
				return nil
			},
		},
	)

	return cmd
}
