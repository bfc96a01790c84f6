package cli

import (
	"fmt"

	"github.com/hbfa/milestones/internal/cli/formatter"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage non-working days",
	}

	cmd.AddCommand(
		newHolidayListCmd(app),
		newHolidayAddCmd(app),
		newHolidayRemoveCmd(app),
	)

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List the holidays that apply to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Holidays.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No holidays found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHolidays(items))
			return nil
		},
	}
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var project, name string

	cmd := &cobra.Command{
		Use:   "add DATE",
		Short: "Add a holiday; without --project it applies to every project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := domain.Holiday{ProjectID: project, Date: args[0], Name: name}
			if err := app.Holidays.Add(cmd.Context(), h); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added holiday %s\n", h.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project the holiday applies to")
	cmd.Flags().StringVar(&name, "name", "", "Holiday name")

	return cmd
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove DATE",
		Short: "Remove a holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Holidays.Remove(cmd.Context(), project, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed holiday %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project the holiday applies to (empty for shared holidays)")

	return cmd
}
