package cli

import (
	"fmt"

	"github.com/hbfa/milestones/internal/cli/formatter"
	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/spf13/cobra"
)

func newUnitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "Manage unit inventory and unit schedules",
	}

	cmd.AddCommand(
		newUnitListCmd(app),
		newUnitImportCmd(app),
		newUnitShowCmd(app),
		newUnitSaveCmd(app),
	)

	return cmd
}

func newUnitListCmd(app *App) *cobra.Command {
	var building string

	cmd := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List the inventory of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			projectID := args[0]
			var units []*domain.Unit
			if building != "" {
				found, err := app.Units.ListByBuilding(ctx, projectID, building)
				if err != nil {
					return err
				}
				units = found
			} else {
				listing, err := app.Units.ListByProject(ctx, projectID)
				if err != nil {
					return err
				}
				units = listing.Units
				if listing.ResolvedProjectID != "" && listing.ResolvedProjectID != projectID {
					fmt.Fprintln(out, formatter.Dim("stored as "+listing.ResolvedProjectID))
					projectID = listing.ResolvedProjectID
				}
			}

			if len(units) == 0 {
				fmt.Fprintln(out, "No units found.")
				return nil
			}

			statuses, err := app.Sales.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			byUnit := make(map[string]*domain.SalesStatus, len(statuses))
			for _, st := range statuses {
				byUnit[st.ContractUnitNumber] = st
			}

			fmt.Fprint(out, formatter.FormatUnits(units, byUnit))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d units in %d buildings", len(units), len(domain.BuildingIDs(units)))))
			return nil
		},
	}

	cmd.Flags().StringVar(&building, "building", "", "Only list units of this building")

	return cmd
}

func newUnitImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import units, holidays and sales statuses from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Units.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportSummary(summary))
			return nil
		},
	}
}

func newUnitShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show PROJECT BUILDING UNIT",
		Short: "Show the projected milestones of a unit and its building",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Milestones.Projection(cmd.Context(), contract.ProjectionRequest{
				ProjectID:  args[0],
				BuildingID: args[1],
				UnitNumber: args[2],
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjection(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the projection as JSON")

	return cmd
}

func newUnitSaveCmd(app *App) *cobra.Command {
	var (
		anchor     string
		overrides  map[string]string
		status     string
		statusDate string
	)

	cmd := &cobra.Command{
		Use:   "save PROJECT BUILDING UNIT",
		Short: "Update a unit schedule and optionally its sales status",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := app.Milestones.GetUnit(ctx, args[0], args[1], args[2])
			if err != nil {
				return err
			}

			next := current.Schedule.Clone()
			if cmd.Flags().Changed("anchor") {
				next.Anchor = anchor
			}
			if next.Overrides, err = applyOverrides(next.Overrides, overrides); err != nil {
				return err
			}

			req := contract.SaveUnitRequest{
				ProjectID:  args[0],
				BuildingID: args[1],
				UnitNumber: args[2],
				Unit:       next.Payload(),
			}
			if status != "" {
				req.SalesStatus = &contract.UnitSalesStatus{StatusKey: status, StatusDate: statusDate}
			}
			if err := app.Milestones.SaveUnit(ctx, req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved unit %s in %s / %s\n", args[2], args[0], args[1])
			return nil
		},
	}

	f := cmd.Flags()
	dateFlag(f, &anchor, "anchor", "Unit anchor date (YYYY-MM-DD)")
	f.StringToStringVar(&overrides, "override", nil, "Override a milestone date, key=YYYY-MM-DD (repeatable)")
	f.StringVar(&status, "status", "", "Sales status key to record with the schedule")
	dateFlag(f, &statusDate, "status-date", "Sales status date (YYYY-MM-DD), required with --status")
	_ = cmd.RegisterFlagCompletionFunc("status", completeStatusKeys)

	return cmd
}

func completeStatusKeys(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return domain.SalesStatusKeys, cobra.ShellCompDirectiveNoFileComp
}
