package cli

import (
	"fmt"

	"github.com/hbfa/milestones/internal/cli/formatter"
	"github.com/hbfa/milestones/internal/contract"
	"github.com/spf13/cobra"
)

func newSalesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Record and list unit sales statuses",
	}

	cmd.AddCommand(
		newSalesSetCmd(app),
		newSalesListCmd(app),
	)

	return cmd
}

func newSalesSetCmd(app *App) *cobra.Command {
	var req contract.SalesStatusRequest

	cmd := &cobra.Command{
		Use:   "set PROJECT UNIT STATUS",
		Short: "Set the sales status of a contract unit",
		Long: `Label and colour default to the status catalog. Unknown status keys are
stored as given with the default colour.`,
		Args: cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 2 {
				return completeStatusKeys(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ProjectID = args[0]
			req.ContractUnitNumber = args[1]
			req.StatusKey = args[2]

			item, err := app.Sales.Save(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unit %s: %s\n", item.ContractUnitNumber, formatter.StatusPill(item.StatusLabel, item.StatusColor))
			return nil
		},
	}

	f := cmd.Flags()
	dateFlag(f, &req.StatusDate, "date", "Status date (YYYY-MM-DD)")
	f.StringVar(&req.BuildingID, "building", "", "Building of the unit")
	f.StringVar(&req.StatusLabel, "label", "", "Display label (defaults to the catalog label)")
	f.StringVar(&req.StatusColor, "color", "", "Display colour (defaults to the catalog colour)")

	return cmd
}

func newSalesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List the sales statuses of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Sales.ListByProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sales statuses recorded.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSalesStatuses(items))
			return nil
		},
	}
}
