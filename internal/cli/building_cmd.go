package cli

import (
	"context"
	"fmt"

	"github.com/hbfa/milestones/internal/cli/formatter"
	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/spf13/cobra"
)

func newBuildingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "building",
		Short: "Show and edit building milestone schedules",
	}

	cmd.AddCommand(
		newBuildingShowCmd(app),
		newBuildingSaveCmd(app),
		newBuildingStageCmd(app),
		newBuildingEditCmd(app),
	)

	return cmd
}

func newBuildingShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show PROJECT BUILDING",
		Short: "Show the projected milestones of a building",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Milestones.Projection(cmd.Context(), contract.ProjectionRequest{
				ProjectID:  args[0],
				BuildingID: args[1],
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

// buildingEdits are the flag-driven changes applied to a stored schedule.
type buildingEdits struct {
	anchor       string
	projectedCOE string
	overrides    map[string]string
	third        bool
	fourth       bool
	preKickoff   bool
}

func newBuildingSaveCmd(app *App) *cobra.Command {
	var edits buildingEdits

	cmd := &cobra.Command{
		Use:   "save PROJECT BUILDING",
		Short: "Update the anchor, overrides or switches of a building",
		Long: `Loads the stored building schedule, applies the given flags and saves it.
Flags that are not given keep their stored value. An override with an empty
date (--override foundation_pour=) removes it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := app.Milestones.GetBuilding(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			next := current.Schedule.Clone()
			flags := cmd.Flags()
			if flags.Changed("anchor") {
				next.Anchor = edits.anchor
			}
			if flags.Changed("projected-coe") {
				next.ProjectedCOE = edits.projectedCOE
			}
			if flags.Changed("third") {
				next.Activation.Third = edits.third
			}
			if flags.Changed("fourth") {
				next.Activation.Fourth = edits.fourth
			}
			if flags.Changed("pre-kickoff") {
				next.PreKickoff = edits.preKickoff
			}
			if next.Overrides, err = applyOverrides(next.Overrides, edits.overrides); err != nil {
				return err
			}

			if err := saveBuilding(ctx, app, args[0], args[1], next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved building %s / %s\n", args[0], args[1])
			return nil
		},
	}

	f := cmd.Flags()
	dateFlag(f, &edits.anchor, "anchor", "Anchor date (YYYY-MM-DD)")
	dateFlag(f, &edits.projectedCOE, "projected-coe", "Projected close of escrow (YYYY-MM-DD)")
	f.StringToStringVar(&edits.overrides, "override", nil, "Override a milestone date, key=YYYY-MM-DD (repeatable)")
	f.BoolVar(&edits.third, "third", false, "Building has a third floor")
	f.BoolVar(&edits.fourth, "fourth", false, "Building has a fourth floor")
	f.BoolVar(&edits.preKickoff, "pre-kickoff", false, "Hide projected dates until kickoff")

	return cmd
}

func saveBuilding(ctx context.Context, app *App, projectID, buildingID string, s domain.BuildingSchedule) error {
	return app.Milestones.SaveBuilding(ctx, contract.SaveBuildingRequest{
		ProjectID:  projectID,
		BuildingID: buildingID,
		Building:   s.Payload(),
	})
}

func newBuildingStageCmd(app *App) *cobra.Command {
	var (
		undo bool
		date string
	)

	cmd := &cobra.Command{
		Use:   "stage PROJECT BUILDING STAGE",
		Short: "Mark an early-stage milestone complete or set its date",
		Long: `Without --date the stage is marked complete (or incomplete with --undo). A
stage marked complete without a date takes the currently projected date.
--date sets the attested date and marks the stage complete; an empty --date
clears it.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.UpdateStageRequest{
				ProjectID:  args[0],
				BuildingID: args[1],
				StageKey:   args[2],
				Complete:   !undo,
			}
			if cmd.Flags().Changed("date") {
				req.Date = &date
			}

			view, err := app.Milestones.UpdateStage(cmd.Context(), req)
			if err != nil {
				return err
			}

			entry := view.Schedule.Stages[args[2]]
			state := "incomplete"
			if entry.Complete {
				state = "complete"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s (%s)\n", args[2], state, formatter.OrDash(entry.Date))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the stage incomplete")
	dateFlag(cmd.Flags(), &date, "date", "Attested stage date (YYYY-MM-DD, empty to clear)")

	return cmd
}

func newBuildingEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit PROJECT BUILDING",
		Short: "Edit a building schedule in an interactive form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("building edit needs an interactive terminal; use 'building save' instead")
			}
			ctx := cmd.Context()
			current, err := app.Milestones.GetBuilding(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			values := newBuildingFormValues(current.Schedule)
			if err := buildingForm(args[0], args[1], values).Run(); err != nil {
				return err
			}

			if err := saveBuilding(ctx, app, args[0], args[1], values.apply(current.Schedule)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved building %s / %s\n", args[0], args[1])
			return nil
		},
	}
}
