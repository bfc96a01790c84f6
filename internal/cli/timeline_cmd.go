package cli

import (
	"fmt"

	"github.com/hbfa/milestones/internal/cli/formatter"
	"github.com/hbfa/milestones/internal/contract"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var (
		units  bool
		events bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "timeline PROJECT BUILDING",
		Short: "Join a building's schedule with its units and sales statuses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Timeline.Timeline(cmd.Context(), contract.TimelineRequest{
				ProjectID:     args[0],
				BuildingID:    args[1],
				IncludeUnits:  units,
				IncludeEvents: events,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&units, "units", true, "Include units and their sales status")
	cmd.Flags().BoolVar(&events, "events", false, "Include dated milestone events")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the timeline as JSON")

	return cmd
}
