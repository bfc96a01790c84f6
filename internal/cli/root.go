package cli

import (
	"log/slog"
	"net/http"

	"github.com/hbfa/milestones/internal/config"
	"github.com/hbfa/milestones/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Units      service.UnitService
	Milestones service.MilestoneService
	Sales      service.SalesService
	Timeline   service.TimelineService
	Holidays   service.HolidayService
	Projects   service.ProjectService

	// Handler serves the HTTP API for the serve command.
	Handler http.Handler
	Config  config.Config
	Logger  *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Forms are only
	// shown when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "milestones" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "milestones",
		Short:         "Construction milestone scheduling for homebuilding projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newBuildingCmd(app),
		newUnitCmd(app),
		newSalesCmd(app),
		newHolidayCmd(app),
		newProjectCmd(app),
		newTimelineCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
