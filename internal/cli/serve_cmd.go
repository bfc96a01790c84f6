package cli

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hbfa/milestones/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the milestones HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Handler == nil {
				return fmt.Errorf("no HTTP handler configured")
			}
			if addr == "" {
				addr = app.Config.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:         addr,
				Handler:      app.Handler,
				ReadTimeout:  app.Config.ReadTimeout,
				WriteTimeout: app.Config.WriteTimeout,
			}
			if app.Logger != nil {
				app.Logger.Info("serving http", "addr", addr)
			}
			return httpapi.Serve(ctx, srv, app.Config.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to MILESTONES_ADDR)")

	return cmd
}
