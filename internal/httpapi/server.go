package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hbfa/milestones/internal/service"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Units      service.UnitService
	Milestones service.MilestoneService
	Sales      service.SalesService
	Timeline   service.TimelineService
	Holidays   service.HolidayService
}

// Options tune the handler stack.
type Options struct {
	Logger     *slog.Logger
	CORSOrigin string
}

type api struct {
	svc    Services
	logger *slog.Logger
}

// NewHandler returns the /api routes wrapped in request id, logging, panic
// recovery and CORS middleware.
func NewHandler(svc Services, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &api{svc: svc, logger: logger}

	mux := http.NewServeMux()
	mux.Handle("/api/units", methods(map[string]http.HandlerFunc{
		http.MethodGet: a.listUnits,
	}))
	mux.Handle("/api/milestones/buildings", methods(map[string]http.HandlerFunc{
		http.MethodGet:  a.missingParameters,
		http.MethodPost: a.saveBuilding,
		http.MethodPut:  a.saveBuilding,
	}))
	mux.Handle("/api/milestones/buildings/{project}/{building}", methods(map[string]http.HandlerFunc{
		http.MethodGet: a.buildingRecords,
	}))
	mux.Handle("/api/milestones/buildings/{project}/{building}/units/{unit}", methods(map[string]http.HandlerFunc{
		http.MethodGet: a.getUnit,
	}))
	mux.Handle("/api/milestones/buildings/{project}/{building}/stages/{stage}", methods(map[string]http.HandlerFunc{
		http.MethodPost: a.updateStage,
		http.MethodPut:  a.updateStage,
	}))
	mux.Handle("/api/milestones/units", methods(map[string]http.HandlerFunc{
		http.MethodPost: a.saveUnit,
		http.MethodPut:  a.saveUnit,
	}))
	mux.Handle("/api/milestones/timeline", methods(map[string]http.HandlerFunc{
		http.MethodGet: a.timeline,
	}))
	mux.Handle("/api/sales/status", methods(map[string]http.HandlerFunc{
		http.MethodGet:  a.listSalesStatus,
		http.MethodPost: a.saveSalesStatus,
	}))
	mux.Handle("/api/holidays", methods(map[string]http.HandlerFunc{
		http.MethodGet: a.listHolidays,
	}))
	mux.Handle("/api/projections/buildings/{project}/{building}", methods(map[string]http.HandlerFunc{
		http.MethodGet: a.projection,
	}))
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: msgNotFound})
	})

	return Chain(mux,
		RequestID(),
		RequestLogger(logger),
		RecoverPanic(logger),
		CORS(opts.CORSOrigin),
	)
}

// Serve runs srv until ctx is cancelled, then shuts it down within
// shutdownTimeout.
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
