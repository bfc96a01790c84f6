package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hbfa/milestones/internal/cli"
	"github.com/hbfa/milestones/internal/config"
	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/httpapi"
	"github.com/hbfa/milestones/internal/repository"
	"github.com/hbfa/milestones/internal/service"
	"github.com/hbfa/milestones/internal/template"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(os.Stderr, cfg)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	registry := template.NewRegistry()
	if cfg.TemplatesDir != "" {
		loaded, err := registry.LoadDir(cfg.TemplatesDir)
		if err != nil {
			logger.Warn("templates skipped", "dir", cfg.TemplatesDir, "error", err)
		}
		logger.Debug("templates loaded", "dir", cfg.TemplatesDir, "files", loaded)
	}

	// Wire repositories
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	salesRepo := repository.NewSQLiteSalesStatusRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	// Wire services
	units := service.NewUnitService(unitRepo, uow, observer)
	milestones := service.NewMilestoneService(milestoneRepo, unitRepo, holidayRepo, registry, uow, observer)
	sales := service.NewSalesService(salesRepo, observer)
	timeline := service.NewTimelineService(milestoneRepo, unitRepo, salesRepo, holidayRepo, registry, observer)
	holidays := service.NewHolidayService(holidayRepo, observer)

	handler := httpapi.NewHandler(httpapi.Services{
		Units:      units,
		Milestones: milestones,
		Sales:      sales,
		Timeline:   timeline,
		Holidays:   holidays,
	}, httpapi.Options{
		Logger:     logger,
		CORSOrigin: cfg.CORSOrigin,
	})

	app := &cli.App{
		Units:      units,
		Milestones: milestones,
		Sales:      sales,
		Timeline:   timeline,
		Holidays:   holidays,
		Projects:   service.NewProjectService(),
		Handler:    handler,
		Config:     cfg,
		Logger:     logger,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// newLogger writes text logs to a terminal and JSON logs everywhere else,
// unless MILESTONES_LOG_FORMAT pins one.
func newLogger(w *os.File, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	format := cfg.LogFormat
	if format == config.FormatAuto {
		format = config.FormatJSON
		if isatty.IsTerminal(w.Fd()) {
			format = config.FormatText
		}
	}
	return slog.New(handlerFor(w, format, opts))
}

func handlerFor(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == config.FormatText {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
