package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/flood-depth-service/internal/adapter/http"
	"github.com/couchcryptid/flood-depth-service/internal/config"
	"github.com/couchcryptid/flood-depth-service/internal/observability"
	"github.com/couchcryptid/flood-depth-service/internal/viewport"
	"github.com/couchcryptid/flood-depth-service/internal/visualizer"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	vis := visualizer.New(logger, metrics)
	tracker := viewport.NewTracker(cfg.Calibration(), cfg.ResizeDebounce, clockwork.NewRealClock(), logger, metrics, vis.Recalibrated)

	// The configured container height stands in for the first layout read.
	if _, err := tracker.Measure(cfg.ContainerHeightPx); err != nil {
		logger.Error("initial calibration failed", "error", err)
		os.Exit(1)
	}
	vis.Person(tracker.Current(), cfg.PersonHeightCm)

	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.Handlers{
		Ready:    vis,
		Renderer: vis,
		Viewport: tracker,
		Defaults: httpadapter.Defaults{
			Reference:      cfg.DefaultReference,
			Unit:           cfg.DefaultUnit,
			PersonHeightCm: cfg.PersonHeightCm,
		},
		Metrics: metrics,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	logger.Info("flood depth service started",
		"default_reference", cfg.DefaultReference.String(),
		"default_unit", cfg.DefaultUnit.String(),
		"resize_debounce", cfg.ResizeDebounce,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	tracker.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
