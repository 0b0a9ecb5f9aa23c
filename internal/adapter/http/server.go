package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/flood-depth-service/internal/domain"
	"github.com/couchcryptid/flood-depth-service/internal/observability"
	"github.com/couchcryptid/flood-depth-service/internal/visualizer"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Renderer produces depth and reference views.
type Renderer interface {
	Render(cfg domain.Config, st visualizer.State) domain.DepthView
	References(cfg domain.Config, personHeightCm float64) []domain.ReferenceView
	Person(cfg domain.Config, heightCm float64) domain.PersonProfile
}

// Viewport owns the measured container height.
type Viewport interface {
	Current() domain.Config
	Resize(heightPx float64)
}

// Defaults fill selector values a request leaves out.
type Defaults struct {
	Reference      domain.ReferenceObject
	Unit           domain.DisplayUnit
	PersonHeightCm float64
}

// Handlers groups the collaborators behind the HTTP routes.
type Handlers struct {
	Ready    sharedobs.ReadinessChecker
	Renderer Renderer
	Viewport Viewport
	Defaults Defaults
	Metrics  *observability.Metrics
}

// Server exposes health, readiness, metrics and depth preview endpoints.
type Server struct {
	httpServer *http.Server
	handlers   Handlers
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and /api routes.
func NewServer(addr string, h Handlers, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		handlers: h,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(h.Ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/calibration", s.handleCalibration)
	mux.HandleFunc("POST /api/viewport", s.handleViewport)
	mux.HandleFunc("GET /api/references", s.handleReferences)
	mux.HandleFunc("GET /api/depth", s.handleDepth)
	mux.HandleFunc("GET /api/convert", s.handleConvert)
	mux.HandleFunc("GET /api/person", s.handlePerson)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
