// Package observability builds the service logger and Prometheus metrics.
package observability

import (
	"log/slog"

	"github.com/couchcryptid/flood-depth-service/internal/config"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// NewLogger builds the stdout logger described by cfg and installs it as the
// slog default. LogFormat "text" selects the text handler, anything else JSON.
func NewLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}
