// Package viewport owns the measured container height and turns layout
// changes into recalibrated configs.
package viewport

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/flood-depth-service/internal/domain"
	"github.com/couchcryptid/flood-depth-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// DefaultQuietWindow is how long resize events must stop before recalibrating.
const DefaultQuietWindow = 150 * time.Millisecond

// RecalibrateFunc receives every accepted calibration.
type RecalibrateFunc func(domain.Config)

// Tracker holds the current calibration. Measure applies a height
// immediately (page load); Resize coalesces bursts of layout changes into a
// single recalibration once the quiet window has passed.
type Tracker struct {
	clock   clockwork.Clock
	quiet   time.Duration
	logger  *slog.Logger
	metrics *observability.Metrics
	notify  RecalibrateFunc

	mu      sync.Mutex
	current domain.Config
	pending float64
	gen     uint64
	timer   clockwork.Timer
}

// NewTracker starts from base. notify may be nil.
func NewTracker(base domain.Config, quiet time.Duration, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics, notify RecalibrateFunc) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Tracker{
		clock:   clock,
		quiet:   quiet,
		logger:  logger,
		metrics: metrics,
		notify:  notify,
		current: base,
	}
}

// Current returns the calibration all pixel conversions should use.
func (t *Tracker) Current() domain.Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Measure recalibrates to heightPx right away and cancels any pending resize.
func (t *Tracker) Measure(heightPx float64) (domain.Config, error) {
	t.mu.Lock()
	t.stopTimerLocked()
	cfg, err := t.applyLocked(heightPx)
	t.mu.Unlock()
	if err != nil {
		return domain.Config{}, err
	}
	t.publish(cfg)
	return cfg, nil
}

// Resize records a new measured height. Only the last height of a burst is
// applied, quiet after the final event.
func (t *Tracker) Resize(heightPx float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil && t.timer.Stop() {
		t.metrics.ResizeCoalesced.Inc()
	}
	t.gen++
	gen := t.gen
	t.pending = heightPx
	t.timer = t.clock.AfterFunc(t.quiet, func() { t.fire(gen) })
}

// Stop cancels any pending resize.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimerLocked()
}

func (t *Tracker) fire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	height := t.pending
	cfg, err := t.applyLocked(height)
	t.mu.Unlock()

	if err != nil {
		t.logger.Warn("ignoring resize", "container_height_px", height, "error", err)
		return
	}
	t.logger.Debug("calibration resize", "container_height_px", height)
	t.publish(cfg)
}

func (t *Tracker) stopTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

func (t *Tracker) applyLocked(heightPx float64) (domain.Config, error) {
	cfg := t.current.WithContainerHeight(heightPx)
	if err := cfg.Validate(); err != nil {
		t.metrics.InputRejected.WithLabelValues("container_height").Inc()
		return domain.Config{}, fmt.Errorf("measure container: %w", err)
	}
	t.current = cfg
	return cfg, nil
}

func (t *Tracker) publish(cfg domain.Config) {
	t.metrics.Recalibrations.Inc()
	t.metrics.ContainerHeight.Set(cfg.ContainerHeightPx)
	t.logger.Debug("calibration updated",
		"container_height_px", cfg.ContainerHeightPx,
		"usable_height_px", cfg.UsablePx(),
		"px_per_cm", cfg.PxPerCm(),
		"scale_max_cm", cfg.ScaleMaxCm,
	)
	if t.notify != nil {
		t.notify(cfg)
	}
}
