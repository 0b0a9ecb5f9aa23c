// Package visualizer runs depth-display render passes over the calibration
// engine, emitting calibration traces and metrics.
package visualizer

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/flood-depth-service/internal/domain"
	"github.com/couchcryptid/flood-depth-service/internal/observability"
)

// State is the user's selector state for one render pass.
type State struct {
	Reference domain.ReferenceObject
	Unit      domain.DisplayUnit
	DepthCm   float64
	// PersonHeightCm is clamped to the person range like any other entry.
	PersonHeightCm float64
}

// Visualizer renders depth and reference views.
type Visualizer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates a Visualizer.
func New(logger *slog.Logger, metrics *observability.Metrics) *Visualizer {
	return &Visualizer{logger: logger, metrics: metrics}
}

// Recalibrated marks the visualizer ready once a container has been measured.
// It is meant to be passed as a viewport recalibration callback.
func (v *Visualizer) Recalibrated(cfg domain.Config) {
	v.ready.Store(true)
	v.metrics.Calibrated.Set(1)
	v.logger.Debug("visualizer recalibrated",
		"container_height_px", cfg.ContainerHeightPx,
		"px_per_cm", cfg.PxPerCm(),
		"cm_per_px", cfg.CmPerPx(),
	)
}

// CheckReadiness returns nil once a calibration has been measured.
func (v *Visualizer) CheckReadiness(_ context.Context) error {
	if !v.ready.Load() {
		return errors.New("container height has not been measured yet")
	}
	return nil
}

// Render computes the depth display for st under cfg.
func (v *Visualizer) Render(cfg domain.Config, st State) domain.DepthView {
	refs := v.referenceSet(st.PersonHeightCm)
	view := domain.NewDepthView(cfg, refs, st.Reference, st.Unit, st.DepthCm)

	v.metrics.Renders.WithLabelValues(st.Reference.String()).Inc()
	v.logger.Debug("depth calc",
		"input_depth_cm", st.DepthCm,
		"reference", st.Reference.String(),
		"ref_height_cm", view.ReferenceHeightCm,
		"ref_height_px", view.ReferenceHeightPx,
		"scale_max_cm", cfg.ScaleMaxCm,
		"water_height_px", view.WaterHeightPx,
		"submergence_percent", view.SubmergencePercent,
		"overlap_cm", view.OverlapCm,
		"status", view.Label.Label,
	)
	return view
}

// References sizes every reference object under cfg.
func (v *Visualizer) References(cfg domain.Config, personHeightCm float64) []domain.ReferenceView {
	refs := v.referenceSet(personHeightCm)
	out := make([]domain.ReferenceView, 0, len(domain.ReferenceObjects()))
	for _, r := range domain.ReferenceObjects() {
		rv := domain.NewReferenceView(cfg, refs, r)
		v.logger.Debug("reference display",
			"reference", r.String(),
			"real_height_cm", rv.RealHeightCm,
			"scaled_height_px", rv.CSSHeightPx,
			"container_height_px", cfg.ContainerHeightPx,
			"usable_height_px", cfg.UsablePx(),
			"px_per_cm", cfg.PxPerCm(),
		)
		out = append(out, rv)
	}
	return out
}

// Person recalibrates the person reference to heightCm.
func (v *Visualizer) Person(cfg domain.Config, heightCm float64) domain.PersonProfile {
	p := domain.NewPersonProfile(heightCm)
	v.metrics.PersonHeight.Set(float64(p.HeightCm))
	v.logger.Debug("person height",
		"height_cm", p.HeightCm,
		"base_height_cm", domain.PersonBaselineCm,
		"ratio", p.Ratio(),
		"scaled_height_px", domain.CmToPixels(float64(p.HeightCm), cfg),
		"exceeds_scale", float64(p.HeightCm) > cfg.ScaleMaxCm,
	)
	return p
}

func (v *Visualizer) referenceSet(personHeightCm float64) domain.ReferenceSet {
	return domain.DefaultReferences().WithPersonHeight(personHeightCm)
}
