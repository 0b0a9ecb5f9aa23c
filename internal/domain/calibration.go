package domain

import (
	"errors"
	"fmt"
	"math"
)

// Default calibration for the 2 m visual scale.
const (
	DefaultScaleMaxCm        = 200.0
	DefaultContainerHeightPx = 180.0
	DefaultBottomOffsetPx    = 8.0
)

// ErrInvalidConfig is returned when a calibration violates its invariants.
var ErrInvalidConfig = errors.New("invalid calibration config")

// Config maps the 0–ScaleMaxCm real-world range onto the container's usable
// pixel height. It is a plain value: callers re-measure the container and
// build a new Config rather than mutating a shared one.
type Config struct {
	ScaleMaxCm        float64 `json:"scale_max_cm"`
	ContainerHeightPx float64 `json:"container_height_px"`
	BottomOffsetPx    float64 `json:"bottom_offset_px"`
}

// DefaultConfig returns the calibration used before the container is measured.
func DefaultConfig() Config {
	return Config{
		ScaleMaxCm:        DefaultScaleMaxCm,
		ContainerHeightPx: DefaultContainerHeightPx,
		BottomOffsetPx:    DefaultBottomOffsetPx,
	}
}

// WithContainerHeight returns a copy of c recalibrated to a new measured height.
func (c Config) WithContainerHeight(px float64) Config {
	c.ContainerHeightPx = px
	return c
}

// UsablePx is the container height available to the scale.
func (c Config) UsablePx() float64 {
	return c.ContainerHeightPx - c.BottomOffsetPx
}

// PxPerCm is the number of pixels per real-world centimetre.
func (c Config) PxPerCm() float64 {
	return c.UsablePx() / c.ScaleMaxCm
}

// CmPerPx is the number of real-world centimetres per pixel.
func (c Config) CmPerPx() float64 {
	return c.ScaleMaxCm / c.UsablePx()
}

// Validate reports whether the derived ratios are meaningful. Conversions do
// not call it; it guards the points where a Config is built from outside input.
func (c Config) Validate() error {
	for _, v := range []float64{c.ScaleMaxCm, c.ContainerHeightPx, c.BottomOffsetPx} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %+v has a non-finite field", ErrInvalidConfig, c)
		}
	}
	if c.ScaleMaxCm <= 0 {
		return fmt.Errorf("%w: scale max %g cm must be positive", ErrInvalidConfig, c.ScaleMaxCm)
	}
	if c.BottomOffsetPx < 0 {
		return fmt.Errorf("%w: bottom offset %g px must not be negative", ErrInvalidConfig, c.BottomOffsetPx)
	}
	if c.ContainerHeightPx <= c.BottomOffsetPx {
		return fmt.Errorf("%w: container height %g px must exceed bottom offset %g px",
			ErrInvalidConfig, c.ContainerHeightPx, c.BottomOffsetPx)
	}
	return nil
}

// CmToPixels converts a real-world height to pixels on the fixed scale.
// The result is not clamped; see [ClampToUsable].
func CmToPixels(cm float64, c Config) float64 {
	return (cm / c.ScaleMaxCm) * c.UsablePx()
}

// PixelsToCm is the exact inverse of [CmToPixels].
func PixelsToCm(px float64, c Config) float64 {
	return (px / c.UsablePx()) * c.ScaleMaxCm
}

// ClampToUsable bounds a pixel height to the physical container.
func ClampToUsable(px float64, c Config) float64 {
	return max(0, min(px, c.UsablePx()))
}
