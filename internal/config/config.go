package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/flood-depth-service/internal/domain"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Calibration of the 2 m visual scale.
	ScaleMaxCm        float64
	ContainerHeightPx float64
	BottomOffsetPx    float64
	ResizeDebounce    time.Duration

	// Initial selector state for render requests that omit it.
	DefaultReference domain.ReferenceObject
	DefaultUnit      domain.DisplayUnit
	PersonHeightCm   float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	resizeDebounce, err := time.ParseDuration(sharedcfg.EnvOrDefault("RESIZE_DEBOUNCE", "150ms"))
	if err != nil || resizeDebounce <= 0 {
		return nil, errors.New("invalid RESIZE_DEBOUNCE: must be a positive duration")
	}

	scaleMax, err := parseFloat("SCALE_MAX_CM", domain.DefaultScaleMaxCm)
	if err != nil {
		return nil, err
	}
	containerHeight, err := parseFloat("CONTAINER_HEIGHT_PX", domain.DefaultContainerHeightPx)
	if err != nil {
		return nil, err
	}
	bottomOffset, err := parseFloat("BOTTOM_OFFSET_PX", domain.DefaultBottomOffsetPx)
	if err != nil {
		return nil, err
	}
	personHeight, err := parseFloat("PERSON_HEIGHT_CM", domain.PersonBaselineCm)
	if err != nil {
		return nil, err
	}

	ref, err := domain.ParseReferenceObject(sharedcfg.EnvOrDefault("DEFAULT_REFERENCE", "car"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_REFERENCE: %w", err)
	}
	unit, err := domain.ParseDisplayUnit(sharedcfg.EnvOrDefault("DEFAULT_UNIT", "meter"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_UNIT: %w", err)
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ScaleMaxCm:        scaleMax,
		ContainerHeightPx: containerHeight,
		BottomOffsetPx:    bottomOffset,
		ResizeDebounce:    resizeDebounce,

		DefaultReference: ref,
		DefaultUnit:      unit,
		PersonHeightCm:   personHeight,
	}

	if err := cfg.Calibration().Validate(); err != nil {
		return nil, fmt.Errorf("invalid SCALE_MAX_CM/CONTAINER_HEIGHT_PX/BOTTOM_OFFSET_PX: %w", err)
	}

	return cfg, nil
}

// Calibration returns the initial calibration described by the environment.
func (c *Config) Calibration() domain.Config {
	return domain.Config{
		ScaleMaxCm:        c.ScaleMaxCm,
		ContainerHeightPx: c.ContainerHeightPx,
		BottomOffsetPx:    c.BottomOffsetPx,
	}
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s: %q is not finite", key, s)
	}
	return v, nil
}
