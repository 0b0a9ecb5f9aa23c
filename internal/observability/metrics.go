package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flood_depth"

// Metrics holds the Prometheus counters and gauges for the depth visualizer.
type Metrics struct {
	Renders       *prometheus.CounterVec // labels: reference
	InputRejected *prometheus.CounterVec // labels: field={reference,unit,depth,container_height,person_height,value}

	// Calibration metrics.
	Recalibrations  prometheus.Counter
	ResizeCoalesced prometheus.Counter
	ContainerHeight prometheus.Gauge
	PersonHeight    prometheus.Gauge
	Calibrated      prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Renders,
		m.InputRejected,
		m.Recalibrations,
		m.ResizeCoalesced,
		m.ContainerHeight,
		m.PersonHeight,
		m.Calibrated,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Depth display render passes by reference object.",
		}, []string{"reference"}),
		InputRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_rejected_total",
			Help:      "Boundary inputs rejected before reaching the calibration engine.",
		}, []string{"field"}),
		Recalibrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recalibrations_total",
			Help:      "Accepted container height measurements.",
		}),
		ResizeCoalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resize_coalesced_total",
			Help:      "Resize events superseded by a later event inside the quiet window.",
		}),
		ContainerHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_height_px",
			Help:      "Current measured container height in pixels.",
		}),
		PersonHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "person_height_cm",
			Help:      "Most recently applied person reference height in centimetres.",
		}),
		Calibrated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "calibrated",
			Help:      "1 once a container height has been measured, 0 before.",
		}),
	}
}
