package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveLabel_Car(t *testing.T) {
	labels := DefaultReferences().Labels(Car)

	tests := []struct {
		name     string
		depth    float64
		expected string
	}{
		{"dry", 0, NoFloodLabel},
		{"just below ground clearance", 17.9, NoFloodLabel},
		{"ground clearance", 18, "Ground clearance"},
		{"underbody", 35, "Exhaust / underbody risk"},
		{"between door sill and window", 94, "Door sill level"},
		{"window", 95, "Window level"},
		{"roof", 150, "Roof level"},
		{"off the scale", 500, "Roof level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActiveLabel(tt.depth, labels).Label)
		})
	}
}

func TestActiveLabel_ZeroMatchesSentinel(t *testing.T) {
	refs := DefaultReferences()
	for _, r := range ReferenceObjects() {
		t.Run(r.String(), func(t *testing.T) {
			labels := refs.Labels(r)
			assert.Equal(t, labels[0], ActiveLabel(0, labels))
			assert.Equal(t, NoFloodLabel, labels[0].Label)
		})
	}
}

func TestActiveLabel_Monotonic(t *testing.T) {
	refs := DefaultReferences().WithPersonHeight(152)
	for _, r := range ReferenceObjects() {
		labels := refs.Labels(r)
		prev := -1
		for d := 0.0; d <= 240; d += 0.25 {
			got := ActiveLabel(d, labels).Depth
			require.GreaterOrEqual(t, got, prev, "%s at %g cm", r, d)
			prev = got
		}
	}
}

func TestActiveLabel_FallsBackToFirst(t *testing.T) {
	labels := []DepthLabel{{Depth: 10, Label: "ten"}, {Depth: 20, Label: "twenty"}}
	assert.Equal(t, "ten", ActiveLabel(5, labels).Label)
	assert.Equal(t, DepthLabel{}, ActiveLabel(5, nil))
}

func TestMarkers(t *testing.T) {
	labels := DefaultReferences().Labels(Cycle)
	markers := Markers(50, labels)

	require.Len(t, markers, len(labels))
	assert.Equal(t, 110, markers[0].Depth, "deepest tier is listed first")
	assert.Equal(t, 0, markers[len(markers)-1].Depth)

	var active []string
	for _, m := range markers {
		if m.Active {
			active = append(active, m.Label)
		}
	}
	assert.Equal(t, []string{"Pedal level"}, active)
}
