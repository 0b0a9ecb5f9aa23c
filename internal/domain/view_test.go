package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		depth    float64
		expected StatusBand
	}{
		{0, StatusNone},
		{1, StatusLow},
		{49, StatusLow},
		{50, StatusWarning},
		{99, StatusWarning},
		{100, StatusCritical},
		{200, StatusCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyStatus(tt.depth), "depth %g", tt.depth)
	}
}

func TestClassifyStatus_IndependentOfLabels(t *testing.T) {
	// 94 cm is the car's door-sill tier but only a warning band.
	v := NewDepthView(DefaultConfig(), DefaultReferences(), Car, Meter, 94)
	assert.Equal(t, "Door sill level", v.Label.Label)
	assert.Equal(t, StatusWarning, v.Status)
}

func TestNewDepthView(t *testing.T) {
	c := DefaultConfig()
	v := NewDepthView(c, DefaultReferences(), Car, Meter, 100)

	assert.Equal(t, "1.00", v.DisplayValue)
	assert.Equal(t, "m", v.UnitSymbol)
	assert.Equal(t, "Window level", v.Label.Label)
	assert.InDelta(t, 86, v.WaterHeightPx, pxTolerance)
	assert.Equal(t, 155.0, v.ReferenceHeightCm)
	assert.InDelta(t, 133.3, v.ReferenceHeightPx, pxTolerance)
	assert.InDelta(t, 100.0/155.0*100, v.SubmergencePercent, 1e-9)
	assert.Equal(t, 100.0, v.OverlapCm)
	require.Len(t, v.Markers, 6)
	assert.True(t, v.Markers[1].Active)
}

func TestNewDepthView_ClampsWaterAndSubmergence(t *testing.T) {
	c := DefaultConfig()
	v := NewDepthView(c, DefaultReferences(), Cycle, Centimeter, 240)

	assert.Equal(t, c.UsablePx(), v.WaterHeightPx)
	assert.Equal(t, 100.0, v.SubmergencePercent)
	assert.Equal(t, 120.0, v.OverlapCm)
	assert.Equal(t, "240", v.DisplayValue)
}

func TestNewDepthView_ObjectSwitchKeepsWaterLevel(t *testing.T) {
	c := DefaultConfig().WithContainerHeight(260)
	refs := DefaultReferences()

	want := NewDepthView(c, refs, Car, Meter, 72).WaterHeightPx
	for _, r := range ReferenceObjects() {
		assert.Equal(t, want, NewDepthView(c, refs, r, Meter, 72).WaterHeightPx, r.String())
	}
}

func TestNewReferenceView(t *testing.T) {
	c := DefaultConfig()
	refs := DefaultReferences().WithPersonHeight(215)

	v := NewReferenceView(c, refs, Person)
	assert.Equal(t, 215.0, v.RealHeightCm)
	assert.InDelta(t, 184.9, v.HeightPx, 1e-9)
	assert.Equal(t, 185, v.CSSHeightPx)
	assert.True(t, v.ExceedsScale)
	assert.Equal(t, "/static/person.svg", v.Image)

	assert.False(t, NewReferenceView(c, refs, Car).ExceedsScale)
}

func TestDepthView_JSON(t *testing.T) {
	v := NewDepthView(DefaultConfig(), DefaultReferences(), Bike, Feet, 60)

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "bike", decoded["reference"])
	assert.Equal(t, "feet", decoded["unit"])
	assert.Equal(t, "warning", decoded["status"])
	assert.Equal(t, "1.97", decoded["display_value"])
}
