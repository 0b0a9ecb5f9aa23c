package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUnit(t *testing.T) {
	assert.Equal(t, 200.0, ConvertUnit(2, Meter, Centimeter))
	assert.InDelta(t, 6.56, ConvertUnit(200, Centimeter, Feet), 0.005)
	assert.Equal(t, 6.56, RoundForDisplay(ConvertUnit(200, Centimeter, Feet), Feet))
	assert.InDelta(t, 0.3048, ConvertUnit(1, Feet, Meter), 1e-12)
	assert.Equal(t, 1.5, ConvertUnit(1.5, Meter, Meter))
}

func TestRoundForDisplay(t *testing.T) {
	assert.Equal(t, 1.23, RoundForDisplay(1.2345, Meter))
	assert.Equal(t, 3.28, RoundForDisplay(3.2808, Feet))
	assert.Equal(t, 95.0, RoundForDisplay(94.6, Centimeter))
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		cm       float64
		unit     DisplayUnit
		expected string
	}{
		{0, Meter, "0.00"},
		{94, Meter, "0.94"},
		{200, Meter, "2.00"},
		{100, Feet, "3.28"},
		{200, Feet, "6.56"},
		{94, Centimeter, "94"},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String()+"/"+tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDisplay(tt.cm, tt.unit))
		})
	}
}

func TestDisplayToCm(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, 94, DisplayToCm(0.94, Meter, c))
	assert.Equal(t, 91, DisplayToCm(3, Feet, c))
	assert.Equal(t, 200, DisplayToCm(2.5, Meter, c), "saturates at the scale maximum")
	assert.Equal(t, 0, DisplayToCm(-1, Centimeter, c))
	assert.Equal(t, 200, DisplayToCm(1e30, Meter, c), "saturates before converting to int")
	assert.Equal(t, 200, DisplayToCm(math.Inf(1), Feet, c))
	assert.Equal(t, 0, DisplayToCm(-1e30, Meter, c))
	assert.Equal(t, 0, DisplayToCm(math.NaN(), Meter, c))
}

func TestDisplayUnit_InputBounds(t *testing.T) {
	assert.Equal(t, 0.01, Meter.InputStep())
	assert.Equal(t, 2.0, Meter.InputMax())
	assert.Equal(t, 0.1, Feet.InputStep())
	assert.Equal(t, 6.56, Feet.InputMax())
	assert.Equal(t, 1.0, Centimeter.InputStep())
	assert.Equal(t, 200.0, Centimeter.InputMax())
}

func TestParseDisplayUnit(t *testing.T) {
	for _, s := range []string{"meter", "m", " METER "} {
		u, err := ParseDisplayUnit(s)
		require.NoError(t, err)
		assert.Equal(t, Meter, u)
	}

	u, err := ParseDisplayUnit("ft")
	require.NoError(t, err)
	assert.Equal(t, Feet, u)

	u, err = ParseDisplayUnit("cm")
	require.NoError(t, err)
	assert.Equal(t, Centimeter, u)

	_, err = ParseDisplayUnit("furlong")
	require.ErrorIs(t, err, ErrUnknownUnit)
}

func TestDisplayUnit_TextRoundTrip(t *testing.T) {
	for _, u := range DisplayUnits() {
		text, err := u.MarshalText()
		require.NoError(t, err)

		var got DisplayUnit
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, u, got)
	}
}
