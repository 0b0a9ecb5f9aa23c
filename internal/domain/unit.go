package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned when a string names no display unit.
var ErrUnknownUnit = errors.New("unknown display unit")

// DisplayUnit is the unit depths are shown and entered in.
type DisplayUnit int

const (
	Meter DisplayUnit = iota
	Feet
	Centimeter
)

type unitSpec struct {
	name     string
	symbol   string
	cmFactor float64
	decimals int
	step     float64
	max      float64
}

var units = [...]unitSpec{
	Meter:      {name: "meter", symbol: "m", cmFactor: 100, decimals: 2, step: 0.01, max: 2},
	Feet:       {name: "feet", symbol: "ft", cmFactor: cmPerFoot, decimals: 2, step: 0.1, max: 6.56},
	Centimeter: {name: "centimeter", symbol: "cm", cmFactor: 1, decimals: 0, step: 1, max: 200},
}

// DisplayUnits lists every unit in selector order.
func DisplayUnits() []DisplayUnit {
	return []DisplayUnit{Meter, Feet, Centimeter}
}

func (u DisplayUnit) String() string {
	if u < 0 || int(u) >= len(units) {
		return fmt.Sprintf("DisplayUnit(%d)", int(u))
	}
	return units[u].name
}

// Symbol is the short label shown next to values ("m", "ft", "cm").
func (u DisplayUnit) Symbol() string { return units[u].symbol }

// CmFactor is the number of centimetres in one unit.
func (u DisplayUnit) CmFactor() float64 { return units[u].cmFactor }

// InputStep is the increment of the depth input in this unit.
func (u DisplayUnit) InputStep() float64 { return units[u].step }

// InputMax is the largest depth input in this unit (the 2 m scale).
func (u DisplayUnit) InputMax() float64 { return units[u].max }

// MarshalText encodes the unit by name.
func (u DisplayUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes a unit name.
func (u *DisplayUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseDisplayUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseDisplayUnit accepts unit names and symbols ("meter", "m", "feet",
// "ft", "centimeter", "cm").
func ParseDisplayUnit(s string) (DisplayUnit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, spec := range units {
		if s == spec.name || s == spec.symbol {
			return DisplayUnit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// ConvertUnit converts value between units through centimetres, unrounded.
func ConvertUnit(value float64, from, to DisplayUnit) float64 {
	cm := value * from.CmFactor()
	return cm / to.CmFactor()
}

// RoundForDisplay rounds to the unit's display precision: two decimals for
// meter and feet, whole numbers for centimetres. This is lossy.
func RoundForDisplay(value float64, u DisplayUnit) float64 {
	p := math.Pow10(units[u].decimals)
	return math.Round(value*p) / p
}

// FormatDisplay renders a centimetre depth in u at display precision.
func FormatDisplay(cm float64, u DisplayUnit) string {
	return strconv.FormatFloat(ConvertUnit(cm, Centimeter, u), 'f', units[u].decimals, 64)
}

// DisplayToCm converts an entered value to whole centimetres, saturated to
// the scale of c.
func DisplayToCm(value float64, u DisplayUnit, c Config) int {
	cm := value * u.CmFactor()
	if math.IsNaN(cm) {
		return 0
	}
	return int(math.Round(max(0, min(c.ScaleMaxCm, cm))))
}
