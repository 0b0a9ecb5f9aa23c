package domain

import "math"

// Person height bounds and baseline, in centimetres.
const (
	PersonBaselineCm  = 183
	PersonMinHeightCm = 100
	PersonMaxHeightCm = 230
)

const (
	cmPerFoot = 30.48
	cmPerInch = 2.54
)

// personLandmarks are measured on the 183 cm baseline.
var personLandmarks = []DepthLabel{
	{Depth: 25, Label: "Ankle level"},
	{Depth: 45, Label: "Knee level"},
	{Depth: 75, Label: "Mid-thigh level"},
	{Depth: 100, Label: "Waist level"},
	{Depth: 135, Label: "Chest level"},
	{Depth: 155, Label: "Neck level"},
}

// FullySubmergedLabel marks a depth equal to the person's height.
const FullySubmergedLabel = "Fully submerged"

// PersonProfile is the person reference recalibrated to one height.
type PersonProfile struct {
	HeightCm int          `json:"height_cm"`
	Labels   []DepthLabel `json:"labels"`
}

// NewPersonProfile clamps heightCm and derives its label table.
func NewPersonProfile(heightCm float64) PersonProfile {
	h := ClampPersonHeight(heightCm)
	return PersonProfile{HeightCm: h, Labels: RecalibratePersonLabels(float64(h))}
}

// Ratio is the profile's scale relative to the baseline.
func (p PersonProfile) Ratio() float64 {
	return float64(p.HeightCm) / PersonBaselineCm
}

// ClampPersonHeight rounds to whole centimetres and saturates to 100–230.
// NaN is treated as the minimum.
func ClampPersonHeight(heightCm float64) int {
	if math.IsNaN(heightCm) {
		return PersonMinHeightCm
	}
	return int(math.Round(max(PersonMinHeightCm, min(PersonMaxHeightCm, heightCm))))
}

// RecalibratePersonLabels scales the baseline body landmarks to heightCm.
// Out-of-range heights saturate; the final tier sits at the clamped height.
func RecalibratePersonLabels(heightCm float64) []DepthLabel {
	h := ClampPersonHeight(heightCm)
	ratio := float64(h) / PersonBaselineCm

	labels := make([]DepthLabel, 0, len(personLandmarks)+2)
	labels = append(labels, DepthLabel{Depth: 0, Label: NoFloodLabel})
	for _, l := range personLandmarks {
		labels = append(labels, DepthLabel{
			Depth: int(math.Round(float64(l.Depth) * ratio)),
			Label: l.Label,
		})
	}
	return append(labels, DepthLabel{Depth: h, Label: FullySubmergedLabel})
}

// FeetInchesToCm converts a feet/inches height entry to whole centimetres.
// It does not clamp; pass the result to [NewPersonProfile].
func FeetInchesToCm(feet, inches float64) float64 {
	return math.Round(feet*cmPerFoot + inches*cmPerInch)
}
