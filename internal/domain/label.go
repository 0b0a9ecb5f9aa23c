package domain

// NoFloodLabel is the depth-0 sentinel every label table starts with.
const NoFloodLabel = "No Flood"

// DepthLabel is a named severity tier reached at Depth centimetres.
type DepthLabel struct {
	Depth int    `json:"depth"`
	Label string `json:"label"`
}

// ActiveLabel returns the tier with the largest threshold not above depthCm.
// labels must be ascending by Depth. When nothing matches, the first entry is
// returned; an empty table yields the zero label.
func ActiveLabel(depthCm float64, labels []DepthLabel) DepthLabel {
	if len(labels) == 0 {
		return DepthLabel{}
	}
	for i := len(labels) - 1; i >= 0; i-- {
		if float64(labels[i].Depth) <= depthCm {
			return labels[i]
		}
	}
	return labels[0]
}

// Marker is one entry of the reference marker strip.
type Marker struct {
	DepthLabel
	Active bool `json:"active"`
}

// Markers lists labels top to bottom (deepest first), flagging the tier
// active at depthCm.
func Markers(depthCm float64, labels []DepthLabel) []Marker {
	active := ActiveLabel(depthCm, labels)
	out := make([]Marker, 0, len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		out = append(out, Marker{
			DepthLabel: labels[i],
			Active:     labels[i].Depth == active.Depth,
		})
	}
	return out
}
