package domain

// StatusBand is the colour band of the depth badge. It uses fixed cut points
// and is independent of the reference object's label table.
type StatusBand int

const (
	StatusNone StatusBand = iota
	StatusLow
	StatusWarning
	StatusCritical
)

var statusNames = [...]string{
	StatusNone:     "none",
	StatusLow:      "low",
	StatusWarning:  "warning",
	StatusCritical: "critical",
}

func (s StatusBand) String() string { return statusNames[s] }

// MarshalText encodes the band by name.
func (s StatusBand) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ClassifyStatus maps a depth to its band:
//   - 0 cm: none
//   - below 50 cm: low
//   - below 100 cm: warning
//   - otherwise: critical
func ClassifyStatus(depthCm float64) StatusBand {
	switch {
	case depthCm <= 0:
		return StatusNone
	case depthCm < 50:
		return StatusLow
	case depthCm < 100:
		return StatusWarning
	default:
		return StatusCritical
	}
}
