package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownReference is returned when a string names no reference object.
var ErrUnknownReference = errors.New("unknown reference object")

// ReferenceObject is a real-world object whose height anchors the depth scale.
type ReferenceObject int

const (
	Car ReferenceObject = iota
	Autorickshaw
	Bike
	Cycle
	Person
)

var referenceNames = [...]string{
	Car:          "car",
	Autorickshaw: "autorickshaw",
	Bike:         "bike",
	Cycle:        "cycle",
	Person:       "person",
}

// referenceHeightsCm are real-world heights. The person entry is the
// baseline; a ReferenceSet may override it.
var referenceHeightsCm = [...]float64{
	Car:          155,
	Autorickshaw: 185,
	Bike:         130,
	Cycle:        120,
	Person:       PersonBaselineCm,
}

var referenceImages = [...]string{
	Car:          "/static/carsvg.svg",
	Autorickshaw: "/static/autorickshaw.svg",
	Bike:         "/static/bikesvg.svg",
	Cycle:        "/static/bicycle.svg",
	Person:       "/static/person.svg",
}

var vehicleLabels = [...][]DepthLabel{
	Car: {
		{Depth: 0, Label: NoFloodLabel},
		{Depth: 18, Label: "Ground clearance"},
		{Depth: 35, Label: "Exhaust / underbody risk"},
		{Depth: 60, Label: "Door sill level"},
		{Depth: 95, Label: "Window level"},
		{Depth: 150, Label: "Roof level"},
	},
	Autorickshaw: {
		{Depth: 0, Label: NoFloodLabel},
		{Depth: 15, Label: "Ground clearance"},
		{Depth: 35, Label: "Wheel hub level"},
		{Depth: 50, Label: "Floor level"},
		{Depth: 75, Label: "Seat level"},
		{Depth: 165, Label: "Roof level"},
	},
	Bike: {
		{Depth: 0, Label: NoFloodLabel},
		{Depth: 15, Label: "Ground clearance"},
		{Depth: 45, Label: "Wheel hub level"},
		{Depth: 60, Label: "Engine intake risk"},
		{Depth: 90, Label: "Seat level"},
		{Depth: 125, Label: "Handlebar level"},
	},
	Cycle: {
		{Depth: 0, Label: NoFloodLabel},
		{Depth: 10, Label: "Ground level"},
		{Depth: 25, Label: "Wheel hub level"},
		{Depth: 45, Label: "Pedal level"},
		{Depth: 90, Label: "Seat level"},
		{Depth: 110, Label: "Handlebar level"},
	},
}

// ReferenceObjects lists every reference object in selector order.
func ReferenceObjects() []ReferenceObject {
	return []ReferenceObject{Car, Autorickshaw, Bike, Cycle, Person}
}

func (r ReferenceObject) String() string {
	if r < 0 || int(r) >= len(referenceNames) {
		return fmt.Sprintf("ReferenceObject(%d)", int(r))
	}
	return referenceNames[r]
}

// ImagePath is the silhouette shown for the object.
func (r ReferenceObject) ImagePath() string {
	return referenceImages[r]
}

// MarshalText encodes the object by name.
func (r ReferenceObject) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes an object name.
func (r *ReferenceObject) UnmarshalText(text []byte) error {
	parsed, err := ParseReferenceObject(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseReferenceObject maps a selector value such as "car" to its object.
func ParseReferenceObject(s string) (ReferenceObject, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range referenceNames {
		if name == s {
			return ReferenceObject(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReference, s)
}

// ReferenceSet resolves heights and label tables for every reference object,
// carrying the user's current person profile. The zero value is not usable;
// start from [DefaultReferences].
type ReferenceSet struct {
	person PersonProfile
}

// DefaultReferences uses the 183 cm person baseline.
func DefaultReferences() ReferenceSet {
	return ReferenceSet{person: NewPersonProfile(PersonBaselineCm)}
}

// WithPersonHeight returns a set whose person is recalibrated to heightCm.
func (s ReferenceSet) WithPersonHeight(heightCm float64) ReferenceSet {
	s.person = NewPersonProfile(heightCm)
	return s
}

// Person returns the current person profile.
func (s ReferenceSet) Person() PersonProfile {
	return s.person
}

// RealHeightCm is the object's real-world height.
func (s ReferenceSet) RealHeightCm(r ReferenceObject) float64 {
	if r == Person {
		return float64(s.person.HeightCm)
	}
	return referenceHeightsCm[r]
}

// Labels returns a copy of the object's depth thresholds, ascending.
func (s ReferenceSet) Labels(r ReferenceObject) []DepthLabel {
	if r == Person {
		return append([]DepthLabel(nil), s.person.Labels...)
	}
	return append([]DepthLabel(nil), vehicleLabels[r]...)
}

// ScaleHeight sizes the object's silhouette on the fixed scale.
func (s ReferenceSet) ScaleHeight(r ReferenceObject, c Config) float64 {
	return CmToPixels(s.RealHeightCm(r), c)
}

// ScaleReferenceHeight sizes an object's silhouette using the default heights.
// Person always uses the 183 cm baseline; use [ReferenceSet.ScaleHeight] for a
// recalibrated person.
func ScaleReferenceHeight(r ReferenceObject, c Config) float64 {
	return DefaultReferences().ScaleHeight(r, c)
}
