package domain

import "math"

// DepthView is everything one render pass of the depth display needs.
type DepthView struct {
	Reference          ReferenceObject `json:"reference"`
	Unit               DisplayUnit     `json:"unit"`
	DepthCm            float64         `json:"depth_cm"`
	DisplayValue       string          `json:"display_value"`
	UnitSymbol         string          `json:"unit_symbol"`
	Label              DepthLabel      `json:"label"`
	Status             StatusBand      `json:"status"`
	WaterHeightPx      float64         `json:"water_height_px"`
	ReferenceHeightCm  float64         `json:"reference_height_cm"`
	ReferenceHeightPx  float64         `json:"reference_height_px"`
	SubmergencePercent float64         `json:"submergence_percent"`
	OverlapCm          float64         `json:"overlap_cm"`
	Markers            []Marker        `json:"markers"`
}

// ReferenceView describes one reference silhouette on the scale.
type ReferenceView struct {
	Reference    ReferenceObject `json:"reference"`
	RealHeightCm float64         `json:"real_height_cm"`
	HeightPx     float64         `json:"height_px"`
	// CSSHeightPx is the rounded value applied to the silhouette.
	CSSHeightPx  int          `json:"css_height_px"`
	ExceedsScale bool         `json:"exceeds_scale"`
	Image        string       `json:"image"`
	Labels       []DepthLabel `json:"labels"`
}

// NewReferenceView sizes reference r under calibration c.
func NewReferenceView(c Config, refs ReferenceSet, r ReferenceObject) ReferenceView {
	px := refs.ScaleHeight(r, c)
	heightCm := refs.RealHeightCm(r)
	return ReferenceView{
		Reference:    r,
		RealHeightCm: heightCm,
		HeightPx:     px,
		CSSHeightPx:  int(math.Round(px)),
		ExceedsScale: heightCm > c.ScaleMaxCm,
		Image:        r.ImagePath(),
		Labels:       refs.Labels(r),
	}
}

// NewDepthView computes the depth display for depthCm. c must already reflect
// the current container height.
func NewDepthView(c Config, refs ReferenceSet, r ReferenceObject, u DisplayUnit, depthCm float64) DepthView {
	labels := refs.Labels(r)
	refCm := refs.RealHeightCm(r)

	return DepthView{
		Reference:          r,
		Unit:               u,
		DepthCm:            depthCm,
		DisplayValue:       FormatDisplay(depthCm, u),
		UnitSymbol:         u.Symbol(),
		Label:              ActiveLabel(depthCm, labels),
		Status:             ClassifyStatus(depthCm),
		WaterHeightPx:      ClampToUsable(CmToPixels(depthCm, c), c),
		ReferenceHeightCm:  refCm,
		ReferenceHeightPx:  CmToPixels(refCm, c),
		SubmergencePercent: min(depthCm/refCm*100, 100),
		OverlapCm:          min(depthCm, refCm),
		Markers:            Markers(depthCm, labels),
	}
}
