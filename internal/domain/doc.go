// Package domain models the flood-depth calibration used by the report form.
//
// # Fixed Scale
//
// The visual container always represents 200 cm of real-world height. The
// water overlay, the reference silhouette and every depth label share that
// one coordinate system:
//
//	0 cm    →  0 px (container bottom + offset)
//	200 cm  →  usable px (container height − bottom offset)
//
// Switching the reference object never changes what a given depth means on
// screen; only the silhouette and the label table change.
//
// # Calibration
//
// The container height is measured from layout and is the only external
// input. Everything else is derived:
//
//	usable   = containerHeightPx − bottomOffsetPx
//	pxPerCm  = usable / scaleMaxCm
//	cmPerPx  = scaleMaxCm / usable
//
// With the default 180 px container and 8 px offset: usable = 172 px and
// pxPerCm = 0.86, so 100 cm renders as 86 px.
//
// # Reference Objects
//
//	Object        Height  Top label
//	car           155 cm  Roof level (150)
//	autorickshaw  185 cm  Roof level (165)
//	bike          130 cm  Handlebar level (125)
//	cycle         120 cm  Handlebar level (110)
//	person        183 cm  Fully submerged (= height)
//
// Person thresholds are body landmarks measured on a 183 cm (6 ft) adult and
// scale linearly with the entered height, which is clamped to 100–230 cm.
//
// # Classifications
//
// Two independent classifications exist. [ActiveLabel] picks the reference
// object's landmark tier. [ClassifyStatus] picks a colour band from fixed
// 50/100 cm cut points regardless of the reference object.
package domain
