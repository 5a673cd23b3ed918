// Package geometry holds the persisted size records of the dock and the
// arithmetic shared by every resizable surface.
//
// All sizes are logical pixels. Renderers convert to their own units.
package geometry

import "math"

// Section panel limits.
const (
	SectionCollapsedHeight = 32
	SectionRestoreFloor    = 120
)

// Left (catalog) column limits.
const (
	LeftMinWidth     = 160
	LeftDefaultWidth = 320
	// LeftReserve is the room kept for the inspector when bounding the
	// catalog column against the viewport.
	LeftReserve = 320
)

// Right (inspector) column limits.
const (
	RightDefaultWidth   = 320
	RightCollapsedWidth = 40
	RightRestoreFloor   = 240
	// RightReserve is the room kept for the catalog column.
	RightReserve = 320
)

// Keyboard step sizes.
const (
	FineStep   = 8
	CoarseStep = 24
)

// PanelGeometry is the persisted record of a section panel.
type PanelGeometry struct {
	Height    float64 `json:"height"`
	Collapsed bool    `json:"collapsed"`
}

// CollapsibleColumnWidth is the persisted record of the inspector column.
type CollapsibleColumnWidth struct {
	Width     float64 `json:"width"`
	Collapsed bool    `json:"collapsed"`
}

// ColumnWidth is the persisted record of the catalog column. It is stored
// as a bare number.
type ColumnWidth float64

// Clamp bounds v to [lo, hi]. When hi < lo the range degenerates to lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidSize reports whether v can be used as a stored size.
func ValidSize(v float64) bool {
	return Finite(v) && v >= 0
}

// ValidPanel validates a decoded section record.
func ValidPanel(g PanelGeometry) bool {
	return ValidSize(g.Height)
}

// ValidColumn validates a decoded inspector record.
func ValidColumn(c CollapsibleColumnWidth) bool {
	return ValidSize(c.Width)
}

// ValidWidth validates a decoded catalog width.
func ValidWidth(w ColumnWidth) bool {
	return ValidSize(float64(w))
}
