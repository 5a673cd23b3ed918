package panel

import (
	"math"

	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/geometry"
)

// Storage keys.
const (
	LeftKey       = "dock.left.width"
	RightKey      = "dock.right"
	sectionPrefix = "dock.section."
)

// SectionKey returns the storage key of section id.
func SectionKey(id string) string {
	return sectionPrefix + id
}

// NewSection creates a vertically resizable, collapsible section panel.
// parent measures the height of the column the sections are stacked in;
// the section may grow until only the collapsed strips of two siblings fit,
// but never below its own collapsed strip.
func NewSection(id, label string, defaultHeight float64, parent Measure, deps Deps) *Panel {
	return New(Config{
		Key:           SectionKey(id),
		Label:         label,
		Axis:          drag.AxisY,
		Collapsible:   true,
		CollapsedSize: geometry.SectionCollapsedHeight,
		RestoreFloor:  geometry.SectionRestoreFloor,
		DefaultSize:   defaultHeight,
		Max: func() float64 {
			h := measure(parent)
			if h <= 0 {
				return 0
			}
			return math.Max(geometry.SectionCollapsedHeight, h-2*geometry.SectionCollapsedHeight)
		},
		Codec: SectionCodec{},
	}, deps)
}

// NewLeftColumn creates the catalog column: horizontal, never collapses.
func NewLeftColumn(viewport Measure, deps Deps) *Panel {
	return New(Config{
		Key:         LeftKey,
		Label:       "Resize catalog",
		Axis:        drag.AxisX,
		MinSize:     geometry.LeftMinWidth,
		DefaultSize: geometry.LeftDefaultWidth,
		Max:         columnMax(viewport, geometry.LeftMinWidth, geometry.LeftReserve),
		Codec:       WidthCodec{},
	}, deps)
}

// NewRightColumn creates the inspector column. Its grip sits on its left
// edge, so drag and arrow deltas are inverted.
func NewRightColumn(viewport Measure, deps Deps) *Panel {
	return New(Config{
		Key:           RightKey,
		Label:         "Resize inspector",
		Axis:          drag.AxisX,
		Invert:        true,
		Collapsible:   true,
		CollapsedSize: geometry.RightCollapsedWidth,
		RestoreFloor:  geometry.RightRestoreFloor,
		DefaultSize:   geometry.RightDefaultWidth,
		Max:           columnMax(viewport, geometry.RightRestoreFloor, geometry.RightReserve),
		Codec:         ColumnCodec{},
	}, deps)
}

func columnMax(viewport Measure, floor, reserve float64) Measure {
	return func() float64 {
		w := measure(viewport)
		if w <= 0 {
			return 0
		}
		return math.Max(floor, w-reserve)
	}
}

func measure(m Measure) float64 {
	if m == nil {
		return 0
	}
	return m()
}
