package ui

import (
	"math"
	"sync"

	"github.com/zhubert/dock/internal/logger"
)

// ViewContext holds centralized layout calculations and the pixel/cell
// conversion. All size calculations should go through this to avoid
// duplication. It also reports the dock's live dimensions in pixels.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// Pixels per cell
	CellWidth  int
	CellHeight int

	mu sync.Mutex
}

// NewViewContext creates a context with the given cell size. Non-positive
// values fall back to the defaults.
func NewViewContext(cellWidth, cellHeight int) *ViewContext {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &ViewContext{
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
	}
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	logger.ComponentLogger("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"viewportPx", width*v.CellWidth,
	)
}

// ViewportWidth returns the terminal width in pixels, or 0 before the
// first size update.
func (v *ViewContext) ViewportWidth() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.TerminalWidth * v.CellWidth)
}

// ColumnHeight returns the height of the content area in pixels, or 0
// before the first size update.
func (v *ViewContext) ColumnHeight() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.ContentHeight * v.CellHeight)
}

// Cols converts a horizontal pixel size to whole cells.
func (v *ViewContext) Cols(px float64) int {
	return toCells(px, v.CellWidth)
}

// Rows converts a vertical pixel size to whole cells.
func (v *ViewContext) Rows(px float64) int {
	return toCells(px, v.CellHeight)
}

// XPx returns the pixel coordinate of terminal column x.
func (v *ViewContext) XPx(x int) float64 {
	return float64(x * v.CellWidth)
}

// YPx returns the pixel coordinate of terminal row y.
func (v *ViewContext) YPx(y int) float64 {
	return float64(y * v.CellHeight)
}

func toCells(px float64, cell int) int {
	if px <= 0 || cell <= 0 || math.IsNaN(px) || math.IsInf(px, 0) {
		return 0
	}
	return int(math.Round(px / float64(cell)))
}
