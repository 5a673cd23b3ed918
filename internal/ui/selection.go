package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Selection is a mouse text selection over the preview or the inspector.
//
// Coordinates are screen cells, the same space as mouse events and
// HitTest. A selection stays inside the text area it started in: extending
// past an edge clamps to it, so a selection never runs into a grip or a
// neighbouring column.
type Selection struct {
	startCol, startLine int
	endCol, endLine     int
	area                Rect
	set                 bool
	active              bool
}

// Start begins a selection at (col, line) confined to area.
func (s *Selection) Start(col, line int, area Rect) {
	s.area = area
	s.startCol, s.startLine = col, line
	s.endCol, s.endLine = col, line
	s.set = true
	s.active = true
}

// Extend moves the end of an active selection.
func (s *Selection) Extend(col, line int) {
	if !s.active {
		return
	}
	s.endCol = min(max(col, s.area.X), s.area.X+s.area.W)
	s.endLine = min(max(line, s.area.Y), s.area.Y+s.area.H-1)
}

// Stop ends the mouse drag but keeps the selection visible.
func (s *Selection) Stop() {
	s.active = false
}

// Clear drops the selection entirely.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Active reports whether the selection is still following the mouse.
func (s *Selection) Active() bool {
	return s.active
}

// HasSelection reports whether at least one cell is selected.
func (s *Selection) HasSelection() bool {
	return s.set && (s.startCol != s.endCol || s.startLine != s.endLine)
}

// span is a half-open run of selected cells on one screen row.
type span struct {
	y, x0, x1 int
}

// spans returns the selected cells row by row in reading order.
func (s *Selection) spans() []span {
	if !s.HasSelection() {
		return nil
	}
	startCol, startLine := s.startCol, s.startLine
	endCol, endLine := s.endCol, s.endLine
	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}

	left, right := s.area.X, s.area.X+s.area.W
	out := make([]span, 0, endLine-startLine+1)
	for y := startLine; y <= endLine; y++ {
		x0, x1 := left, right
		if y == startLine {
			x0 = startCol
		}
		if y == endLine {
			x1 = endCol
		}
		if x1 > x0 {
			out = append(out, span{y: y, x0: x0, x1: x1})
		}
	}
	return out
}

// text extracts the selected characters from a rendered view. Styling is
// stripped and trailing padding dropped from every row.
func (s *Selection) text(view string) string {
	spans := s.spans()
	if len(spans) == 0 {
		return ""
	}
	lines := strings.Split(view, "\n")

	var b strings.Builder
	for i, sp := range spans {
		if sp.y < 0 || sp.y >= len(lines) {
			continue
		}
		row := ansi.Strip(ansi.Cut(lines[sp.y], sp.x0, sp.x1))
		b.WriteString(strings.TrimRight(row, " "))
		if i < len(spans)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}
