package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zhubert/dock/internal/layout"
)

// Glyphs
const (
	markerExpanded        = "▾ "
	markerCollapsed       = "▸ "
	markerInspectorOpen   = "▸ "
	markerInspectorClosed = "◂"
	gripHorizontal        = "─"
	gripVertical          = "│"
	inspectorTitle        = "Inspector"
	previewText           = "preview"
)

// Renderer paints a layout.Bindings snapshot. It reads nothing but the
// snapshot and records the interactive regions it drew for HitTest.
type Renderer struct {
	ctx    *ViewContext
	header *Header
	footer *Footer

	focus     string
	targets   []Target
	textAreas []Rect

	selection Selection
	// plain is the last frame before any overlay, for extracting text.
	plain string
}

// NewRenderer creates a renderer using ctx for the pixel/cell conversion.
func NewRenderer(ctx *ViewContext) *Renderer {
	return &Renderer{
		ctx:    ctx,
		header: NewHeader(),
		footer: NewFooter(),
	}
}

// Header returns the header bar.
func (r *Renderer) Header() *Header { return r.header }

// Footer returns the footer bar.
func (r *Renderer) Footer() *Footer { return r.footer }

// Selection returns the text selection painted over each frame.
func (r *Renderer) Selection() *Selection { return &r.selection }

// SelectedText returns the selected text of the last frame.
func (r *Renderer) SelectedText() string {
	return r.selection.text(r.plain)
}

// SetFocus sets the anchor of the grip drawn with focus. Empty clears it.
func (r *Renderer) SetFocus(anchor string) {
	r.focus = anchor
}

// Render draws the whole screen.
func (r *Renderer) Render(b layout.Bindings, width, height int) string {
	r.targets = r.targets[:0]
	r.textAreas = r.textAreas[:0]
	r.header.SetWidth(width)
	r.footer.SetWidth(width)

	contentH := height - HeaderHeight - FooterHeight
	if contentH < 1 {
		contentH = 1
	}

	leftW, centerW, rightW := fitColumns(width, r.ctx.Cols(b.Left.Width), r.ctx.Cols(b.Right.Width))
	top := HeaderHeight

	x := 0
	left := r.renderSections(b, x, top, leftW, contentH)
	x += leftW
	leftGrip := r.renderVerticalGrip(b.Left.Grip, b.Left.SuppressTransition, x, top, contentH)
	x += GripSize
	center := renderPreview(centerW, contentH)
	r.addTextArea(Rect{X: x, Y: top, W: centerW, H: contentH})
	x += centerW
	rightGrip := r.renderVerticalGrip(b.Right.Grip, b.Right.SuppressTransition, x, top, contentH)
	x += GripSize
	right := r.renderInspector(b, x, top, rightW, contentH)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, leftGrip, center, rightGrip, right)
	view := lipgloss.JoinVertical(lipgloss.Left, r.header.View(), body, r.footer.View())

	r.plain = view

	view = r.highlightFocus(view, width, height)
	return paint(view, width, height, TextSelectionStyle, r.selection.spans())
}

// fitColumns shrinks the side columns until both grips fit, the catalog
// column first. It returns the left, center and right widths in cells.
func fitColumns(total, left, right int) (int, int, int) {
	avail := total - 2*GripSize
	if avail < 0 {
		avail = 0
	}
	if over := left + right - avail; over > 0 {
		cut := min(over, left)
		left -= cut
		over -= cut
		right -= min(over, right)
	}
	return left, avail - left - right, right
}

func (r *Renderer) renderSections(b layout.Bindings, x, top, w, h int) string {
	lines := make([]string, 0, h)

	for _, id := range b.SectionIDs {
		if len(lines) >= h {
			break
		}
		s := b.Sections[id]

		marker, titleStyle := markerExpanded, PanelTitleStyle
		if !s.Toggle.Expanded {
			marker, titleStyle = markerCollapsed, PanelTitleCollapsedStyle
		}
		toggleW := min(ToggleWidth, w)
		lines = append(lines, ToggleStyle.Render(fit(marker, toggleW))+titleStyle.Render(fit(s.Title, w-toggleW)))
		if s.Grip.OnToggle != nil {
			r.addTarget(TargetToggle, s.Grip, Rect{X: x, Y: top + len(lines) - 1, W: toggleW, H: 1})
		}

		gripRows := 0
		if s.GripVisible {
			gripRows = GripSize
		}
		bodyRows := 0
		if !s.Collapsed {
			bodyRows = r.ctx.Rows(s.Height) - SectionTitleHeight - gripRows
		}
		for i := 0; i < bodyRows && len(lines) < h; i++ {
			text := ""
			if i == 0 {
				text = "  no items"
			}
			lines = append(lines, PanelBodyStyle.Render(fit(text, w)))
		}

		if s.GripVisible && len(lines) < h {
			lines = append(lines, gripStyle(s.SuppressTransition).Render(strings.Repeat(gripHorizontal, max(w, 0))))
			r.addTarget(TargetGrip, s.Grip, Rect{X: x, Y: top + len(lines) - 1, W: w, H: GripSize})
		}
	}

	return block(lines, w, h)
}

func (r *Renderer) renderVerticalGrip(g layout.Grip, active bool, x, top, h int) string {
	r.addTarget(TargetGrip, g, Rect{X: x, Y: top, W: GripSize, H: h})
	glyph := gripStyle(active).Render(gripVertical)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = glyph
	}
	return strings.Join(lines, "\n")
}

func renderPreview(w, h int) string {
	if w <= 0 {
		return block(nil, 0, h)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, PreviewStyle.Render(fit(previewText, w)))
}

func (r *Renderer) renderInspector(b layout.Bindings, x, top, w, h int) string {
	if w <= 0 {
		return block(nil, 0, h)
	}
	var lines []string

	if b.Right.Collapsed {
		lines = append(lines, ToggleStyle.Render(fit(markerInspectorClosed, w)))
		r.addTarget(TargetToggle, b.Right.Grip, Rect{X: x, Y: top, W: w, H: 1})
		for _, g := range graphemes(inspectorTitle) {
			lines = append(lines, PanelTitleCollapsedStyle.Render(lipgloss.PlaceHorizontal(w, lipgloss.Center, g)))
		}
		return block(lines, w, h)
	}

	toggleW := min(ToggleWidth, w)
	lines = append(lines, ToggleStyle.Render(fit(markerInspectorOpen, toggleW))+PanelTitleStyle.Render(fit(inspectorTitle, w-toggleW)))
	r.addTarget(TargetToggle, b.Right.Grip, Rect{X: x, Y: top, W: toggleW, H: 1})
	r.addTextArea(Rect{X: x, Y: top + 1, W: w, H: h - 1})

	for _, id := range b.SectionIDs {
		s := b.Sections[id]
		lines = append(lines, readout(s.Title, sizeLabel(s.Height, s.Collapsed), w))
	}
	lines = append(lines,
		readout("Catalog", sizeLabel(b.Left.Width, false), w),
		readout(inspectorTitle, sizeLabel(b.Right.Width, false), w),
	)
	return block(lines, w, h)
}

// highlightFocus paints the focused grip over the finished view.
func (r *Renderer) highlightFocus(view string, width, height int) string {
	if r.focus == "" {
		return view
	}
	for _, t := range r.targets {
		if t.Kind != TargetGrip || t.Anchor != r.focus {
			continue
		}
		spans := make([]span, 0, t.Rect.H)
		for y := t.Rect.Y; y < t.Rect.Y+t.Rect.H; y++ {
			spans = append(spans, span{y: y, x0: t.Rect.X, x1: t.Rect.X + t.Rect.W})
		}
		return paint(view, width, height, GripFocusStyle, spans)
	}
	return view
}

// paint restyles the given cells of a finished view: decode it into a cell
// buffer, recolor the cells, re-encode.
func paint(view string, width, height int, style lipgloss.Style, spans []span) string {
	if len(spans) == 0 || width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	bg := style.GetBackground()
	fg := style.GetForeground()
	for _, sp := range spans {
		if sp.y < 0 || sp.y >= height {
			continue
		}
		for x := max(sp.x0, 0); x < sp.x1 && x < width; x++ {
			cell := scr.CellAt(x, sp.y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = bg
				cell.Style.Fg = fg
				scr.SetCell(x, sp.y, cell)
			}
		}
	}

	return scr.Render()
}

func gripStyle(active bool) lipgloss.Style {
	if active {
		return GripActiveStyle
	}
	return GripStyle
}

func readout(label, value string, w int) string {
	value = fit(value, min(len(value), w))
	labelW := w - ansi.StringWidth(value)
	return InspectorKeyStyle.Render(fit(" "+label, labelW)) + InspectorValueStyle.Render(value)
}

func sizeLabel(px float64, collapsed bool) string {
	if collapsed {
		return "collapsed "
	}
	return fmt.Sprintf("%dpx ", int(px))
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "…")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// block pads lines to h rows of width w and joins them.
func block(lines []string, w, h int) string {
	blank := strings.Repeat(" ", max(w, 0))
	for len(lines) < h {
		lines = append(lines, blank)
	}
	return strings.Join(lines[:h], "\n")
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
