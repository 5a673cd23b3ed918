package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/layout"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.ctx.UpdateTerminalSize(m.width, m.height)
}

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}

func (m *Model) render() string {
	b := m.dock.Snapshot()
	focused := m.FocusedGrip()

	status := ""
	if m.dock.Dragging() {
		status = "resizing"
	} else if focused != "" {
		for _, g := range b.Grips() {
			if g.Anchor == focused {
				status = g.Label
				break
			}
		}
	}
	m.renderer.Header().SetStatus(status)
	m.updateToggleHelp(b, focused)
	m.renderer.Footer().SetKeyMap(m.keys)
	m.renderer.SetFocus(focused)

	return m.renderer.Render(b, m.ctx.TerminalWidth, m.ctx.TerminalHeight)
}

// updateToggleHelp names what enter does on the focused grip, and hides the
// hint for grips whose panel cannot collapse.
func (m *Model) updateToggleHelp(b layout.Bindings, focused string) {
	t, ok := toggleFor(b, focused)
	if !ok {
		m.keys.Toggle.SetEnabled(false)
		return
	}
	m.keys.Toggle.SetEnabled(true)
	m.keys.Toggle.SetHelp("enter", strings.ToLower(t.Title))
}

// toggleFor returns the collapse toggle belonging to the grip anchor.
func toggleFor(b layout.Bindings, anchor string) (layout.Toggle, bool) {
	if anchor == "" {
		return layout.Toggle{}, false
	}
	if anchor == layout.AnchorRightGrip {
		return b.Right.Toggle, b.Right.Collapsible
	}
	for _, id := range b.SectionIDs {
		if layout.SectionGripAnchor(id) == anchor {
			return b.Sections[id].Toggle, true
		}
	}
	return layout.Toggle{}, false
}
