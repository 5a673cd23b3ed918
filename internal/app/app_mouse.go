package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/drag"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/ui"
)

// handleMouse routes terminal mouse events. A left press on a grip starts a
// drag through its pointer handler; motion and release are broadcast on the
// window so the live session sees them wherever the pointer is. A press on
// preview or inspector text starts a text selection instead, unless a drag
// holds the window's selection lock.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	sel := m.renderer.Selection()

	switch mouseMsg := msg.(type) {
	case tea.MouseClickMsg:
		if mouseMsg.Button != tea.MouseLeft {
			return nil
		}
		m.handlePress(mouseMsg.X, mouseMsg.Y)

	case tea.MouseMotionMsg:
		m.window.Dispatch(drag.PointerMove, m.pointAt(mouseMsg.X, mouseMsg.Y))
		if sel.Active() && m.window.SelectionEnabled() {
			sel.Extend(mouseMsg.X, mouseMsg.Y)
		}

	case tea.MouseReleaseMsg:
		m.window.Dispatch(drag.PointerUp, m.pointAt(mouseMsg.X, mouseMsg.Y))
		if sel.Active() {
			sel.Stop()
			return m.copySelection()
		}
	}
	return nil
}

func (m *Model) handlePress(x, y int) {
	m.renderer.Selection().Clear()

	target, ok := m.renderer.HitTest(x, y)
	if !ok {
		m.startSelection(x, y)
		return
	}
	log := logger.ComponentLogger("app")

	switch target.Kind {
	case ui.TargetToggle:
		if target.Grip.OnToggle != nil {
			log.Debug("Toggle clicked", "grip", target.Anchor)
			target.Grip.OnToggle()
		}

	case ui.TargetGrip:
		m.focusAnchor(target.Anchor)
		if target.Grip.OnPointerDown != nil {
			p := m.pointAt(x, y)
			log.Debug("Grip pressed", "grip", target.Anchor, "axis", target.Axis())
			target.Grip.OnPointerDown(p.On(target.Axis()))
		}
	}
}

// startSelection begins a text selection when (x, y) is on selectable text
// and no drag has disabled selection.
func (m *Model) startSelection(x, y int) {
	area, ok := m.renderer.TextAreaAt(x, y)
	if !ok {
		return
	}
	if !m.window.SelectionEnabled() {
		logger.ComponentLogger("app").Debug("Selection refused during drag")
		return
	}
	m.renderer.Selection().Start(x, y, area)
}

// copySelection copies the finished selection to the terminal clipboard.
func (m *Model) copySelection() tea.Cmd {
	text := m.renderer.SelectedText()
	if text == "" {
		return nil
	}
	logger.ComponentLogger("app").Debug("Selection copied", "chars", len(text))
	return tea.SetClipboard(text)
}

// pointAt converts a cell position to host pixels.
func (m *Model) pointAt(x, y int) drag.Point {
	return drag.Point{X: m.ctx.XPx(x), Y: m.ctx.YPx(y)}
}

// focusAnchor gives keyboard focus to the grip with the given anchor.
func (m *Model) focusAnchor(anchor string) {
	for i, g := range m.dock.Snapshot().Grips() {
		if g.Anchor == anchor {
			m.setFocus(i)
			return
		}
	}
}
