package app

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/ui"
)

// frameInterval paces drag updates at roughly one per display frame.
const frameInterval = time.Second / 60

// FrameMsg is delivered once per frame while drag updates are pending.
type FrameMsg time.Time

// frameTick schedules the next FrameMsg.
func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		if cmd := m.handleMouse(msg); cmd != nil {
			return m, tea.Batch(cmd, m.scheduleFrame())
		}

	case FrameMsg:
		m.frameScheduled = false
		if n := m.frames.Flush(); n > 0 {
			logger.ComponentLogger("app").Debug("Frame flushed", "callbacks", n)
		}

	case LayoutChangedMsg:
		m.reloadLayout()
	}

	return m, m.scheduleFrame()
}

// scheduleFrame returns a tick when frame work is pending and none is in
// flight yet.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.frameScheduled || !m.frames.Pending() {
		return nil
	}
	m.frameScheduled = true
	return frameTick()
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextGrip):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevGrip):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	}

	grips := m.dock.Snapshot().Grips()
	if m.focus < 0 || m.focus >= len(grips) {
		return m, nil
	}

	if key.Matches(msg, m.keys.Blur) {
		m.dock.Close()
		m.setFocus(noFocus)
		return m, nil
	}

	g := grips[m.focus]
	if g.OnKeyDown != nil && g.OnKeyDown(msg.String()) {
		logger.ComponentLogger("app").Debug("Grip key", "grip", g.Anchor, "key", msg.String())
	}
	return m, nil
}

// cycleFocus moves keyboard focus by step through the grips, wrapping
// around. From no focus, forward lands on the first grip and backward on
// the last.
func (m *Model) cycleFocus(step int) {
	n := len(m.dock.Snapshot().Grips())
	if n == 0 {
		return
	}
	next := m.focus + step
	if m.focus == noFocus && step < 0 {
		next = n - 1
	}
	m.setFocus(((next % n) + n) % n)
}

func (m *Model) setFocus(i int) {
	m.focus = i
	m.keys.setGripFocused(i != noFocus)
}

func (m *Model) toggleTheme() {
	name := ui.ToggleTheme()
	m.config.SetTheme(string(name))
	if !m.persistTheme {
		return
	}
	if err := m.config.Save(); err != nil {
		logger.ComponentLogger("app").Warn("Failed to save theme", "error", err)
	}
}
