package app

import (
	"charm.land/bubbles/v2/key"

	"github.com/zhubert/dock/internal/keys"
)

// KeyMap is the single source of truth for the program's key bindings.
// Grip-level keys (arrows, home/end, enter/space) are listed for help
// only; the focused grip interprets them itself.
type KeyMap struct {
	NextGrip key.Binding
	PrevGrip key.Binding
	Resize   key.Binding
	Coarse   key.Binding
	Bounds   key.Binding
	Toggle   key.Binding
	Blur     key.Binding
	Theme    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextGrip: key.NewBinding(
			key.WithKeys(keys.Tab),
			key.WithHelp("tab", "next grip"),
		),
		PrevGrip: key.NewBinding(
			key.WithKeys(keys.ShiftTab),
			key.WithHelp("shift+tab", "prev grip"),
		),
		Resize: key.NewBinding(
			key.WithKeys(keys.Up, keys.Down, keys.Left, keys.Right),
			key.WithHelp("arrows", "resize"),
		),
		Coarse: key.NewBinding(
			key.WithKeys(keys.ShiftUp, keys.ShiftDown, keys.ShiftLeft, keys.ShiftRight),
			key.WithHelp("shift+arrows", "resize more"),
		),
		Bounds: key.NewBinding(
			key.WithKeys(keys.Home, keys.End),
			key.WithHelp("home/end", "min/max"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(keys.Enter, keys.Space),
			key.WithHelp("enter", "collapse"),
		),
		Blur: key.NewBinding(
			key.WithKeys(keys.Escape),
			key.WithHelp("esc", "release"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", keys.CtrlC),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGrip, k.Resize, k.Coarse, k.Toggle, k.Blur, k.Theme, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextGrip, k.PrevGrip, k.Blur},
		{k.Resize, k.Coarse, k.Bounds, k.Toggle},
		{k.Theme, k.Quit},
	}
}

// setGripFocused enables the grip-level bindings only while a grip has
// focus, so the footer shows them only when they do something.
func (k *KeyMap) setGripFocused(focused bool) {
	k.Resize.SetEnabled(focused)
	k.Coarse.SetEnabled(focused)
	k.Bounds.SetEnabled(focused)
	k.Toggle.SetEnabled(focused)
	k.Blur.SetEnabled(focused)
}
