// Package keys provides string constants for Bubble Tea v2 key press events.
//
// The values are derived from tea.KeyPressMsg{...}.String() so they always
// match what the runtime reports. Grip handlers compare against these
// instead of hand-written strings.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}.String()    // "up"
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}.String()  // "down"
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
	Home  = tea.KeyPressMsg{Code: tea.KeyHome}.String()  // "home"
	End   = tea.KeyPressMsg{Code: tea.KeyEnd}.String()   // "end"
)

// Coarse resize steps
var (
	ShiftUp    = (tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModShift}).String()    // "shift+up"
	ShiftDown  = (tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModShift}).String()  // "shift+down"
	ShiftLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift}).String()  // "shift+left"
	ShiftRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}).String() // "shift+right"
)

// Action keys
var (
	Enter    = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Space    = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
	CtrlC    = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()         // "ctrl+c"
)
