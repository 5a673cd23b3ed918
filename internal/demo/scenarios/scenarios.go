// Package scenarios contains built-in demo scenarios for the dock.
package scenarios

import (
	"time"

	"github.com/zhubert/dock/internal/demo"
)

// The built-in scenarios use a 120x40 terminal. With 8x16 cells the left
// grip starts at column 40, the inspector grip at column 79 and the
// components grip on row 16.

// Keyboard walks every grip with tab and resizes with the arrow keys.
var Keyboard = &demo.Scenario{
	Name:        "keyboard",
	Description: "Resize and collapse every panel from the keyboard",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Grow the components section
		demo.KeyWithDesc("tab", "Focus the components grip"),
		demo.Key("down"),
		demo.Key("down"),
		demo.Key("shift+down"),
		demo.Annotate("Arrow keys resize the focused grip"),
		demo.Wait(500 * time.Millisecond),

		// Collapse the layers section
		demo.KeyWithDesc("tab", "Focus the layers grip"),
		demo.KeyWithDesc("enter", "Collapse layers"),
		demo.Annotate("Enter collapses a section to its title"),
		demo.Wait(500 * time.Millisecond),

		// Widen the catalog
		demo.Key("tab"),
		demo.KeyWithDesc("tab", "Focus the catalog grip"),
		demo.Key("shift+right"),
		demo.Key("shift+right"),
		demo.Wait(500 * time.Millisecond),

		// Collapse and restore the inspector
		demo.KeyWithDesc("tab", "Focus the inspector grip"),
		demo.KeyWithDesc("enter", "Collapse the inspector"),
		demo.Annotate("The inspector collapses to a strip"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("enter", "Restore the inspector"),
		demo.Wait(500 * time.Millisecond),

		// Theme switch
		demo.KeyWithDesc("t", "Switch theme"),
		demo.Key("esc"),
		demo.Wait(1 * time.Second),
	},
}

// Mouse drags the grips and clicks the collapse toggles.
var Mouse = &demo.Scenario{
	Name:        "mouse",
	Description: "Drag grips and click collapse toggles",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		demo.DragWithDesc(40, 10, 52, 10, 6, "Widen the catalog"),
		demo.Annotate("Drag the catalog grip"),
		demo.Wait(500 * time.Millisecond),

		demo.DragWithDesc(5, 16, 5, 20, 4, "Grow the components section"),
		demo.Wait(500 * time.Millisecond),

		demo.DragWithDesc(79, 10, 71, 10, 4, "Widen the inspector"),
		demo.Annotate("The inspector grows as its grip moves left"),
		demo.Wait(500 * time.Millisecond),

		// Components title row toggle
		demo.Click(0, 1),
		demo.Annotate("Click a title to collapse it"),
		demo.Wait(1 * time.Second),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Keyboard,
		Mouse,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
