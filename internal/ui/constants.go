// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// GripSize is the thickness of a resize grip in cells
	GripSize = 1

	// SectionTitleHeight is the height of a section title strip in lines
	SectionTitleHeight = 1

	// ToggleWidth is the clickable width of a collapse marker ("▾ ")
	ToggleWidth = 2

	// MinTerminalWidth is the narrowest terminal the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the shortest terminal the layout is computed for
	MinTerminalHeight = 10
)

// Cell geometry. Panel sizes are kept in pixels and mapped onto terminal
// cells with these factors.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)
