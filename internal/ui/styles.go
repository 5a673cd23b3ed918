package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, regenerated from the active theme.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorActive      color.Color
	ColorBg          color.Color
	ColorSurface     color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
)

// Header styles
var HeaderTitleStyle lipgloss.Style

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// Panel styles
var (
	PanelTitleStyle          lipgloss.Style
	PanelTitleCollapsedStyle lipgloss.Style
	PanelBodyStyle           lipgloss.Style
	ToggleStyle              lipgloss.Style
)

// Grip styles
var (
	GripStyle       lipgloss.Style
	GripActiveStyle lipgloss.Style
	// GripFocusStyle is painted over the focused grip after layout.
	GripFocusStyle lipgloss.Style
)

// Preview and inspector styles
var (
	PreviewStyle        lipgloss.Style
	InspectorKeyStyle   lipgloss.Style
	InspectorValueStyle lipgloss.Style
	// TextSelectionStyle highlights selected preview and inspector text.
	TextSelectionStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}
