// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI.
package ui

import (
	"sort"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for key hints, markers)
	Secondary string

	// Background colors
	Bg        string // Main background
	BgSurface string // Section and inspector bodies

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Border colors
	Border      string // Idle grips and dividers
	BorderFocus string // Focused grip (defaults to Primary if empty)
	Active      string // Grip under a live drag
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDark

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDark: {
		Name:        "Dark",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		BgSurface:   "#111827",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Border:      "#374151",
		Active:      "#F59E0B",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6D28D9",
		Secondary:   "#0891B2",
		Bg:          "#F9FAFB",
		BgSurface:   "#FFFFFF",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#F9FAFB",
		Border:      "#D1D5DB",
		Active:      "#D97706",
	},
}

var currentTheme = BuiltinThemes[DefaultTheme]

// GetTheme returns the theme with the given name, or the default theme if
// not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// ThemeNames returns the built-in theme names in sorted order
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// ToggleTheme switches between the dark and light themes and returns the
// new theme name
func ToggleTheme() ThemeName {
	next := ThemeLight
	if CurrentThemeName() == ThemeLight {
		next = ThemeDark
	}
	SetTheme(next)
	return next
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorActive = lipgloss.Color(t.Active)
	ColorBg = lipgloss.Color(t.Bg)
	ColorSurface = lipgloss.Color(t.BgSurface)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)

	// Header and footer
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	// Panels
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	PanelTitleCollapsedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelBodyStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ToggleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	// Grips
	GripStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	GripActiveStyle = lipgloss.NewStyle().
		Foreground(ColorActive).
		Bold(true)

	GripFocusStyle = lipgloss.NewStyle().
		Background(ColorBorderFocus).
		Foreground(ColorTextInverse)

	// Preview and inspector
	PreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	InspectorKeyStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	InspectorValueStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	TextSelectionStyle = lipgloss.NewStyle().
		Background(ColorSecondary).
		Foreground(ColorTextInverse)
}
