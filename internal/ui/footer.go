package ui

import "charm.land/bubbles/v2/help"

// Footer represents the bottom footer bar with key hints. The hints come
// from the key map of whatever currently has focus.
type Footer struct {
	width int
	help  help.Model
	keys  help.KeyMap
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	f := &Footer{help: help.New()}
	f.applyStyles()
	return f
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetKeyMap sets the bindings to show
func (f *Footer) SetKeyMap(keys help.KeyMap) {
	f.keys = keys
}

// applyStyles copies the theme styles into the help model. It runs on every
// render so a theme switch takes effect immediately.
func (f *Footer) applyStyles() {
	f.help.Styles.ShortKey = FooterKeyStyle
	f.help.Styles.ShortDesc = FooterDescStyle
	f.help.Styles.ShortSeparator = FooterSepStyle
	f.help.Styles.Ellipsis = FooterSepStyle
	f.help.ShortSeparator = "  |  "
}

// View renders the footer
func (f *Footer) View() string {
	f.applyStyles()

	inner := f.width - 2 // FooterStyle padding
	if inner < 0 {
		inner = 0
	}
	f.help.SetWidth(inner)

	var content string
	if f.keys != nil {
		content = f.help.ShortHelpView(f.keys.ShortHelp())
	}
	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(content)
}
