package ui

import (
	"reflect"
	"testing"
)

func TestGetTheme_Fallback(t *testing.T) {
	if got := GetTheme("missing"); got.Name != BuiltinThemes[DefaultTheme].Name {
		t.Errorf("GetTheme(missing) = %q, want default", got.Name)
	}
}

func TestThemeNames(t *testing.T) {
	want := []ThemeName{ThemeDark, ThemeLight}
	if got := ThemeNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ThemeNames() = %v, want %v", got, want)
	}
}

func TestToggleTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)
	SetTheme(ThemeDark)

	if got := ToggleTheme(); got != ThemeLight {
		t.Errorf("first toggle = %q, want light", got)
	}
	if CurrentThemeName() != ThemeLight {
		t.Errorf("current = %q", CurrentThemeName())
	}
	if got := ToggleTheme(); got != ThemeDark {
		t.Errorf("second toggle = %q, want dark", got)
	}
}

func TestSetTheme_RegeneratesStyles(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeDark)
	dark := GripFocusStyle.GetBackground()

	SetThemeByName("light")
	light := GripFocusStyle.GetBackground()

	if reflect.DeepEqual(dark, light) {
		t.Error("focus background should change with the theme")
	}
}

func TestGetBorderFocus_DefaultsToPrimary(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBorderFocus() != "#111111" {
		t.Errorf("GetBorderFocus() = %q", th.GetBorderFocus())
	}
	th.BorderFocus = "#222222"
	if th.GetBorderFocus() != "#222222" {
		t.Errorf("GetBorderFocus() = %q", th.GetBorderFocus())
	}
}

func TestBuiltinThemes_DistinctFocusColors(t *testing.T) {
	seen := make(map[string]ThemeName)
	for _, name := range ThemeNames() {
		c := GetTheme(name).GetBorderFocus()
		if other, ok := seen[c]; ok {
			t.Errorf("themes %s and %s share focus color %s", other, name, c)
		}
		seen[c] = name
	}
}
