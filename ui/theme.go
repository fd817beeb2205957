package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	tintLight = color.NRGBA{R: 0x0a, G: 0x7e, B: 0xa4, A: 0xff}
	tintDark  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// WarningColor paints the time during the last seconds.
	WarningColor = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// CustomTheme tints the default theme and uses a pure red for errors so the
// warning display matches the warning cue.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color returns the color for the given name and variant.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		if variant == theme.VariantDark {
			return tintDark
		}
		return tintLight
	case theme.ColorNameError:
		return WarningColor
	}
	return t.Theme.Color(name, variant)
}

// Size enlarges headings, which the time display uses as its base size.
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameHeadingText {
		return t.Theme.Size(name) * 1.5
	}
	return t.Theme.Size(name)
}
