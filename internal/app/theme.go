package app

import (
	"image/color"

	"manhattan-map/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette colors shared by the theme and the custom widgets.
var (
	ColorPaper     = colorutil.MustParseHex("#F5F3EF")
	ColorInk       = colorutil.MustParseHex("#1A1A1A")
	ColorHighlight = colorutil.WithAlpha(colorutil.MustParseHex("#FFD500"), 0.4)
	ColorTooltip   = colorutil.WithAlpha(ColorInk, 0.9)
)

// MapTheme is a light theme matching the illustrated map.
type MapTheme struct{}

var _ fyne.Theme = (*MapTheme)(nil)

func (t *MapTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorPaper
	case theme.ColorNameForeground:
		return ColorInk
	case theme.ColorNamePrimary:
		return ColorInk
	case theme.ColorNameHover:
		return ColorHighlight
	case theme.ColorNameOverlayBackground:
		return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

func (t *MapTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *MapTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *MapTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 28
	default:
		return theme.DefaultTheme().Size(name)
	}
}
