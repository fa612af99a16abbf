package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/digero/maestro-desk/internal/model"
	"github.com/digero/maestro-desk/internal/util"
)

// CompactTheme is the default theme with reduced padding and text sizes.
// In Grayscale mode every color is reduced to its brightness, which is used
// for the disabled player state.
type CompactTheme struct {
	Grayscale bool
}

// ThemeForStatus returns the compact theme for the player state, grayed out
// while nothing is playing or paused
func ThemeForStatus(status model.PlaybackStatus) fyne.Theme {
	return &CompactTheme{Grayscale: !status.IsActive()}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	c := t.baseColor(name, variant)
	if t.Grayscale {
		return util.Grayscale(c)
	}
	return c
}

func (t *CompactTheme) baseColor(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 176, G: 120, B: 40, A: 255} // Amber for the active track
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 22, B: 20, A: 255}
		}
		return color.RGBA{R: 248, G: 244, B: 236, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	}
	return theme.DefaultTheme().Size(name)
}
