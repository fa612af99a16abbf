package textfit

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Measurer reports the rendered width of a string in a fixed font context.
// Widths must not shrink when a string is extended.
type Measurer interface {
	Width(text string) float32
}

// MeasureFunc adapts a plain function to Measurer
type MeasureFunc func(text string) float32

// Width calls f
func (f MeasureFunc) Width(text string) float32 {
	return f(text)
}

// FyneMeasurer measures text in pixels the way a Fyne label renders it.
// A zero TextSize uses the current theme text size.
type FyneMeasurer struct {
	TextSize float32
	Style    fyne.TextStyle
}

// Width returns the rendered pixel width of text
func (m FyneMeasurer) Width(text string) float32 {
	size := m.TextSize
	if size <= 0 {
		size = theme.TextSize()
	}
	return fyne.MeasureText(text, size, m.Style).Width
}

// CellMeasurer measures text in terminal cells, counting wide runes twice
type CellMeasurer struct{}

// Width returns the number of terminal cells text occupies
func (CellMeasurer) Width(text string) float32 {
	return float32(runewidth.StringWidth(text))
}

// StyledMeasurer measures terminal text that may carry ANSI styling.
// Escape sequences take no cells.
type StyledMeasurer struct{}

// Width returns the cell width of text with styling stripped
func (StyledMeasurer) Width(text string) float32 {
	return float32(lipgloss.Width(text))
}
