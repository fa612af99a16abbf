package display

import (
	"github.com/kbinani/screenshot"

	"github.com/digero/maestro-desk/internal/model"
)

// ScreenEnumerator uses the platform display APIs wrapped by the screenshot
// library. Display 0 is the main display.
type ScreenEnumerator struct{}

// Displays returns the bounds of every active display
func (ScreenEnumerator) Displays() ([]model.Rect, error) {
	n := screenshot.NumActiveDisplays()
	displays := make([]model.Rect, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		displays = append(displays, model.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy()))
	}
	return displays, nil
}

// PrimarySize returns the size of the main display
func (ScreenEnumerator) PrimarySize() (model.Size, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return model.Size{}, ErrNoDisplays
	}
	b := screenshot.GetDisplayBounds(0)
	return model.Size{Width: b.Dx(), Height: b.Dy()}, nil
}
