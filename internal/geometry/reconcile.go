package geometry

import "github.com/digero/maestro-desk/internal/model"

// Reconcile moves stored onto a real display without resizing it.
//
// The first display in enumeration order that overlaps the stored rectangle
// is used, not the one with the largest overlap. The window is shifted so
// that its right and bottom edges are not past the display's far edges and
// its left and top edges are not before the display origin. A window larger
// than the display is pinned to the origin edge and overflows the far edge.
// When no display overlaps, the window is centered on the primary display
// using its stored size.
func Reconcile(stored model.WindowGeometry, displays []model.Rect, primary model.Size) model.WindowGeometry {
	result := stored

	screen, ok := firstIntersecting(stored.Rect, displays)
	if !ok {
		result.X = (primary.Width - stored.Width) / 2
		result.Y = (primary.Height - stored.Height) / 2
		return result
	}

	// far edge first so an oversized window ends up pinned to the origin
	if result.Right() > screen.Right() {
		result.X = screen.Right() - result.Width
	}
	if result.X < screen.X {
		result.X = screen.X
	}

	if result.Bottom() > screen.Bottom() {
		result.Y = screen.Bottom() - result.Height
	}
	if result.Y < screen.Y {
		result.Y = screen.Y
	}

	return result
}

func firstIntersecting(r model.Rect, displays []model.Rect) (model.Rect, bool) {
	for _, d := range displays {
		if d.Intersects(r) {
			return d, true
		}
	}
	return model.Rect{}, false
}
