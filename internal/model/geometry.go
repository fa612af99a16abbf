package model

import "fmt"

// Size is a width/height pair in screen pixels
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in screen coordinates
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle from position and size
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate one past the right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Size returns the rectangle dimensions
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether the two rectangles share a region of positive area.
// Empty rectangles never intersect anything.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// String returns the rectangle as WxH+X+Y, the X11 geometry notation
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.Width, r.Height, r.X, r.Y)
}

// WindowGeometry is the persisted placement of a top-level window
type WindowGeometry struct {
	Rect
	Maximized bool
}

// GeometryEventKind identifies what changed on a host window
type GeometryEventKind int

const (
	// GeometryMoved means the window position changed
	GeometryMoved GeometryEventKind = iota

	// GeometryResized means the window size changed
	GeometryResized

	// GeometryStateChanged means the window was maximized or restored
	GeometryStateChanged
)

// String returns a short name for the event kind
func (k GeometryEventKind) String() string {
	switch k {
	case GeometryMoved:
		return "Moved"
	case GeometryResized:
		return "Resized"
	case GeometryStateChanged:
		return "StateChanged"
	default:
		return "Unknown"
	}
}

// GeometryEvent is delivered by a host window after a user-driven change.
// Bounds and Maximized describe the window after the change.
type GeometryEvent struct {
	Kind      GeometryEventKind
	Bounds    Rect
	Maximized bool
}
