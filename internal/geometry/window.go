package geometry

import "github.com/digero/maestro-desk/internal/model"

// Window is the host window capability the tracker observes. Implementations
// deliver events one at a time on the UI thread, in arrival order.
type Window interface {
	Bounds() model.Rect
	Maximized() bool
	SetBounds(r model.Rect)
	SetMaximized(maximized bool)

	// Subscribe registers l for every later geometry change. The returned
	// function removes the subscription and is safe to call more than once.
	Subscribe(l Listener) (cancel func())
}

// Listener receives geometry change events from a Window
type Listener interface {
	HandleGeometryEvent(ev model.GeometryEvent)
}

// ListenerFunc adapts a plain function to Listener
type ListenerFunc func(ev model.GeometryEvent)

// HandleGeometryEvent calls f
func (f ListenerFunc) HandleGeometryEvent(ev model.GeometryEvent) {
	f(ev)
}

// Screens enumerates attached displays. display.Enumerator implementations
// satisfy it.
type Screens interface {
	Displays() ([]model.Rect, error)
	PrimarySize() (model.Size, error)
}

// Snapshot returns the current placement of win
func Snapshot(win Window) model.WindowGeometry {
	return model.WindowGeometry{Rect: win.Bounds(), Maximized: win.Maximized()}
}
