package geometry

import (
	"github.com/digero/maestro-desk/internal/model"
)

// fakeWindow stands in for a host window; its move/resize/setState methods
// play the part of the user and emit events synchronously
type fakeWindow struct {
	bounds    model.Rect
	maximized bool
	listeners map[int]Listener
	nextID    int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{listeners: make(map[int]Listener)}
}

func (w *fakeWindow) Bounds() model.Rect          { return w.bounds }
func (w *fakeWindow) Maximized() bool             { return w.maximized }
func (w *fakeWindow) SetBounds(r model.Rect)      { w.bounds = r }
func (w *fakeWindow) SetMaximized(maximized bool) { w.maximized = maximized }

func (w *fakeWindow) Subscribe(l Listener) func() {
	id := w.nextID
	w.nextID++
	w.listeners[id] = l
	return func() { delete(w.listeners, id) }
}

func (w *fakeWindow) move(x, y int) {
	w.bounds.X, w.bounds.Y = x, y
	w.emit(model.GeometryMoved)
}

func (w *fakeWindow) resize(width, height int) {
	w.bounds.Width, w.bounds.Height = width, height
	w.emit(model.GeometryResized)
}

func (w *fakeWindow) setState(maximized bool) {
	w.maximized = maximized
	w.emit(model.GeometryStateChanged)
}

func (w *fakeWindow) emit(kind model.GeometryEventKind) {
	ev := model.GeometryEvent{Kind: kind, Bounds: w.bounds, Maximized: w.maximized}
	for _, l := range w.listeners {
		l.HandleGeometryEvent(ev)
	}
}

type staticScreens struct {
	displays   []model.Rect
	primary    model.Size
	displayErr error
	primaryErr error
}

func (s staticScreens) Displays() ([]model.Rect, error)  { return s.displays, s.displayErr }
func (s staticScreens) PrimarySize() (model.Size, error) { return s.primary, s.primaryErr }
