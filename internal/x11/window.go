package x11

import (
	"fmt"
	"log"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/google/uuid"

	"github.com/digero/maestro-desk/internal/geometry"
	"github.com/digero/maestro-desk/internal/model"
)

// EWMH state names and _NET_WM_STATE request actions
const (
	atomWMState        = "_NET_WM_STATE"
	stateMaximizedHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaximizedVert = "_NET_WM_STATE_MAXIMIZED_VERT"

	stateRemove = 0
	stateAdd    = 1
)

// Window tracks a top-level client window. Events are produced on the X event
// loop and handed to dispatch, which should run them on the UI thread.
type Window struct {
	conn     *Connection
	id       xproto.Window
	win      *xwindow.Window
	dispatch func(func())

	mu        sync.Mutex
	bounds    model.Rect
	maximized bool
	listeners []subscription
}

type subscription struct {
	id       uuid.UUID
	listener geometry.Listener
}

var _ geometry.Window = (*Window)(nil)

// NewWindow starts tracking the client window id. A nil dispatch delivers
// events directly on the X event loop goroutine.
func (c *Connection) NewWindow(id xproto.Window, dispatch func(func())) (*Window, error) {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}

	w := &Window{
		conn:      c,
		id:        id,
		win:       xwindow.New(c.XUtil, id),
		dispatch: dispatch,
	}

	if err := w.win.Listen(xproto.EventMaskStructureNotify, xproto.EventMaskPropertyChange); err != nil {
		return nil, fmt.Errorf("failed to select events on window %d: %w", id, err)
	}

	bounds, err := w.queryBounds()
	if err != nil {
		return nil, err
	}
	w.bounds = bounds
	w.maximized = w.queryMaximized()

	xevent.ConfigureNotifyFun(w.onConfigure).Connect(c.XUtil, id)
	xevent.PropertyNotifyFun(w.onProperty).Connect(c.XUtil, id)

	return w, nil
}

// Bounds returns the last known frame geometry in root coordinates,
// decorations included
func (w *Window) Bounds() model.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

// Maximized reports whether the window is maximized in both directions
func (w *Window) Maximized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.maximized
}

// SetBounds asks the window manager to place the frame at r. The window
// manager sizes the client, so the decorations are taken off r first.
func (w *Window) SetBounds(r model.Rect) {
	client := clientRect(r, w.frameExtents())
	if err := ewmh.MoveresizeWindow(w.conn.XUtil, w.id, client.X, client.Y, client.Width, client.Height); err != nil {
		// Fallback to direct window manipulation
		w.win.MoveResize(client.X, client.Y, client.Width, client.Height)
	}
}

// frameExtents returns the decoration sizes, all zero when the window
// manager does not publish _NET_FRAME_EXTENTS
func (w *Window) frameExtents() ewmh.FrameExtents {
	ext, err := ewmh.FrameExtentsGet(w.conn.XUtil, w.id)
	if err != nil || ext == nil {
		return ewmh.FrameExtents{}
	}
	return *ext
}

// SetMaximized asks the window manager to maximize or restore the window
func (w *Window) SetMaximized(maximized bool) {
	action := stateRemove
	if maximized {
		action = stateAdd
	}
	for _, state := range []string{stateMaximizedHorz, stateMaximizedVert} {
		if err := ewmh.WmStateReq(w.conn.XUtil, w.id, action, state); err != nil {
			log.Printf("Failed to request %s on window %d: %v", state, w.id, err)
		}
	}
}

// Subscribe registers l for geometry events
func (w *Window) Subscribe(l geometry.Listener) func() {
	id := uuid.New()

	w.mu.Lock()
	w.listeners = append(w.listeners, subscription{id: id, listener: l})
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i, sub := range w.listeners {
			if sub.id == id {
				w.listeners = append(w.listeners[:i:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close stops receiving X events for the window
func (w *Window) Close() {
	xevent.Detach(w.conn.XUtil, w.id)
}

func (w *Window) onConfigure(_ *xgbutil.XUtil, _ xevent.ConfigureNotifyEvent) {
	// ConfigureNotify coordinates are parent-relative for reparented
	// clients, so the frame geometry is queried instead
	bounds, err := w.queryBounds()
	if err != nil {
		log.Printf("Failed to query geometry of window %d: %v", w.id, err)
		return
	}

	// Some window managers configure the frame before they update
	// _NET_WM_STATE, so the state is read again here
	maximized := w.queryMaximized()

	w.mu.Lock()
	prev := w.bounds
	wasMaximized := w.maximized
	w.bounds = bounds
	w.maximized = maximized
	w.mu.Unlock()

	for _, ev := range configureEvents(prev, bounds, wasMaximized, maximized) {
		w.emit(ev)
	}
}

func (w *Window) onProperty(xu *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
	name, err := xprop.AtomName(xu, ev.Atom)
	if err != nil || name != atomWMState {
		return
	}

	maximized := w.queryMaximized()

	w.mu.Lock()
	changed := maximized != w.maximized
	w.maximized = maximized
	bounds := w.bounds
	w.mu.Unlock()

	if changed {
		w.emit(model.GeometryEvent{Kind: model.GeometryStateChanged, Bounds: bounds, Maximized: maximized})
	}
}

func (w *Window) emit(ev model.GeometryEvent) {
	w.dispatch(func() {
		w.mu.Lock()
		subs := make([]subscription, len(w.listeners))
		copy(subs, w.listeners)
		w.mu.Unlock()

		for _, sub := range subs {
			sub.listener.HandleGeometryEvent(ev)
		}
	})
}

func (w *Window) queryBounds() (model.Rect, error) {
	geom, err := w.win.DecorGeometry()
	if err != nil {
		return model.Rect{}, fmt.Errorf("failed to get geometry of window %d: %w", w.id, err)
	}
	return model.NewRect(geom.X(), geom.Y(), geom.Width(), geom.Height()), nil
}

func (w *Window) queryMaximized() bool {
	states, err := ewmh.WmStateGet(w.conn.XUtil, w.id)
	if err != nil {
		return false
	}
	return isMaximized(states)
}

// isMaximized requires both axes, matching a maximize from the title bar
func isMaximized(states []string) bool {
	var horz, vert bool
	for _, state := range states {
		switch state {
		case stateMaximizedHorz:
			horz = true
		case stateMaximizedVert:
			vert = true
		}
	}
	return horz && vert
}

// configureEvents splits one ConfigureNotify into a state change, a move
// and a resize, in that order, leaving out the parts that did not change
func configureEvents(prev, next model.Rect, wasMaximized, maximized bool) []model.GeometryEvent {
	var events []model.GeometryEvent
	if wasMaximized != maximized {
		events = append(events, model.GeometryEvent{Kind: model.GeometryStateChanged, Bounds: next, Maximized: maximized})
	}
	if prev.X != next.X || prev.Y != next.Y {
		events = append(events, model.GeometryEvent{Kind: model.GeometryMoved, Bounds: next, Maximized: maximized})
	}
	if prev.Width != next.Width || prev.Height != next.Height {
		events = append(events, model.GeometryEvent{Kind: model.GeometryResized, Bounds: next, Maximized: maximized})
	}
	return events
}

// clientRect converts frame geometry into the client geometry a move/resize
// request expects. The position is kept since requests use the frame's
// top-left corner as reference point.
func clientRect(frame model.Rect, ext ewmh.FrameExtents) model.Rect {
	client := frame
	client.Width = max(frame.Width-ext.Left-ext.Right, 1)
	client.Height = max(frame.Height-ext.Top-ext.Bottom, 1)
	return client
}
