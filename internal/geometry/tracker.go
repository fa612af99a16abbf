package geometry

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/digero/maestro-desk/internal/model"
)

// Tracker persists geometry changes of one window for as long as it is
// attached. Each event is written synchronously inside the event callback.
type Tracker struct {
	ID uuid.UUID

	win    Window
	store  Store
	cancel func()
	closed atomic.Bool
	once   sync.Once
}

// Track subscribes a new Tracker to win
func Track(win Window, store Store) *Tracker {
	t := &Tracker{
		ID:    uuid.New(),
		win:   win,
		store: store,
	}
	t.cancel = win.Subscribe(t)
	log.Printf("Geometry tracker %s attached", t.ID)
	return t
}

// HandleGeometryEvent writes the part of the geometry that ev changed.
// Position and size are only recorded while the window is not maximized, so
// the restored bounds stay those of the normal window. Maximize transitions
// are always recorded.
func (t *Tracker) HandleGeometryEvent(ev model.GeometryEvent) {
	if t.closed.Load() {
		return
	}

	switch ev.Kind {
	case model.GeometryMoved:
		if t.win.Maximized() {
			return
		}
		t.store.SetInt(KeyX, ev.Bounds.X)
		t.store.SetInt(KeyY, ev.Bounds.Y)
	case model.GeometryResized:
		if t.win.Maximized() {
			return
		}
		t.store.SetInt(KeyWidth, ev.Bounds.Width)
		t.store.SetInt(KeyHeight, ev.Bounds.Height)
	case model.GeometryStateChanged:
		t.store.SetInt(KeyMaximized, boolToInt(ev.Maximized))
	}
}

// Close unsubscribes the tracker. Events delivered afterwards are ignored.
func (t *Tracker) Close() {
	t.once.Do(func() {
		t.closed.Store(true)
		if t.cancel != nil {
			t.cancel()
		}
		log.Printf("Geometry tracker %s detached", t.ID)
	})
}
