package geometry

import (
	"fmt"
	"log"

	"github.com/digero/maestro-desk/internal/model"
)

// Restore places win from the persisted geometry in store, corrected onto the
// displays reported by screens, and attaches a Tracker that keeps store up to
// date. defaultSize is used when no size was persisted yet. The window is left
// untouched when the displays cannot be enumerated.
func Restore(win Window, store Store, screens Screens, defaultSize model.Size) (*Tracker, error) {
	primary, err := screens.PrimarySize()
	if err != nil {
		return nil, fmt.Errorf("failed to get primary display size: %w", err)
	}

	displays, err := screens.Displays()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate displays: %w", err)
	}

	stored := Load(store, defaultSize, primary)
	placed := Reconcile(stored, displays, primary)
	if placed.Rect != stored.Rect {
		log.Printf("Window geometry %s is off-screen, moved to %s", stored.Rect, placed.Rect)
	}

	win.SetBounds(placed.Rect)
	win.SetMaximized(placed.Maximized)

	return Track(win, store), nil
}
