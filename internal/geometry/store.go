package geometry

import "github.com/digero/maestro-desk/internal/model"

// Preference keys for persisted window geometry
const (
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyX         = "x"
	KeyY         = "y"
	KeyMaximized = "maximized"
)

// Store is the integer subset of fyne.Preferences used to persist geometry.
// Writes are fire-and-forget; a backend that can fail reports it on its own.
type Store interface {
	IntWithFallback(key string, fallback int) int
	SetInt(key string, value int)
}

// node scopes every key under a prefix
type node struct {
	store  Store
	prefix string
}

// Node returns a Store that keeps its keys under prefix, so several windows
// can share one application store. An empty prefix returns store itself.
func Node(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &node{store: store, prefix: prefix + "."}
}

func (n *node) IntWithFallback(key string, fallback int) int {
	return n.store.IntWithFallback(n.prefix+key, fallback)
}

func (n *node) SetInt(key string, value int) {
	n.store.SetInt(n.prefix+key, value)
}

// Load reads persisted geometry, falling back to defaultSize and a position
// centered on primary for keys that were never written
func Load(store Store, defaultSize, primary model.Size) model.WindowGeometry {
	width := store.IntWithFallback(KeyWidth, defaultSize.Width)
	height := store.IntWithFallback(KeyHeight, defaultSize.Height)
	x := store.IntWithFallback(KeyX, (primary.Width-width)/2)
	y := store.IntWithFallback(KeyY, (primary.Height-height)/2)

	return model.WindowGeometry{
		Rect:      model.NewRect(x, y, width, height),
		Maximized: store.IntWithFallback(KeyMaximized, 0) != 0,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
