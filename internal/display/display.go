package display

import (
	"errors"
	"fmt"
	"log"

	"github.com/digero/maestro-desk/internal/model"
	"github.com/digero/maestro-desk/internal/x11"
)

// ErrNoDisplays is returned when a backend reports no active display
var ErrNoDisplays = errors.New("no active displays")

// Display source names accepted by Select
const (
	SourceAuto    = "auto"
	SourceX11     = "x11"
	SourceScreens = "screens"
	SourceFile    = "file"
)

// Enumerator lists attached displays in platform order
type Enumerator interface {
	Displays() ([]model.Rect, error)
	PrimarySize() (model.Size, error)
}

// Select returns the enumerator for source. conn may be nil when no X11
// connection is available; auto then falls back to the screenshot backend.
// Geometry persistence always has a connection, since the tracked window is
// an X11 window, so the fallback is only taken by the trackinfo command.
func Select(source, layoutPath string, conn *x11.Connection) (Enumerator, error) {
	switch source {
	case SourceX11:
		if conn == nil {
			return nil, fmt.Errorf("display source %q requires an X11 connection", source)
		}
		return conn, nil
	case SourceScreens:
		return ScreenEnumerator{}, nil
	case SourceFile:
		layout, err := LoadLayoutFile(layoutPath)
		if err != nil {
			return nil, err
		}
		return layout, nil
	case SourceAuto, "":
		if conn != nil {
			return conn, nil
		}
		log.Printf("No X11 connection, enumerating displays with the screenshot backend")
		return ScreenEnumerator{}, nil
	default:
		return nil, fmt.Errorf("unknown display source %q", source)
	}
}
