package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/digero/maestro-desk/internal/config"
	"github.com/digero/maestro-desk/internal/display"
	"github.com/digero/maestro-desk/internal/geometry"
	"github.com/digero/maestro-desk/internal/x11"
)

// WindowState owns the geometry tracking of one Fyne window
type WindowState struct {
	conn    *x11.Connection
	window  *x11.Window
	tracker *geometry.Tracker
}

// PersistWindowGeometry restores the saved placement of w and keeps it saved
// until Close. It needs the native X11 handle of w and so must run after the
// window is shown, e.g. from the app's OnStarted hook.
func PersistWindowGeometry(w fyne.Window, settings *config.Settings, name string) (*WindowState, error) {
	handle, ok := nativeX11Handle(w)
	if !ok {
		return nil, fmt.Errorf("window %q has no X11 handle", name)
	}

	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	screens, err := display.Select(settings.GetDisplaySource(), settings.GetLayoutFile(), conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	// X events arrive on the event loop goroutine; geometry writes happen on
	// the UI thread in arrival order
	xwin, err := conn.NewWindow(xproto.Window(handle), fyne.Do)
	if err != nil {
		conn.Close()
		return nil, err
	}

	tracker, err := geometry.Restore(xwin, settings.WindowStore(name), screens, settings.GetDefaultWindowSize())
	if err != nil {
		xwin.Close()
		conn.Close()
		return nil, err
	}

	go conn.EventLoop()
	log.Printf("Window %q placed at %s", name, geometry.Snapshot(xwin).Rect)

	return &WindowState{conn: conn, window: xwin, tracker: tracker}, nil
}

// Close detaches the tracker and drops the X connection
func (s *WindowState) Close() {
	s.tracker.Close()
	s.window.Close()
	s.conn.Close()
}

// nativeX11Handle returns the X window id behind w when running on X11
func nativeX11Handle(w fyne.Window) (uintptr, bool) {
	var handle uintptr
	grab := func(ctx any) {
		if x, ok := ctx.(driver.X11WindowContext); ok {
			handle = x.WindowHandle
		}
	}

	switch nw := w.(type) {
	case interface{ RunNative(func(any)) }:
		nw.RunNative(grab)
	case interface{ RunNative(func(any) error) error }:
		_ = nw.RunNative(func(ctx any) error {
			grab(ctx)
			return nil
		})
	default:
		return 0, false
	}
	return handle, handle != 0
}
