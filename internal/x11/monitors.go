package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/digero/maestro-desk/internal/model"
)

// Monitor is one active CRTC
type Monitor struct {
	ID      int
	Name    string
	Primary bool
	Bounds  model.Rect
}

// GetMonitors retrieves all active monitors using XRandR, in CRTC order
func (c *Connection) GetMonitors() ([]Monitor, error) {
	conn := c.XUtil.Conn()
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(conn, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(conn, c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(conn, info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		isPrimary := false
		for _, out := range info.Outputs {
			if primary != 0 && out == primary {
				isPrimary = true
			}
		}

		monitors = append(monitors, Monitor{
			ID:      i,
			Name:    name,
			Primary: isPrimary,
			Bounds:  model.NewRect(int(info.X), int(info.Y), int(info.Width), int(info.Height)),
		})
	}

	return monitors, nil
}

// Displays returns monitor bounds in CRTC order
func (c *Connection) Displays() ([]model.Rect, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return nil, err
	}
	displays := make([]model.Rect, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, m.Bounds)
	}
	return displays, nil
}

// PrimarySize returns the size of the RandR primary output. Without one it
// falls back to the first monitor and then to the root window.
func (c *Connection) PrimarySize() (model.Size, error) {
	monitors, err := c.GetMonitors()
	if err == nil {
		if m, ok := primaryMonitor(monitors); ok {
			return m.Bounds.Size(), nil
		}
	}

	screen := c.XUtil.Screen()
	if screen.WidthInPixels == 0 || screen.HeightInPixels == 0 {
		return model.Size{}, fmt.Errorf("root window has no size")
	}
	return model.Size{Width: int(screen.WidthInPixels), Height: int(screen.HeightInPixels)}, nil
}

func primaryMonitor(monitors []Monitor) (Monitor, bool) {
	for _, m := range monitors {
		if m.Primary {
			return m, true
		}
	}
	if len(monitors) > 0 {
		return monitors[0], true
	}
	return Monitor{}, false
}
