package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Transport status icons
const (
	IconPlay  = "▶"
	IconPause = "⏸"
	IconStop  = "■"
)

// Text fragments
const (
	DashPlaceholder   = "—"
	PositionSeparator = " / "
)

// Layout sizing
const (
	StatusIconWidth float32 = 20
	MinTitleWidth   float32 = 40
	RowMinHeight    float32 = 28
)

// Update intervals
const (
	PositionRefreshInterval = 250 * time.Millisecond
)

// Window names used for persisted geometry
const (
	MainWindowName = "main"
)
