package config

import (
	"fyne.io/fyne/v2"

	"github.com/digero/maestro-desk/internal/display"
	"github.com/digero/maestro-desk/internal/geometry"
	"github.com/digero/maestro-desk/internal/model"
	"github.com/digero/maestro-desk/internal/platform"
	"github.com/digero/maestro-desk/internal/textfit"
	"github.com/digero/maestro-desk/internal/util"
)

// Settings keys for Fyne preferences
const (
	KeyMusicDir       = "music_directory"
	KeyDefaultWidth   = "default_window_width"
	KeyDefaultHeight  = "default_window_height"
	KeyTruncateMarker = "truncate_marker"
	KeyDisplaySource  = "display_source"
	KeyLayoutFile     = "display_layout_file"
)

// Default values
const (
	DefaultWindowWidth    = 640
	DefaultWindowHeight   = 400
	DefaultTruncateMarker = textfit.Ellipsis
	DefaultDisplaySource  = display.SourceAuto
)

// Window size limits
const (
	MinWindowSize = 200
	MaxWindowSize = 8192
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// WindowStore returns the preferences node holding the geometry of the named
// window
func (s *Settings) WindowStore(window string) geometry.Store {
	return geometry.Node(s.app.Preferences(), "window."+window)
}

// GetMusicDirectory returns the configured music directory
func (s *Settings) GetMusicDirectory() string {
	dir := s.app.Preferences().String(KeyMusicDir)
	if dir == "" {
		defaultDir, err := platform.GetPlayerMusicDir()
		if err != nil {
			defaultDir = "."
		}
		s.SetMusicDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetMusicDirectory sets the music directory
func (s *Settings) SetMusicDirectory(dir string) {
	s.app.Preferences().SetString(KeyMusicDir, dir)
}

// GetDefaultWindowSize returns the size used for a window without saved geometry
func (s *Settings) GetDefaultWindowSize() model.Size {
	prefs := s.app.Preferences()
	return model.Size{
		Width:  prefs.IntWithFallback(KeyDefaultWidth, DefaultWindowWidth),
		Height: prefs.IntWithFallback(KeyDefaultHeight, DefaultWindowHeight),
	}
}

// SetDefaultWindowSize sets the size used for a window without saved geometry
func (s *Settings) SetDefaultWindowSize(size model.Size) {
	s.app.Preferences().SetInt(KeyDefaultWidth, util.Clamp(size.Width, MinWindowSize, MaxWindowSize))
	s.app.Preferences().SetInt(KeyDefaultHeight, util.Clamp(size.Height, MinWindowSize, MaxWindowSize))
}

// GetTruncateMarker returns the marker appended to shortened labels
func (s *Settings) GetTruncateMarker() string {
	return s.app.Preferences().StringWithFallback(KeyTruncateMarker, DefaultTruncateMarker)
}

// SetTruncateMarker sets the marker appended to shortened labels
func (s *Settings) SetTruncateMarker(marker string) {
	if marker == "" {
		marker = DefaultTruncateMarker
	}
	s.app.Preferences().SetString(KeyTruncateMarker, marker)
}

// GetDisplaySource returns how displays are enumerated
func (s *Settings) GetDisplaySource() string {
	return s.app.Preferences().StringWithFallback(KeyDisplaySource, DefaultDisplaySource)
}

// SetDisplaySource sets how displays are enumerated
func (s *Settings) SetDisplaySource(source string) {
	s.app.Preferences().SetString(KeyDisplaySource, source)
}

// GetDisplaySourceOptions returns the accepted display sources
func (s *Settings) GetDisplaySourceOptions() []string {
	return []string{display.SourceAuto, display.SourceX11, display.SourceScreens, display.SourceFile}
}

// GetLayoutFile returns the YAML display layout used by the file source
func (s *Settings) GetLayoutFile() string {
	return s.app.Preferences().String(KeyLayoutFile)
}

// SetLayoutFile sets the YAML display layout used by the file source
func (s *Settings) SetLayoutFile(path string) {
	s.app.Preferences().SetString(KeyLayoutFile, path)
}
