package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/digero/maestro-desk/internal/model"
)

// Screen is one display entry of a layout file
type Screen struct {
	Name   string `yaml:"name,omitempty"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Layout is a fixed display arrangement, used for kiosks, remote sessions
// and tests where the real displays cannot be queried
type Layout struct {
	// Primary is the index of the primary display in Screens
	Primary int      `yaml:"primary"`
	Screens []Screen `yaml:"screens"`
}

// LoadLayout decodes a YAML layout and validates it
func LoadLayout(r io.Reader) (*Layout, error) {
	var layout Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil {
		if err == io.EOF {
			return nil, ErrNoDisplays
		}
		return nil, fmt.Errorf("failed to parse display layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// LoadLayoutFile reads a YAML layout from path
func LoadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open display layout: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadLayout(f)
}

// Validate checks that the layout has usable screens and a valid primary
func (l *Layout) Validate() error {
	if len(l.Screens) == 0 {
		return ErrNoDisplays
	}
	if l.Primary < 0 || l.Primary >= len(l.Screens) {
		return fmt.Errorf("primary display index %d out of range [0, %d)", l.Primary, len(l.Screens))
	}
	for i, s := range l.Screens {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("display %d (%s) has invalid size %dx%d", i, s.Name, s.Width, s.Height)
		}
	}
	return nil
}

// Displays returns the layout screens in file order
func (l *Layout) Displays() ([]model.Rect, error) {
	displays := make([]model.Rect, 0, len(l.Screens))
	for _, s := range l.Screens {
		displays = append(displays, model.NewRect(s.X, s.Y, s.Width, s.Height))
	}
	return displays, nil
}

// PrimarySize returns the size of the primary screen
func (l *Layout) PrimarySize() (model.Size, error) {
	if err := l.Validate(); err != nil {
		return model.Size{}, err
	}
	s := l.Screens[l.Primary]
	return model.Size{Width: s.Width, Height: s.Height}, nil
}
