package display

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digero/maestro-desk/internal/model"
)

const dualHead = `
primary: 1
screens:
  - name: HDMI-1
    x: -1280
    y: 0
    width: 1280
    height: 1024
  - name: DP-1
    x: 0
    y: 0
    width: 2560
    height: 1440
`

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout(strings.NewReader(dualHead))
	require.NoError(t, err)

	displays, err := layout.Displays()
	require.NoError(t, err)
	assert.Equal(t, []model.Rect{
		model.NewRect(-1280, 0, 1280, 1024),
		model.NewRect(0, 0, 2560, 1440),
	}, displays)

	primary, err := layout.PrimarySize()
	require.NoError(t, err)
	assert.Equal(t, model.Size{Width: 2560, Height: 1440}, primary)
}

func TestLoadLayout_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		empty bool
	}{
		{"empty document", "", true},
		{"no screens", "primary: 0\nscreens: []\n", true},
		{"primary out of range", "primary: 2\nscreens:\n  - {x: 0, y: 0, width: 10, height: 10}\n", false},
		{"zero size", "screens:\n  - {x: 0, y: 0, width: 0, height: 10}\n", false},
		{"unknown field", "screens:\n  - {x: 0, y: 0, width: 10, height: 10, depth: 24}\n", false},
		{"not yaml", "screens: [", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			layout, err := LoadLayout(strings.NewReader(test.input))
			assert.Nil(t, layout)
			require.Error(t, err)
			if test.empty {
				assert.ErrorIs(t, err, ErrNoDisplays)
			}
		})
	}
}

func TestLoadLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "displays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dualHead), 0o600))

	layout, err := LoadLayoutFile(path)
	require.NoError(t, err)
	assert.Len(t, layout.Screens, 2)
	assert.Equal(t, "DP-1", layout.Screens[1].Name)

	_, err = LoadLayoutFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "displays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dualHead), 0o600))

	e, err := Select(SourceFile, path, nil)
	require.NoError(t, err)
	assert.IsType(t, &Layout{}, e)

	e, err = Select(SourceAuto, "", nil)
	require.NoError(t, err)
	assert.IsType(t, ScreenEnumerator{}, e)

	e, err = Select(SourceScreens, "", nil)
	require.NoError(t, err)
	assert.IsType(t, ScreenEnumerator{}, e)

	_, err = Select(SourceX11, "", nil)
	assert.Error(t, err)

	_, err = Select("wayland", "", nil)
	assert.Error(t, err)
}
