package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/stretchr/testify/assert"

	"github.com/digero/maestro-desk/internal/model"
)

func TestIsMaximized(t *testing.T) {
	tests := []struct {
		name     string
		states   []string
		expected bool
	}{
		{"none", nil, false},
		{"both axes", []string{stateMaximizedVert, "_NET_WM_STATE_FOCUSED", stateMaximizedHorz}, true},
		{"vertical only", []string{stateMaximizedVert}, false},
		{"horizontal only", []string{stateMaximizedHorz}, false},
		{"fullscreen", []string{"_NET_WM_STATE_FULLSCREEN"}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, isMaximized(test.states))
		})
	}
}

func TestConfigureEvents(t *testing.T) {
	base := model.NewRect(100, 100, 800, 600)

	assert.Empty(t, configureEvents(base, base, false, false))

	moved := configureEvents(base, model.NewRect(120, 80, 800, 600), false, false)
	if assert.Len(t, moved, 1) {
		assert.Equal(t, model.GeometryMoved, moved[0].Kind)
		assert.Equal(t, 120, moved[0].Bounds.X)
	}

	resized := configureEvents(base, model.NewRect(100, 100, 640, 480), true, true)
	if assert.Len(t, resized, 1) {
		assert.Equal(t, model.GeometryResized, resized[0].Kind)
		assert.True(t, resized[0].Maximized)
	}

	both := configureEvents(base, model.NewRect(0, 0, 1920, 1080), false, false)
	if assert.Len(t, both, 2) {
		assert.Equal(t, model.GeometryMoved, both[0].Kind)
		assert.Equal(t, model.GeometryResized, both[1].Kind)
	}
}

func TestConfigureEvents_StateChangeComesFirst(t *testing.T) {
	base := model.NewRect(100, 100, 800, 600)
	full := model.NewRect(0, 0, 1920, 1080)

	// frame configured before the _NET_WM_STATE update arrives
	events := configureEvents(base, full, false, true)
	if assert.Len(t, events, 3) {
		assert.Equal(t, model.GeometryStateChanged, events[0].Kind)
		assert.True(t, events[0].Maximized)
		assert.Equal(t, model.GeometryMoved, events[1].Kind)
		assert.Equal(t, model.GeometryResized, events[2].Kind)
	}

	restored := configureEvents(full, base, true, false)
	if assert.Len(t, restored, 3) {
		assert.Equal(t, model.GeometryStateChanged, restored[0].Kind)
		assert.False(t, restored[0].Maximized)
	}

	// state only, bounds unchanged
	stateOnly := configureEvents(base, base, false, true)
	if assert.Len(t, stateOnly, 1) {
		assert.Equal(t, model.GeometryStateChanged, stateOnly[0].Kind)
	}
}

func TestClientRect(t *testing.T) {
	frame := model.NewRect(200, 150, 640, 430)

	client := clientRect(frame, ewmh.FrameExtents{Left: 2, Right: 2, Top: 28, Bottom: 2})
	assert.Equal(t, model.NewRect(200, 150, 636, 400), client)

	assert.Equal(t, frame, clientRect(frame, ewmh.FrameExtents{}))

	tiny := clientRect(model.NewRect(0, 0, 10, 10), ewmh.FrameExtents{Left: 8, Right: 8, Top: 30, Bottom: 8})
	assert.Equal(t, 1, tiny.Width)
	assert.Equal(t, 1, tiny.Height)
}

func TestClientRect_SizeRoundTrips(t *testing.T) {
	ext := ewmh.FrameExtents{Left: 1, Right: 1, Top: 30, Bottom: 1}
	stored := model.NewRect(40, 60, 640, 400)

	// the window manager adds the decorations back around the client
	client := clientRect(stored, ext)
	frame := model.NewRect(client.X, client.Y,
		client.Width+ext.Left+ext.Right, client.Height+ext.Top+ext.Bottom)

	for i := 0; i < 3; i++ {
		assert.Equal(t, stored, frame)
		client = clientRect(frame, ext)
		frame = model.NewRect(client.X, client.Y,
			client.Width+ext.Left+ext.Right, client.Height+ext.Top+ext.Bottom)
	}
}

type recordingListener struct {
	name string
	log  *[]string
}

func (l recordingListener) HandleGeometryEvent(model.GeometryEvent) {
	*l.log = append(*l.log, l.name)
}

func TestSubscribe_DeliversInSubscriptionOrder(t *testing.T) {
	w := &Window{dispatch: func(f func()) { f() }}
	var got []string

	names := []string{"a", "b", "c", "d", "e"}
	cancels := make([]func(), len(names))
	for i, name := range names {
		cancels[i] = w.Subscribe(recordingListener{name: name, log: &got})
	}

	w.emit(model.GeometryEvent{Kind: model.GeometryMoved})
	assert.Equal(t, names, got)

	got = nil
	cancels[1]()
	cancels[1]()
	w.emit(model.GeometryEvent{Kind: model.GeometryMoved})
	assert.Equal(t, []string{"a", "c", "d", "e"}, got)
}

func TestPrimaryMonitor(t *testing.T) {
	left := Monitor{ID: 0, Name: "HDMI-1", Bounds: model.NewRect(0, 0, 1280, 1024)}
	right := Monitor{ID: 1, Name: "DP-1", Primary: true, Bounds: model.NewRect(1280, 0, 2560, 1440)}

	m, ok := primaryMonitor([]Monitor{left, right})
	assert.True(t, ok)
	assert.Equal(t, "DP-1", m.Name)

	left.Primary = false
	m, ok = primaryMonitor([]Monitor{left})
	assert.True(t, ok)
	assert.Equal(t, "HDMI-1", m.Name)

	_, ok = primaryMonitor(nil)
	assert.False(t, ok)
}
