package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/digero/maestro-desk/internal/config"
	"github.com/digero/maestro-desk/internal/model"
	"github.com/digero/maestro-desk/internal/playback"
	"github.com/digero/maestro-desk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.digero.maestro-desk"
	AppName = "Maestro Desk"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.ThemeForStatus(model.PlaybackStopped))

	settings := config.NewSettings(myApp)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	size := settings.GetDefaultWindowSize()
	myWindow.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))

	nowPlaying := ui.NewNowPlaying(settings.GetTruncateMarker())
	nowPlaying.OnStatusChanged = func(status model.PlaybackStatus) {
		myApp.Settings().SetTheme(ui.ThemeForStatus(status))
	}
	myWindow.SetContent(container.NewBorder(nil, nowPlaying, nil, nil))

	if len(os.Args) > 1 {
		track, err := playback.Open(playback.Resolve(os.Args[1], settings.GetMusicDirectory()))
		if err != nil {
			log.Printf("Failed to open track: %v", err)
		} else {
			defer track.Close()
			nowPlaying.SetTrack(track)
			nowPlaying.SetStatus(model.PlaybackPaused)
		}
	}

	var windowState *ui.WindowState
	myApp.Lifecycle().SetOnStarted(func() {
		state, err := ui.PersistWindowGeometry(myWindow, settings, ui.MainWindowName)
		if err != nil {
			log.Printf("Window geometry will not be saved: %v", err)
			return
		}
		windowState = state
	})
	myApp.Lifecycle().SetOnStopped(func() {
		if windowState != nil {
			windowState.Close()
		}
	})

	ticker := time.NewTicker(ui.PositionRefreshInterval)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			fyne.Do(nowPlaying.UpdatePosition)
		}
	}()

	myWindow.ShowAndRun()
}
