package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/digero/maestro-desk/internal/model"
	"github.com/digero/maestro-desk/internal/playback"
	"github.com/digero/maestro-desk/internal/textfit"
	"github.com/digero/maestro-desk/internal/timefmt"
)

// NowPlaying is a one-line strip showing the transport status, the track
// title shortened to the space left over, and the position against the
// track length
type NowPlaying struct {
	widget.BaseWidget

	// OnStatusChanged is called after the transport status changes
	OnStatusChanged func(model.PlaybackStatus)

	marker   string
	title    string
	position string
	status   model.PlaybackStatus
	track    *playback.Track
}

// NewNowPlaying creates an empty strip. marker is appended to shortened titles.
func NewNowPlaying(marker string) *NowPlaying {
	if marker == "" {
		marker = textfit.Ellipsis
	}
	np := &NowPlaying{
		marker:   marker,
		title:    DashPlaceholder,
		position: timefmt.Format(0),
		status:   model.PlaybackStopped,
	}
	np.ExtendBaseWidget(np)
	return np
}

// SetTrack shows t, or clears the strip when t is nil
func (np *NowPlaying) SetTrack(t *playback.Track) {
	np.track = t
	if t == nil {
		np.title = DashPlaceholder
		np.setStatus(model.PlaybackStopped)
	} else {
		np.title = t.Title
	}
	np.UpdatePosition()
}

// SetTitle replaces the full, untruncated title
func (np *NowPlaying) SetTitle(title string) {
	np.title = title
	np.Refresh()
}

// Title returns the full title
func (np *NowPlaying) Title() string {
	return np.title
}

// SetStatus updates the transport icon
func (np *NowPlaying) SetStatus(status model.PlaybackStatus) {
	np.setStatus(status)
	np.Refresh()
}

// Status returns the transport status
func (np *NowPlaying) Status() model.PlaybackStatus {
	return np.status
}

func (np *NowPlaying) setStatus(status model.PlaybackStatus) {
	if status == np.status {
		return
	}
	np.status = status
	if np.OnStatusChanged != nil {
		np.OnStatusChanged(status)
	}
}

// SetPosition shows elapsed against length without a bound track
func (np *NowPlaying) SetPosition(elapsed, length time.Duration) {
	np.position = positionText(elapsed, length)
	np.Refresh()
}

// UpdatePosition re-reads the bound track position. Call it on the UI thread.
func (np *NowPlaying) UpdatePosition() {
	if np.track == nil {
		np.position = timefmt.Format(0)
	} else {
		np.position = positionText(np.track.Position(), np.track.Length())
	}
	np.Refresh()
}

// PositionText returns the position label as rendered
func (np *NowPlaying) PositionText() string {
	return np.position
}

func positionText(elapsed, length time.Duration) string {
	return timefmt.FormatDuration(elapsed, length) + PositionSeparator + timefmt.FormatDuration(length, length)
}

func statusIcon(status model.PlaybackStatus) string {
	switch status {
	case model.PlaybackPlaying:
		return IconPlay
	case model.PlaybackPaused:
		return IconPause
	default:
		return IconStop
	}
}

// CreateRenderer implements fyne.Widget
func (np *NowPlaying) CreateRenderer() fyne.WidgetRenderer {
	fg := theme.Color(theme.ColorNameForeground)
	r := &nowPlayingRenderer{
		np:       np,
		status:   canvas.NewText(statusIcon(np.status), fg),
		title:    canvas.NewText(np.title, fg),
		position: canvas.NewText(np.position, fg),
	}
	r.position.TextStyle = fyne.TextStyle{Monospace: true}
	r.objects = []fyne.CanvasObject{r.status, r.title, r.position}
	return r
}

type nowPlayingRenderer struct {
	np       *NowPlaying
	status   *canvas.Text
	title    *canvas.Text
	position *canvas.Text
	objects  []fyne.CanvasObject
	size     fyne.Size
}

func (r *nowPlayingRenderer) Layout(size fyne.Size) {
	r.size = size
	pad := theme.Padding()

	posSize := r.position.MinSize()
	titleHeight := r.title.MinSize().Height

	r.status.Move(fyne.NewPos(pad, (size.Height-titleHeight)/2))
	r.status.Resize(fyne.NewSize(StatusIconWidth, titleHeight))

	r.position.Move(fyne.NewPos(size.Width-posSize.Width-pad, (size.Height-posSize.Height)/2))
	r.position.Resize(posSize)

	left := pad + StatusIconWidth + pad
	avail := size.Width - left - posSize.Width - 2*pad
	r.title.Text = r.fitTitle(avail)
	r.title.Move(fyne.NewPos(left, (size.Height-titleHeight)/2))
	r.title.Resize(fyne.NewSize(max(avail, 0), titleHeight))
}

func (r *nowPlayingRenderer) fitTitle(avail float32) string {
	m := textfit.FyneMeasurer{TextSize: r.title.TextSize, Style: r.title.TextStyle}
	return textfit.Fit(r.np.title, avail, m, r.np.marker)
}

func (r *nowPlayingRenderer) MinSize() fyne.Size {
	pad := theme.Padding()
	pos := r.position.MinSize()
	return fyne.NewSize(
		pad+StatusIconWidth+pad+MinTitleWidth+pad+pos.Width+pad,
		max(RowMinHeight, pos.Height+2*pad),
	)
}

func (r *nowPlayingRenderer) Refresh() {
	fg := theme.Color(theme.ColorNameForeground)
	for _, t := range []*canvas.Text{r.status, r.title, r.position} {
		t.Color = fg
	}
	r.status.Text = statusIcon(r.np.status)
	r.position.Text = r.np.position
	if r.size.Width > 0 {
		r.Layout(r.size)
	} else {
		r.title.Text = r.np.title
	}
	canvas.Refresh(r.np)
}

func (r *nowPlayingRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *nowPlayingRenderer) Destroy() {}
