package model

// PlaybackStatus represents the transport state of the current track
type PlaybackStatus string

const (
	// PlaybackStopped means no track is loaded or playback was stopped
	PlaybackStopped PlaybackStatus = "Stopped"

	// PlaybackPlaying means the track is audible and the position advances
	PlaybackPlaying PlaybackStatus = "Playing"

	// PlaybackPaused means the track is loaded but the position is frozen
	PlaybackPaused PlaybackStatus = "Paused"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsActive returns true if a track is loaded (playing or paused)
func (ps PlaybackStatus) IsActive() bool {
	return ps == PlaybackPlaying || ps == PlaybackPaused
}
