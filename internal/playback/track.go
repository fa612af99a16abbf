package playback

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"

	"github.com/digero/maestro-desk/internal/platform"
	"github.com/digero/maestro-desk/internal/timefmt"
	"github.com/digero/maestro-desk/internal/util"
)

// Supported file extensions
const (
	ExtMP3 = ".mp3"
	ExtWAV = ".wav"
)

// Track is a decoded, seekable audio stream
type Track struct {
	Title  string
	stream beep.StreamSeeker
	format beep.Format
}

// NewTrack wraps an already decoded stream
func NewTrack(title string, stream beep.StreamSeeker, format beep.Format) *Track {
	return &Track{Title: title, stream: stream, format: format}
}

// Resolve returns the file to open for name. Names that do not exist as
// given are looked up in musicDir, and symbolic links are followed.
func Resolve(name, musicDir string) string {
	path := name
	if _, err := os.Stat(path); err != nil && !filepath.IsAbs(path) && musicDir != "" {
		path = filepath.Join(musicDir, name)
	}
	return platform.ResolveShortcut(path)
}

// Open decodes an mp3 or wav file. The track title is the file name without
// its extension.
func Open(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ExtMP3 && ext != ExtWAV {
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open track: %w", err)
	}

	var stream beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ExtMP3:
		stream, format, err = mp3.Decode(f)
	case ExtWAV:
		stream, format, err = wav.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewTrack(title, stream, format), nil
}

// Format returns the sample format of the stream
func (t *Track) Format() beep.Format {
	return t.format
}

// Streamer returns the underlying stream for playback
func (t *Track) Streamer() beep.StreamSeeker {
	return t.stream
}

// Length returns the total duration of the track
func (t *Track) Length() time.Duration {
	return t.format.SampleRate.D(t.stream.Len())
}

// Position returns the current playback position
func (t *Track) Position() time.Duration {
	return t.format.SampleRate.D(t.stream.Position())
}

// Seek moves to d, clamped to the track bounds
func (t *Track) Seek(d time.Duration) error {
	n := util.Clamp(t.format.SampleRate.N(d), 0, t.stream.Len())
	if err := t.stream.Seek(n); err != nil {
		return fmt.Errorf("failed to seek to %s: %w", d, err)
	}
	return nil
}

// PositionLabel renders the position with the same field layout as the
// length, so the label does not change width while the track plays
func (t *Track) PositionLabel() string {
	return timefmt.FormatDuration(t.Position(), t.Length())
}

// LengthLabel renders the track length
func (t *Track) LengthLabel() string {
	length := t.Length()
	return timefmt.FormatDuration(length, length)
}

// RemainingLabel renders the time left, prefixed with a minus sign
func (t *Track) RemainingLabel() string {
	length := t.Length()
	remaining := max(length-t.Position(), 0)
	return "-" + timefmt.FormatDuration(remaining, length)
}

// Close releases the decoder and the file behind it, if any
func (t *Track) Close() error {
	if c, ok := t.stream.(beep.StreamSeekCloser); ok {
		return c.Close()
	}
	return nil
}
