package timefmt

import (
	"strconv"
	"strings"
	"time"
)

// Microsecond factors for the displayed fields
const (
	MicrosPerSecond = int64(1000 * 1000)
	MicrosPerMinute = 60 * MicrosPerSecond
	MicrosPerHour   = 60 * MicrosPerMinute
)

// Format renders elapsed microseconds with no reference maximum
func Format(elapsed int64) string {
	return FormatMicros(elapsed, 0)
}

// FormatMicros renders elapsed microseconds as h:mm:ss, mm:ss or m:ss.
//
// The hour field is present only when maxElapsed reaches an hour, and the
// minute field is padded to two digits when maxElapsed has an hour or at
// least ten minutes. maxElapsed never appears in the output. Sub-second precision is truncated.
// Negative inputs are not supported.
func FormatMicros(elapsed, maxElapsed int64) string {
	hr := elapsed / MicrosPerHour
	mins := elapsed % MicrosPerHour / MicrosPerMinute
	sec := elapsed % MicrosPerMinute / MicrosPerSecond

	hrMax := maxElapsed / MicrosPerHour
	minMax := maxElapsed % MicrosPerHour / MicrosPerMinute

	var b strings.Builder
	b.Grow(8)

	if hrMax > 0 {
		b.WriteString(strconv.FormatInt(hr, 10))
		b.WriteByte(':')
		if mins < 10 {
			b.WriteByte('0')
		}
	} else if minMax >= 10 && mins < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(mins, 10))
	b.WriteByte(':')
	if sec < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(sec, 10))

	return b.String()
}

// FormatDuration is FormatMicros for time.Duration values
func FormatDuration(elapsed, maxElapsed time.Duration) string {
	return FormatMicros(elapsed.Microseconds(), maxElapsed.Microseconds())
}
