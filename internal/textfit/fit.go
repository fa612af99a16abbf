package textfit

import (
	"regexp"
	"unicode/utf8"
)

// Ellipsis is the default truncation marker
const Ellipsis = "..."

// Word characters are letters, marks, digits and underscore in any script.
var (
	trailingWordRun = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]*[^\p{L}\p{M}\p{N}_]*$`)
	wordOnly        = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_]*$`)
)

// FitEllipsis is Fit with the default marker
func FitEllipsis(text string, maxWidth float32, m Measurer) string {
	return Fit(text, maxWidth, m, Ellipsis)
}

// Fit returns text unchanged when it is narrower than maxWidth. Otherwise it
// returns the longest prefix, cut at a word boundary, that fits maxWidth
// together with marker.
//
// The search keeps a committed length and a step that starts at the full rune
// count and is halved (rounding up) on every probe. A probe at length+step is
// snapped back to the start of its trailing word run and measured with the
// marker attached; when it fits, the step is added to the committed length.
// This needs O(log n) measurements and relies on widths being monotonic.
//
// If no probe ever fits, the marker is returned on its own even when the
// marker itself is wider than maxWidth.
func Fit(text string, maxWidth float32, m Measurer, marker string) string {
	if m.Width(text) < maxWidth {
		return text
	}

	runes := []rune(text)
	length := 0
	seg := len(runes)
	fit := ""

	for seg > 1 {
		seg -= seg / 2

		left := length + seg
		if left > len(runes) {
			continue
		}
		left = wordStart(runes, left)

		candidate := string(runes[:left]) + marker
		if m.Width(candidate) <= maxWidth {
			length += seg
			fit = candidate
		}
	}

	if length == 0 {
		return marker
	}
	return fit
}

// wordStart moves a cut back to the start of the word run that ends at cut.
// A prefix made only of word characters has no boundary to snap to and keeps
// the raw cut.
func wordStart(runes []rune, cut int) int {
	prefix := string(runes[:cut])
	if wordOnly.MatchString(prefix) {
		return cut
	}
	loc := trailingWordRun.FindStringIndex(prefix)
	if loc == nil {
		return cut
	}
	return utf8.RuneCountInString(prefix[:loc[0]])
}
