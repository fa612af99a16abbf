package util

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Quote wraps s in double quotes, escaping embedded quotes with a backslash
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Grayscale keeps the HSV brightness of c and drops hue and saturation.
// Alpha is preserved.
func Grayscale(c color.Color) color.Color {
	col, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return color.NRGBA{}
	}
	_, _, v := col.Hsv()
	r, g, b := colorful.Hsv(0, 0, v).RGB255()

	_, _, _, a := c.RGBA()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a >> 8)}
}
