// Package luminance decides whether the page behind the floating navigation
// bar is visually dark.
package luminance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB colour with 8-bit channels and alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// Transparent reports whether the colour paints nothing.
func (c Color) Transparent() bool { return c.A <= 0 }

var numberPattern = regexp.MustCompile(`\d*\.\d+|\d+`)

// ParseColor reads a computed background colour: "transparent", rgb()/rgba()
// or a hex string. ok is false when s is not a colour.
func ParseColor(s string) (c Color, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "none":
		return Color{}, false
	case s == "transparent":
		return Color{}, true
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	}
	return Color{}, false
}

func parseRGB(s string) (Color, bool) {
	nums := numberPattern.FindAllString(s, -1)
	if len(nums) < 3 {
		return Color{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(nums[i], 64)
		if err != nil {
			return Color{}, false
		}
		ch[i] = uint8(min(max(v, 0), 255))
	}
	alpha := 1.0
	if len(nums) >= 4 {
		a, err := strconv.ParseFloat(nums[3], 64)
		if err != nil {
			return Color{}, false
		}
		alpha = min(max(a, 0), 1)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
}

func parseHex(s string) (Color, bool) {
	// go-colorful only reads #rrggbb.
	switch len(s) {
	case 4:
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	case 9:
		alpha, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, false
		}
		c, ok := parseHex(s[:7])
		c.A = float64(alpha) / 255
		return c, ok
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	r, g, b := col.RGB255()
	return Color{R: r, G: g, B: b, A: 1}, true
}

// DarkThreshold is the luminance below which a colour counts as dark.
const DarkThreshold = 0.4

// Luminance is the perceived brightness of c in [0, 1], a weighted sum of
// its channels.
func Luminance(c Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// IsDark reports whether c reads as a dark colour.
func IsDark(c Color) bool {
	return Luminance(c) < DarkThreshold
}
