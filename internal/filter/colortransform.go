package filter

import (
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
)

// Transform maps a scene color string to the color actually painted.
type Transform func(c string) string

// Identity returns c unchanged.
func Identity(c string) string { return c }

// ForMode returns DarkMode when dark is set and Identity otherwise.
func ForMode(dark bool) Transform {
	if dark {
		return DarkMode
	}
	return Identity
}

// DarkModeCSS is the dark mode filter as a CSS filter value.
const DarkModeCSS = "invert(93%) hue-rotate(180deg)"

var (
	darkInvert = InvertMatrix(0.93)
	darkHue    = hueRotate(-1, 0)
)

// darkChannels is the single implementation of the dark mode filter:
// invert(93%) followed by hue-rotate(180deg), each step clamped and rounded.
func darkChannels(r, g, b uint8) (uint8, uint8, uint8) {
	r, g, b = darkInvert.Apply(r, g, b)
	return darkHue.Apply(r, g, b)
}

// DarkMode reproduces the "invert(93%) hue-rotate(180deg)" display filter on
// a single color. Empty and "transparent" values pass through. Colors that
// cannot be parsed are returned unchanged. The alpha component, if any, is
// preserved.
func DarkMode(c string) string {
	if c == "" || strings.EqualFold(c, "transparent") {
		return c
	}
	rgb, alpha, ok := ParseHex(c)
	if !ok {
		return c
	}
	r, g, b := darkChannels(rgb[0], rgb[1], rgb[2])
	return fmt.Sprintf("#%02x%02x%02x%s", r, g, b, alpha)
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa" colors, plus a
// handful of CSS color names. The alpha suffix is returned as two lowercase
// hex digits, or empty when the color is opaque by omission.
func ParseHex(c string) (rgb [3]uint8, alpha string, ok bool) {
	s := strings.ToLower(strings.TrimSpace(c))
	if named, found := cssNames[s]; found {
		s = named
	}
	if !strings.HasPrefix(s, "#") {
		return rgb, "", false
	}
	s = s[1:]
	switch len(s) {
	case 3, 4:
		var b strings.Builder
		for _, ch := range s {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		s = b.String()
	case 6, 8:
	default:
		return rgb, "", false
	}
	v, err := strconv.ParseUint(s[:6], 16, 32)
	if err != nil {
		return rgb, "", false
	}
	rgb = [3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)}
	if len(s) == 8 {
		if _, err := strconv.ParseUint(s[6:], 16, 8); err != nil {
			return rgb, "", false
		}
		alpha = s[6:]
	}
	return rgb, alpha, true
}

// ApplyNRGBA runs the dark mode filter in place over straight-alpha RGBA
// bytes. The alpha channel is left untouched. Output matches DarkMode
// channel for channel.
func ApplyNRGBA(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2] = darkChannels(pix[i], pix[i+1], pix[i+2])
	}
}

// DarkImage returns a straight-alpha copy of img with the dark mode filter
// baked into its pixels.
func DarkImage(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	ApplyNRGBA(out.Pix)
	return out
}

var cssNames = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
}
