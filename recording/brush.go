package recording

import (
	"image/color"
	"math"

	"github.com/gogpu/scenerender/internal/filter"
)

// Brush represents a fill/stroke style for recording commands.
// This is a sealed interface; only types in this package implement it.
type Brush interface {
	brushMarker()
}

// SolidBrush is a solid color brush with straight alpha.
type SolidBrush struct {
	Color color.NRGBA
}

func (SolidBrush) brushMarker() {}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(c color.NRGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// WithAlpha returns the brush with its alpha multiplied by a.
func (b SolidBrush) WithAlpha(a float64) SolidBrush {
	a = math.Max(0, math.Min(1, a))
	b.Color.A = uint8(math.Round(float64(b.Color.A) * a))
	return b
}

// IsTransparent reports whether the brush paints nothing.
func (b SolidBrush) IsTransparent() bool { return b.Color.A == 0 }

// Hex returns the color as #rrggbb, ignoring alpha.
func (b SolidBrush) Hex() string {
	const digits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{b.Color.R, b.Color.G, b.Color.B} {
		buf[1+2*i] = digits[v>>4]
		buf[2+2*i] = digits[v&0xf]
	}
	return string(buf)
}

// Opacity returns alpha as a fraction.
func (b SolidBrush) Opacity() float64 { return float64(b.Color.A) / 255 }

// ParseColor converts a scene color string to a brush. Empty strings,
// "transparent" and unparseable values give a transparent brush.
func ParseColor(s string) SolidBrush {
	rgb, alpha, ok := filter.ParseHex(s)
	if !ok {
		return SolidBrush{}
	}
	c := color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	if len(alpha) == 2 {
		c.A = hexNibble(alpha[0])<<4 | hexNibble(alpha[1])
	}
	return SolidBrush{Color: c}
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// BrushColor returns the solid color of b, or transparent for nil.
func BrushColor(b Brush) color.NRGBA {
	if s, ok := b.(SolidBrush); ok {
		return s.Color
	}
	return color.NRGBA{}
}
