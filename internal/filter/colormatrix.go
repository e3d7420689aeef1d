package filter

import "math"

// ColorMatrix is a 3x4 RGB transformation matrix in row-major order:
//
//	[R']   [m00 m01 m02 m03]   [R]
//	[G'] = [m10 m11 m12 m13] * [G]
//	[B']   [m20 m21 m22 m23]   [B]
//	                           [1]
//
// Channel values are in the [0, 255] range. The fourth column is an offset.
// Alpha never takes part in the transformation.
type ColorMatrix [12]float64

// InvertMatrix returns the CSS invert(amount) matrix: c' = c*(1-amount) + (255-c)*amount.
func InvertMatrix(amount float64) ColorMatrix {
	d := 1 - 2*amount
	o := 255 * amount
	return ColorMatrix{
		d, 0, 0, o,
		0, d, 0, o,
		0, 0, d, o,
	}
}

// Luminance weights used by the CSS hue-rotate filter.
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// hueRotate returns the CSS hue-rotate matrix for an angle given by its
// cosine and sine.
func hueRotate(cos, sin float64) ColorMatrix {
	return ColorMatrix{
		lumR + cos*(1-lumR) - sin*lumR, lumG - cos*lumG - sin*lumG, lumB - cos*lumB + sin*(1-lumB), 0,
		lumR - cos*lumR + sin*0.143, lumG + cos*(1-lumG) + sin*0.140, lumB - cos*lumB - sin*0.283, 0,
		lumR - cos*lumR - sin*(1-lumR), lumG - cos*lumG + sin*lumG, lumB + cos*(1-lumB) + sin*lumB, 0,
	}
}

// Apply transforms one RGB triple. Results are clamped to [0, 255] and rounded.
func (m *ColorMatrix) Apply(r, g, b uint8) (uint8, uint8, uint8) {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return clampRound(m[0]*fr + m[1]*fg + m[2]*fb + m[3]),
		clampRound(m[4]*fr + m[5]*fg + m[6]*fb + m[7]),
		clampRound(m[8]*fr + m[9]*fg + m[10]*fb + m[11])
}

func clampRound(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
