package geom

import "math"

// RoundnessKind selects the corner-radius policy of a shape.
type RoundnessKind int

// Roundness kinds as stored in scene documents.
const (
	RoundnessNone         RoundnessKind = 0
	RoundnessLegacy       RoundnessKind = 1
	RoundnessProportional RoundnessKind = 2
	RoundnessAdaptive     RoundnessKind = 3
)

const (
	// ProportionalRadius is the radius-to-size ratio of proportional corners.
	ProportionalRadius = 0.25
	// DefaultAdaptiveRadius is the fixed radius of adaptive corners.
	DefaultAdaptiveRadius = 32.0
)

// CornerRadius returns the corner radius for a shape whose relevant axis
// measures size. A zero value for adaptive corners selects
// DefaultAdaptiveRadius.
func CornerRadius(size float64, kind RoundnessKind, value float64) float64 {
	switch kind {
	case RoundnessLegacy, RoundnessProportional:
		return size * ProportionalRadius
	case RoundnessAdaptive:
		fixed := value
		if fixed <= 0 {
			fixed = DefaultAdaptiveRadius
		}
		if size <= fixed/ProportionalRadius {
			return size * ProportionalRadius
		}
		return fixed
	default:
		return 0
	}
}

// RectanglePath returns a w x h rectangle at the origin. A positive radius
// rounds the corners with quadratic segments.
func RectanglePath(w, h, r float64) *Path {
	p := NewPath()
	if r <= 0 {
		p.Rectangle(0, 0, w, h)
		return p
	}
	r = math.Min(r, math.Min(math.Abs(w), math.Abs(h))/2)
	p.MoveTo(r, 0)
	p.LineTo(w-r, 0)
	p.QuadTo(w, 0, w, r)
	p.LineTo(w, h-r)
	p.QuadTo(w, h, w-r, h)
	p.LineTo(r, h)
	p.QuadTo(0, h, 0, h-r)
	p.LineTo(0, r)
	p.QuadTo(0, 0, r, 0)
	p.Close()
	return p
}

// DiamondPoints returns the top, right, bottom and left vertices of a
// diamond inscribed in a w x h box: the midpoints of the box edges.
func DiamondPoints(w, h float64) (top, right, bottom, left Point) {
	return Pt(w/2, 0), Pt(w, h/2), Pt(w/2, h), Pt(0, h/2)
}

// DiamondRadii returns the vertical and horizontal corner radii of a
// diamond under the given roundness.
func DiamondRadii(w, h float64, kind RoundnessKind, value float64) (vertical, horizontal float64) {
	top, right, _, left := DiamondPoints(w, h)
	return CornerRadius(math.Abs(top.X-left.X), kind, value),
		CornerRadius(math.Abs(right.Y-top.Y), kind, value)
}

// DiamondPath returns the diamond outline. When either radius is non-zero
// every vertex is smoothed with a cubic whose control points sit on the
// vertex itself.
func DiamondPath(w, h, vr, hr float64) *Path {
	top, right, bottom, left := DiamondPoints(w, h)
	p := NewPath()
	if vr == 0 && hr == 0 {
		p.MoveTo(top.X, top.Y)
		p.LineTo(right.X, right.Y)
		p.LineTo(bottom.X, bottom.Y)
		p.LineTo(left.X, left.Y)
		p.Close()
		return p
	}
	p.MoveTo(top.X+vr, top.Y+hr)
	p.LineTo(right.X-vr, right.Y-hr)
	p.CubicTo(right.X, right.Y, right.X, right.Y, right.X-vr, right.Y+hr)
	p.LineTo(bottom.X+vr, bottom.Y-hr)
	p.CubicTo(bottom.X, bottom.Y, bottom.X, bottom.Y, bottom.X-vr, bottom.Y-hr)
	p.LineTo(left.X+vr, left.Y+hr)
	p.CubicTo(left.X, left.Y, left.X, left.Y, left.X+vr, left.Y-hr)
	p.LineTo(top.X-vr, top.Y+hr)
	p.CubicTo(top.X, top.Y, top.X, top.Y, top.X+vr, top.Y+hr)
	p.Close()
	return p
}

// EllipsePath returns the ellipse inscribed in a w x h box at the origin.
func EllipsePath(w, h float64) *Path {
	p := NewPath()
	p.Ellipse(w/2, h/2, math.Abs(w)/2, math.Abs(h)/2)
	return p
}

// RotatedCorners returns the four corners of the x,y,w,h box rotated about
// its center by angle.
func RotatedCorners(x, y, w, h, angle float64) [4]Point {
	r := NewRect(x, y, w, h)
	corners := r.Corners()
	if angle == 0 {
		return corners
	}
	c := Pt(x+w/2, y+h/2)
	for i := range corners {
		corners[i] = corners[i].RotateAround(c, angle)
	}
	return corners
}
