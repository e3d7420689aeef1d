package scene

import (
	"math"

	"github.com/gogpu/scenerender/geom"
)

// Bounds is an axis-aligned rectangle in scene coordinates.
type Bounds = geom.Rect

// ElementBounds returns the rotation-aware box of e. Frames include the
// name strip above their top edge.
func ElementBounds(e Element) Bounds {
	b := e.Common()
	x, y, w, h := b.X, b.Y, b.Width, b.Height
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	box := geom.RotatedCorners(x, y, w, h, b.Angle)
	if _, ok := e.(*Frame); !ok {
		return cornerBounds(box[:])
	}

	strip := geom.NewRect(x, y-geom.FrameLabelHeight(), w, geom.FrameLabelHeight()).Corners()
	if b.Angle != 0 {
		c := geom.Pt(x+w/2, y+h/2)
		for i := range strip {
			strip[i] = strip[i].RotateAround(c, b.Angle)
		}
	}
	return cornerBounds(append(box[:], strip[:]...))
}

// FrameBounds returns the rotation-aware rectangle of a frame without its
// name strip.
func FrameBounds(f *Frame) Bounds {
	box := geom.RotatedCorners(f.X, f.Y, f.Width, f.Height, f.Angle)
	return cornerBounds(box[:])
}

func cornerBounds(pts []geom.Point) Bounds {
	r := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range pts {
		r = extend(r, p)
	}
	return r
}

func extend(r Bounds, p geom.Point) Bounds {
	r.MinX = math.Min(r.MinX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MaxY = math.Max(r.MaxY, p.Y)
	return r
}

// Union returns the smallest box enclosing every element of elems.
// An empty list yields the zero box.
func Union(elems []Element) Bounds {
	if len(elems) == 0 {
		return Bounds{}
	}
	r := ElementBounds(elems[0])
	for _, e := range elems[1:] {
		eb := ElementBounds(e)
		r = extend(r, geom.Pt(eb.MinX, eb.MinY))
		r = extend(r, geom.Pt(eb.MaxX, eb.MaxY))
	}
	return r
}

// PixelSize converts a box span to output pixels at scale, at least 1×1.
func PixelSize(b Bounds, scale float64) (w, h int) {
	w = int(math.Ceil(b.Width() * scale))
	h = int(math.Ceil(b.Height() * scale))
	return max(w, 1), max(h, 1)
}
