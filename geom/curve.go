package geom

import "math"

// LinePath returns the path through points. Two points produce a single
// straight segment; three or more produce a Catmull-Rom spline (converted
// to cubic Beziers) that passes through every point. When closed is set
// the path is closed back to the first point.
func LinePath(points []Point, closed bool) *Path {
	p := NewPath()
	switch len(points) {
	case 0:
		return p
	case 1:
		p.MoveTo(points[0].X, points[0].Y)
		p.LineTo(points[0].X, points[0].Y)
		return p
	case 2:
		p.MoveTo(points[0].X, points[0].Y)
		p.LineTo(points[1].X, points[1].Y)
	default:
		curveThrough(p, points)
	}
	if closed {
		p.Close()
	}
	return p
}

// PolylinePath joins points with straight segments.
func PolylinePath(points []Point, closed bool) *Path {
	p := NewPath()
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.Close()
	}
	return p
}

// curveThrough appends a Catmull-Rom spline through pts (len >= 3).
// The end points are duplicated so the curve starts at pts[0] and ends at
// pts[len-1].
func curveThrough(p *Path, pts []Point) {
	padded := make([]Point, 0, len(pts)+2)
	padded = append(padded, pts[0])
	padded = append(padded, pts...)
	padded = append(padded, pts[len(pts)-1])

	p.MoveTo(padded[1].X, padded[1].Y)
	for i := 1; i+2 < len(padded); i++ {
		b1 := padded[i].Add(padded[i+1].Sub(padded[i-1]).Mul(1.0 / 6))
		b2 := padded[i+1].Add(padded[i].Sub(padded[i+2]).Mul(1.0 / 6))
		end := padded[i+1]
		p.CubicTo(b1.X, b1.Y, b2.X, b2.Y, end.X, end.Y)
	}
}

// Arrowhead kinds.
const (
	ArrowheadNone     = ""
	ArrowheadArrow    = "arrow"
	ArrowheadTriangle = "triangle"
	ArrowheadBar      = "bar"
	ArrowheadDot      = "dot"
)

const arrowheadHalfAngle = math.Pi / 6

// ArrowheadLength is the length of each chevron stroke for a stroke width.
func ArrowheadLength(strokeWidth float64) float64 {
	return 15 + 2*strokeWidth
}

// Arrowhead is the decoration drawn at one end of an arrow.
type Arrowhead struct {
	// Strokes are open paths stroked with the arrow's stroke style.
	Strokes []*Path
	// Fill is a closed path filled with the stroke color, or nil.
	Fill *Path
}

// ArrowheadAt builds the decoration of kind at the end (atEnd) or start of
// the polyline points. Arrow and triangle heads are two strokes of
// ArrowheadLength, each 30 degrees off the end segment, meeting at the tip.
// It returns nil when the kind draws nothing or the end segment is degenerate.
func ArrowheadAt(points []Point, atEnd bool, kind string, strokeWidth float64) *Arrowhead {
	if kind == ArrowheadNone || len(points) < 2 {
		return nil
	}
	tip, prev := points[0], points[1]
	if atEnd {
		tip, prev = points[len(points)-1], points[len(points)-2]
	}
	dir := tip.Sub(prev)
	if dir.Length() == 0 {
		return nil
	}
	back := dir.Mul(-1).Normalize()
	length := ArrowheadLength(strokeWidth)

	switch kind {
	case ArrowheadArrow, ArrowheadTriangle:
		head := &Arrowhead{}
		for _, a := range []float64{arrowheadHalfAngle, -arrowheadHalfAngle} {
			wing := tip.Add(back.RotateAround(Point{}, a).Mul(length))
			s := NewPath()
			s.MoveTo(wing.X, wing.Y)
			s.LineTo(tip.X, tip.Y)
			head.Strokes = append(head.Strokes, s)
		}
		return head
	case ArrowheadBar:
		half := back.Perp().Mul(length * math.Sin(arrowheadHalfAngle))
		s := NewPath()
		s.MoveTo(tip.X+half.X, tip.Y+half.Y)
		s.LineTo(tip.X-half.X, tip.Y-half.Y)
		return &Arrowhead{Strokes: []*Path{s}}
	case ArrowheadDot:
		r := length / 4
		f := NewPath()
		c := tip.Add(back.Mul(r))
		f.Ellipse(c.X, c.Y, r, r)
		return &Arrowhead{Fill: f}
	default:
		return nil
	}
}
