package sketch

import (
	"math"
	"sort"

	"github.com/gogpu/scenerender/geom"
)

// flattenTolerance is the chord tolerance used before scanning fills.
const flattenTolerance = 0.5

// FillLines returns the stroke paths that render a pattern fill of area.
// Solid fills return nil: the caller fills the area directly. The lines
// are stroked with Options.FillWeight.
func FillLines(area *geom.Path, o Options) []*geom.Path {
	if !o.IsPattern() || area.IsEmpty() {
		return nil
	}
	polys := area.Flatten(flattenTolerance)
	var lines [][2]geom.Point
	switch o.Fill {
	case FillCrossHatch:
		lines = hachureLines(polys, o.HachureAngle, o.HachureGap)
		lines = append(lines, hachureLines(polys, o.HachureAngle+90, o.HachureGap)...)
	default:
		lines = hachureLines(polys, o.HachureAngle, o.HachureGap)
	}
	if o.Fill == FillZigzag {
		return []*geom.Path{Roughen(zigzag(lines), o)}
	}
	out := make([]*geom.Path, 0, len(lines))
	for i, l := range lines {
		p := geom.NewPath()
		p.MoveTo(l[0].X, l[0].Y)
		p.LineTo(l[1].X, l[1].Y)
		lo := o
		lo.Seed = o.Seed + int64(i) + 1
		out = append(out, Roughen(p, lo))
	}
	return out
}

// hachureLines intersects parallel lines at angle (degrees) and spacing gap
// with the polygons, using the even-odd rule.
func hachureLines(polys [][]geom.Point, angle, gap float64) [][2]geom.Point {
	if gap <= 0 {
		return nil
	}
	rad := angle * math.Pi / 180
	origin := geom.Point{}

	// rotate so hachure lines become horizontal scanlines
	rotated := make([][]geom.Point, len(polys))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, poly := range polys {
		rp := make([]geom.Point, len(poly))
		for k, pt := range poly {
			rp[k] = pt.RotateAround(origin, -rad)
			minY = math.Min(minY, rp[k].Y)
			maxY = math.Max(maxY, rp[k].Y)
		}
		rotated[i] = rp
	}

	var lines [][2]geom.Point
	for y := minY + gap; y < maxY; y += gap {
		var xs []float64
		for _, poly := range rotated {
			for k := 0; k+1 < len(poly); k++ {
				a, b := poly[k], poly[k+1]
				if (a.Y <= y) == (b.Y <= y) {
					continue
				}
				t := (y - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+(b.X-a.X)*t)
			}
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			l := [2]geom.Point{
				geom.Pt(xs[k], y).RotateAround(origin, rad),
				geom.Pt(xs[k+1], y).RotateAround(origin, rad),
			}
			lines = append(lines, l)
		}
	}
	return lines
}

// zigzag joins consecutive hachure lines end to end.
func zigzag(lines [][2]geom.Point) *geom.Path {
	p := geom.NewPath()
	for i, l := range lines {
		a, b := l[0], l[1]
		if i%2 == 1 {
			a, b = b, a
		}
		if i == 0 {
			p.MoveTo(a.X, a.Y)
		} else {
			p.LineTo(a.X, a.Y)
		}
		p.LineTo(b.X, b.Y)
	}
	return p
}
