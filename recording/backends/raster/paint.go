package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
)

// FillPath fills path mapped through m.
func (b *Backend) FillPath(path *geom.Path, m geom.Matrix, brush recording.Brush, rule recording.FillRule) {
	c, ok := solid(brush)
	if !ok || path.IsEmpty() {
		return
	}
	dst := b.target()
	scanner := rasterx.NewScannerGV(b.width, b.height, dst, dst.Bounds())
	filler := rasterx.NewFiller(b.width, b.height, scanner)
	filler.SetWinding(rule == recording.FillRuleNonZero)
	scanner.SetColor(c)
	addPath(filler, path, m)
	filler.Draw()
}

// StrokePath strokes path mapped through m. Width and dashes are scaled
// with the matrix.
func (b *Backend) StrokePath(path *geom.Path, m geom.Matrix, brush recording.Brush, stroke recording.Stroke) {
	c, ok := solid(brush)
	if !ok || path.IsEmpty() || stroke.Width <= 0 {
		return
	}
	s := m.ScaleFactor()
	var dashes []float64
	if len(stroke.DashPattern) > 0 {
		dashes = make([]float64, len(stroke.DashPattern))
		for i, d := range stroke.DashPattern {
			dashes[i] = d * s
		}
	}
	miter := stroke.MiterLimit
	if miter <= 0 {
		miter = 4
	}

	dst := b.target()
	scanner := rasterx.NewScannerGV(b.width, b.height, dst, dst.Bounds())
	dasher := rasterx.NewDasher(b.width, b.height, scanner)
	dasher.SetStroke(toFixed(stroke.Width*s), toFixed(miter),
		capFunc(stroke.Cap), capFunc(stroke.Cap), gapFunc(stroke.Join),
		joinMode(stroke.Join), dashes, stroke.DashOffset*s)
	scanner.SetColor(c)
	addPath(dasher, path, m)
	dasher.Draw()
}

// FillRect fills an output-space rectangle.
func (b *Backend) FillRect(rect geom.Rect, brush recording.Brush) {
	b.FillPath(rect.Path(), geom.Identity(), brush, recording.FillRuleNonZero)
}

// solid returns the brush color, or false when it paints nothing.
func solid(brush recording.Brush) (color.NRGBA, bool) {
	c := recording.BrushColor(brush)
	return c, c.A > 0
}

// addPath feeds path, mapped through m, to a rasterx adder. Affine maps
// keep Bezier curves Bezier, so control points are mapped directly.
func addPath(a rasterx.Adder, path *geom.Path, m geom.Matrix) {
	pt := func(p geom.Point) fixed.Point26_6 {
		q := m.TransformPoint(p)
		return fixed.Point26_6{X: toFixed(q.X), Y: toFixed(q.Y)}
	}
	var start geom.Point
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case geom.MoveTo:
			if open {
				a.Stop(false)
			}
			start = e.Point
			a.Start(pt(e.Point))
			open = true
		case geom.LineTo:
			if !open {
				a.Start(pt(start))
				open = true
			}
			a.Line(pt(e.Point))
		case geom.QuadTo:
			if !open {
				a.Start(pt(start))
				open = true
			}
			a.QuadBezier(pt(e.Control), pt(e.Point))
		case geom.CubicTo:
			if !open {
				a.Start(pt(start))
				open = true
			}
			a.CubeBezier(pt(e.Control1), pt(e.Control2), pt(e.Point))
		case geom.Close:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

// coverage rasterizes the inside of path mapped through m into an alpha
// mask the size of the canvas.
func (b *Backend) coverage(path *geom.Path, m geom.Matrix) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, b.width, b.height))
	if path.IsEmpty() {
		return mask
	}
	z := vector.NewRasterizer(b.width, b.height)
	addPolygons(z, path.Transform(m))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// holeCoverage returns an alpha mask that is opaque everywhere except
// inside the union of the mask holes.
func (b *Backend) holeCoverage(m *recording.Mask) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, b.width, b.height))
	z := vector.NewRasterizer(b.width, b.height)
	for _, h := range m.Holes {
		if h != nil {
			addPolygons(z, h)
		}
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for i, a := range mask.Pix {
		mask.Pix[i] = 255 - a
	}
	return mask
}

func addPolygons(z *vector.Rasterizer, path *geom.Path) {
	for _, poly := range path.Flatten(0.25) {
		if len(poly) < 2 {
			continue
		}
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func capFunc(c recording.LineCap) rasterx.CapFunc {
	switch c {
	case recording.LineCapRound:
		return rasterx.RoundCap
	case recording.LineCapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func gapFunc(j recording.LineJoin) rasterx.GapFunc {
	if j == recording.LineJoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

func joinMode(j recording.LineJoin) rasterx.JoinMode {
	switch j {
	case recording.LineJoinRound:
		return rasterx.Round
	case recording.LineJoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}
