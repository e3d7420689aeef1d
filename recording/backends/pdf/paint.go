package pdf

import (
	"image/color"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
)

// flatness is the curve tolerance, in points, for clip polygons.
const flatness = 0.25

// FillPath fills path after mapping it to page space.
func (b *Backend) FillPath(path *geom.Path, m geom.Matrix, brush recording.Brush, rule recording.FillRule) {
	c := recording.BrushColor(brush)
	if c.A == 0 || path == nil || path.IsEmpty() {
		return
	}
	b.fillColor(c)
	if !b.addPath(path, m) {
		return
	}
	style := "F"
	if rule == recording.FillRuleEvenOdd {
		style = "f*"
	}
	b.pdf.DrawPath(style)
}

// StrokePath strokes path; width and dashes are scaled by m.
func (b *Backend) StrokePath(path *geom.Path, m geom.Matrix, brush recording.Brush, stroke recording.Stroke) {
	c := recording.BrushColor(brush)
	if c.A == 0 || path == nil || path.IsEmpty() || stroke.Width <= 0 {
		return
	}
	s := m.ScaleFactor()
	b.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	b.pdf.SetAlpha(float64(c.A)/255, "Normal")
	b.pdf.SetLineWidth(stroke.Width * s)
	b.pdf.SetLineCapStyle(capStyle(stroke.Cap))
	b.pdf.SetLineJoinStyle(joinStyle(stroke.Join))
	if len(stroke.DashPattern) > 0 {
		dashes := make([]float64, len(stroke.DashPattern))
		for i, d := range stroke.DashPattern {
			dashes[i] = d * s
		}
		b.pdf.SetDashPattern(dashes, stroke.DashOffset*s)
	} else {
		b.pdf.SetDashPattern(nil, 0)
	}
	if !b.addPath(path, m) {
		return
	}
	b.pdf.DrawPath("D")
}

// FillRect fills a page-space rectangle.
func (b *Backend) FillRect(rect geom.Rect, brush recording.Brush) {
	c := recording.BrushColor(brush)
	if c.A == 0 || rect.IsEmpty() {
		return
	}
	b.fillColor(c)
	b.pdf.Rect(rect.MinX, rect.MinY, rect.Width(), rect.Height(), "F")
}

func (b *Backend) fillColor(c color.NRGBA) {
	b.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	b.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

// addPath appends path to the current fpdf path. Moves are deferred until
// a segment follows them, so it reports false without writing anything
// for a path with no segments.
func (b *Backend) addPath(path *geom.Path, m geom.Matrix) bool {
	added := false
	var start geom.Point
	pending := true
	move := func() {
		if pending {
			b.pdf.MoveTo(start.X, start.Y)
			pending = false
		}
		added = true
	}
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case geom.MoveTo:
			start = m.TransformPoint(e.Point)
			pending = true
		case geom.LineTo:
			move()
			p := m.TransformPoint(e.Point)
			b.pdf.LineTo(p.X, p.Y)
		case geom.QuadTo:
			move()
			c, p := m.TransformPoint(e.Control), m.TransformPoint(e.Point)
			b.pdf.CurveTo(c.X, c.Y, p.X, p.Y)
		case geom.CubicTo:
			move()
			c1, c2, p := m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point)
			b.pdf.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		case geom.Close:
			if !pending {
				b.pdf.ClosePath()
				pending = true
			}
		}
	}
	return added
}

func toPoints(poly []geom.Point) []fpdf.PointType {
	pts := make([]fpdf.PointType, len(poly))
	for i, p := range poly {
		pts[i] = fpdf.PointType{X: p.X, Y: p.Y}
	}
	return pts
}

func capStyle(c recording.LineCap) string {
	switch c {
	case recording.LineCapRound:
		return "round"
	case recording.LineCapSquare:
		return "square"
	}
	return "butt"
}

func joinStyle(j recording.LineJoin) string {
	switch j {
	case recording.LineJoinRound:
		return "round"
	case recording.LineJoinBevel:
		return "bevel"
	}
	return "miter"
}
