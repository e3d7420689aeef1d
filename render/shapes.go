package render

import (
	"math"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/scene"
	"github.com/gogpu/scenerender/sketch"
)

// shape fills (when fillable) and strokes an element outline. Pattern
// fills become stroked hachure lines; the outline stroke is roughened
// with the element seed.
func (pl *plan) shape(outline *geom.Path, m geom.Matrix, b *scene.Base, fillable bool) {
	opts := sketch.Map(b.StrokeStyle, b.FillStyle, b.StrokeWidth, b.Roughness, b.Seed)

	if fill := pl.brush(b.BackgroundColor, b); fillable && !fill.IsTransparent() {
		if lines := sketch.FillLines(outline, opts); lines != nil {
			st := recording.DefaultStroke()
			st.Width = opts.FillWeight
			for _, l := range lines {
				pl.rec.StrokePath(l, m, fill, st)
			}
		} else {
			pl.rec.FillPath(outline, m, fill, recording.FillRuleNonZero)
		}
	}

	stroke := pl.brush(b.StrokeColor, b)
	if stroke.IsTransparent() {
		return
	}
	pl.rec.StrokePath(sketch.Roughen(outline, opts), m, stroke, outlineStroke(opts))
}

func outlineStroke(opts sketch.Options) recording.Stroke {
	st := recording.DefaultStroke()
	st.Width = opts.StrokeWidth
	st.DashPattern = opts.Dash
	return st
}

func (pl *plan) rectangle(e *scene.Rectangle, m geom.Matrix) {
	r := e.CornerRadius(math.Min(math.Abs(e.Width), math.Abs(e.Height)))
	pl.shape(geom.RectanglePath(e.Width, e.Height, r), m, &e.Base, true)
}

func (pl *plan) diamond(e *scene.Diamond, m geom.Matrix) {
	var vr, hr float64
	if e.Roundness != nil {
		vr, hr = geom.DiamondRadii(e.Width, e.Height, e.Roundness.Type, e.Roundness.Value)
	}
	pl.shape(geom.DiamondPath(e.Width, e.Height, vr, hr), m, &e.Base, true)
}

// line draws an open polyline; closed polygons are also filled.
func (pl *plan) line(e *scene.Line, m geom.Matrix) {
	pl.shape(geom.LinePath(e.Points, e.Polygon), m, &e.Base, e.Polygon)
}

// arrow draws the shaft and heads of e. Arrows never fill, so the
// background is cleared on a copy. Labels bound to the arrow cut holes in
// it through the group mask.
func (pl *plan) arrow(e *scene.Arrow, m geom.Matrix) {
	a := scene.Clone(e).(*scene.Arrow)
	a.BackgroundColor = "transparent"

	if holes := pl.labels[a.ID]; len(holes) > 0 {
		pl.rec.BeginGroup(recording.Group{Mask: &recording.Mask{Holes: holes}})
		defer pl.rec.EndGroup()
	}

	shaft := geom.LinePath(a.Points, false)
	if a.Elbowed {
		shaft = geom.PolylinePath(a.Points, false)
	}
	pl.shape(shaft, m, &a.Base, false)

	stroke := pl.brush(a.StrokeColor, &a.Base)
	if stroke.IsTransparent() {
		return
	}
	opts := sketch.Map(sketch.StrokeSolid, a.FillStyle, a.StrokeWidth, a.Roughness, a.Seed)
	heads := []*geom.Arrowhead{
		geom.ArrowheadAt(a.Points, false, a.StartArrowhead, a.StrokeWidth),
		geom.ArrowheadAt(a.Points, true, a.EndArrowhead, a.StrokeWidth),
	}
	for _, h := range heads {
		if h == nil {
			continue
		}
		for _, s := range h.Strokes {
			pl.rec.StrokePath(sketch.Roughen(s, opts), m, stroke, outlineStroke(opts))
		}
		if h.Fill != nil {
			pl.rec.FillPath(h.Fill, m, stroke, recording.FillRuleNonZero)
		}
	}
}

// freedraw fills the variable-width outline with the stroke color. A
// stroke that loops back on itself is first filled with the background.
func (pl *plan) freedraw(e *scene.Freedraw, m geom.Matrix) {
	if fill := pl.brush(e.BackgroundColor, &e.Base); !fill.IsTransparent() && geom.IsClosedLoop(e.Points) {
		pl.rec.FillPath(geom.FreedrawFill(e.Points), m, fill, recording.FillRuleNonZero)
	}
	stroke := pl.brush(e.StrokeColor, &e.Base)
	if stroke.IsTransparent() {
		return
	}
	outline := geom.FreedrawOutline(e.Points, e.Pressures, e.SimulatePressure, e.StrokeWidth)
	pl.rec.FillPath(outline, m, stroke, recording.FillRuleNonZero)
}
