package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
)

// FillPath writes a filled <path>.
func (b *Backend) FillPath(path *geom.Path, m geom.Matrix, brush recording.Brush, rule recording.FillRule) {
	c := recording.BrushColor(brush)
	if c.A == 0 || path == nil || path.IsEmpty() {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s"%s%s/>`, pathData(path), fillAttrs(brush, rule), transformAttr(m))
}

// StrokePath writes a stroked <path>. Widths stay in element units and
// are scaled by the transform.
func (b *Backend) StrokePath(path *geom.Path, m geom.Matrix, brush recording.Brush, stroke recording.Stroke) {
	c := recording.BrushColor(brush)
	if c.A == 0 || path == nil || path.IsEmpty() || stroke.Width <= 0 {
		return
	}
	s := brush.(recording.SolidBrush)
	fmt.Fprintf(&b.body, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"`, pathData(path), s.Hex(), num(stroke.Width))
	if c.A < 255 {
		fmt.Fprintf(&b.body, ` stroke-opacity="%s"`, num(s.Opacity()))
	}
	fmt.Fprintf(&b.body, ` stroke-linecap="%s" stroke-linejoin="%s"`, capName(stroke.Cap), joinName(stroke.Join))
	if stroke.Join == recording.LineJoinMiter && stroke.MiterLimit > 0 {
		fmt.Fprintf(&b.body, ` stroke-miterlimit="%s"`, num(stroke.MiterLimit))
	}
	if len(stroke.DashPattern) > 0 {
		fmt.Fprintf(&b.body, ` stroke-dasharray="%s"`, numList(stroke.DashPattern))
		if stroke.DashOffset != 0 {
			fmt.Fprintf(&b.body, ` stroke-dashoffset="%s"`, num(stroke.DashOffset))
		}
	}
	fmt.Fprintf(&b.body, "%s/>", transformAttr(m))
}

// FillRect writes an output-space <rect>.
func (b *Backend) FillRect(rect geom.Rect, brush recording.Brush) {
	if recording.BrushColor(brush).A == 0 || rect.IsEmpty() {
		return
	}
	fmt.Fprintf(&b.body, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`,
		num(rect.MinX), num(rect.MinY), num(rect.Width()), num(rect.Height()),
		fillAttrs(brush, recording.FillRuleNonZero))
}

func fillAttrs(brush recording.Brush, rule recording.FillRule) string {
	s, _ := brush.(recording.SolidBrush)
	var sb strings.Builder
	fmt.Fprintf(&sb, ` fill="%s"`, s.Hex())
	if s.Color.A < 255 {
		fmt.Fprintf(&sb, ` fill-opacity="%s"`, num(s.Opacity()))
	}
	if rule == recording.FillRuleEvenOdd {
		sb.WriteString(` fill-rule="evenodd"`)
	}
	return sb.String()
}

// transformAttr returns the transform attribute for m, or nothing for the
// identity.
func transformAttr(m geom.Matrix) string {
	if m.IsIdentity() {
		return ""
	}
	return fmt.Sprintf(` transform="%s"`, matrixValue(m))
}

func matrixValue(m geom.Matrix) string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
}

// pathData converts a path to the d attribute syntax.
func pathData(p *geom.Path) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	pt := func(q geom.Point) {
		sb.WriteString(num(q.X))
		sb.WriteByte(' ')
		sb.WriteString(num(q.Y))
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case geom.MoveTo:
			sb.WriteByte('M')
			pt(e.Point)
		case geom.LineTo:
			sb.WriteByte('L')
			pt(e.Point)
		case geom.QuadTo:
			sb.WriteByte('Q')
			pt(e.Control)
			sb.WriteByte(' ')
			pt(e.Point)
		case geom.CubicTo:
			sb.WriteByte('C')
			pt(e.Control1)
			sb.WriteByte(' ')
			pt(e.Control2)
			sb.WriteByte(' ')
			pt(e.Point)
		case geom.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func numList(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = num(v)
	}
	return strings.Join(parts, " ")
}

func capName(c recording.LineCap) string {
	switch c {
	case recording.LineCapRound:
		return "round"
	case recording.LineCapSquare:
		return "square"
	}
	return "butt"
}

func joinName(j recording.LineJoin) string {
	switch j {
	case recording.LineJoinRound:
		return "round"
	case recording.LineJoinBevel:
		return "bevel"
	}
	return "miter"
}
