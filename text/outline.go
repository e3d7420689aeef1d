package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/scenerender/geom"
)

// Outline returns the glyph outlines of run with the left end of its
// baseline at origin. Glyphs without outlines, such as spaces, add nothing.
func (run *Run) Outline(origin geom.Point) *geom.Path {
	p := geom.NewPath()
	if run == nil || run.Family == nil || len(run.Glyphs) == 0 {
		return p
	}
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(run.Size * 64)
	for _, g := range run.Glyphs {
		segments, err := run.Family.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			continue
		}
		appendSegments(p, segments, origin.X+g.X, origin.Y+g.Y)
	}
	return p
}

// sfnt segments use a downward Y axis, matching scene coordinates.
func appendSegments(p *geom.Path, segments sfnt.Segments, dx, dy float64) {
	pt := func(v fixed.Point26_6) (float64, float64) {
		return dx + float64(v.X)/64, dy + float64(v.Y)/64
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			x, y := pt(seg.Args[0])
			p.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			p.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			p.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		p.Close()
	}
}
