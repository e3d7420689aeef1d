package recording

import (
	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/text"
)

// TextRun is one line of text in element-local coordinates.
type TextRun struct {
	Text string
	// Family is the requested family id; Shaped.Family is the resolved font.
	Family int
	Size   float64
	// Anchor is the alignment point on the baseline: the left end, center
	// or right end of the line depending on Align.
	Anchor geom.Point
	Align  string
	// Shaped carries glyphs and advance; it may be nil when no font could
	// be resolved.
	Shaped *text.Run
	// Fit is a shortened rendition of the line for pixel output, set when
	// the full line overflows the space it labels. Vector output keeps
	// the full line.
	Fit *text.Run
}

// Width returns the advance of the run.
func (r TextRun) Width() float64 {
	if r.Shaped == nil {
		return 0
	}
	return r.Shaped.Width
}

// Origin returns the left end of the baseline.
func (r TextRun) Origin() geom.Point {
	return geom.Pt(geom.LineStartX(r.Align, r.Anchor.X, r.Width()), r.Anchor.Y)
}

// Fitted returns the run with Fit substituted for the full line, or r
// itself when no shortened rendition was recorded.
func (r TextRun) Fitted() TextRun {
	if r.Fit == nil {
		return r
	}
	f := r
	f.Text = r.Fit.Text
	f.Shaped = r.Fit
	f.Fit = nil
	return f
}
