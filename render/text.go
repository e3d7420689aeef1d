package render

import (
	"log/slog"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/scene"
	"github.com/gogpu/scenerender/text"
)

// frameLabelFamily is the font of frame names and embeddable placeholders.
const frameLabelFamily = text.FamilyNormal

func (pl *plan) text(e *scene.Text, m geom.Matrix) {
	if e.FontSize <= 0 {
		return
	}
	brush := pl.brush(e.StrokeColor, &e.Base)
	for _, l := range geom.LayoutText(e.Text, e.FontSize, e.LineHeight, e.TextAlign, e.Width) {
		pl.rec.DrawText(pl.textRun(l, e.FontFamily, e.FontSize, e.TextAlign), m, brush)
	}
}

// textRun builds a shaped text run for one laid-out line.
func (pl *plan) textRun(l geom.TextLine, family int, size float64, align string) recording.TextRun {
	r := recording.TextRun{
		Text:   l.Text,
		Family: family,
		Size:   size,
		Anchor: geom.Pt(l.X, l.Baseline),
		Align:  align,
	}
	r.Shaped = pl.shapeText(family, size, l.Text)
	return r
}

// shapeText shapes s, returning nil when no registry is configured or the
// family cannot be resolved.
func (pl *plan) shapeText(family int, size float64, s string) *text.Run {
	if pl.Fonts == nil || s == "" {
		return nil
	}
	run, err := pl.Fonts.Shape(family, size, s)
	if err != nil {
		pl.log.Warn("text not shaped", slog.Int("family", family), slog.Any("error", err))
		return nil
	}
	return run
}

// measurer returns a width function for family at size. Without fonts
// every string measures zero, so nothing is truncated or wrapped.
func (pl *plan) measurer(family int, size float64) func(string) float64 {
	if pl.Fonts == nil {
		return func(string) float64 { return 0 }
	}
	return pl.Fonts.Measurer(family, size)
}

// frame strokes the fixed frame border and writes the name above it. The
// full name is recorded; a shortened copy that fits the frame width goes
// in TextRun.Fit for pixel output.
func (pl *plan) frame(f *scene.Frame, m geom.Matrix) {
	alpha := f.Alpha()
	border := recording.ParseColor(pl.ps.Transform(geom.FrameStrokeColor)).WithAlpha(alpha)
	st := recording.DefaultStroke()
	st.Width = geom.FrameStrokeWidth
	pl.rec.StrokePath(geom.RectanglePath(f.Width, f.Height, geom.FrameCornerRadius), m, border, st)

	nameColor := geom.FrameNameColorLight
	if pl.ps.DarkMode {
		nameColor = geom.FrameNameColorDark
	}
	name := geom.FrameName(f.Name)
	line := geom.TextLine{Text: name, Baseline: geom.FrameLabelBaseline()}
	r := pl.textRun(line, frameLabelFamily, geom.FrameNameFontSize, geom.AlignLeft)

	measure := pl.measurer(frameLabelFamily, geom.FrameNameFontSize)
	if fitted := geom.TruncateToWidth(name, f.Width, measure); fitted != name {
		r.Fit = pl.shapeText(frameLabelFamily, geom.FrameNameFontSize, fitted)
		if r.Fit == nil {
			// nothing fits, not even the ellipsis
			r.Fit = &text.Run{Text: fitted, Size: geom.FrameNameFontSize}
		}
	}
	pl.rec.DrawText(r, m, recording.ParseColor(nameColor).WithAlpha(alpha))
}

// embeddable draws the element box and a centered placeholder label.
func (pl *plan) embeddable(e *scene.Embeddable, m geom.Matrix) {
	pl.rectangle(&scene.Rectangle{Base: e.Base}, m)

	label := geom.LayoutEmbeddableLabel(e.Link, e.Width, e.Height, pl.measurer(frameLabelFamily, 1))
	brush := pl.brush(e.StrokeColor, &e.Base)
	for _, l := range label.Lines {
		pl.rec.DrawText(pl.textRun(l, frameLabelFamily, label.FontSize, geom.AlignCenter), m, brush)
	}
}
