package pdf

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/internal/logx"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/text"
)

// DrawText draws the fitted line at its baseline origin.
func (b *Backend) DrawText(run recording.TextRun, m geom.Matrix, brush recording.Brush) {
	c := recording.BrushColor(brush)
	run = run.Fitted()
	if run.Text == "" || c.A == 0 || run.Size <= 0 {
		return
	}
	name, ok := b.font(run)
	if !ok {
		return
	}

	size := run.Size * m.ScaleFactor()
	origin := m.TransformPoint(run.Origin())
	b.pdf.SetFont(name, "", size)
	b.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	b.pdf.SetAlpha(float64(c.A)/255, "Normal")

	angle := m.Angle()
	if math.Abs(angle) < 1e-9 {
		b.pdf.Text(origin.X, origin.Y, run.Text)
		return
	}
	// fpdf rotates counter-clockwise in page space
	b.pdf.TransformBegin()
	b.pdf.TransformRotate(-angle*180/math.Pi, origin.X, origin.Y)
	b.pdf.Text(origin.X, origin.Y, run.Text)
	b.pdf.TransformEnd()
}

// font returns the fpdf name of the font for run, embedding it on first
// use. Families fpdf cannot embed are replaced by the hand-drawn family.
func (b *Backend) font(run recording.TextRun) (string, bool) {
	var f *text.Family
	if run.Shaped != nil {
		f = run.Shaped.Family
	}
	if f == nil && b.fonts != nil {
		f, _ = b.fonts.Family(run.Family)
	}
	if f != nil && !f.IsTrueType() {
		sub := b.substitute()
		if !b.warned[f.ID] {
			b.warned[f.ID] = true
			logx.Logger().Warn("pdf: font cannot be embedded, substituting",
				slog.String("font", f.Name), slog.Bool("substituted", sub != nil))
		}
		f = sub
	}
	if f == nil {
		return "", false
	}
	if name, ok := b.fontNames[f]; ok {
		return name, true
	}
	name := fmt.Sprintf("F%d", len(b.fontNames)+1)
	b.pdf.AddUTF8FontFromBytes(name, "", f.Data)
	if b.pdf.Err() {
		return "", false
	}
	b.fontNames[f] = name
	return name, true
}

func (b *Backend) substitute() *text.Family {
	if b.fonts == nil {
		return nil
	}
	f, err := b.fonts.Family(text.FamilyHandDrawn)
	if err != nil || !f.IsTrueType() {
		return nil
	}
	return f
}
