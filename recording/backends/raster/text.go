package raster

import (
	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
)

// DrawText fills the glyph outlines of the run. Runs carrying a
// shortened rendition draw that instead of the full line.
func (b *Backend) DrawText(run recording.TextRun, m geom.Matrix, brush recording.Brush) {
	run = run.Fitted()
	if run.Shaped == nil || len(run.Shaped.Glyphs) == 0 {
		return
	}
	b.FillPath(run.Shaped.Outline(run.Origin()), m, brush, recording.FillRuleNonZero)
}
