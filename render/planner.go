package render

import (
	"log/slog"

	"github.com/gogpu/scenerender/assets"
	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/internal/logx"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/scene"
	"github.com/gogpu/scenerender/text"
)

// Planner converts prepared scenes into recordings.
type Planner struct {
	// Fonts shapes text. Without it text is recorded unshaped and only
	// backends that lay out text themselves draw it.
	Fonts *text.Registry
	// Logger receives skip warnings. Nil uses the package-wide logger.
	Logger *slog.Logger
}

// Plan records ps with the decoded assets in set.
func Plan(ps *scene.PreparedScene, set assets.Set, fonts *text.Registry) *recording.Recording {
	return (&Planner{Fonts: fonts}).Plan(ps, set)
}

// Plan records ps. Assets missing from set are skipped silently; element
// types without a renderer are skipped with a warning.
func (p *Planner) Plan(ps *scene.PreparedScene, set assets.Set) *recording.Recording {
	pl := &plan{
		Planner: p,
		ps:      ps,
		assets:  set,
		rec:     recording.NewRecorder(ps.Width, ps.Height),
		log:     logx.Or(p.Logger),
	}
	pl.labels = pl.arrowLabels()
	pl.draw()
	return pl.rec.FinishRecording()
}

// plan is the state of one Plan call.
type plan struct {
	*Planner
	ps     *scene.PreparedScene
	assets assets.Set
	rec    *recording.Recorder
	log    *slog.Logger
	// labels maps arrow ids to the output-space boxes of their labels.
	labels map[string][]*geom.Path
}

func (pl *plan) draw() {
	if !scene.IsTransparent(pl.ps.Background) {
		full := geom.NewRect(0, 0, float64(pl.ps.Width), float64(pl.ps.Height))
		pl.rec.FillRect(full, recording.ParseColor(pl.ps.Background))
	}

	if f := pl.ps.Frame; f != nil {
		pl.rec.BeginGroup(recording.Group{Clip: pl.frameClip(f)})
		defer pl.rec.EndGroup()
	}

	for _, e := range pl.ps.Elements {
		pl.element(e)
	}
}

// element draws e inside the clip group of its frame, if any.
func (pl *plan) element(e scene.Element) {
	b := e.Common()
	if pl.ps.Frame != nil && b.ID == pl.ps.Frame.ID {
		return
	}
	if f := pl.containingFrame(b); f != nil {
		pl.rec.BeginGroup(recording.Group{Clip: pl.frameClip(f)})
		defer pl.rec.EndGroup()
	}

	m := pl.matrix(b)
	switch e := e.(type) {
	case *scene.Rectangle:
		pl.rectangle(e, m)
	case *scene.Diamond:
		pl.diamond(e, m)
	case *scene.Ellipse:
		pl.shape(geom.EllipsePath(e.Width, e.Height), m, &e.Base, true)
	case *scene.Line:
		pl.line(e, m)
	case *scene.Arrow:
		pl.arrow(e, m)
	case *scene.Freedraw:
		pl.freedraw(e, m)
	case *scene.Text:
		pl.text(e, m)
	case *scene.Image:
		pl.image(e, m)
	case *scene.Frame:
		pl.frame(e, m)
	case *scene.Embeddable:
		pl.embeddable(e, m)
	default:
		pl.log.Warn("unsupported element skipped",
			slog.String("id", b.ID),
			slog.String("type", e.Type()))
	}
}

// matrix maps element-local coordinates of b to output pixels.
func (pl *plan) matrix(b *scene.Base) geom.Matrix {
	s := pl.ps.Scale
	return geom.Scale(s, s).
		Multiply(geom.Translate(b.X-pl.ps.Bounds.MinX, b.Y-pl.ps.Bounds.MinY)).
		Multiply(geom.RotateAbout(b.Angle, b.Width/2, b.Height/2))
}

// brush resolves a scene color through the active transform and applies
// the element opacity.
func (pl *plan) brush(c string, b *scene.Base) recording.SolidBrush {
	if scene.IsTransparent(c) {
		return recording.SolidBrush{}
	}
	return recording.ParseColor(pl.ps.Transform(c)).WithAlpha(b.Alpha())
}
