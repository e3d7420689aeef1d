package render

import (
	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/scene"
)

// containingFrame returns the frame b is clipped to in a whole-scene
// export. Single-frame exports clip once around everything instead.
func (pl *plan) containingFrame(b *scene.Base) *scene.Frame {
	if pl.ps.Frame != nil || b.FrameID == "" {
		return nil
	}
	f, _ := pl.ps.ByID[b.FrameID].(*scene.Frame)
	return f
}

// frameClip is the rotation-aware rectangle of f, without its name strip.
func (pl *plan) frameClip(f *scene.Frame) *recording.Clip {
	return &recording.Clip{
		Path:   geom.NewRect(0, 0, f.Width, f.Height).Path(),
		Matrix: pl.matrix(&f.Base),
	}
}

// arrowLabels collects, per arrow, the output-space boxes of the labels
// bound to it, padded by geom.OcclusionPadding.
func (pl *plan) arrowLabels() map[string][]*geom.Path {
	labels := make(map[string][]*geom.Path)
	for _, e := range pl.ps.Elements {
		t, ok := e.(*scene.Text)
		if !ok || !pl.boundToArrow(t) {
			continue
		}
		labels[t.ContainerID] = append(labels[t.ContainerID], pl.labelHole(t))
	}
	return labels
}

func (pl *plan) labelHole(t *scene.Text) *geom.Path {
	box := geom.NewRect(0, 0, t.Width, t.Height).Inset(-geom.OcclusionPadding)
	return box.Path().Transform(pl.matrix(&t.Base))
}

// boundToArrow reports whether t labels an arrow.
func (pl *plan) boundToArrow(t *scene.Text) bool {
	if t.ContainerID == "" {
		return false
	}
	_, ok := pl.ps.ByID[t.ContainerID].(*scene.Arrow)
	return ok
}
