package recording

import (
	"github.com/gogpu/scenerender/geom"
)

// Recorder captures drawing operations as commands. Every draw call takes
// the matrix that maps its local coordinates to the output, so the
// recorder keeps no transform state; only group nesting is tracked.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	depth         int
}

// NewRecorder creates a new Recorder for the given output size in pixels.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// Depth returns the number of open groups.
func (r *Recorder) Depth() int { return r.depth }

// BeginGroup opens a clip/mask group. Paths in g are cloned.
func (r *Recorder) BeginGroup(g Group) {
	if g.Clip != nil {
		c := *g.Clip
		c.Path = c.Path.Clone()
		g.Clip = &c
	}
	if g.Mask != nil {
		m := &Mask{Holes: make([]*geom.Path, len(g.Mask.Holes))}
		for i, h := range g.Mask.Holes {
			m.Holes[i] = h.Clone()
		}
		g.Mask = m
	}
	r.depth++
	r.commands = append(r.commands, BeginGroupCommand{Group: g})
}

// EndGroup closes the innermost group. Without an open group it is a
// no-op.
func (r *Recorder) EndGroup() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.commands = append(r.commands, EndGroupCommand{})
}

// FillPath records a fill of path placed by m.
func (r *Recorder) FillPath(path *geom.Path, m geom.Matrix, brush Brush, rule FillRule) {
	if path.IsEmpty() {
		return
	}
	r.commands = append(r.commands, FillPathCommand{
		Path:   r.resources.AddPath(path),
		Matrix: m,
		Brush:  r.resources.AddBrush(brush),
		Rule:   rule,
	})
}

// StrokePath records a stroke of path placed by m.
func (r *Recorder) StrokePath(path *geom.Path, m geom.Matrix, brush Brush, stroke Stroke) {
	if path.IsEmpty() || stroke.Width <= 0 {
		return
	}
	r.commands = append(r.commands, StrokePathCommand{
		Path:   r.resources.AddPath(path),
		Matrix: m,
		Brush:  r.resources.AddBrush(brush),
		Stroke: stroke.Clone(),
	})
}

// FillRect records a fill of an output-space rectangle.
func (r *Recorder) FillRect(rect geom.Rect, brush Brush) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Brush: r.resources.AddBrush(brush)})
}

// DrawImage records an image placed by m.
func (r *Recorder) DrawImage(img *Image, m geom.Matrix, opts ImageOptions) {
	if img == nil {
		return
	}
	if opts.Clip != nil {
		opts.Clip = opts.Clip.Clone()
	}
	r.commands = append(r.commands, DrawImageCommand{
		Image:   r.resources.AddImage(img),
		Matrix:  m,
		Options: opts,
	})
}

// DrawText records one line of text placed by m.
func (r *Recorder) DrawText(run TextRun, m geom.Matrix, brush Brush) {
	if run.Text == "" {
		return
	}
	r.commands = append(r.commands, DrawTextCommand{
		Run:    run,
		Matrix: m,
		Brush:  r.resources.AddBrush(brush),
	})
}

// FinishRecording closes any open groups and returns the immutable
// Recording. The Recorder must not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	for r.depth > 0 {
		r.EndGroup()
	}
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginGroupCommand:
			backend.BeginGroup(c.Group)
		case EndGroupCommand:
			backend.EndGroup()
		case FillPathCommand:
			backend.FillPath(r.resources.GetPath(c.Path), c.Matrix, r.resources.GetBrush(c.Brush), c.Rule)
		case StrokePathCommand:
			backend.StrokePath(r.resources.GetPath(c.Path), c.Matrix, r.resources.GetBrush(c.Brush), c.Stroke)
		case FillRectCommand:
			backend.FillRect(c.Rect, r.resources.GetBrush(c.Brush))
		case DrawImageCommand:
			backend.DrawImage(r.resources.GetImage(c.Image), c.Matrix, c.Options)
		case DrawTextCommand:
			backend.DrawText(c.Run, c.Matrix, r.resources.GetBrush(c.Brush))
		}
	}

	return backend.End()
}

// Count returns how many commands of type t the recording holds.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}
