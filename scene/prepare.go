package scene

import (
	"log/slog"

	"github.com/gogpu/scenerender/internal/filter"
	"github.com/gogpu/scenerender/internal/logx"
)

// DefaultPadding is the margin around a whole-scene export.
const DefaultPadding = 20.0

// NoPadding requests a whole-scene export without margin. Any negative
// padding has the same effect.
const NoPadding = -1.0

// DefaultBackground is used when neither the caller nor the scene sets one.
const DefaultBackground = "#ffffff"

// PrepareOptions selects what part of a scene is rendered and how.
type PrepareOptions struct {
	// Frame limits the export to the children of one frame, matched by
	// name first and id second. Empty exports the whole scene.
	Frame string
	// Scale multiplies output pixel dimensions. Zero means 1.
	Scale float64
	// Padding is added on every side of a whole-scene export. Zero means
	// DefaultPadding and NoPadding disables it. Frame exports are never
	// padded.
	Padding float64
	// Background overrides the scene background when non-empty.
	Background string
	DarkMode   bool
}

// DefaultPrepareOptions returns options for a padded whole-scene export at
// scale 1.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{Scale: 1, Padding: DefaultPadding}
}

// PreparedScene is the validated, bounded and paint-ordered view of a
// scene for one export call.
type PreparedScene struct {
	Scene *Scene
	// Elements holds the in-scope elements in paint order.
	Elements []Element
	Bounds   Bounds
	// Width and Height are the output size in pixels.
	Width, Height int
	Scale         float64
	// Background is already passed through Transform.
	Background string
	Transform  filter.Transform
	DarkMode   bool
	// Frame is the export target, or nil for whole-scene exports.
	Frame *Frame
	// ByID indexes every non-deleted element of the scene, including the
	// ones outside the export scope.
	ByID map[string]Element
}

// Prepare builds a PreparedScene. It never modifies s.
func Prepare(s *Scene, opts PrepareOptions) (*PreparedScene, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	switch {
	case opts.Padding == 0:
		opts.Padding = DefaultPadding
	case opts.Padding < 0:
		opts.Padding = 0
	}

	live := make([]Element, 0, len(s.Elements))
	byID := make(map[string]Element, len(s.Elements))
	for _, e := range s.Elements {
		if e.Common().IsDeleted {
			continue
		}
		live = append(live, e)
		if id := e.Common().ID; id != "" {
			byID[id] = e
		}
	}

	ps := &PreparedScene{
		Scene:     s,
		Scale:     opts.Scale,
		Transform: filter.ForMode(opts.DarkMode),
		DarkMode:  opts.DarkMode,
		ByID:      byID,
	}

	inScope := live
	if opts.Frame != "" {
		f, err := findFrame(s.Frames(), opts.Frame)
		if err != nil {
			return nil, err
		}
		inScope = inScope[:0:0]
		for _, e := range live {
			if e.Common().FrameID == f.ID {
				inScope = append(inScope, e)
			}
		}
		if len(inScope) == 0 {
			return nil, &EmptyFrameError{Frame: opts.Frame}
		}
		ps.Frame = f
		ps.Bounds = FrameBounds(f)
	} else {
		ps.Bounds = Union(inScope).Inset(-opts.Padding)
	}

	ps.Elements = PaintOrder(inScope)
	ps.Width, ps.Height = PixelSize(ps.Bounds, opts.Scale)
	ps.Background = ps.Transform(resolveBackground(opts.Background, s.AppState.ViewBackgroundColor))

	logx.Logger().Debug("scene prepared",
		slog.Int("elements", len(ps.Elements)),
		slog.Float64("minX", ps.Bounds.MinX),
		slog.Float64("minY", ps.Bounds.MinY),
		slog.Int("width", ps.Width),
		slog.Int("height", ps.Height))
	return ps, nil
}

func resolveBackground(override, scene string) string {
	switch {
	case override != "":
		return override
	case scene != "":
		return scene
	default:
		return DefaultBackground
	}
}

func findFrame(frames []*Frame, selector string) (*Frame, error) {
	for _, f := range frames {
		if f.Name == selector {
			return f, nil
		}
	}
	for _, f := range frames {
		if f.ID == selector {
			return f, nil
		}
	}
	available := make([]string, 0, len(frames))
	for _, f := range frames {
		available = append(available, f.Name+" ("+f.ID+")")
	}
	return nil, &FrameNotFoundError{Selector: selector, Available: available}
}

// Frames returns the non-deleted frames of s in document order.
func (s *Scene) Frames() []*Frame {
	var out []*Frame
	for _, e := range s.Elements {
		if f, ok := e.(*Frame); ok && !f.IsDeleted {
			out = append(out, f)
		}
	}
	return out
}

// IsTransparent reports whether a color paints nothing.
func IsTransparent(c string) bool {
	return c == "" || c == "transparent"
}
