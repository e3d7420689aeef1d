package recording

import (
	"image"
	"io"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/text"
)

// Backend is the interface that all export backends must implement.
// Backends receive drawing commands with their output matrices already
// resolved and translate them to their format (raster pixels, PDF
// content streams, SVG elements).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Balance its own clip/mask state across BeginGroup/EndGroup
//  4. Multiply brush and image alpha, never replace it
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register(recording.Format{
//	        Name: "pdf",
//	        New:  func() recording.Backend { return NewBackend() },
//	    })
//	}
type Backend interface {
	// Begin initializes the backend for an output of the given size in
	// pixels. It must be called before any drawing operation.
	Begin(width, height int) error

	// End finalizes the output. After End, output methods (WriteTo,
	// SaveToFile) can be used.
	End() error

	// BeginGroup opens a clip and/or mask scope.
	BeginGroup(g Group)

	// EndGroup closes the innermost scope.
	EndGroup()

	// FillPath fills path after mapping it through m.
	FillPath(path *geom.Path, m geom.Matrix, brush Brush, rule FillRule)

	// StrokePath strokes path after mapping it through m.
	StrokePath(path *geom.Path, m geom.Matrix, brush Brush, stroke Stroke)

	// FillRect fills an output-space rectangle.
	FillRect(rect geom.Rect, brush Brush)

	// DrawImage draws img; m maps element-local coordinates to output.
	DrawImage(img *Image, m geom.Matrix, opts ImageOptions)

	// DrawText draws one line of text; m maps element-local coordinates
	// to output.
	DrawText(run TextRun, m geom.Matrix, brush Brush)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
// This is implemented by the raster backend.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End().
	Image() *image.RGBA
}

// FontBackend is implemented by backends that embed font files in their
// output. The registry must be the one the recording was shaped with.
type FontBackend interface {
	Backend

	// UseFonts sets the registry fonts are embedded from.
	UseFonts(fonts *text.Registry)
}
