// Package raster provides the pixel backend for the recording system.
// It renders recordings to an *image.RGBA with rasterx and encodes the
// result as PNG or JPEG.
//
// # Supported Features
//
//   - Solid color fills and strokes, with dashes, caps and joins
//   - Clip groups, composited through coverage masks
//   - Group masks cutting holes under arrow labels
//   - Images with crop, flip, rounded clip, opacity and baked dark mode
//   - Text drawn from glyph outlines, truncated where the recording says so
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/scenerender/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("png")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SaveToFile("output.png")
//	img := backend.Image()
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/scenerender/recording"
)

// DefaultJPEGQuality is used by the "jpeg" registry entry.
const DefaultJPEGQuality = 92

func init() {
	recording.Register(recording.Format{
		Name: "png",
		New:  func() recording.Backend { return NewBackend() },
	})
	recording.Register(recording.Format{
		Name:       "jpeg",
		Extensions: []string{"jpg"},
		New:        func() recording.Backend { return NewJPEGBackend(DefaultJPEGQuality) },
	})
}

// Format selects the encoding used by WriteTo.
type Format int

const (
	// PNG keeps the alpha channel.
	PNG Format = iota
	// JPEG flattens the image onto white first.
	JPEG
)

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend interfaces.
type Backend struct {
	format  Format
	quality int

	width, height int
	img           *image.RGBA
	// layers holds one entry per open group; the top is the draw target.
	layers []layer
}

// layer is the draw target of one group. Clip groups draw into their own
// image and composite it through clip when they end; other groups draw
// straight into their parent.
type layer struct {
	img  *image.RGBA
	clip *image.Alpha
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a PNG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{format: PNG}
}

// NewJPEGBackend creates a backend that encodes JPEG at quality (1-100).
func NewJPEGBackend(quality int) *Backend {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &Backend{format: JPEG, quality: quality}
}

// Begin initializes a transparent canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.layers = b.layers[:0]
	return nil
}

// End closes any group left open.
func (b *Backend) End() error {
	for len(b.layers) > 0 {
		b.EndGroup()
	}
	return nil
}

// BeginGroup opens a group. Its content is drawn into a layer that is
// composited through the clip coverage and the inverse coverage of the
// mask holes.
func (b *Backend) BeginGroup(g recording.Group) {
	var clip *image.Alpha
	if g.Clip != nil {
		clip = b.coverage(g.Clip.Path, g.Clip.Matrix)
	}
	if g.Mask != nil && len(g.Mask.Holes) > 0 {
		holes := b.holeCoverage(g.Mask)
		if clip == nil {
			clip = holes
		} else {
			for i, a := range holes.Pix {
				clip.Pix[i] = uint8(uint16(clip.Pix[i]) * uint16(a) / 255)
			}
		}
	}
	if clip == nil {
		b.layers = append(b.layers, layer{img: b.target()})
		return
	}
	b.layers = append(b.layers, layer{img: image.NewRGBA(b.img.Bounds()), clip: clip})
}

// EndGroup composites the innermost group into its parent.
func (b *Backend) EndGroup() {
	if len(b.layers) == 0 {
		return
	}
	top := b.layers[len(b.layers)-1]
	b.layers = b.layers[:len(b.layers)-1]
	if top.clip != nil {
		dst := b.target()
		draw.DrawMask(dst, dst.Bounds(), top.img, image.Point{}, top.clip, image.Point{}, draw.Over)
	}
}

// target returns the image drawing operations write to.
func (b *Backend) target() *image.RGBA {
	if n := len(b.layers); n > 0 {
		return b.layers[n-1].img
	}
	return b.img
}

// WriteTo encodes the rendered image to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, fmt.Errorf("raster: nothing rendered")
	}
	cw := &countingWriter{w: w}
	var err error
	switch b.format {
	case JPEG:
		err = jpeg.Encode(cw, flatten(b.img), &jpeg.Options{Quality: b.quality})
	default:
		err = png.Encode(cw, b.img)
	}
	return cw.n, err
}

// SaveToFile encodes the rendered image to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// flatten composites img over white; JPEG has no alpha channel.
func flatten(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
