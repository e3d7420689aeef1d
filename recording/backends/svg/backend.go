// Package svg provides the vector document backend for the recording
// system. Every command becomes one SVG element; element matrices are
// kept as transform attributes so the markup stays in element units.
//
// Differences from the pixel backends:
//
//   - Arrow labels are cut out of their arrows with a luminance mask.
//   - Text keeps its full content and is rendered by the viewer with the
//     embedded fonts. Only the font segments covering characters that
//     actually occur are embedded.
//   - Dark mode on images is a display filter, leaving the embedded file
//     untouched.
//
// # Example
//
//	import _ "github.com/gogpu/scenerender/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.WriterBackend).WriteTo(w)
package svg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/text"
)

func init() {
	recording.Register(recording.Format{
		Name: "svg",
		New:  func() recording.Backend { return NewBackend() },
	})
}

// Backend writes recordings as an SVG document.
type Backend struct {
	width, height int

	fonts *text.Registry
	usage text.Usage

	// defs collects clip paths and masks; body the drawing itself.
	defs bytes.Buffer
	body bytes.Buffer

	depth  int
	nextID int
	done   bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.FontBackend   = (*Backend)(nil)
)

// NewBackend creates an SVG backend. Without a font registry text is
// still written, but no fonts are embedded.
func NewBackend() *Backend {
	return &Backend{}
}

// UseFonts sets the registry @font-face rules are built from.
func (b *Backend) UseFonts(fonts *text.Registry) {
	b.fonts = fonts
}

// Begin starts a document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.usage = text.Usage{}
	b.defs.Reset()
	b.body.Reset()
	b.depth = 0
	b.nextID = 0
	b.done = false
	return nil
}

// End closes any group left open.
func (b *Backend) End() error {
	for b.depth > 0 {
		b.EndGroup()
	}
	b.done = true
	return nil
}

// BeginGroup opens a <g>. Clips and masks are emitted into <defs> and
// referenced by id.
func (b *Backend) BeginGroup(g recording.Group) {
	b.body.WriteString("<g")
	if g.Clip != nil {
		id := b.id("clip")
		fmt.Fprintf(&b.defs, `<clipPath id="%s"><path d="%s"%s/></clipPath>`,
			id, pathData(g.Clip.Path), transformAttr(g.Clip.Matrix))
		fmt.Fprintf(&b.body, ` clip-path="url(#%s)"`, id)
	}
	if g.Mask != nil && len(g.Mask.Holes) > 0 {
		id := b.id("mask")
		fmt.Fprintf(&b.defs, `<mask id="%s" maskUnits="userSpaceOnUse" x="0" y="0" width="%d" height="%d">`,
			id, b.width, b.height)
		fmt.Fprintf(&b.defs, `<rect x="0" y="0" width="%d" height="%d" fill="white"/>`, b.width, b.height)
		for _, hole := range g.Mask.Holes {
			fmt.Fprintf(&b.defs, `<path d="%s" fill="black"/>`, pathData(hole))
		}
		b.defs.WriteString("</mask>")
		fmt.Fprintf(&b.body, ` mask="url(#%s)"`, id)
	}
	b.body.WriteString(">")
	b.depth++
}

// EndGroup closes the innermost <g>.
func (b *Backend) EndGroup() {
	if b.depth == 0 {
		return
	}
	b.body.WriteString("</g>")
	b.depth--
}

func (b *Backend) id(kind string) string {
	b.nextID++
	return fmt.Sprintf("%s-%d", kind, b.nextID)
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.width == 0 {
		return 0, fmt.Errorf("svg: nothing rendered")
	}
	if !b.done {
		if err := b.End(); err != nil {
			return 0, err
		}
	}
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		b.width, b.height, b.width, b.height)
	doc.WriteString("\n<!-- svg-source:scenerender -->\n")
	doc.WriteString("<defs>")
	b.writeFonts(&doc)
	doc.Write(b.defs.Bytes())
	doc.WriteString("</defs>\n")
	doc.Write(b.body.Bytes())
	doc.WriteString("\n</svg>\n")
	return doc.WriteTo(w)
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: create %s: %w", path, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
