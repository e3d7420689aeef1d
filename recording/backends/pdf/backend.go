// Package pdf provides the PDF document backend for the recording system.
// One output pixel maps to one PDF point; the document has a single page
// of the recording's size.
//
// Paths are transformed to page space before they are written, so strokes
// are widened by the scale of their matrix. Arrow labels are cut out of
// their arrows with even-odd clips built from the group mask. Images are resampled to
// page resolution with crop, flip, clip and dark mode baked in. Text is
// drawn with the embedded TrueType font of its family, substituting the
// hand-drawn family for fonts fpdf cannot embed.
package pdf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/text"
)

// Creator is written into the document information dictionary.
const Creator = "scenerender"

func init() {
	recording.Register(recording.Format{
		Name: "pdf",
		New:  func() recording.Backend { return NewBackend() },
	})
}

// Backend writes recordings as a PDF document.
type Backend struct {
	pdf           *fpdf.Fpdf
	width, height int
	compress      bool

	fonts *text.Registry
	// fontNames maps an embedded family to its fpdf font name.
	fontNames map[*text.Family]string
	warned    map[int]bool

	// groups records, per open group, which clips it pushed.
	groups []groupState
	images int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.FontBackend   = (*Backend)(nil)
)

// NewBackend creates a PDF backend with compressed content streams.
func NewBackend() *Backend {
	return &Backend{compress: true}
}

// UseFonts sets the registry substitute fonts are taken from.
func (b *Backend) UseFonts(fonts *text.Registry) {
	b.fonts = fonts
}

// Begin starts a one-page document of width×height points.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pdf: invalid size %dx%d", width, height)
	}
	size := fpdf.SizeType{Wd: float64(width), Ht: float64(height)}
	pdf := fpdf.NewCustom(&fpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: size})
	pdf.SetCompression(b.compress)
	pdf.SetCreator(Creator, false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", size)

	b.pdf = pdf
	b.width, b.height = width, height
	b.fontNames = make(map[*text.Family]string)
	b.warned = make(map[int]bool)
	b.groups = b.groups[:0]
	b.images = 0
	return pdf.Error()
}

// End closes any group left open.
func (b *Backend) End() error {
	for len(b.groups) > 0 {
		b.EndGroup()
	}
	if b.pdf == nil {
		return nil
	}
	return b.pdf.Error()
}

// groupState tells EndGroup what a group has to pop.
type groupState struct {
	clip, mask bool
}

// BeginGroup opens a group. The clip path is flattened to a polygon and
// every mask hole is subtracted from the page with an even-odd clip.
func (b *Backend) BeginGroup(g recording.Group) {
	var st groupState
	if g.Clip != nil {
		b.clipTo(g.Clip)
		st.clip = true
	}
	if g.Mask != nil && len(g.Mask.Holes) > 0 {
		b.maskOut(g.Mask)
		st.mask = true
	}
	b.groups = append(b.groups, st)
}

func (b *Backend) clipTo(c *recording.Clip) {
	polys := c.Path.Transform(c.Matrix).Flatten(flatness)
	var pts []fpdf.PointType
	for _, poly := range polys {
		if len(poly) >= 3 {
			pts = toPoints(poly)
			break
		}
	}
	if pts == nil {
		// degenerate clip: nothing inside it is visible
		pts = []fpdf.PointType{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}
	}
	b.pdf.ClipPolygon(pts, false)
}

// maskOut saves the graphics state and intersects the clip with the page
// minus each hole in turn, which leaves the union of the holes hidden.
// fpdf has no even-odd clip, so the operators are written directly.
func (b *Backend) maskOut(m *recording.Mask) {
	var sb strings.Builder
	sb.WriteString("q")
	for _, hole := range m.Holes {
		if hole == nil {
			continue
		}
		fmt.Fprintf(&sb, "\n0 0 %.2f %.2f re", float64(b.width), float64(b.height))
		for _, poly := range hole.Flatten(flatness) {
			if len(poly) < 3 {
				continue
			}
			for i, p := range poly {
				op := "l"
				if i == 0 {
					op = "m"
				}
				fmt.Fprintf(&sb, " %.2f %.2f %s", p.X, float64(b.height)-p.Y, op)
			}
			sb.WriteString(" h")
		}
		sb.WriteString(" W* n")
	}
	b.pdf.RawWriteStr(sb.String())
}

// EndGroup closes the innermost group.
func (b *Backend) EndGroup() {
	n := len(b.groups)
	if n == 0 {
		return
	}
	st := b.groups[n-1]
	if st.mask {
		b.pdf.RawWriteStr("Q")
	}
	if st.clip {
		b.pdf.ClipEnd()
	}
	b.groups = b.groups[:n-1]
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.pdf == nil {
		return 0, fmt.Errorf("pdf: nothing rendered")
	}
	if err := b.End(); err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	if err := b.pdf.Output(cw); err != nil {
		return cw.n, fmt.Errorf("pdf: %w", err)
	}
	return cw.n, nil
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf: create %s: %w", path, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
