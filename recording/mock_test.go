package recording

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gogpu/scenerender/geom"
)

// mockBackend records the calls it receives as short strings.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	calls      []string
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) BeginGroup(g Group) {
	b.calls = append(b.calls, fmt.Sprintf("group clip=%t mask=%t", g.Clip != nil, g.Mask != nil))
}

func (b *mockBackend) EndGroup()           { b.calls = append(b.calls, "end") }

func (b *mockBackend) FillPath(p *geom.Path, _ geom.Matrix, _ Brush, _ FillRule) {
	b.calls = append(b.calls, fmt.Sprintf("fill %d", p.Len()))
}

func (b *mockBackend) StrokePath(p *geom.Path, _ geom.Matrix, _ Brush, s Stroke) {
	b.calls = append(b.calls, fmt.Sprintf("stroke %d w=%g", p.Len(), s.Width))
}

func (b *mockBackend) FillRect(r geom.Rect, _ Brush) {
	b.calls = append(b.calls, fmt.Sprintf("rect %gx%g", r.Width(), r.Height()))
}

func (b *mockBackend) DrawImage(img *Image, _ geom.Matrix, _ ImageOptions) {
	b.calls = append(b.calls, "image "+img.ID)
}

func (b *mockBackend) DrawText(run TextRun, _ geom.Matrix, _ Brush) {
	b.calls = append(b.calls, "text "+run.Text)
}

// WriteTo makes mockBackend a WriterBackend.
func (b *mockBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := io.Copy(w, bytes.NewReader([]byte(b.name)))
	return n, err
}

// plainBackend is a Backend without stream output.
type plainBackend struct{ mockBackend }

func (plainBackend) WriteTo() {}
