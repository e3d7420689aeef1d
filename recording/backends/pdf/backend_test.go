package pdf

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/internal/logx"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/text"
)

var red = recording.NewSolidBrush(color.NRGBA{R: 255, A: 255})

// render plays draw into an uncompressed document so its content
// streams can be inspected.
func render(t *testing.T, b *Backend, draw func(b *Backend)) string {
	t.Helper()
	b.compress = false
	require.NoError(t, b.Begin(100, 80))
	draw(b)
	require.NoError(t, b.End())
	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	return buf.String()
}

func loadFonts(t *testing.T) *text.Registry {
	t.Helper()
	fonts := text.NewRegistry()
	require.NoError(t, fonts.Load())
	return fonts
}

func TestBackendRegistration(t *testing.T) {
	require.True(t, recording.IsRegistered("pdf"))
	backend, err := recording.NewWriterBackend("pdf")
	require.NoError(t, err)
	_, ok := backend.(recording.FontBackend)
	assert.True(t, ok)
}

func TestBackendDocument(t *testing.T) {
	doc := render(t, NewBackend(), func(b *Backend) {
		b.FillRect(geom.NewRect(0, 0, 100, 80), recording.ParseColor("#ffffff"))
	})
	assert.True(t, strings.HasPrefix(doc, "%PDF-1."))
	assert.Contains(t, doc, "/MediaBox [0 0 100.00 80.00]")
	assert.Contains(t, doc, " re f")
	assert.Contains(t, doc, "%%EOF")

	_, err := NewBackend().WriteTo(&bytes.Buffer{})
	assert.Error(t, err)
	assert.Error(t, NewBackend().Begin(-1, 10))
}

func TestBackendPathsAndClips(t *testing.T) {
	curve := geom.NewPath()
	curve.MoveTo(0, 0)
	curve.QuadTo(10, 20, 20, 0)
	stroke := recording.DefaultStroke()
	stroke.DashPattern = []float64{4, 2}

	doc := render(t, NewBackend(), func(b *Backend) {
		b.BeginGroup(recording.Group{Clip: &recording.Clip{Path: geom.NewRect(0, 0, 50, 50).Path(), Matrix: geom.Translate(10, 10)}})
		b.FillPath(geom.NewRect(0, 0, 10, 10).Path(), geom.Translate(20, 20), red.WithAlpha(0.5), recording.FillRuleEvenOdd)
		b.StrokePath(curve, geom.Scale(2, 2), red, stroke)
		b.EndGroup()
	})
	assert.Contains(t, doc, "W n")
	assert.Contains(t, doc, "f*")
	assert.Contains(t, doc, "/ExtGState")
}

func TestBackendMaskGroup(t *testing.T) {
	holes := []*geom.Path{
		geom.NewRect(10, 10, 20, 10).Path(),
		geom.NewRect(20, 10, 20, 10).Path(),
	}
	doc := render(t, NewBackend(), func(b *Backend) {
		b.BeginGroup(recording.Group{Mask: &recording.Mask{Holes: holes}})
		b.FillRect(geom.NewRect(0, 0, 100, 80), red)
		// left open; End closes it
	})
	assert.Equal(t, 2, strings.Count(doc, " h W* n"), "one even-odd clip per hole")
	assert.Contains(t, doc, "q\n0 0 100.00 80.00 re 10.00 70.00 m")
	assert.Contains(t, doc, " re f\nQ")
}

func TestBackendEmptyPathWritesNothing(t *testing.T) {
	empty := geom.NewPath()
	empty.MoveTo(5, 5)

	withEmpty := render(t, NewBackend(), func(b *Backend) {
		b.FillPath(empty, geom.Identity(), red, recording.FillRuleNonZero)
	})
	assert.NotContains(t, withEmpty, " m\n")
}

func TestBackendDrawImage(t *testing.T) {
	pixels := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range pixels.Pix {
		pixels.Pix[i] = 0xff
	}
	img := &recording.Image{ID: "photo", MimeType: "image/png", Pixels: pixels, Width: 2, Height: 2}
	opts := recording.ImageOptions{Src: geom.NewRect(0, 0, 2, 2), Dst: geom.NewRect(0, 0, 20, 20), Alpha: 1}

	doc := render(t, NewBackend(), func(b *Backend) {
		b.DrawImage(img, geom.Translate(10, 10), opts)
		// entirely off the page
		b.DrawImage(img, geom.Translate(500, 500), opts)
	})
	assert.Equal(t, 1, strings.Count(doc, "/Subtype /Image"))
}

func TestBackendDrawText(t *testing.T) {
	fonts := loadFonts(t)
	run, err := fonts.Shape(text.FamilyHandDrawn, 20, "Hello")
	require.NoError(t, err)

	b := NewBackend()
	b.UseFonts(fonts)
	doc := render(t, b, func(b *Backend) {
		r := recording.TextRun{Text: "Hello", Family: text.FamilyHandDrawn, Size: 20, Anchor: geom.Pt(10, 40), Shaped: run}
		b.DrawText(r, geom.Identity(), red)
		b.DrawText(r, geom.RotateAbout(0.5, 50, 40), red)
	})
	assert.Contains(t, doc, "/FontFile2")
	assert.Equal(t, 1, len(b.fontNames))
	assert.Contains(t, doc, " Tj")
}

func TestBackendSubstitutesCFFFonts(t *testing.T) {
	fonts := loadFonts(t)
	normal, err := fonts.Family(text.FamilyNormal)
	require.NoError(t, err)
	if normal.IsTrueType() {
		t.Skip("bundled normal family has TrueType outlines")
	}
	run, err := fonts.Shape(text.FamilyNormal, 20, "Hello")
	require.NoError(t, err)

	var logs bytes.Buffer
	logx.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { logx.SetLogger(nil) })

	b := NewBackend()
	b.UseFonts(fonts)
	render(t, b, func(b *Backend) {
		r := recording.TextRun{Text: "Hello", Family: text.FamilyNormal, Size: 20, Shaped: run}
		b.DrawText(r, geom.Identity(), red)
		b.DrawText(r, geom.Identity(), red)
	})
	assert.Equal(t, 1, strings.Count(logs.String(), "font cannot be embedded"))
	handDrawn, err := fonts.Family(text.FamilyHandDrawn)
	require.NoError(t, err)
	_, ok := b.fontNames[handDrawn]
	assert.True(t, ok)
}
