package scenerender

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenerender/scene"
)

func doc(elements ...string) []byte {
	return []byte(`{"type":"excalidraw","version":2,"elements":[` + strings.Join(elements, ",") + `]}`)
}

const (
	rect  = `{"id":"r","type":"rectangle","x":10,"y":20,"width":100,"height":50,"strokeColor":"#1e1e1e"}`
	label = `{"id":"t","type":"text","x":20,"y":30,"width":40,"height":25,"text":"Hi","fontSize":20,"fontFamily":1}`
	frame = `{"id":"f","type":"frame","x":0,"y":0,"width":200,"height":100,"name":"Login"}`
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	require.NoError(t, err)
	return r
}

func TestExportFormats(t *testing.T) {
	r := newRenderer(t)
	tests := []struct {
		format Format
		magic  string
	}{
		{FormatPNG, "\x89PNG"},
		{FormatJPEG, "\xff\xd8"},
		{FormatPDF, "%PDF-"},
		{FormatSVG, "<svg"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			opts := DefaultRenderOptions()
			opts.Format = tt.format
			out, err := r.Export(context.Background(), doc(rect, label), opts)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte(tt.magic)), "output starts with %q", out[:min(len(out), 8)])
		})
	}
}

func TestExportPixelSize(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Export(context.Background(), doc(rect), RenderOptions{})
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 140, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())

	opts := DefaultRenderOptions()
	opts.Scale = 2
	pix, err := r.RenderImage(context.Background(), doc(rect), opts)
	require.NoError(t, err)
	assert.Equal(t, 280, pix.Bounds().Dx())
	assert.Equal(t, 180, pix.Bounds().Dy())
	assert.Equal(t, uint8(255), pix.RGBAAt(2, 2).R, "background is white")

	zero, err := r.RenderImage(context.Background(), doc(rect), RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, 140, zero.Bounds().Dx(), "zero padding means the default")
	assert.Equal(t, 90, zero.Bounds().Dy())

	bare, err := r.RenderImage(context.Background(), doc(rect), RenderOptions{Padding: NoPadding})
	require.NoError(t, err)
	assert.Equal(t, 100, bare.Bounds().Dx())
	assert.Equal(t, 50, bare.Bounds().Dy())
}

func TestExportSVGEmbedsFonts(t *testing.T) {
	r := newRenderer(t)
	opts := DefaultRenderOptions()
	opts.Format = FormatSVG

	out, err := r.Export(context.Background(), doc(rect, label), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), "@font-face"))
	assert.Contains(t, string(out), ">Hi</text>")

	out, err = r.Export(context.Background(), doc(rect), opts)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "@font-face")
}

func TestExportErrors(t *testing.T) {
	r := newRenderer(t)
	ctx := context.Background()

	_, err := r.Export(ctx, []byte(`{"type":"other"}`), DefaultRenderOptions())
	var formatErr *scene.FormatError
	assert.True(t, errors.As(err, &formatErr), "got %v", err)

	opts := DefaultRenderOptions()
	opts.Frame = "Missing"
	_, err = r.Export(ctx, doc(frame, rect), opts)
	var notFound *scene.FrameNotFoundError
	assert.True(t, errors.As(err, &notFound), "got %v", err)

	opts = DefaultRenderOptions()
	opts.Format = "tiff"
	_, err = r.Export(ctx, doc(rect), opts)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	var buf bytes.Buffer
	err = r.ExportTo(ctx, &buf, []byte("not json"), DefaultRenderOptions())
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing written on failure")
}

func TestExportToFile(t *testing.T) {
	r := newRenderer(t)
	dir := t.TempDir()
	ctx := context.Background()

	path := filepath.Join(dir, "out.svg")
	require.NoError(t, r.ExportToFile(ctx, path, doc(rect), RenderOptions{}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<svg")))

	failed := filepath.Join(dir, "failed.png")
	assert.Error(t, r.ExportToFile(ctx, failed, []byte("{"), DefaultRenderOptions()))
	_, err = os.Stat(failed)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "failed export left a file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")

	err = r.ExportToFile(ctx, filepath.Join(dir, "missing", "out.png"), doc(rect), DefaultRenderOptions())
	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr), "got %v", err)

	assert.ErrorIs(t, r.ExportToFile(ctx, filepath.Join(dir, "out.bmp"), doc(rect), RenderOptions{}), ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{".JPG", FormatJPEG},
		{"jpeg", FormatJPEG},
		{"pdf", FormatPDF},
		{".svg", FormatSVG},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRendererConcurrentExports(t *testing.T) {
	r := newRenderer(t)
	formats := []Format{FormatPNG, FormatSVG, FormatPDF, FormatJPEG}

	var wg sync.WaitGroup
	errs := make(chan error, 4*len(formats))
	for i := 0; i < 4; i++ {
		for _, f := range formats {
			wg.Add(1)
			go func() {
				defer wg.Done()
				opts := DefaultRenderOptions()
				opts.Format = f
				_, err := r.Export(context.Background(), doc(rect, label), opts)
				errs <- err
			}()
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
