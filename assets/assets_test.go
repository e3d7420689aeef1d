package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenerender/scene"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 20" width="10" height="20">
<rect x="0" y="0" width="10" height="20" fill="#ff0000"/></svg>`

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeDataURL(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantMime string
		wantData string
		wantErr  bool
	}{
		{"base64", "data:image/png;base64,aGVsbG8=", "image/png", "hello", false},
		{"unpadded", "data:text/plain;base64,aGVsbG8", "text/plain", "hello", false},
		{"percent", "data:image/svg+xml,%3Csvg%2F%3E", "image/svg+xml", "<svg/>", false},
		{"charset", "data:image/svg+xml;charset=utf-8;base64,PHN2Zy8+", "image/svg+xml", "<svg/>", false},
		{"no prefix", "image/png;base64,AAAA", "", "", true},
		{"no comma", "data:image/png;base64", "", "", true},
		{"bad base64", "data:image/png;base64,!!!", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data, err := DecodeDataURL(tt.in)
			if tt.wantErr {
				var de *DataURLError
				assert.True(t, errors.As(err, &de), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMime, mime)
			assert.Equal(t, tt.wantData, string(data))
		})
	}
}

func TestSniff(t *testing.T) {
	assert.Equal(t, MimePNG, Sniff(pngBytes(t, 1, 1, color.Black), "image/jpeg"))
	assert.Equal(t, MimeSVG, Sniff([]byte(squareSVG), ""))
	assert.Equal(t, MimeSVG, Sniff([]byte(`<?xml version="1.0"?>`+"\n"+squareSVG), ""))
	assert.Equal(t, "application/x-thing", Sniff([]byte("????"), "application/x-thing"))
}

func TestDecodeRaster(t *testing.T) {
	img, err := DecodeRaster(MimePNG, pngBytes(t, 3, 2, color.White))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	_, err = DecodeRaster("application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrUnsupportedMime)
	_, err = DecodeRaster(MimePNG, nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestRasterizeSVG(t *testing.T) {
	w, h, err := SVGSize([]byte(squareSVG))
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 20.0, h)

	img, err := RasterizeSVG([]byte(squareSVG), 20, 40)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 40), img.Bounds())
	r, g, b, a := img.At(10, 20).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestCrop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src.Set(3, 1, color.RGBA{0, 0, 255, 255})

	c := Crop(src, image.Rect(2, 0, 4, 2))
	assert.Equal(t, 2, c.Bounds().Dx())
	assert.Equal(t, 2, c.Bounds().Dy())
	assert.Equal(t, image.Point{}, c.Bounds().Min)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c.RGBAAt(1, 1))

	empty := Crop(src, image.Rect(10, 10, 12, 12))
	assert.Equal(t, 1, empty.Bounds().Dx())
}

func TestPrefetch(t *testing.T) {
	files := map[string]scene.File{
		"png":  {ID: "png", MimeType: MimePNG, DataURL: EncodeDataURL(MimePNG, pngBytes(t, 5, 5, color.White))},
		"svg":  {ID: "svg", MimeType: MimeSVG, DataURL: EncodeDataURL(MimeSVG, []byte(squareSVG))},
		"junk": {ID: "junk", MimeType: MimePNG, DataURL: EncodeDataURL(MimePNG, []byte("nope"))},
	}
	reqs := []Request{
		{FileID: "png", Width: 5, Height: 5},
		{FileID: "svg", Width: 10, Height: 20},
		{FileID: "svg", Width: 30, Height: 60},
		{FileID: "junk"},
		{FileID: "missing"},
	}

	set, err := Prefetch(context.Background(), files, reqs, 2)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	require.Contains(t, set, "png")
	assert.Equal(t, 5.0, set["png"].Width)

	svg := set["svg"]
	require.NotNil(t, svg)
	assert.True(t, svg.IsSVG())
	assert.Equal(t, 10.0, svg.Width)
	assert.Equal(t, image.Rect(0, 0, 30, 60), svg.Image.Bounds(), "rasterized at the largest request")
}

func TestPrefetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files := map[string]scene.File{
		"png": {ID: "png", DataURL: EncodeDataURL(MimePNG, pngBytes(t, 1, 1, color.White))},
	}
	_, err := Prefetch(ctx, files, []Request{{FileID: "png"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequests(t *testing.T) {
	ps := &scene.PreparedScene{
		Scale: 2,
		Elements: []scene.Element{
			&scene.Image{Base: scene.Base{Width: -10, Height: 5}, FileID: "a"},
			&scene.Image{Base: scene.Base{Width: 10, Height: 5}},
			&scene.Rectangle{},
		},
	}
	assert.Equal(t, []Request{{FileID: "a", Width: 20, Height: 10}}, Requests(ps))
}
