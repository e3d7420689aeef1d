package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/recording/backends/raster"
)

// imageOversample is the number of image pixels per page point.
const imageOversample = 2

// DrawImage resamples the placed image onto a transparent tile covering
// its page-space bounds and embeds the tile as PNG.
func (b *Backend) DrawImage(img *recording.Image, m geom.Matrix, opts recording.ImageOptions) {
	if img == nil || img.Pixels == nil || opts.Alpha <= 0 || opts.Dst.IsEmpty() {
		return
	}
	area, ok := b.pageBounds(opts.Dst, m)
	if !ok {
		return
	}

	tile := raster.NewBackend()
	if err := tile.Begin(area.Dx()*imageOversample, area.Dy()*imageOversample); err != nil {
		return
	}
	toTile := geom.Scale(imageOversample, imageOversample).
		Multiply(geom.Translate(-float64(area.Min.X), -float64(area.Min.Y))).
		Multiply(m)
	tile.DrawImage(img, toTile, opts)

	var buf bytes.Buffer
	if err := png.Encode(&buf, tile.Image()); err != nil {
		b.pdf.SetError(fmt.Errorf("pdf: encode image %q: %w", img.ID, err))
		return
	}
	b.images++
	name := fmt.Sprintf("img%d-%s", b.images, img.ID)
	options := fpdf.ImageOptions{ImageType: "PNG"}
	b.pdf.RegisterImageOptionsReader(name, options, &buf)
	b.pdf.SetAlpha(1, "Normal")
	b.pdf.ImageOptions(name, float64(area.Min.X), float64(area.Min.Y), float64(area.Dx()), float64(area.Dy()),
		false, options, 0, "")
}

// pageBounds returns the whole-point page area covered by r under m,
// clipped to the page.
func (b *Backend) pageBounds(r geom.Rect, m geom.Matrix) (image.Rectangle, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range r.Corners() {
		p := m.TransformPoint(c)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	area := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(image.Rect(0, 0, b.width, b.height))
	return area, !area.Empty()
}
