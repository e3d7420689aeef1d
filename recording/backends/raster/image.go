package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/scenerender/assets"
	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
)

// DrawImage draws the source rectangle of img into its element box. The
// pixels are cropped first so that resampling never reads outside the
// source rectangle. Dark mode is baked into the pixels.
func (b *Backend) DrawImage(img *recording.Image, m geom.Matrix, opts recording.ImageOptions) {
	if img == nil || img.Pixels == nil || opts.Alpha <= 0 {
		return
	}
	sx, sy := img.PixelScale()
	crop := image.Rect(
		int(math.Floor(opts.Src.MinX*sx)), int(math.Floor(opts.Src.MinY*sy)),
		int(math.Ceil(opts.Src.MaxX*sx)), int(math.Ceil(opts.Src.MaxY*sy)),
	)
	var src image.Image = img.Pixels
	if full := src.Bounds(); full.Min != (image.Point{}) || crop != full {
		src = assets.Crop(src, crop)
	}
	if opts.Dark {
		src = assets.Darken(src)
	}

	// source pixel -> natural unit -> element-local -> output
	s2d := m.Multiply(opts.ImageToLocal()).
		Multiply(geom.Translate(float64(crop.Min.X)/sx, float64(crop.Min.Y)/sy)).
		Multiply(geom.Scale(1/sx, 1/sy))

	o := &draw.Options{}
	if opts.Alpha < 1 {
		o.SrcMask = image.NewUniform(color.Alpha{A: uint8(math.Round(opts.Alpha * 255))})
	}
	if opts.Clip != nil {
		o.DstMask = b.coverage(opts.Clip, m)
	}
	dst := b.target()
	draw.CatmullRom.Transform(dst, aff3(s2d), src, src.Bounds(), draw.Over, o)
}

func aff3(m geom.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
