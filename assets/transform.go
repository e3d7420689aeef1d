package assets

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/scenerender/internal/filter"
)

// Crop returns the part of img inside r, clamped to the image bounds. r is
// relative to the image origin and the result starts at (0, 0).
func Crop(img image.Image, r image.Rectangle) *image.RGBA {
	b := img.Bounds()
	r = r.Add(b.Min).Intersect(b)
	if r.Empty() {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	out := transform.Crop(img, r)
	out.Rect = out.Rect.Sub(out.Rect.Min)
	return out
}

// Darken bakes the dark-mode color transform into a copy of img.
func Darken(img image.Image) *image.NRGBA {
	return filter.DarkImage(img)
}
