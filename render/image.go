package render

import (
	"math"

	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/scene"
)

// image places a decoded asset in the element box. The flip is applied
// after rotation, about the element center. A file that is missing or
// failed to decode draws nothing.
func (pl *plan) image(e *scene.Image, m geom.Matrix) {
	a := pl.assets[e.FileID]
	if a == nil || a.Image == nil {
		return
	}
	r := e.CornerRadius(math.Min(math.Abs(e.Width), math.Abs(e.Height)))
	place := geom.PlaceImage(a.Width, a.Height, e.Width, e.Height, e.Crop, e.Scale, r)

	img := &recording.Image{
		ID:       a.ID,
		MimeType: a.MimeType,
		Data:     a.Data,
		Pixels:   a.Image,
		Width:    a.Width,
		Height:   a.Height,
	}
	if img.ID == "" {
		img.ID = e.FileID
	}
	pl.rec.DrawImage(img, m.Multiply(place.Flip), recording.ImageOptions{
		Src:   place.Src,
		Dst:   place.Dst,
		Clip:  place.Clip,
		Alpha: e.Alpha(),
		Dark:  pl.ps.DarkMode,
	})
}
