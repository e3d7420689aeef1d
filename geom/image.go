package geom

import "math"

// Crop selects a source rectangle of an image, in the image's natural
// pixel coordinates.
type Crop struct {
	X, Y, Width, Height         float64
	NaturalWidth, NaturalHeight float64
}

// ImagePlacement describes how an image asset is mapped into its element box.
type ImagePlacement struct {
	// Src is the source rectangle in image pixels.
	Src Rect
	// Dst is the destination box in element-local coordinates.
	Dst Rect
	// Flip scales the drawing about the element center. It is applied
	// after the element's rotation.
	Flip Matrix
	// Clip is the rounded clip path in element-local coordinates, or nil.
	Clip *Path
}

// PlaceImage computes the placement of an imgW x imgH asset into a w x h
// element. scale holds the per-axis flip factors (1 or -1); a zero
// component is treated as 1.
func PlaceImage(imgW, imgH, w, h float64, crop *Crop, scale [2]float64, radius float64) ImagePlacement {
	src := Rect{MaxX: imgW, MaxY: imgH}
	if crop != nil && crop.Width > 0 && crop.Height > 0 {
		// crops are stored against the natural size; rescale when the
		// decoded asset differs
		fx, fy := 1.0, 1.0
		if crop.NaturalWidth > 0 {
			fx = imgW / crop.NaturalWidth
		}
		if crop.NaturalHeight > 0 {
			fy = imgH / crop.NaturalHeight
		}
		src = NewRect(crop.X*fx, crop.Y*fy, crop.Width*fx, crop.Height*fy)
		src.MinX, src.MinY = math.Max(0, src.MinX), math.Max(0, src.MinY)
		src.MaxX, src.MaxY = math.Min(imgW, src.MaxX), math.Min(imgH, src.MaxY)
	}
	sx, sy := scale[0], scale[1]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	pl := ImagePlacement{
		Src:  src,
		Dst:  Rect{MaxX: w, MaxY: h},
		Flip: Identity(),
	}
	if sx != 1 || sy != 1 {
		pl.Flip = ScaleAbout(sx, sy, w/2, h/2)
	}
	if radius > 0 {
		pl.Clip = RectanglePath(w, h, radius)
	}
	return pl
}

// ImageToBox maps the source rectangle onto the destination box.
func (pl ImagePlacement) ImageToBox() Matrix {
	sw, sh := pl.Src.Width(), pl.Src.Height()
	if sw == 0 || sh == 0 {
		return Identity()
	}
	return Translate(pl.Dst.MinX, pl.Dst.MinY).
		Multiply(Scale(pl.Dst.Width()/sw, pl.Dst.Height()/sh)).
		Multiply(Translate(-pl.Src.MinX, -pl.Src.MinY))
}
