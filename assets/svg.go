package assets

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize is used when an SVG has no usable viewBox.
const defaultSVGSize = 1024

// maxSVGSide bounds the rasterized size of one SVG asset.
const maxSVGSide = 8192

// SVGSize returns the intrinsic size of an SVG document.
func SVGSize(data []byte) (w, h float64, err error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return 0, 0, fmt.Errorf("assets: parse svg: %w", err)
	}
	return intrinsic(icon)
}

func intrinsic(icon *oksvg.SvgIcon) (w, h float64, err error) {
	w, h = icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 {
		w = defaultSVGSize
	}
	if h <= 0 {
		h = defaultSVGSize
	}
	return w, h, nil
}

// RasterizeSVG draws an SVG document into a transparent w×h image. A zero
// size selects the intrinsic size.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("assets: parse svg: %w", err)
	}
	if w <= 0 || h <= 0 {
		iw, ih, _ := intrinsic(icon)
		w, h = int(math.Ceil(iw)), int(math.Ceil(ih))
	}
	w = min(max(w, 1), maxSVGSide)
	h = min(max(h, 1), maxSVGSide)

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
