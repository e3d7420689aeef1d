package svg

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gogpu/scenerender/assets"
	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/internal/filter"
	"github.com/gogpu/scenerender/recording"
)

// DrawImage embeds the image file as a data URL. The source rectangle is
// selected with a nested viewport, so cropped pixels are hidden rather
// than removed from the file.
func (b *Backend) DrawImage(img *recording.Image, m geom.Matrix, opts recording.ImageOptions) {
	if img == nil || opts.Alpha <= 0 || opts.Src.IsEmpty() || opts.Dst.IsEmpty() {
		return
	}
	href, err := imageHref(img)
	if err != nil {
		return
	}

	fmt.Fprintf(&b.body, "<g%s", transformAttr(m))
	if opts.Alpha < 1 {
		fmt.Fprintf(&b.body, ` opacity="%s"`, num(opts.Alpha))
	}
	if opts.Clip != nil {
		id := b.id("clip")
		fmt.Fprintf(&b.defs, `<clipPath id="%s"><path d="%s"/></clipPath>`, id, pathData(opts.Clip))
		fmt.Fprintf(&b.body, ` clip-path="url(#%s)"`, id)
	}
	b.body.WriteString(">")

	src, dst := opts.Src, opts.Dst
	fmt.Fprintf(&b.body, `<svg x="%s" y="%s" width="%s" height="%s" viewBox="%s %s %s %s" preserveAspectRatio="none" overflow="hidden">`,
		num(dst.MinX), num(dst.MinY), num(dst.Width()), num(dst.Height()),
		num(src.MinX), num(src.MinY), num(src.Width()), num(src.Height()))
	fmt.Fprintf(&b.body, `<image href="%s" width="%s" height="%s" preserveAspectRatio="none"`,
		href, num(img.Width), num(img.Height))
	if opts.Dark {
		fmt.Fprintf(&b.body, ` style="filter: %s"`, filter.DarkModeCSS)
	}
	b.body.WriteString("/></svg></g>")
}

// imageHref returns the file as a data URL, encoding the decoded pixels
// as PNG when the original bytes are not available.
func imageHref(img *recording.Image) (string, error) {
	if len(img.Data) > 0 {
		return assets.EncodeDataURL(img.MimeType, img.Data), nil
	}
	if img.Pixels == nil {
		return "", fmt.Errorf("svg: image %q has no data", img.ID)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Pixels); err != nil {
		return "", err
	}
	return assets.EncodeDataURL(assets.MimePNG, buf.Bytes()), nil
}
