// Package assets decodes the files embedded in a scene.
//
// Files arrive as data URLs. Raster formats (PNG, JPEG, GIF, WebP, BMP)
// decode to image.Image; SVG files are rasterized with oksvg at the size
// they are drawn. Prefetch resolves every referenced file concurrently
// before drawing starts.
package assets
