package scenerender

import (
	"log/slog"

	"github.com/gogpu/scenerender/assets"
	"github.com/gogpu/scenerender/recording/backends/raster"
	"github.com/gogpu/scenerender/text"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := scenerender.New(
//	    scenerender.WithJPEGQuality(85),
//	    scenerender.WithConcurrency(8),
//	)
type Option func(*config)

// config holds the Renderer settings fixed at creation.
type config struct {
	logger      *slog.Logger
	fonts       *text.Registry
	concurrency int
	jpegQuality int
	defaults    RenderOptions
}

func defaultConfig() config {
	return config{
		concurrency: assets.DefaultConcurrency,
		jpegQuality: raster.DefaultJPEGQuality,
		defaults:    DefaultRenderOptions(),
	}
}

// WithLogger sends the renderer's warnings to l instead of the
// package-wide logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithFonts shares a font registry between renderers. The registry is
// loaded by New if it was not already.
func WithFonts(fonts *text.Registry) Option {
	return func(c *config) {
		c.fonts = fonts
	}
}

// WithConcurrency bounds the number of embedded files decoded at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithJPEGQuality sets the JPEG encoder quality (1-100). Out of range
// values are ignored.
func WithJPEGQuality(q int) Option {
	return func(c *config) {
		if q > 0 && q <= 100 {
			c.jpegQuality = q
		}
	}
}

// WithDefaults sets the options returned by Renderer.Defaults, typically
// taken from a config file.
func WithDefaults(opts RenderOptions) Option {
	return func(c *config) {
		c.defaults = opts
	}
}
