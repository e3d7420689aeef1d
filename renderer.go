package scenerender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/scenerender/assets"
	"github.com/gogpu/scenerender/internal/logx"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/recording/backends/raster"
	"github.com/gogpu/scenerender/render"
	"github.com/gogpu/scenerender/scene"
	"github.com/gogpu/scenerender/text"

	// Output formats register themselves with the recording registry.
	_ "github.com/gogpu/scenerender/recording/backends/pdf"
	_ "github.com/gogpu/scenerender/recording/backends/svg"
)

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatPDF  Format = "pdf"
	FormatSVG  Format = "svg"
)

// ErrUnknownFormat is returned for an output format without a backend.
var ErrUnknownFormat = errors.New("scenerender: unknown output format")

// ParseFormat converts a format name or file extension ("jpg", ".svg")
// to a Format. Every format registered with the recording package is
// accepted.
func ParseFormat(s string) (Format, error) {
	if name, ok := recording.Lookup(s); ok {
		return Format(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// RenderOptions are the per-call export settings.
type RenderOptions struct {
	// Format is the output encoding. Empty means PNG, or the output file
	// extension for ExportToFile.
	Format Format
	// Scale multiplies the output pixel size. Zero means 1.
	Scale float64
	// Padding surrounds a whole-scene export. Zero means
	// scene.DefaultPadding and NoPadding disables it, mirroring Scale
	// where zero means 1. Frame exports are never padded.
	Padding float64
	// Background overrides the scene background; "transparent" disables
	// it.
	Background string
	DarkMode   bool
	// Frame exports only the children of the frame with this name or id.
	Frame string
}

// NoPadding disables the margin around a whole-scene export.
const NoPadding = scene.NoPadding

// DefaultRenderOptions returns PNG at scale 1 with the default padding.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Format: FormatPNG, Scale: 1, Padding: scene.DefaultPadding}
}

func (o RenderOptions) prepare() scene.PrepareOptions {
	return scene.PrepareOptions{
		Frame:      o.Frame,
		Scale:      o.Scale,
		Padding:    o.Padding,
		Background: o.Background,
		DarkMode:   o.DarkMode,
	}
}

// Renderer converts scene documents to images and documents. It owns the
// font registry and is safe for concurrent use.
type Renderer struct {
	cfg     config
	fonts   *text.Registry
	planner *render.Planner
}

// New creates a Renderer and registers its fonts.
func New(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	fonts := cfg.fonts
	if fonts == nil {
		fonts = text.NewRegistry()
	}
	if err := fonts.Load(); err != nil {
		return nil, fmt.Errorf("scenerender: load fonts: %w", err)
	}
	return &Renderer{
		cfg:     cfg,
		fonts:   fonts,
		planner: &render.Planner{Fonts: fonts, Logger: cfg.logger},
	}, nil
}

// Fonts returns the renderer's font registry.
func (r *Renderer) Fonts() *text.Registry { return r.fonts }

// Defaults returns the options set with WithDefaults, or
// DefaultRenderOptions.
func (r *Renderer) Defaults() RenderOptions { return r.cfg.defaults }

func (r *Renderer) logger() *slog.Logger { return logx.Or(r.cfg.logger) }

// Export decodes a scene document and renders it to bytes.
func (r *Renderer) Export(ctx context.Context, data []byte, opts RenderOptions) ([]byte, error) {
	s, err := scene.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return r.ExportScene(ctx, s, opts)
}

// ExportScene renders a decoded scene to bytes. Nothing is returned
// unless the whole render succeeded.
func (r *Renderer) ExportScene(ctx context.Context, s *scene.Scene, opts RenderOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	backend, err := r.backend(opts.Format)
	if err != nil {
		return nil, err
	}
	if err := r.play(ctx, s, opts, backend); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := backend.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("scenerender: encode %s: %w", opts.Format, err)
	}
	return buf.Bytes(), nil
}

// ExportTo renders data and writes the result to w. w receives nothing
// when the render fails.
func (r *Renderer) ExportTo(ctx context.Context, w io.Writer, data []byte, opts RenderOptions) error {
	out, err := r.Export(ctx, data, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("scenerender: write output: %w", err)
	}
	return nil
}

// ExportToFile renders data to path. The format defaults to the one
// implied by the file extension. The file is written to a temporary name
// and renamed into place, so path is never left partially written.
func (r *Renderer) ExportToFile(ctx context.Context, path string, data []byte, opts RenderOptions) error {
	if opts.Format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		opts.Format = f
	}
	out, err := r.Export(ctx, data, opts)
	if err != nil {
		return err
	}
	return writeFile(path, out)
}

// RenderImage renders data to pixels regardless of opts.Format.
func (r *Renderer) RenderImage(ctx context.Context, data []byte, opts RenderOptions) (*image.RGBA, error) {
	s, err := scene.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	backend := raster.NewBackend()
	if err := r.play(ctx, s, opts, backend); err != nil {
		return nil, err
	}
	return backend.Image(), nil
}

// play runs the pipeline: prepare, decode assets, plan, draw.
func (r *Renderer) play(ctx context.Context, s *scene.Scene, opts RenderOptions, backend recording.Backend) error {
	ps, err := scene.Prepare(s, opts.prepare())
	if err != nil {
		return err
	}
	set, err := assets.Prefetch(ctx, s.Files, assets.Requests(ps), r.cfg.concurrency)
	if err != nil {
		return err
	}
	rec := r.planner.Plan(ps, set)
	if err := rec.Playback(backend); err != nil {
		return fmt.Errorf("scenerender: draw: %w", err)
	}
	r.logger().Debug("scene rendered",
		slog.String("format", string(opts.Format)),
		slog.Int("width", rec.Width()),
		slog.Int("height", rec.Height()),
		slog.Int("commands", len(rec.Commands())))
	return nil
}

// backend creates the backend for f with the renderer's settings applied.
func (r *Renderer) backend(f Format) (recording.WriterBackend, error) {
	var b recording.WriterBackend
	if f == FormatJPEG {
		b = raster.NewJPEGBackend(r.cfg.jpegQuality)
	} else {
		nb, err := recording.NewWriterBackend(string(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
		b = nb
	}
	if fb, ok := b.(recording.FontBackend); ok {
		fb.UseFonts(r.fonts)
	}
	return b, nil
}

// writeFile writes data next to path and renames it into place.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("scenerender: write %s: %w", path, err)
	}
	name := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("scenerender: write %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("scenerender: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("scenerender: write %s: %w", path, err)
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("scenerender: write %s: %w", path, err)
	}
	return nil
}
