package assets

import (
	"context"
	"image"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/scenerender/internal/logx"
	"github.com/gogpu/scenerender/scene"
)

// DefaultConcurrency bounds the number of files decoded at once.
const DefaultConcurrency = 4

// Asset is a decoded scene file.
type Asset struct {
	ID       string
	MimeType string
	// Data is the raw file content.
	Data []byte
	// Image holds decoded pixels. SVG files are rasterized at the size
	// requested in Prefetch.
	Image image.Image
	// Width and Height are the natural size in image units.
	Width, Height float64
}

// IsSVG reports whether the asset is vector content.
func (a *Asset) IsSVG() bool { return a.MimeType == MimeSVG }

// Request asks for one file, drawn at up to Width×Height output pixels.
type Request struct {
	FileID        string
	Width, Height float64
}

// Requests collects the files referenced by image elements of ps. Pixel
// sizes account for the export scale.
func Requests(ps *scene.PreparedScene) []Request {
	var out []Request
	for _, e := range ps.Elements {
		img, ok := e.(*scene.Image)
		if !ok || img.FileID == "" {
			continue
		}
		out = append(out, Request{
			FileID: img.FileID,
			Width:  math.Abs(img.Width) * ps.Scale,
			Height: math.Abs(img.Height) * ps.Scale,
		})
	}
	return out
}

// Set maps file ids to decoded assets. Files that are missing or fail to
// decode are absent.
type Set map[string]*Asset

// Prefetch decodes every requested file with at most concurrency workers.
// Decode failures are logged and leave the file out of the result; only
// context cancellation is returned as an error. The returned set is
// complete before Prefetch returns.
func Prefetch(ctx context.Context, files map[string]scene.File, reqs []Request, concurrency int) (Set, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	wanted := make(map[string]Request)
	for _, r := range reqs {
		prev := wanted[r.FileID]
		wanted[r.FileID] = Request{
			FileID: r.FileID,
			Width:  math.Max(prev.Width, r.Width),
			Height: math.Max(prev.Height, r.Height),
		}
	}

	var mu sync.Mutex
	set := make(Set, len(wanted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for id, req := range wanted {
		f, ok := files[id]
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := Load(f, req)
			if err != nil {
				logx.Logger().Warn("asset skipped", slog.String("file", id), slog.Any("error", err))
				return nil
			}
			mu.Lock()
			set[id] = a
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// Load decodes one file. SVG content is rasterized to cover req.
func Load(f scene.File, req Request) (*Asset, error) {
	declared, data, err := DecodeDataURL(f.DataURL)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if declared == "" {
		declared = f.MimeType
	}
	a := &Asset{ID: f.ID, MimeType: Sniff(data, declared), Data: data}

	if a.IsSVG() {
		a.Width, a.Height, err = SVGSize(data)
		if err != nil {
			return nil, err
		}
		w, h := svgPixels(a.Width, a.Height, req)
		a.Image, err = RasterizeSVG(data, w, h)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	a.Image, err = DecodeRaster(a.MimeType, data)
	if err != nil {
		return nil, err
	}
	b := a.Image.Bounds()
	a.Width, a.Height = float64(b.Dx()), float64(b.Dy())
	return a, nil
}

// svgPixels keeps the intrinsic aspect ratio and covers the requested box.
func svgPixels(iw, ih float64, req Request) (int, int) {
	s := 1.0
	if req.Width > 0 && req.Height > 0 {
		s = math.Max(req.Width/iw, req.Height/ih)
	}
	return int(math.Ceil(iw * s)), int(math.Ceil(ih * s))
}
