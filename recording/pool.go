package recording

import (
	"image"

	"github.com/gogpu/scenerender/geom"
)

// Image is a decoded asset as seen by backends.
type Image struct {
	ID       string
	MimeType string
	// Data is the encoded file, embedded as-is by vector backends.
	Data []byte
	// Pixels is the decoded image. For SVG assets it is a rasterization
	// whose size may differ from Width×Height.
	Pixels image.Image
	// Width and Height are the natural size in image units.
	Width, Height float64
}

// PixelScale returns the factors mapping natural units to Pixels.
func (img *Image) PixelScale() (sx, sy float64) {
	sx, sy = 1, 1
	if img.Pixels == nil || img.Width <= 0 || img.Height <= 0 {
		return sx, sy
	}
	b := img.Pixels.Bounds()
	return float64(b.Dx()) / img.Width, float64(b.Dy()) / img.Height
}

// ResourcePool stores resources referenced by recording commands.
// Each Add operation clones mutable resources to ensure immutability.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths   []*geom.Path
	brushes []Brush
	images  []*Image
	imageID map[string]ImageRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:   make([]*geom.Path, 0, 64),
		brushes: make([]Brush, 0, 32),
		images:  make([]*Image, 0, 8),
		imageID: make(map[string]ImageRef),
	}
}

// AddPath adds a clone of path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *geom.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *geom.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddBrush adds a brush to the pool and returns its reference.
func (p *ResourcePool) AddBrush(brush Brush) BrushRef {
	p.brushes = append(p.brushes, brush)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return BrushRef(uint32(len(p.brushes) - 1))
}

// GetBrush returns the brush for the given reference, or nil.
func (p *ResourcePool) GetBrush(ref BrushRef) Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}

// AddImage adds an image and returns its reference. Images with an id
// are stored once.
func (p *ResourcePool) AddImage(img *Image) ImageRef {
	if img.ID != "" {
		if ref, ok := p.imageID[img.ID]; ok {
			return ref
		}
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := ImageRef(uint32(len(p.images) - 1))
	if img.ID != "" {
		p.imageID[img.ID] = ref
	}
	return ref
}

// GetImage returns the image for the given reference, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) *Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}
