package scene

import "github.com/gogpu/scenerender/geom"

// Element types as they appear in documents.
const (
	TypeRectangle  = "rectangle"
	TypeDiamond    = "diamond"
	TypeEllipse    = "ellipse"
	TypeLine       = "line"
	TypeArrow      = "arrow"
	TypeFreedraw   = "freedraw"
	TypeText       = "text"
	TypeImage      = "image"
	TypeFrame      = "frame"
	TypeMagicFrame = "magicframe"
	TypeEmbeddable = "embeddable"
	TypeIframe     = "iframe"
)

// Element is one drawable entry of a scene. The set of implementations is
// closed; callers dispatch with a type switch.
type Element interface {
	// Common returns the fields shared by every element type.
	Common() *Base
	// Type returns the document type name.
	Type() string

	clone() Element
}

// Roundness is an element's corner-rounding descriptor.
type Roundness struct {
	Type  geom.RoundnessKind
	Value float64
}

// BoundElement references an element attached to another one.
type BoundElement struct {
	ID   string
	Type string
}

// Base holds the fields common to all element types.
type Base struct {
	ID              string
	X, Y            float64
	Width, Height   float64
	Angle           float64
	StrokeColor     string
	BackgroundColor string
	FillStyle       string
	StrokeStyle     string
	StrokeWidth     float64
	Roughness       float64
	Seed            int64
	// Opacity is a percentage in [0, 100].
	Opacity       float64
	IsDeleted     bool
	FrameID       string
	Roundness     *Roundness
	Index         string
	GroupIDs      []string
	BoundElements []BoundElement
	Link          string
	Locked        bool
}

// Common implements Element.
func (b *Base) Common() *Base { return b }

// Center returns the rotation center of the element box.
func (b *Base) Center() geom.Point {
	return geom.Pt(b.X+b.Width/2, b.Y+b.Height/2)
}

// Box returns the unrotated element box.
func (b *Base) Box() geom.Rect {
	return geom.NewRect(b.X, b.Y, b.Width, b.Height)
}

// CornerRadius returns the radius for the given axis size under the
// element's roundness.
func (b *Base) CornerRadius(size float64) float64 {
	if b.Roundness == nil {
		return 0
	}
	return geom.CornerRadius(size, b.Roundness.Type, b.Roundness.Value)
}

// Alpha returns the opacity as a fraction.
func (b *Base) Alpha() float64 {
	switch {
	case b.Opacity <= 0:
		return 0
	case b.Opacity >= 100:
		return 1
	}
	return b.Opacity / 100
}

// Rectangle is a box, optionally with rounded corners.
type Rectangle struct{ Base }

// Diamond is a rhombus inscribed in the element box.
type Diamond struct{ Base }

// Ellipse is an ellipse inscribed in the element box.
type Ellipse struct{ Base }

// Line is an open or closed polyline; points are relative to X, Y.
type Line struct {
	Base
	Points  []geom.Point
	Polygon bool
}

// Arrow is a line with optional arrowheads.
type Arrow struct {
	Base
	Points         []geom.Point
	StartArrowhead string
	EndArrowhead   string
	Elbowed        bool
}

// Freedraw is a freehand stroke; points are relative to X, Y.
type Freedraw struct {
	Base
	Points           []geom.Point
	Pressures        []float64
	SimulatePressure bool
}

// Text is a block of text, optionally bound to a container element.
type Text struct {
	Base
	Text          string
	FontSize      float64
	FontFamily    int
	TextAlign     string
	VerticalAlign string
	LineHeight    float64
	ContainerID   string
}

// Image draws an embedded file.
type Image struct {
	Base
	FileID string
	Status string
	Scale  [2]float64
	Crop   *geom.Crop
}

// Frame groups elements and clips them.
type Frame struct {
	Base
	Name string
}

// Embeddable is a placeholder for embedded web content.
type Embeddable struct{ Base }

// Unsupported keeps an element whose type this package does not render.
type Unsupported struct {
	Base
	Kind string
}

// Type implements Element.
func (*Rectangle) Type() string { return TypeRectangle }

// Type implements Element.
func (*Diamond) Type() string { return TypeDiamond }

// Type implements Element.
func (*Ellipse) Type() string { return TypeEllipse }

// Type implements Element.
func (*Line) Type() string { return TypeLine }

// Type implements Element.
func (*Arrow) Type() string { return TypeArrow }

// Type implements Element.
func (*Freedraw) Type() string { return TypeFreedraw }

// Type implements Element.
func (*Text) Type() string { return TypeText }

// Type implements Element.
func (*Image) Type() string { return TypeImage }

// Type implements Element.
func (*Frame) Type() string { return TypeFrame }

// Type implements Element.
func (*Embeddable) Type() string { return TypeEmbeddable }

// Type implements Element.
func (u *Unsupported) Type() string { return u.Kind }

func (e *Rectangle) clone() Element  { c := *e; c.Base = e.cloneBase(); return &c }
func (e *Diamond) clone() Element    { c := *e; c.Base = e.cloneBase(); return &c }
func (e *Ellipse) clone() Element    { c := *e; c.Base = e.cloneBase(); return &c }
func (e *Embeddable) clone() Element { c := *e; c.Base = e.cloneBase(); return &c }
func (e *Frame) clone() Element      { c := *e; c.Base = e.cloneBase(); return &c }
func (e *Unsupported) clone() Element {
	c := *e
	c.Base = e.cloneBase()
	return &c
}

func (e *Line) clone() Element {
	c := *e
	c.Base = e.cloneBase()
	c.Points = append([]geom.Point(nil), e.Points...)
	return &c
}

func (e *Arrow) clone() Element {
	c := *e
	c.Base = e.cloneBase()
	c.Points = append([]geom.Point(nil), e.Points...)
	return &c
}

func (e *Freedraw) clone() Element {
	c := *e
	c.Base = e.cloneBase()
	c.Points = append([]geom.Point(nil), e.Points...)
	c.Pressures = append([]float64(nil), e.Pressures...)
	return &c
}

func (e *Text) clone() Element {
	c := *e
	c.Base = e.cloneBase()
	return &c
}

func (e *Image) clone() Element {
	c := *e
	c.Base = e.cloneBase()
	if e.Crop != nil {
		crop := *e.Crop
		c.Crop = &crop
	}
	return &c
}

func (b *Base) cloneBase() Base {
	c := *b
	if b.Roundness != nil {
		r := *b.Roundness
		c.Roundness = &r
	}
	c.GroupIDs = append([]string(nil), b.GroupIDs...)
	c.BoundElements = append([]BoundElement(nil), b.BoundElements...)
	return c
}

// Clone returns a deep copy of e. Style overrides are applied to copies so
// that decoded scenes are never modified.
func Clone(e Element) Element {
	return e.clone()
}

// Points returns the point list of linear and freehand elements, or nil.
func Points(e Element) []geom.Point {
	switch e := e.(type) {
	case *Line:
		return e.Points
	case *Arrow:
		return e.Points
	case *Freedraw:
		return e.Points
	default:
		return nil
	}
}
