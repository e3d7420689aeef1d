package recording

import "github.com/gogpu/scenerender/geom"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBeginGroup CommandType = iota // Open a clip/mask group
	CmdEndGroup                      // Close the innermost group
	CmdFillPath                      // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdFillRect                      // Fill an output-space rectangle
	CmdDrawImage                     // Draw an image
	CmdDrawText                      // Draw a line of text
)

var commandTypeNames = [...]string{
	CmdBeginGroup: "BeginGroup",
	CmdEndGroup:   "EndGroup",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdFillRect:   "FillRect",
	CmdDrawImage:  "DrawImage",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef marks an absent reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r PathRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference is not InvalidRef.
func (r BrushRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference is not InvalidRef.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// BeginGroupCommand opens a group.
type BeginGroupCommand struct {
	Group Group
}

func (BeginGroupCommand) Type() CommandType { return CmdBeginGroup }

// EndGroupCommand closes the innermost group.
type EndGroupCommand struct{}

func (EndGroupCommand) Type() CommandType { return CmdEndGroup }

// FillPathCommand fills a path placed by Matrix.
type FillPathCommand struct {
	Path   PathRef
	Matrix geom.Matrix
	Brush  BrushRef
	Rule   FillRule
}

func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path placed by Matrix.
type StrokePathCommand struct {
	Path   PathRef
	Matrix geom.Matrix
	Brush  BrushRef
	Stroke Stroke
}

func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillRectCommand fills an output-space rectangle.
type FillRectCommand struct {
	Rect  geom.Rect
	Brush BrushRef
}

func (FillRectCommand) Type() CommandType { return CmdFillRect }

// DrawImageCommand draws an image placed by Matrix.
type DrawImageCommand struct {
	Image   ImageRef
	Matrix  geom.Matrix
	Options ImageOptions
}

func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawTextCommand draws one line of text placed by Matrix.
type DrawTextCommand struct {
	Run    TextRun
	Matrix geom.Matrix
	Brush  BrushRef
}

func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Stroke defines the style for stroking paths. Width and dash lengths are
// in element units; backends scale them by the command matrix.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	// DashPattern is nil for a solid line.
	DashPattern []float64
	DashOffset  float64
}

// DefaultStroke returns the stroke style used for scene outlines.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4.0,
	}
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	if s.DashPattern != nil {
		result.DashPattern = append([]float64(nil), s.DashPattern...)
	}
	return result
}

// Clip restricts a group to the inside of a path.
type Clip struct {
	// Path is in the space mapped to the output by Matrix.
	Path   *geom.Path
	Matrix geom.Matrix
}

// Mask hides parts of a group. Holes are output-space paths; everything
// outside them stays visible.
type Mask struct {
	Holes []*geom.Path
}

// Group scopes a clip and/or mask over the commands it encloses.
type Group struct {
	Clip *Clip
	Mask *Mask
}

// ImageOptions describes how an image maps into its element box.
type ImageOptions struct {
	// Src is the source rectangle in natural image units.
	Src geom.Rect
	// Dst is the destination box in element-local coordinates.
	Dst geom.Rect
	// Clip is an element-local clip path, or nil.
	Clip *geom.Path
	// Alpha is the opacity (0.0 to 1.0).
	Alpha float64
	// Dark asks for the dark-mode color transform on the pixels.
	Dark bool
}

// ImageToLocal maps natural image units onto the destination box.
func (o ImageOptions) ImageToLocal() geom.Matrix {
	return geom.ImagePlacement{Src: o.Src, Dst: o.Dst}.ImageToBox()
}
