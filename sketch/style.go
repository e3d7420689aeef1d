package sketch

// Stroke styles.
const (
	StrokeSolid  = "solid"
	StrokeDashed = "dashed"
	StrokeDotted = "dotted"
)

// Fill styles.
const (
	FillHachure    = "hachure"
	FillCrossHatch = "cross-hatch"
	FillZigzag     = "zigzag"
	FillSolid      = "solid"
)

// DefaultHachureAngle is the hachure line angle in degrees.
const DefaultHachureAngle = -41.0

// Options are the drawing parameters derived from an element's style.
type Options struct {
	// StrokeWidth is the width actually stroked. Dashed and dotted strokes
	// are widened by half a unit.
	StrokeWidth float64
	// Dash is the dash pattern, nil for solid strokes.
	Dash []float64
	// Fill is the fill style; unknown values behave as hachure.
	Fill string
	// HachureAngle, HachureGap and FillWeight drive pattern fills.
	HachureAngle float64
	HachureGap   float64
	FillWeight   float64
	// Roughness scales the hand-drawn jitter; zero draws exact geometry.
	Roughness float64
	// Seed initializes the jitter generator.
	Seed int64
}

// Map derives the drawing options for an element style.
func Map(strokeStyle, fillStyle string, strokeWidth, roughness float64, seed int64) Options {
	o := Options{
		StrokeWidth:  strokeWidth,
		Dash:         DashPattern(strokeStyle, strokeWidth),
		Fill:         fillStyle,
		HachureAngle: DefaultHachureAngle,
		HachureGap:   strokeWidth * 4,
		FillWeight:   strokeWidth / 2,
		Roughness:    roughness,
		Seed:         seed,
	}
	if strokeStyle == StrokeDashed || strokeStyle == StrokeDotted {
		o.StrokeWidth += 0.5
	}
	if o.Fill == "" {
		o.Fill = FillHachure
	}
	if o.HachureGap <= 0 {
		o.HachureGap = 4
	}
	if o.FillWeight <= 0 {
		o.FillWeight = 0.5
	}
	return o
}

// DashPattern returns the on/off lengths for a stroke style.
func DashPattern(strokeStyle string, strokeWidth float64) []float64 {
	switch strokeStyle {
	case StrokeDashed:
		return []float64{8, 8 + strokeWidth}
	case StrokeDotted:
		return []float64{1.5, 6 + strokeWidth}
	default:
		return nil
	}
}

// IsPattern reports whether the fill is drawn with lines rather than a
// solid area.
func (o Options) IsPattern() bool {
	return o.Fill != FillSolid
}
