package geom

import "math"

// StrokeOptions configures the variable-width freehand outline.
type StrokeOptions struct {
	Size             float64
	Thinning         float64
	Smoothing        float64
	Streamline       float64
	Easing           func(t float64) float64
	SimulatePressure bool
	// Last marks the stroke as complete so the final input point is kept exactly.
	Last bool
}

// FreedrawOptions returns the outline options used for freedraw elements.
func FreedrawOptions(strokeWidth float64, simulate bool) StrokeOptions {
	return StrokeOptions{
		Size:             strokeWidth * 4.25,
		Thinning:         0.6,
		Smoothing:        0.5,
		Streamline:       0.5,
		Easing:           EaseInOutSine,
		SimulatePressure: simulate,
		Last:             true,
	}
}

// EaseInOutSine is the sine ease-in-out curve.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// DefaultPressure is used for input points that carry no pressure.
const DefaultPressure = 0.5

const (
	rateOfPressureChange = 0.275
	fixedPi              = math.Pi + 0.0001
)

// StrokePoint is a smoothed input point with its running metrics.
type StrokePoint struct {
	Point         Point
	Pressure      float64
	Vector        Point
	Distance      float64
	RunningLength float64
}

// StrokePoints streamlines the raw input into stroke points. pressures may
// be shorter than points; missing values use DefaultPressure.
func StrokePoints(points []Point, pressures []float64, opts StrokeOptions) []StrokePoint {
	if len(points) == 0 {
		return nil
	}
	type input struct {
		pt Point
		p  float64
	}
	pts := make([]input, len(points))
	for i, pt := range points {
		p := DefaultPressure
		if i < len(pressures) && pressures[i] >= 0 {
			p = pressures[i]
		}
		pts[i] = input{pt, p}
	}
	if len(pts) == 2 {
		last := pts[1]
		pts = pts[:1]
		for i := 1; i < 5; i++ {
			t := float64(i) / 4
			pts = append(pts, input{pts[0].pt.Lerp(last.pt, t), pts[0].p + (last.p-pts[0].p)*t})
		}
	}
	if len(pts) == 1 {
		pts = append(pts, input{pts[0].pt.Add(Pt(1, 1)), pts[0].p})
	}

	t := 0.15 + (1-opts.Streamline)*0.85
	out := []StrokePoint{{Point: pts[0].pt, Pressure: pts[0].p, Vector: Pt(1, 1)}}
	prev := out[0]
	reachedMin := false
	running := 0.0
	last := len(pts) - 1
	for i := 1; i < len(pts); i++ {
		pt := prev.Point.Lerp(pts[i].pt, t)
		if opts.Last && i == last {
			pt = pts[i].pt
		}
		if pt.Equal(prev.Point) {
			continue
		}
		d := pt.Distance(prev.Point)
		running += d
		if i < last && !reachedMin {
			if running < opts.Size {
				continue
			}
			reachedMin = true
		}
		prev = StrokePoint{
			Point:         pt,
			Pressure:      pts[i].p,
			Vector:        prev.Point.Sub(pt).Normalize(),
			Distance:      d,
			RunningLength: running,
		}
		out = append(out, prev)
	}
	if len(out) > 1 {
		out[0].Vector = out[1].Vector
	} else {
		out[0].Vector = Point{}
	}
	return out
}

func strokeRadius(size, thinning, pressure float64, easing func(float64) float64) float64 {
	return size * easing(0.5-thinning*(0.5-pressure))
}

// StrokeOutline returns the polygon enclosing the variable-width stroke
// along pts, with round caps at both ends.
func StrokeOutline(pts []StrokePoint, opts StrokeOptions) []Point {
	if len(pts) == 0 || opts.Size <= 0 {
		return nil
	}
	easing := opts.Easing
	if easing == nil {
		easing = func(t float64) float64 { return t }
	}
	size := opts.Size
	total := pts[len(pts)-1].RunningLength
	minDistance := math.Pow(size*opts.Smoothing, 2)

	simulated := func(prevPressure float64, sp StrokePoint) float64 {
		s := math.Min(1, sp.Distance/size)
		r := math.Min(1, 1-s)
		return math.Min(1, prevPressure+(r-prevPressure)*(s*rateOfPressureChange))
	}

	prevPressure := pts[0].Pressure
	for i := 0; i < len(pts) && i < 10; i++ {
		p := pts[i].Pressure
		if opts.SimulatePressure {
			p = simulated(prevPressure, pts[i])
		}
		prevPressure = (prevPressure + p) / 2
	}

	radius := strokeRadius(size, opts.Thinning, pts[len(pts)-1].Pressure, easing)
	firstRadius := math.NaN()
	prevVector := pts[0].Vector
	pl, pr := pts[0].Point, pts[0].Point
	var tl, tr Point
	prevSharp := false
	var left, right []Point

	for i, sp := range pts {
		pressure := sp.Pressure
		if i < len(pts)-1 && total-sp.RunningLength < 3 {
			continue
		}
		if opts.Thinning != 0 {
			if opts.SimulatePressure {
				pressure = simulated(prevPressure, sp)
			}
			radius = strokeRadius(size, opts.Thinning, pressure, easing)
		} else {
			radius = size / 2
		}
		if math.IsNaN(firstRadius) {
			firstRadius = radius
		}
		radius = math.Max(0.01, radius)

		nextVector := sp.Vector
		nextDpr := 1.0
		if i < len(pts)-1 {
			nextVector = pts[i+1].Vector
			nextDpr = sp.Vector.Dot(nextVector)
		}
		prevDpr := sp.Vector.Dot(prevVector)
		sharp := prevDpr < 0 && !prevSharp
		nextSharp := nextDpr < 0

		if sharp || nextSharp {
			offset := prevVector.Perp().Mul(radius)
			for step, t := 1.0/13, 0.0; t <= 1; t += step {
				tl = sp.Point.Sub(offset).RotateAround(sp.Point, fixedPi*t)
				left = append(left, tl)
				tr = sp.Point.Add(offset).RotateAround(sp.Point, -fixedPi*t)
				right = append(right, tr)
			}
			pl, pr = tl, tr
			if nextSharp {
				prevSharp = true
			}
			continue
		}
		prevSharp = false

		if i == len(pts)-1 {
			offset := sp.Vector.Perp().Mul(radius)
			left = append(left, sp.Point.Sub(offset))
			right = append(right, sp.Point.Add(offset))
			continue
		}

		offset := nextVector.Lerp(sp.Vector, nextDpr).Perp().Mul(radius)
		tl = sp.Point.Sub(offset)
		if i <= 1 || dist2(pl, tl) > minDistance {
			left = append(left, tl)
			pl = tl
		}
		tr = sp.Point.Add(offset)
		if i <= 1 || dist2(pr, tr) > minDistance {
			right = append(right, tr)
			pr = tr
		}
		prevPressure = pressure
		prevVector = sp.Vector
	}

	first := pts[0].Point
	last := first.Add(Pt(1, 1))
	if len(pts) > 1 {
		last = pts[len(pts)-1].Point
	}

	if len(pts) == 1 {
		r := firstRadius
		if math.IsNaN(r) {
			r = radius
		}
		start := first.Add(first.Sub(last).Perp().Normalize().Mul(-r))
		var dot []Point
		for step, t := 1.0/13, 1.0/13; t <= 1; t += step {
			dot = append(dot, start.RotateAround(first, fixedPi*2*t))
		}
		return dot
	}

	var startCap, endCap []Point
	if len(right) > 0 {
		for step, t := 1.0/13, 1.0/13; t <= 1; t += step {
			startCap = append(startCap, right[0].RotateAround(first, fixedPi*t))
		}
	}
	direction := pts[len(pts)-1].Vector.Mul(-1).Perp()
	capStart := last.Add(direction.Mul(radius))
	for step, t := 1.0/29, 1.0/29; t < 1; t += step {
		endCap = append(endCap, capStart.RotateAround(last, fixedPi*3*t))
	}

	out := make([]Point, 0, len(left)+len(endCap)+len(right)+len(startCap))
	out = append(out, left...)
	out = append(out, endCap...)
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	out = append(out, startCap...)
	return out
}

func dist2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// OutlinePath turns an outline polygon into a smooth closed path: a
// quadratic through the midpoints of consecutive outline points.
func OutlinePath(outline []Point) *Path {
	p := NewPath()
	if len(outline) == 0 {
		return p
	}
	p.MoveTo(outline[0].X, outline[0].Y)
	for i, pt := range outline {
		next := outline[0]
		if i < len(outline)-1 {
			next = outline[i+1]
		}
		mid := pt.Lerp(next, 0.5)
		p.QuadTo(pt.X, pt.Y, mid.X, mid.Y)
	}
	p.LineTo(outline[0].X, outline[0].Y)
	p.Close()
	return p
}

// FreedrawOutline is the filled path that renders a freehand stroke.
// simulate forces synthetic pressure; it is also used whenever pressures
// is empty.
func FreedrawOutline(points []Point, pressures []float64, simulate bool, strokeWidth float64) *Path {
	if len(pressures) == 0 {
		simulate = true
	}
	opts := FreedrawOptions(strokeWidth, simulate)
	if simulate {
		pressures = nil
	}
	return OutlinePath(StrokeOutline(StrokePoints(points, pressures, opts), opts))
}

// ClosedLoopDistance is the largest gap between the first and last point
// for which a freehand stroke counts as a closed shape.
const ClosedLoopDistance = 8

// IsClosedLoop reports whether a freehand stroke ends where it started.
func IsClosedLoop(points []Point) bool {
	if len(points) < 3 {
		return false
	}
	return points[0].Distance(points[len(points)-1]) <= ClosedLoopDistance
}

// FreedrawFillTolerance is the simplification tolerance of the fill pass.
const FreedrawFillTolerance = 0.75

// FreedrawFill returns the closed, simplified interior of a looping stroke,
// painted under the outline.
func FreedrawFill(points []Point) *Path {
	return LinePath(Simplify(points, FreedrawFillTolerance), true)
}
