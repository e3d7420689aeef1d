package sketch

import (
	"math"

	"github.com/gogpu/scenerender/geom"
)

const (
	maxRandomnessOffset = 2.0
	bowing              = 1.0
)

// jitter carries the per-element generator and roughness.
type jitter struct {
	rng       *Random
	roughness float64
	preserve  bool
}

func (j *jitter) offsetOpt(x, gain float64) float64 {
	return j.roughness * gain * (j.rng.Next()*2*x - x)
}

// Roughen returns a hand-drawn rendition of p for stroking: every segment
// is drawn twice with seeded jitter. With zero roughness p is returned
// unchanged. Vertices stay in place for roughness below 2.
func Roughen(p *geom.Path, o Options) *geom.Path {
	if o.Roughness <= 0 || p.IsEmpty() {
		return p
	}
	j := &jitter{rng: NewRandom(o.Seed), roughness: o.Roughness, preserve: o.Roughness < 2}
	out := geom.NewPath()
	for pass := 0; pass < 2; pass++ {
		overlay := pass == 1
		var start, cur geom.Point
		for _, elem := range p.Elements() {
			switch e := elem.(type) {
			case geom.MoveTo:
				start, cur = e.Point, e.Point
			case geom.LineTo:
				j.line(out, cur, e.Point, overlay)
				cur = e.Point
			case geom.QuadTo:
				c1 := cur.Lerp(e.Control, 2.0/3)
				c2 := e.Point.Lerp(e.Control, 2.0/3)
				j.curve(out, cur, c1, c2, e.Point, overlay)
				cur = e.Point
			case geom.CubicTo:
				j.curve(out, cur, e.Control1, e.Control2, e.Point, overlay)
				cur = e.Point
			case geom.Close:
				if !cur.Equal(start) {
					j.line(out, cur, start, overlay)
				}
				cur = start
			}
		}
	}
	return out
}

// line appends one jittered segment from a to b as a cubic.
func (j *jitter) line(out *geom.Path, a, b geom.Point, overlay bool) {
	lengthSq := (a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y)
	length := math.Sqrt(lengthSq)
	gain := 1.0
	switch {
	case length > 500:
		gain = 0.4
	case length >= 200:
		gain = -0.0016668*length + 1.233334
	}
	offset := maxRandomnessOffset
	if offset*offset*100 > lengthSq {
		offset = length / 10
	}
	half := offset / 2
	diverge := 0.2 + j.rng.Next()*0.2
	midX := j.offsetOpt(bowing*maxRandomnessOffset*(b.Y-a.Y)/200, gain)
	midY := j.offsetOpt(bowing*maxRandomnessOffset*(a.X-b.X)/200, gain)

	amount := offset
	if overlay {
		amount = half
	}
	rnd := func() float64 { return j.offsetOpt(amount, gain) }
	vertex := func() float64 {
		if j.preserve {
			return 0
		}
		return rnd()
	}

	out.MoveTo(a.X+vertex(), a.Y+vertex())
	out.CubicTo(
		midX+a.X+(b.X-a.X)*diverge+rnd(),
		midY+a.Y+(b.Y-a.Y)*diverge+rnd(),
		midX+a.X+2*(b.X-a.X)*diverge+rnd(),
		midY+a.Y+2*(b.Y-a.Y)*diverge+rnd(),
		b.X+vertex(),
		b.Y+vertex(),
	)
}

// curve appends a jittered copy of a cubic segment.
func (j *jitter) curve(out *geom.Path, p0, c1, c2, p3 geom.Point, overlay bool) {
	amount := maxRandomnessOffset
	if overlay {
		amount /= 2
	}
	span := p0.Distance(p3)
	if amount*10 > span {
		amount = span / 10
	}
	rnd := func() float64 { return j.offsetOpt(amount, 1) }
	vertex := func() float64 {
		if j.preserve {
			return 0
		}
		return rnd()
	}
	out.MoveTo(p0.X+vertex(), p0.Y+vertex())
	out.CubicTo(c1.X+rnd(), c1.Y+rnd(), c2.X+rnd(), c2.Y+rnd(), p3.X+vertex(), p3.Y+vertex())
}
