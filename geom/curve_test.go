package geom

import (
	"math"
	"testing"
)

func TestLinePathTwoPoints(t *testing.T) {
	p := LinePath([]Point{{0, 0}, {100, 50}}, false)
	els := p.Elements()
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if _, ok := els[1].(LineTo); !ok {
		t.Errorf("second element is %T, want LineTo", els[1])
	}
}

func TestLinePathCurveTouchesEveryPoint(t *testing.T) {
	pts := []Point{{0, 0}, {50, 40}, {100, 0}}
	p := LinePath(pts, false)
	els := p.Elements()
	if len(els) != 3 {
		t.Fatalf("got %d elements, want MoveTo + 2 CubicTo", len(els))
	}
	if els[0].(MoveTo).Point != pts[0] {
		t.Errorf("curve starts at %v", els[0])
	}
	for i, e := range els[1:] {
		c, ok := e.(CubicTo)
		if !ok {
			t.Fatalf("element %d is %T", i+1, e)
		}
		if c.Point != pts[i+1] {
			t.Errorf("segment %d ends at %v, want %v", i, c.Point, pts[i+1])
		}
	}
	// the tangent at the middle point is parallel to p2-p0
	c1 := els[1].(CubicTo)
	c2 := els[2].(CubicTo)
	in := pts[1].Sub(c1.Control2)
	out := c2.Control1.Sub(pts[1])
	if math.Abs(in.X*out.Y-in.Y*out.X) > 1e-9 {
		t.Errorf("curve not smooth at middle point: in %v out %v", in, out)
	}
}

func TestArrowheadChevron(t *testing.T) {
	pts := []Point{{0, 0}, {100, 0}}
	const sw = 2.0
	head := ArrowheadAt(pts, true, ArrowheadArrow, sw)
	if head == nil {
		t.Fatal("no arrowhead")
	}
	if len(head.Strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(head.Strokes))
	}
	dir := pts[1].Sub(pts[0]).Normalize()
	for i, s := range head.Strokes {
		els := s.Elements()
		wing := els[0].(MoveTo).Point
		tip := els[1].(LineTo).Point
		if tip != pts[1] {
			t.Errorf("stroke %d ends at %v, want tip %v", i, tip, pts[1])
		}
		seg := tip.Sub(wing)
		if l := seg.Length(); math.Abs(l-ArrowheadLength(sw)) > 1e-9 {
			t.Errorf("stroke %d length %v, want %v", i, l, ArrowheadLength(sw))
		}
		angle := math.Acos(seg.Normalize().Dot(dir)) * 180 / math.Pi
		if math.Abs(angle-30) > 1e-9 {
			t.Errorf("stroke %d at %v degrees, want 30", i, angle)
		}
	}
}

func TestArrowheadStartAndNone(t *testing.T) {
	pts := []Point{{0, 0}, {0, 100}}
	if ArrowheadAt(pts, true, ArrowheadNone, 1) != nil {
		t.Error("none arrowhead produced geometry")
	}
	head := ArrowheadAt(pts, false, ArrowheadTriangle, 1)
	if head == nil || len(head.Strokes) != 2 {
		t.Fatal("triangle start arrowhead missing")
	}
	if tip := head.Strokes[0].CurrentPoint(); tip != pts[0] {
		t.Errorf("start head tip = %v", tip)
	}
	if ArrowheadAt([]Point{{1, 1}, {1, 1}}, true, ArrowheadArrow, 1) != nil {
		t.Error("degenerate segment produced a head")
	}
	if dot := ArrowheadAt(pts, true, ArrowheadDot, 1); dot == nil || dot.Fill == nil {
		t.Error("dot arrowhead has no fill")
	}
}

func TestSimplify(t *testing.T) {
	line := []Point{{0, 0}, {1, 0.1}, {2, -0.1}, {3, 0}, {4, 0}}
	got := Simplify(line, 0.75)
	if len(got) != 2 || got[0] != line[0] || got[1] != line[4] {
		t.Errorf("Simplify = %v", got)
	}
	corner := []Point{{0, 0}, {5, 0}, {10, 0}, {10, 5}, {10, 10}}
	if got := Simplify(corner, 0.75); len(got) != 3 {
		t.Errorf("corner simplified to %v", got)
	}
}
