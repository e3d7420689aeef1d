package geom

// Simplify reduces a polyline with the Ramer-Douglas-Peucker algorithm.
// Points farther than tolerance from the simplified line are kept.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}
	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true
	simplifySection(points, 0, len(points)-1, tolerance*tolerance, keep)

	out := make([]Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

func simplifySection(pts []Point, first, last int, tol2 float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxD, index := -1.0, first
	for i := first + 1; i < last; i++ {
		if d := segmentDistance2(pts[i], pts[first], pts[last]); d > maxD {
			maxD, index = d, i
		}
	}
	if maxD > tol2 {
		keep[index] = true
		simplifySection(pts, first, index, tol2, keep)
		simplifySection(pts, index, last, tol2, keep)
	}
}

// segmentDistance2 returns the squared distance from p to the segment ab.
func segmentDistance2(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return dist2(p, a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return dist2(p, a.Add(ab.Mul(t)))
}
