package path

import "math"

// Tolerance is the default maximum distance between a curve and its
// flattened polyline, in pixels.
const Tolerance = 0.1

// maxDepth bounds curve subdivision. 2^16 segments is far beyond anything a
// sane tolerance needs and keeps NaN input from recursing forever.
const maxDepth = 16

// Flatten converts elements into polylines. Curves are subdivided until
// every control point lies within tolerance of its chord; a tolerance <= 0
// selects Tolerance.
//
// A LineTo or curve without a preceding MoveTo starts at the origin, and a
// segment after Close starts a new subpath at the closed subpath's start.
// Subpaths with fewer than two points are dropped.
func Flatten(elements []Element, tolerance float64) []Subpath {
	if tolerance <= 0 {
		tolerance = Tolerance
	}

	var (
		subs    []Subpath
		cur     []Point
		start   Point
		current Point
	)
	flush := func(closed bool) {
		if len(cur) >= 2 {
			subs = append(subs, Subpath{Points: cur, Closed: closed})
		}
		cur = nil
	}
	begin := func() {
		if cur == nil {
			cur = []Point{current}
			start = current
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = e.Point
			start = current
			cur = []Point{current}

		case LineTo:
			begin()
			current = e.Point
			cur = append(cur, current)

		case QuadTo:
			begin()
			flattenQuad(current, e.Control, e.Point, tolerance, 0, &cur)
			current = e.Point

		case CubicTo:
			begin()
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, 0, &cur)
			current = e.Point

		case Close:
			flush(true)
			current = start
		}
	}
	flush(false)

	return subs
}

func flattenQuad(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuad(p0, q0, q2, tolerance, depth+1, points)
	flattenQuad(q2, q1, p2, tolerance, depth+1, points)
}

// flattenCubic subdivides with de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || dist < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubic(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
