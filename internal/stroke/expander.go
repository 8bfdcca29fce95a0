package stroke

import (
	"math"

	"github.com/gogpu/clove/internal/path"
)

type Point = path.Point

// Expander converts flattened subpaths into fill polygons.
type Expander struct {
	style Style

	// tolerance controls how finely round caps and joins are approximated.
	tolerance float64

	out []path.Subpath
}

// NewExpander creates an expander for style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: path.Tolerance,
	}
}

// Expand returns the stroke outline of subs as closed polygons, all with
// positive signed area. A non-positive or non-finite width yields nil.
func (e *Expander) Expand(subs []path.Subpath) []path.Subpath {
	hw := e.style.Width / 2
	if !(hw > 0) || math.IsInf(hw, 0) {
		return nil
	}
	e.out = nil

	dash := e.style.dashPattern()
	for _, s := range subs {
		pts := dedup(s.Points)
		closed := s.Closed
		if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if closed && len(pts) < 3 {
			closed = false
		}

		if dash == nil {
			e.polyline(pts, closed, hw)
			continue
		}
		if closed {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for _, d := range dashPolyline(pts, dash, e.style.DashOffset) {
			e.polyline(d, false, hw)
		}
	}

	out := e.out
	e.out = nil
	return out
}

func (e *Expander) polyline(pts []Point, closed bool, hw float64) {
	pts = dedup(pts)
	switch len(pts) {
	case 0:
		return
	case 1:
		e.dot(pts[0], hw)
		return
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		nv := b.Sub(a).Normalize().Perp().Mul(hw)
		e.emit(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	for i := 1; i < n-1; i++ {
		e.join(pts[i-1], pts[i], pts[i+1], hw)
	}
	if closed {
		e.join(pts[n-2], pts[n-1], pts[0], hw)
		e.join(pts[n-1], pts[0], pts[1], hw)
		return
	}

	e.cap(pts[0], pts[0].Sub(pts[1]).Normalize(), hw)
	e.cap(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize(), hw)
}

// join emits the corner piece at p between segments a->p and p->b.
func (e *Expander) join(a, p, b Point, hw float64) {
	if e.style.Join == LineJoinRound {
		e.disc(p, hw)
		return
	}

	d0 := p.Sub(a).Normalize()
	d1 := b.Sub(p).Normalize()
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return
	}

	// The outer side of the corner is opposite to the turn.
	s := 1.0
	if cross > 0 {
		s = -1
	}
	n0 := d0.Perp().Mul(s * hw)
	n1 := d1.Perp().Mul(s * hw)
	o0, o1 := p.Add(n0), p.Add(n1)

	if e.style.Join == LineJoinMiter && 1+dot > 1e-9 {
		ratio := 1 / math.Sqrt((1+dot)/2)
		if ratio <= e.miterLimit() {
			m := p.Add(n0.Add(n1).Mul(1 / (1 + dot)))
			e.emit(p, o0, m, o1)
			return
		}
	}
	e.emit(p, o0, o1)
}

func (e *Expander) miterLimit() float64 {
	if e.style.MiterLimit < 1 {
		return 4
	}
	return e.style.MiterLimit
}

// cap emits the end piece at p, where dir points away from the stroke.
func (e *Expander) cap(p, dir Point, hw float64) {
	switch e.style.Cap {
	case LineCapRound:
		e.disc(p, hw)
	case LineCapSquare:
		n := dir.Perp().Mul(hw)
		ext := dir.Mul(hw)
		e.emit(p.Add(n), p.Add(n).Add(ext), p.Sub(n).Add(ext), p.Sub(n))
	}
}

// dot renders a zero-length subpath, which only round and square caps make
// visible.
func (e *Expander) dot(p Point, hw float64) {
	switch e.style.Cap {
	case LineCapRound:
		e.disc(p, hw)
	case LineCapSquare:
		e.emit(
			Point{X: p.X - hw, Y: p.Y - hw},
			Point{X: p.X + hw, Y: p.Y - hw},
			Point{X: p.X + hw, Y: p.Y + hw},
			Point{X: p.X - hw, Y: p.Y + hw},
		)
	}
}

func (e *Expander) disc(c Point, r float64) {
	n := arcSegments(r, e.tolerance)
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	e.emit(pts...)
}

// emit appends a polygon, reversing it when its orientation is negative.
func (e *Expander) emit(pts ...Point) {
	area := path.SignedArea(pts)
	if math.Abs(area) < 1e-12 || math.IsNaN(area) {
		return
	}
	poly := make([]Point, len(pts))
	copy(poly, pts)
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	e.out = append(e.out, path.Subpath{Points: poly, Closed: true})
}

// arcSegments returns how many chords approximate a full circle of radius r
// within tolerance.
func arcSegments(r, tolerance float64) int {
	const minSegs, maxSegs = 8, 256
	if r <= tolerance {
		return minSegs
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-tolerance/r)))
	return max(minSegs, min(n, maxSegs))
}

func dedup(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || out[len(out)-1].Distance(p) > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}
