// Package path holds the path representation shared by the stroker and the
// rasterizer, and flattens curves into polylines.
package path

import "math"

// Point is a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector, or the zero vector for degenerate input.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp rotates the vector 90 degrees (clockwise on screen, where y grows down).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Element is one command of a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

// LineTo draws a straight segment.
type LineTo struct{ Point Point }

// QuadTo draws a quadratic Bézier segment.
type QuadTo struct{ Control, Point Point }

// CubicTo draws a cubic Bézier segment.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (QuadTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// Subpath is a flattened polyline.
type Subpath struct {
	Points []Point
	Closed bool
}

// Bounds returns the bounding box of all points in subs. ok is false when
// there are no points.
func Bounds(subs []Subpath) (minP, maxP Point, ok bool) {
	minP = Point{X: math.Inf(1), Y: math.Inf(1)}
	maxP = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range subs {
		for _, p := range s.Points {
			minP.X = math.Min(minP.X, p.X)
			minP.Y = math.Min(minP.Y, p.Y)
			maxP.X = math.Max(maxP.X, p.X)
			maxP.Y = math.Max(maxP.Y, p.Y)
			ok = true
		}
	}
	return minP, maxP, ok
}

// SignedArea returns the shoelace area of the closed polygon pts. It is
// positive for clockwise polygons in y-down coordinates.
func SignedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}
