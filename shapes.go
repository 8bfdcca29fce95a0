package clove

import "math"

// Shape is a geometric figure that a Layer can fill and stroke.
//
// The implementations are the shape types in this file and *Path.
type Shape interface {
	toPath() *Path
}

// ShapeStyle controls how a shape is painted. A nil Fill or Stroke skips
// that part. Opacity scales both and is clamped to [0, 1]; note that the
// zero value draws nothing, so start from Filled, Stroked or
// DefaultShapeStyle.
type ShapeStyle struct {
	Fill        Color
	Stroke      Color
	StrokeStyle StrokeStyle
	Opacity     float64
}

// DefaultShapeStyle returns an opaque style with no paint and a default
// stroke geometry.
func DefaultShapeStyle() ShapeStyle {
	return ShapeStyle{StrokeStyle: DefaultStrokeStyle(), Opacity: 1}
}

// Filled returns an opaque style that fills with c.
func Filled(c Color) ShapeStyle {
	return DefaultShapeStyle().WithFill(c)
}

// Stroked returns an opaque style that strokes with c at the given width.
func Stroked(c Color, width float64) ShapeStyle {
	return DefaultShapeStyle().WithStroke(c).WithStrokeWidth(width)
}

// WithFill returns a copy of the style with the given fill.
func (s ShapeStyle) WithFill(c Color) ShapeStyle {
	s.Fill = c
	return s
}

// WithStroke returns a copy of the style with the given stroke color.
func (s ShapeStyle) WithStroke(c Color) ShapeStyle {
	s.Stroke = c
	return s
}

// WithStrokeWidth returns a copy of the style with the given stroke width.
func (s ShapeStyle) WithStrokeWidth(w float64) ShapeStyle {
	s.StrokeStyle = s.StrokeStyle.WithWidth(w)
	return s
}

// WithStrokeStyle returns a copy of the style with the given stroke geometry.
func (s ShapeStyle) WithStrokeStyle(st StrokeStyle) ShapeStyle {
	s.StrokeStyle = st
	return s
}

// WithOpacity returns a copy of the style with the given opacity.
func (s ShapeStyle) WithOpacity(o float64) ShapeStyle {
	s.Opacity = o
	return s
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) toPath() *Path { return NewPath().Rect(r.X, r.Y, r.W, r.H) }

// RoundedRect is a rectangle with rounded corners.
type RoundedRect struct {
	X, Y, W, H float64
	Radius     float64
}

func (r RoundedRect) toPath() *Path {
	return NewPath().RoundedRect(r.X, r.Y, r.W, r.H, r.Radius)
}

// Circle is a circle centered at (CX, CY).
type Circle struct {
	CX, CY, R float64
}

func (c Circle) toPath() *Path { return NewPath().Circle(c.CX, c.CY, c.R) }

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	CX, CY, RX, RY float64
}

func (e Ellipse) toPath() *Path { return NewPath().Ellipse(e.CX, e.CY, e.RX, e.RY) }

// Line is a straight segment. It is open, so it is usually stroked.
type Line struct {
	X1, Y1, X2, Y2 float64
}

func (l Line) toPath() *Path { return NewPath().MoveTo(l.X1, l.Y1).LineTo(l.X2, l.Y2) }

// Polyline is an open chain of segments.
type Polyline struct {
	Points []Point
}

func (pl Polyline) toPath() *Path { return polyPath(pl.Points, false) }

// Polygon is a closed chain of segments.
type Polygon struct {
	Points []Point
}

func (pg Polygon) toPath() *Path { return polyPath(pg.Points, true) }

// Triangle is a closed three-point polygon.
type Triangle struct {
	A, B, C Point
}

func (t Triangle) toPath() *Path { return polyPath([]Point{t.A, t.B, t.C}, true) }

// Arc is an open circular arc from Start to End, in radians, going
// clockwise in screen coordinates.
type Arc struct {
	CX, CY, R  float64
	Start, End float64
}

func (a Arc) toPath() *Path { return NewPath().Arc(a.CX, a.CY, a.R, a.Start, a.End) }

// CubicBezier is an open cubic Bezier curve.
type CubicBezier struct {
	Start, Control1, Control2, End Point
}

func (b CubicBezier) toPath() *Path {
	return NewPath().
		MoveTo(b.Start.X, b.Start.Y).
		CubicTo(b.Control1.X, b.Control1.Y, b.Control2.X, b.Control2.Y, b.End.X, b.End.Y)
}

// QuadBezier is an open quadratic Bezier curve.
type QuadBezier struct {
	Start, Control, End Point
}

func (b QuadBezier) toPath() *Path {
	return NewPath().
		MoveTo(b.Start.X, b.Start.Y).
		QuadTo(b.Control.X, b.Control.Y, b.End.X, b.End.Y)
}

// Star is a closed star with Points tips. Tips lie on the Outer radius and
// the notches between them on the Inner radius. The first tip points up,
// turned by Rotation radians.
type Star struct {
	CX, CY       float64
	Points       int
	Outer, Inner float64
	Rotation     float64
}

func (s Star) toPath() *Path {
	if s.Points < 2 {
		return NewPath()
	}
	n := 2 * s.Points
	pts := make([]Point, n)
	for i := range n {
		r := s.Outer
		if i%2 == 1 {
			r = s.Inner
		}
		a := -math.Pi/2 + s.Rotation + float64(i)*math.Pi/float64(s.Points)
		sin, cos := math.Sincos(a)
		pts[i] = Pt(s.CX+r*cos, s.CY+r*sin)
	}
	return polyPath(pts, true)
}

func (p *Path) toPath() *Path { return p }

func polyPath(pts []Point, closed bool) *Path {
	p := NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if closed && len(pts) > 0 {
		p.Close()
	}
	return p
}
