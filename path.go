package clove

import (
	"fmt"
	"math"

	"github.com/gogpu/clove/internal/path"
)

// errEmptyPath is returned when a path without drawable segments is painted.
var errEmptyPath = fmt.Errorf("%w: empty path", ErrInvalidState)

// Path is a vector path made of lines and Bezier curves.
//
// Build one with MoveTo, LineTo, QuadTo, CubicTo and Close, or with the
// shape helpers, then paint it with Layer.FillPath or Layer.StrokePath.
// Coordinates are in layer pixels. Drawing an operation before MoveTo starts
// a subpath at that point.
type Path struct {
	elements   []path.Element
	start      Point
	current    Point
	hasCurrent bool
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.elements = append(p.elements, path.MoveTo{Point: path.Pt(x, y)})
	p.start = Pt(x, y)
	p.current = p.start
	p.hasCurrent = true
	return p
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	if !p.hasCurrent {
		return p.MoveTo(x, y)
	}
	p.elements = append(p.elements, path.LineTo{Point: path.Pt(x, y)})
	p.current = Pt(x, y)
	return p
}

// QuadTo adds a quadratic Bezier curve with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	if !p.hasCurrent {
		p.MoveTo(cx, cy)
	}
	p.elements = append(p.elements, path.QuadTo{Control: path.Pt(cx, cy), Point: path.Pt(x, y)})
	p.current = Pt(x, y)
	return p
}

// CubicTo adds a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	if !p.hasCurrent {
		p.MoveTo(c1x, c1y)
	}
	p.elements = append(p.elements, path.CubicTo{
		Control1: path.Pt(c1x, c1y),
		Control2: path.Pt(c2x, c2y),
		Point:    path.Pt(x, y),
	})
	p.current = Pt(x, y)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	if !p.hasCurrent {
		return p
	}
	p.elements = append(p.elements, path.Close{})
	p.current = p.start
	return p
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the end of the last element.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCurrent
}

// Clear removes all elements.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.hasCurrent = false
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.elements = append([]path.Element(nil), p.elements...)
	return &c
}

// Rect adds a closed rectangle.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// circleK places cubic control points for a quarter circle:
// 4/3 * (sqrt(2) - 1).
const circleK = 0.5522847498307936

// Circle adds a closed circle.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed axis-aligned ellipse.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	ox, oy := rx*circleK, ry*circleK
	return p.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry).
		CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy).
		CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry).
		CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy).
		Close()
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2, in radians,
// going clockwise in screen coordinates. The arc is connected to the current
// point with a line.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) *Path {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	sx, sy := cx+r*math.Cos(angle1), cy+r*math.Sin(angle1)
	if !p.hasCurrent {
		p.MoveTo(sx, sy)
	} else if p.current != Pt(sx, sy) {
		p.LineTo(sx, sy)
	}
	if angle2 == angle1 {
		return p
	}

	// At most 90 degrees per cubic segment.
	n := int(math.Ceil((angle2 - angle1) / (math.Pi / 2)))
	step := (angle2 - angle1) / float64(n)
	for i := range n {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
	return p
}

func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	tan := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*tan*tan) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)
	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// RoundedRect adds a closed rectangle with corners of radius r. The radius
// is clamped to half of the smaller side.
func (p *Path) RoundedRect(x, y, w, h, r float64) *Path {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		return p.Rect(x, y, w, h)
	}
	p.MoveTo(x+r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	return p.Close()
}

// flatten converts the path to polylines in layer coordinates.
func (p *Path) flatten() ([]path.Subpath, error) {
	if p.IsEmpty() {
		return nil, errEmptyPath
	}
	subs := path.Flatten(p.elements, path.Tolerance)
	if len(subs) == 0 {
		return nil, errEmptyPath
	}
	return subs, nil
}
