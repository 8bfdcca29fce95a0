package clove

import (
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA
}

// stops is a list of color stops kept sorted by offset.
type stops []ColorStop

// insert adds a stop after every stop with an offset <= the new one, so
// stops at the same offset keep insertion order. The offset is clamped to
// [0, 1] and the color is resolved to its representative RGBA.
func (s stops) insert(offset float64, c Color) stops {
	st := ColorStop{Offset: clamp01(offset), Color: ToRGBA(c)}
	i := sort.Search(len(s), func(i int) bool { return s[i].Offset > st.Offset })
	s = append(s, ColorStop{})
	copy(s[i+1:], s[i:])
	s[i] = st
	return s
}

// first returns the stop with the smallest offset or Transparent if empty.
func (s stops) first() RGBA {
	if len(s) == 0 {
		return Transparent
	}
	return s[0].Color
}

// at returns the interpolated color at t.
func (s stops) at(t float64, mode ExtendMode) RGBA {
	switch len(s) {
	case 0:
		return Transparent
	case 1:
		return s[0].Color
	}
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(s), func(i int) bool { return s[i].Offset >= t })
	if idx == 0 {
		return s[0].Color
	}
	if idx >= len(s) {
		return s[len(s)-1].Color
	}
	a, b := s[idx-1], s[idx]
	if b.Offset == a.Offset {
		return a.Color
	}
	return interpolate(a.Color, b.Color, (t-a.Offset)/(b.Offset-a.Offset))
}

// interpolate blends two straight-alpha colors in sRGB space.
func interpolate(a, b RGBA, t float64) RGBA {
	r, g, bl := a.colorful().BlendRgb(b.colorful(), t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return RGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

// applyExtendMode normalizes t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// LinearGradient is a color transition along the line from Start to End.
//
// Example:
//
//	g := clove.NewLinearGradient(0, 0, 100, 0).
//	    AddStop(0, clove.Red).
//	    AddStop(1, clove.Blue)
type LinearGradient struct {
	Start, End Point
	Extend     ExtendMode
	stops      stops
}

func (*LinearGradient) isColor() {}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// AddStop adds a color stop. The offset is clamped to [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) AddStop(offset float64, c Color) *LinearGradient {
	g.stops = g.stops.insert(offset, c)
	return g
}

// SetExtend sets the extend mode for the gradient.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.Extend = mode
	return g
}

// Stops returns a copy of the stops in ascending offset order.
func (g *LinearGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt returns the color at the given point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.stops.first()
	}
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return g.stops.at(t, g.Extend)
}

func (g *LinearGradient) firstStopColor() RGBA { return g.stops.first() }

// RadialGradient is a color transition from Center outwards to Radius.
type RadialGradient struct {
	Center Point
	Radius float64
	Extend ExtendMode
	stops  stops
}

func (*RadialGradient) isColor() {}

// NewRadialGradient creates a radial gradient centered at (cx, cy).
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{Center: Pt(cx, cy), Radius: radius}
}

// AddStop adds a color stop. The offset is clamped to [0, 1].
func (g *RadialGradient) AddStop(offset float64, c Color) *RadialGradient {
	g.stops = g.stops.insert(offset, c)
	return g
}

// SetExtend sets the extend mode for the gradient.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.Extend = mode
	return g
}

// Stops returns a copy of the stops in ascending offset order.
func (g *RadialGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt returns the color at the given point.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if !(g.Radius > 0) {
		return g.stops.first()
	}
	t := math.Hypot(x-g.Center.X, y-g.Center.Y) / g.Radius
	return g.stops.at(t, g.Extend)
}

func (g *RadialGradient) firstStopColor() RGBA { return g.stops.first() }
