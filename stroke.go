package clove

import "github.com/gogpu/clove/internal/stroke"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// StrokeStyle defines how outlines are stroked.
// It is a value type; the With methods return modified copies.
type StrokeStyle struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0
	MiterLimit float64

	// Dash holds alternating dash and gap lengths. nil draws a solid line.
	Dash []float64

	// DashOffset shifts the start of the dash pattern.
	DashOffset float64
}

// DefaultStrokeStyle returns a solid 1-pixel stroke with butt caps and
// miter joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the style with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy of the style with the given line cap.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the style with the given line join.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the style with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the style with the given dash pattern.
// Call it without arguments to return to solid lines.
//
// Example:
//
//	style.WithDash(5, 3) // 5px dash, 3px gap
func (s StrokeStyle) WithDash(lengths ...float64) StrokeStyle {
	if len(lengths) == 0 {
		s.Dash = nil
	} else {
		s.Dash = append([]float64(nil), lengths...)
	}
	return s
}

// WithDashOffset returns a copy of the style with the dash offset set.
func (s StrokeStyle) WithDashOffset(offset float64) StrokeStyle {
	s.DashOffset = offset
	return s
}

func (s StrokeStyle) internal() stroke.Style {
	return stroke.Style{
		Width:      s.Width,
		Cap:        stroke.LineCap(s.Cap),
		Join:       stroke.LineJoin(s.Join),
		MiterLimit: s.MiterLimit,
		Dash:       s.Dash,
		DashOffset: s.DashOffset,
	}
}
