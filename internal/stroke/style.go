package stroke

import "math"

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

// Style defines the geometry of a stroke.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Dash holds alternating on/off lengths. An odd-length pattern is
	// repeated once to make it even. A nil or all-zero pattern draws solid.
	Dash       []float64
	DashOffset float64
}

// dashPattern returns the normalized pattern, or nil for a solid stroke.
func (s Style) dashPattern() []float64 {
	if len(s.Dash) == 0 {
		return nil
	}
	var sum float64
	for _, d := range s.Dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil
		}
		sum += d
	}
	if sum <= 0 {
		return nil
	}
	if len(s.Dash)%2 == 1 {
		p := make([]float64, 0, len(s.Dash)*2)
		p = append(p, s.Dash...)
		return append(p, s.Dash...)
	}
	return s.Dash
}
