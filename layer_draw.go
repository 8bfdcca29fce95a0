package clove

import (
	"errors"
	"fmt"
	"image"

	intImage "github.com/gogpu/clove/internal/image"
	"github.com/gogpu/clove/internal/raster"
	"github.com/gogpu/clove/text"
)

// Draw fills and then strokes shape with style. Nothing is drawn for a nil
// Fill or Stroke. An empty shape returns an error matching ErrInvalidState.
func (l *Layer) Draw(shape Shape, style ShapeStyle) error {
	if shape == nil {
		return errEmptyPath
	}
	p := shape.toPath()
	if p == nil {
		return errEmptyPath
	}
	subs, err := p.flatten()
	if err != nil {
		return err
	}
	fill, strk := resolvePaint(style.Fill), resolvePaint(style.Stroke)
	if fill == nil && strk == nil {
		return nil
	}
	if l.rast == nil {
		l.rast = raster.NewRasterizer()
	}
	opacity := clamp01(style.Opacity)

	return l.render(func(dst *image.RGBA) error {
		if fill != nil {
			if err := l.rast.Fill(dst, subs, fill, opacity); err != nil {
				return rasterError(err)
			}
		}
		if strk != nil {
			if err := l.rast.Stroke(dst, subs, style.StrokeStyle.internal(), strk, opacity); err != nil {
				return rasterError(err)
			}
		}
		return nil
	})
}

func rasterError(err error) error {
	if errors.Is(err, raster.ErrEmptyPath) {
		return errEmptyPath
	}
	return err
}

// FillRect fills a rectangle.
func (l *Layer) FillRect(x, y, w, h float64, c Color) error {
	return l.Draw(Rect{X: x, Y: y, W: w, H: h}, Filled(c))
}

// StrokeRect outlines a rectangle.
func (l *Layer) StrokeRect(x, y, w, h float64, c Color, width float64) error {
	return l.Draw(Rect{X: x, Y: y, W: w, H: h}, Stroked(c, width))
}

// FillRoundedRect fills a rectangle with rounded corners.
func (l *Layer) FillRoundedRect(x, y, w, h, radius float64, c Color) error {
	return l.Draw(RoundedRect{X: x, Y: y, W: w, H: h, Radius: radius}, Filled(c))
}

// FillCircle fills a circle.
func (l *Layer) FillCircle(cx, cy, r float64, c Color) error {
	return l.Draw(Circle{CX: cx, CY: cy, R: r}, Filled(c))
}

// StrokeCircle outlines a circle.
func (l *Layer) StrokeCircle(cx, cy, r float64, c Color, width float64) error {
	return l.Draw(Circle{CX: cx, CY: cy, R: r}, Stroked(c, width))
}

// FillEllipse fills an ellipse.
func (l *Layer) FillEllipse(cx, cy, rx, ry float64, c Color) error {
	return l.Draw(Ellipse{CX: cx, CY: cy, RX: rx, RY: ry}, Filled(c))
}

// DrawLine strokes a line segment.
func (l *Layer) DrawLine(x1, y1, x2, y2 float64, c Color, width float64) error {
	return l.Draw(Line{X1: x1, Y1: y1, X2: x2, Y2: y2}, Stroked(c, width))
}

// DrawPolyline strokes an open chain of segments.
func (l *Layer) DrawPolyline(points []Point, c Color, width float64) error {
	return l.Draw(Polyline{Points: points}, Stroked(c, width))
}

// FillPolygon fills a closed polygon.
func (l *Layer) FillPolygon(points []Point, c Color) error {
	return l.Draw(Polygon{Points: points}, Filled(c))
}

// FillTriangle fills a triangle.
func (l *Layer) FillTriangle(a, b, p Point, c Color) error {
	return l.Draw(Triangle{A: a, B: b, C: p}, Filled(c))
}

// DrawArc strokes a circular arc between two angles in radians.
func (l *Layer) DrawArc(cx, cy, r, start, end float64, c Color, width float64) error {
	return l.Draw(Arc{CX: cx, CY: cy, R: r, Start: start, End: end}, Stroked(c, width))
}

// DrawBezier strokes a cubic Bezier curve.
func (l *Layer) DrawBezier(start, c1, c2, end Point, c Color, width float64) error {
	return l.Draw(CubicBezier{Start: start, Control1: c1, Control2: c2, End: end}, Stroked(c, width))
}

// DrawQuadBezier strokes a quadratic Bezier curve.
func (l *Layer) DrawQuadBezier(start, ctrl, end Point, c Color, width float64) error {
	return l.Draw(QuadBezier{Start: start, Control: ctrl, End: end}, Stroked(c, width))
}

// FillStar fills a star with the given number of points.
func (l *Layer) FillStar(cx, cy float64, points int, outer, inner float64, c Color) error {
	return l.Draw(Star{CX: cx, CY: cy, Points: points, Outer: outer, Inner: inner}, Filled(c))
}

// FillPath fills a path with the non-zero winding rule.
func (l *Layer) FillPath(p *Path, c Color) error {
	return l.Draw(p, Filled(c))
}

// StrokePath strokes a path.
func (l *Layer) StrokePath(p *Path, c Color, style StrokeStyle) error {
	return l.Draw(p, DefaultShapeStyle().WithStroke(c).WithStrokeStyle(style))
}

// DrawText lays out s with its top-left corner at (x, y) and draws it.
// The returned layout describes the glyph positions and bounds.
//
// The width policy in style picks the container that lines wrap and align
// in: the text itself, a fixed width, the canvas width or this layer's
// effective width.
func (l *Layer) DrawText(s string, x, y float64, style TextStyle) (*text.Layout, error) {
	layout, err := l.layoutText(s, x, y, style)
	if err != nil {
		return nil, err
	}
	c := style.color()
	if len(layout.Lines) == 0 || c.A == 0 {
		return layout, nil
	}
	dst := intImage.Clone(l.buf.NRGBA())
	if err := text.Draw(dst, layout, c.NRGBA()); err != nil {
		return nil, err
	}
	copy(l.buf.Data(), dst.Pix)
	return layout, nil
}

// MeasureText lays out s at the origin without drawing it.
func (l *Layer) MeasureText(s string, style TextStyle) (*text.Layout, error) {
	return l.layoutText(s, 0, 0, style)
}

func (l *Layer) layoutText(s string, x, y float64, style TextStyle) (*text.Layout, error) {
	if l.fonts == nil {
		return nil, fmt.Errorf("%w: layer has no font registry", ErrInvalidState)
	}
	var container float64
	switch style.Width.Kind {
	case WidthMax:
		container = style.Width.Max
	case WidthFullPage:
		container = float64(l.canvasW)
	case WidthLayer:
		container = float64(l.Width())
	}
	return l.fonts.Layout(s, text.LayoutOptions{
		Family:        style.Family,
		Weight:        style.Weight,
		Style:         style.Style,
		Size:          style.Size,
		LetterSpacing: style.LetterSpacing,
		LineHeight:    style.LineHeight,
		MaxWidth:      container,
		Wrap:          style.Wrap,
		Align:         style.Align,
		Container:     container,
		X:             x,
		Y:             y,
	})
}
