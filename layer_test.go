package clove

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T, w, h int, opts ...Option) *Canvas {
	t.Helper()
	c, err := New(w, h, opts...)
	require.NoError(t, err)
	return c
}

func newTestLayer(t *testing.T, c *Canvas, name string) *Layer {
	t.Helper()
	l, err := c.CreateLayer(name)
	require.NoError(t, err)
	return l
}

func assertNRGBA(t *testing.T, want, got color.NRGBA, delta int) {
	t.Helper()
	d := func(a, b uint8) int { return max(int(a)-int(b), int(b)-int(a)) }
	if d(want.R, got.R) > delta || d(want.G, got.G) > delta || d(want.B, got.B) > delta || d(want.A, got.A) > delta {
		t.Errorf("color = %v, want %v (±%d)", got, want, delta)
	}
}

func TestLayerDefaults(t *testing.T) {
	c := newTestCanvas(t, 40, 30)
	a := newTestLayer(t, c, "a")
	b := newTestLayer(t, c, "b")

	assert.Equal(t, "a", a.Name())
	assert.Greater(t, b.ID(), a.ID())
	assert.Equal(t, 40, a.Width())
	assert.Equal(t, 30, a.Height())
	assert.Equal(t, 1.0, a.Opacity())
	assert.Equal(t, BlendNormal, a.BlendMode())
	assert.True(t, a.Visible())
	assert.Same(t, c.Fonts(), a.Fonts())
	x, y := a.Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestLayerMetadataSetters(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 10, 10), "l")
	l.SetPosition(1.5, -2)
	l.SetBlendMode(BlendScreen)
	l.SetVisible(false)

	x, y := l.Position()
	assert.Equal(t, 1.5, x)
	assert.Equal(t, -2.0, y)
	assert.Equal(t, BlendScreen, l.BlendMode())
	assert.False(t, l.Visible())

	for _, tt := range []struct{ in, want float64 }{{0.4, 0.4}, {-1, 0}, {3, 1}, {math.NaN(), 0}} {
		l.SetOpacity(tt.in)
		assert.Equal(t, tt.want, l.Opacity(), "SetOpacity(%v)", tt.in)
	}
}

func TestLayerFillRect(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 20, 20), "l")
	require.NoError(t, l.FillRect(5, 5, 10, 10, Red))

	p := l.Pixmap()
	assert.Equal(t, Red.NRGBA(), p.NRGBAAt(10, 10))
	assert.Equal(t, Red.NRGBA(), p.NRGBAAt(5, 5))
	assert.Equal(t, color.NRGBA{}, p.NRGBAAt(4, 4))
	assert.Equal(t, color.NRGBA{}, p.NRGBAAt(15, 15))
}

func TestLayerPixmapIsCopy(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 4, 4), "l")
	p := l.Pixmap()
	p.Fill(Red)
	assert.Equal(t, color.NRGBA{}, l.Pixmap().NRGBAAt(0, 0))
}

func TestLayerDrawFailureLeavesBufferUntouched(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 10, 10), "l")
	l.Fill(Blue)
	before := l.Pixmap()

	tests := []struct {
		name string
		draw func() error
	}{
		{"empty path", func() error { return l.FillPath(NewPath(), Red) }},
		{"nil path", func() error { return l.FillPath(nil, Red) }},
		{"nil shape", func() error { return l.Draw(nil, Filled(Red)) }},
		{"single point polyline", func() error { return l.DrawPolyline([]Point{{1, 1}}, Red, 2) }},
		{"one-point star", func() error { return l.FillStar(5, 5, 1, 4, 2, Red) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draw()
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.True(t, before.Equal(l.Pixmap()), "buffer changed after a failed draw")
		})
	}
}

func TestLayerDrawNoPaintIsNoop(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 10, 10), "l")
	require.NoError(t, l.Draw(Rect{W: 10, H: 10}, DefaultShapeStyle()))
	require.NoError(t, l.Draw(Rect{W: 10, H: 10}, Filled(Red).WithOpacity(0)))
	assert.Equal(t, color.NRGBA{}, l.Pixmap().NRGBAAt(5, 5))
}

func TestLayerShapeHelpers(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	tests := []struct {
		name  string
		draw  func(l *Layer) error
		inked [2]int
		bare  [2]int
	}{
		{"stroke rect", func(l *Layer) error { return l.StrokeRect(10, 10, 80, 80, Red, 4) }, [2]int{10, 50}, [2]int{50, 50}},
		{"rounded rect", func(l *Layer) error { return l.FillRoundedRect(10, 10, 80, 80, 30, Red) }, [2]int{50, 50}, [2]int{11, 11}},
		{"circle", func(l *Layer) error { return l.FillCircle(50, 50, 20, Red) }, [2]int{50, 50}, [2]int{31, 31}},
		{"stroke circle", func(l *Layer) error { return l.StrokeCircle(50, 50, 20, Red, 4) }, [2]int{70, 50}, [2]int{50, 50}},
		{"ellipse", func(l *Layer) error { return l.FillEllipse(50, 50, 40, 10, Red) }, [2]int{85, 50}, [2]int{50, 65}},
		{"line", func(l *Layer) error { return l.DrawLine(0, 50, 100, 50, Red, 4) }, [2]int{20, 50}, [2]int{20, 60}},
		{"polyline", func(l *Layer) error { return l.DrawPolyline([]Point{{10, 10}, {90, 10}, {90, 90}}, Red, 4) }, [2]int{90, 50}, [2]int{50, 50}},
		{"polygon", func(l *Layer) error { return l.FillPolygon([]Point{{0, 0}, {100, 0}, {0, 100}}, Red) }, [2]int{20, 20}, [2]int{80, 80}},
		{"triangle", func(l *Layer) error { return l.FillTriangle(Pt(50, 10), Pt(90, 90), Pt(10, 90), Red) }, [2]int{50, 60}, [2]int{10, 10}},
		{"arc", func(l *Layer) error { return l.DrawArc(50, 50, 30, 0, math.Pi, Red, 4) }, [2]int{50, 80}, [2]int{50, 20}},
		{"bezier", func(l *Layer) error {
			return l.DrawBezier(Pt(10, 50), Pt(10, 50), Pt(90, 50), Pt(90, 50), Red, 4)
		}, [2]int{50, 50}, [2]int{50, 60}},
		{"quad bezier", func(l *Layer) error { return l.DrawQuadBezier(Pt(10, 90), Pt(50, 90), Pt(90, 90), Red, 4) }, [2]int{50, 90}, [2]int{50, 50}},
		{"star", func(l *Layer) error { return l.FillStar(50, 50, 5, 40, 15, Red) }, [2]int{50, 50}, [2]int{5, 95}},
		{"stroke path", func(l *Layer) error {
			return l.StrokePath(NewPath().MoveTo(10, 30).LineTo(90, 30), Red, DefaultStrokeStyle().WithWidth(6))
		}, [2]int{50, 30}, [2]int{50, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayer(t, c, tt.name)
			require.NoError(t, tt.draw(l))
			p := l.Pixmap()
			assert.Greater(t, p.NRGBAAt(tt.inked[0], tt.inked[1]).A, uint8(200), "expected ink at %v", tt.inked)
			assert.Zero(t, p.NRGBAAt(tt.bare[0], tt.bare[1]).A, "expected no ink at %v", tt.bare)
		})
	}
}

func TestLayerFillAndStrokeTogether(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 40, 40), "l")
	style := Filled(Blue).WithStroke(Red).WithStrokeWidth(4)
	require.NoError(t, l.Draw(Rect{X: 10, Y: 10, W: 20, H: 20}, style))
	p := l.Pixmap()
	assert.Equal(t, Blue.NRGBA(), p.NRGBAAt(20, 20))
	assert.Equal(t, Red.NRGBA(), p.NRGBAAt(10, 20))
}

func TestLayerShapeOpacity(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 10, 10), "l")
	require.NoError(t, l.Draw(Rect{W: 10, H: 10}, Filled(Red).WithOpacity(0.5)))
	assertNRGBA(t, color.NRGBA{255, 0, 0, 128}, l.Pixmap().NRGBAAt(5, 5), 2)
}

func TestLayerGradientAndPatternFill(t *testing.T) {
	c := newTestCanvas(t, 100, 10)

	l := newTestLayer(t, c, "gradient")
	g := NewLinearGradient(0, 0, 100, 0).AddStop(0, Red).AddStop(1, Blue)
	require.NoError(t, l.FillRect(0, 0, 100, 10, g))
	p := l.Pixmap()
	assert.Greater(t, p.NRGBAAt(1, 5).R, uint8(240))
	assert.Greater(t, p.NRGBAAt(98, 5).B, uint8(240))
	mid := p.NRGBAAt(50, 5)
	assert.InDelta(t, 127, mid.R, 3)
	assert.InDelta(t, 127, mid.B, 3)

	tile, err := NewPixmap(2, 1)
	require.NoError(t, err)
	tile.SetNRGBA(0, 0, Red.NRGBA())
	tile.SetNRGBA(1, 0, Blue.NRGBA())
	pl := newTestLayer(t, c, "pattern")
	require.NoError(t, pl.FillRect(0, 0, 100, 10, NewPattern(tile)))
	pp := pl.Pixmap()
	assert.Equal(t, Red.NRGBA(), pp.NRGBAAt(10, 3))
	assert.Equal(t, Blue.NRGBA(), pp.NRGBAAt(11, 3))

	pl.Fill(Pattern{Color: Green})
	assert.Equal(t, Green.NRGBA(), pl.Pixmap().NRGBAAt(0, 0))
}

func TestLayerFill(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 10, 10), "l")
	l.Fill(NamedColor("gold"))
	assert.Equal(t, RGB(255, 215, 0).NRGBA(), l.Pixmap().NRGBAAt(9, 9))

	l.Fill(NewRadialGradient(0, 0, 1).AddStop(0, White))
	assert.Equal(t, White.NRGBA(), l.Pixmap().NRGBAAt(5, 5))

	l.Fill(nil)
	assert.Equal(t, color.NRGBA{}, l.Pixmap().NRGBAAt(5, 5))

	l.Fill(Red)
	l.Clear()
	assert.Equal(t, color.NRGBA{}, l.Pixmap().NRGBAAt(0, 0))
}

func TestLayerResizeResamples(t *testing.T) {
	c := newTestCanvas(t, 400, 400)
	l := newTestLayer(t, c, "l")
	require.NoError(t, l.FillRect(0, 0, 200, 400, Red))
	require.NoError(t, l.FillRect(200, 0, 200, 400, Blue))

	require.NoError(t, l.SetDimensions(200, 200))
	assert.Equal(t, 200, l.Width())
	assert.Equal(t, 200, l.Height())
	p := l.Pixmap()
	require.Equal(t, 200, p.Width())
	require.Equal(t, 200, p.Height())
	// Stretched, not cropped: both halves survive at half size.
	assertNRGBA(t, Red.NRGBA(), p.NRGBAAt(50, 100), 1)
	assertNRGBA(t, Blue.NRGBA(), p.NRGBAAt(150, 100), 1)
	assertNRGBA(t, Blue.NRGBA(), p.NRGBAAt(199, 199), 1)

	w, h := l.BaseSize()
	assert.Equal(t, [2]int{400, 400}, [2]int{w, h})

	require.NoError(t, l.SetWidth(100))
	assert.Equal(t, 100, l.Width())
	assert.Equal(t, 200, l.Height())
	require.NoError(t, l.SetHeight(50))
	assert.Equal(t, 50, l.Pixmap().Height())

	require.NoError(t, l.ResetDimensions())
	assert.Equal(t, 400, l.Width())
	assert.Equal(t, 400, l.Pixmap().Width())
	assert.NoError(t, l.checkState())
}

func TestLayerResizeInvalid(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 10, 10), "l")
	for _, d := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {MaxDimension + 1, 5}, {1 << 31, 1 << 31}} {
		err := l.SetDimensions(d[0], d[1])
		var de *DimensionsError
		assert.True(t, errors.As(err, &de), "SetDimensions(%d, %d) error = %v", d[0], d[1], err)
	}
	assert.ErrorIs(t, l.SetWidth(0), ErrInvalidDimensions)
	assert.ErrorIs(t, l.SetHeight(-3), ErrInvalidDimensions)
	assert.ErrorIs(t, l.SetWidth(MaxDimension+1), ErrInvalidDimensions)
	assert.Equal(t, 10, l.Width())
	assert.Equal(t, 10, l.Pixmap().Width())
}

func TestLayerDrawImage(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 20, 20), "l")
	img, err := NewPixmap(4, 4)
	require.NoError(t, err)
	img.Fill(Red)

	require.NoError(t, l.DrawImage(img, ImageAt(2.4, 3.6)))
	p := l.Pixmap()
	assert.Equal(t, Red.NRGBA(), p.NRGBAAt(2, 4))
	assert.Equal(t, Red.NRGBA(), p.NRGBAAt(5, 7))
	assert.Zero(t, p.NRGBAAt(6, 4).A)
	assert.Zero(t, p.NRGBAAt(2, 3).A)

	// Scaled with preserved aspect ratio, half transparent.
	l.Clear()
	require.NoError(t, l.DrawImage(img, ImageOptions{X: 0, Y: 0, Width: 8, Opacity: 0.5}))
	p = l.Pixmap()
	assert.InDelta(t, 128, p.NRGBAAt(7, 7).A, 1)
	assert.Zero(t, p.NRGBAAt(8, 8).A)

	assert.ErrorIs(t, l.DrawImage(nil, ImageAt(0, 0)), ErrInvalidState)
	assert.ErrorIs(t, l.DrawImage(img, ImageOptions{Width: MaxDimension + 1, Opacity: 1}), ErrInvalidDimensions)
}

func TestScaledSize(t *testing.T) {
	tests := []struct {
		srcW, srcH, w, h int
		wantW, wantH     int
		scale            bool
	}{
		{10, 20, 0, 0, 10, 20, false},
		{10, 20, 10, 20, 10, 20, false},
		{10, 20, 5, 0, 5, 10, true},
		{10, 20, 0, 40, 20, 40, true},
		{10, 20, 3, 3, 3, 3, true},
	}
	for _, tt := range tests {
		w, h, scale := scaledSize(tt.srcW, tt.srcH, tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH || scale != tt.scale {
			t.Errorf("scaledSize(%d, %d, %d, %d) = %d, %d, %v; want %d, %d, %v",
				tt.srcW, tt.srcH, tt.w, tt.h, w, h, scale, tt.wantW, tt.wantH, tt.scale)
		}
	}
}

func TestLayerApplyFilter(t *testing.T) {
	l := newTestLayer(t, newTestCanvas(t, 8, 8), "l")
	l.Fill(Red)

	require.NoError(t, l.ApplyFilter(Grayscale()))
	got := l.Pixmap().NRGBAAt(3, 3)
	assert.InDelta(t, 76, got.R, 1)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, uint8(255), got.A)

	require.NoError(t, l.ApplyFilter(Chain(Invert(), Invert())))
	assert.Equal(t, got, l.Pixmap().NRGBAAt(3, 3))

	assert.ErrorIs(t, l.ApplyFilter(nil), ErrInvalidState)
	shrink := FilterFunc(func(*image.NRGBA) *image.NRGBA { return image.NewNRGBA(image.Rect(0, 0, 1, 1)) })
	assert.ErrorIs(t, l.ApplyFilter(shrink), ErrInvalidState)
	assert.Equal(t, 8, l.Pixmap().Width())
}
