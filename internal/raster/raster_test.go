package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/clove/internal/path"
	"github.com/gogpu/clove/internal/stroke"
)

func rect(x0, y0, x1, y1 float64) path.Subpath {
	return path.Subpath{Points: []path.Point{
		path.Pt(x0, y0), path.Pt(x1, y0), path.Pt(x1, y1), path.Pt(x0, y1),
	}, Closed: true}
}

var red = image.NewUniform(color.RGBA{255, 0, 0, 255})

func TestFillRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	if err := NewRasterizer().Fill(dst, []path.Subpath{rect(5, 5, 15, 15)}, red, 1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 10, color.RGBA{255, 0, 0, 255}},
		{5, 5, color.RGBA{255, 0, 0, 255}},
		{14, 14, color.RGBA{255, 0, 0, 255}},
		{4, 10, color.RGBA{}},
		{15, 10, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := dst.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFillHalfPixelCoverage(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := NewRasterizer().Fill(dst, []path.Subpath{rect(0, 0, 1.5, 4)}, red, 1); err != nil {
		t.Fatal(err)
	}
	a := dst.RGBAAt(1, 2).A
	if a < 120 || a > 135 {
		t.Errorf("edge pixel alpha = %d, want about 128", a)
	}
}

func TestFillOpacity(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := NewRasterizer().Fill(dst, []path.Subpath{rect(0, 0, 4, 4)}, red, 0.5); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(2, 2); got.A < 127 || got.A > 128 || got.R != got.A {
		t.Errorf("pixel = %v, want premultiplied half red", got)
	}
}

func TestFillClipsToDestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := NewRasterizer().Fill(dst, []path.Subpath{rect(-100, -100, 4, 4)}, red, 1); err != nil {
		t.Fatal(err)
	}
	if dst.RGBAAt(0, 0).A != 255 || dst.RGBAAt(5, 5).A != 0 {
		t.Errorf("clip failed: (0,0)=%v (5,5)=%v", dst.RGBAAt(0, 0), dst.RGBAAt(5, 5))
	}

	// Entirely outside is a no-op, not an error.
	if err := NewRasterizer().Fill(dst, []path.Subpath{rect(50, 50, 60, 60)}, red, 1); err != nil {
		t.Errorf("outside fill error = %v", err)
	}
}

func TestFillEmptyPath(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := NewRasterizer().Fill(dst, nil, red, 1); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Fill(nil) error = %v, want ErrEmptyPath", err)
	}
}

func TestFillNonZeroUnion(t *testing.T) {
	// Two overlapping squares with the same winding must not cancel.
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	subs := []path.Subpath{rect(0, 0, 12, 12), rect(6, 6, 18, 18)}
	if err := NewRasterizer().Fill(dst, subs, red, 1); err != nil {
		t.Fatal(err)
	}
	if a := dst.RGBAAt(9, 9).A; a != 255 {
		t.Errorf("overlap alpha = %d, want 255", a)
	}
}

func TestStroke(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	subs := []path.Subpath{{Points: []path.Point{path.Pt(2, 10), path.Pt(18, 10)}}}
	style := stroke.Style{Width: 4, Cap: stroke.LineCapButt}
	if err := NewRasterizer().Stroke(dst, subs, style, red, 1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y    int
		covered bool
	}{
		{10, 8, true},
		{10, 11, true},
		{10, 5, false},
		{10, 13, false},
		{1, 10, false},
	}
	for _, tt := range tests {
		if covered := dst.RGBAAt(tt.x, tt.y).A == 255; covered != tt.covered {
			t.Errorf("pixel (%d,%d) covered = %v, want %v", tt.x, tt.y, covered, tt.covered)
		}
	}
}

func TestStrokeZeroWidthIsNoop(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	subs := []path.Subpath{{Points: []path.Point{path.Pt(0, 4), path.Pt(8, 4)}}}
	if err := NewRasterizer().Stroke(dst, subs, stroke.Style{}, red, 1); err != nil {
		t.Fatal(err)
	}
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("zero width stroke painted pixels")
		}
	}
}

func TestMaskReuse(t *testing.T) {
	r := NewRasterizer()
	clip := image.Rect(0, 0, 32, 32)
	m1, at1 := r.Mask([]path.Subpath{rect(0, 0, 30, 30)}, clip)
	if m1 == nil || at1 != (image.Point{}) {
		t.Fatalf("Mask() = %v, %v", m1, at1)
	}
	m2, at2 := r.Mask([]path.Subpath{rect(10, 10, 12, 12)}, clip)
	if m2 == nil || at2 != image.Pt(9, 9) {
		t.Fatalf("Mask() origin = %v, want (9,9)", at2)
	}
	if b := m2.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("mask bounds = %v, want 4x4", b)
	}
	if m2.AlphaAt(0, 0).A != 0 || m2.AlphaAt(1, 1).A != 255 {
		t.Errorf("stale coverage in reused mask")
	}
}
