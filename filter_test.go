package clove

import (
	"image"
	"image/color"
	"testing"
)

func TestFiltersKeepSize(t *testing.T) {
	filters := map[string]Filter{
		"blur":        Blur(2),
		"gaussian":    GaussianBlur(1.5),
		"gaussian xy": GaussianBlurXY(3, 0),
		"grayscale":   Grayscale(),
		"sepia":       Sepia(),
		"invert":      Invert(),
		"brightness":  Brightness(0.2),
		"contrast":    Contrast(0.5),
		"saturation":  Saturation(-0.5),
		"hue":         HueRotate(90),
		"sharpen":     Sharpen(1),
		"fade":        Fade(0.5),
		"drop shadow": DropShadow(2, 2, 1, Black.WithAlpha(128)),
		"chain":       Chain(Grayscale(), Invert()),
		"empty chain": Chain(),
	}
	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			c, _ := New(12, 9)
			l, _ := c.CreateLayer("l")
			if err := l.FillCircle(6, 4, 3, Red); err != nil {
				t.Fatal(err)
			}
			if err := l.ApplyFilter(f); err != nil {
				t.Fatalf("ApplyFilter() error = %v", err)
			}
			if p := l.Pixmap(); p.Width() != 12 || p.Height() != 9 {
				t.Errorf("size = %dx%d, want 12x9", p.Width(), p.Height())
			}
		})
	}
}

func TestChainOrderAndCopy(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	out := Chain().Apply(src)
	if out == src {
		t.Fatal("empty chain returned its input")
	}
	out.Pix[0] = 0
	if src.Pix[0] != 200 {
		t.Error("empty chain output aliases the input")
	}

	var order []string
	record := func(name string) Filter {
		return FilterFunc(func(img *image.NRGBA) *image.NRGBA {
			order = append(order, name)
			return img
		})
	}
	Chain(record("a"), record("b"), record("c")).Apply(src)
	if len(order) != 3 || order[0] != "a" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
}

func TestFadeHalvesAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 200})
	got := Fade(0.5).Apply(src).NRGBAAt(0, 0)
	if got.A < 99 || got.A > 101 || got.R < 9 || got.R > 11 {
		t.Errorf("Fade(0.5) = %v, want alpha 100 and unchanged color", got)
	}
}

func TestColorMatrixSwapsChannels(t *testing.T) {
	swap := ColorMatrix([20]float32{
		0, 0, 1, 0, 0,
		0, 1, 0, 0, 0,
		1, 0, 0, 0, 0,
		0, 0, 0, 1, 0,
	})
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 255})
	if got := swap.Apply(src).NRGBAAt(0, 0); got != (color.NRGBA{50, 100, 200, 255}) {
		t.Errorf("ColorMatrix swap = %v, want {50 100 200 255}", got)
	}
}
