package filter

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/clove/internal/blend"
	intImage "github.com/gogpu/clove/internal/image"
)

// DropShadowFilter draws a blurred, colored copy of the image's alpha
// beneath the image, shifted by the offset. The output keeps the source
// bounds, so shadow falling outside them is cut off.
type DropShadowFilter struct {
	OffsetX, OffsetY float64

	// Radius is the Gaussian standard deviation of the shadow edge.
	Radius float64

	Color color.NRGBA
}

// NewDropShadowFilter creates a new drop shadow filter.
func NewDropShadowFilter(offsetX, offsetY, radius float64, c color.NRGBA) *DropShadowFilter {
	return &DropShadowFilter{OffsetX: offsetX, OffsetY: offsetY, Radius: radius, Color: c}
}

// Apply composites src over its shadow.
func (f *DropShadowFilter) Apply(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	ox := int(math.Round(f.OffsetX))
	oy := int(math.Round(f.OffsetY))

	alpha := make([]float32, w*h)
	for y := 0; y < h; y++ {
		sy := y - oy
		if sy < 0 || sy >= h {
			continue
		}
		for x := 0; x < w; x++ {
			sx := x - ox
			if sx < 0 || sx >= w {
				continue
			}
			alpha[y*w+x] = float32(src.Pix[sy*src.Stride+sx*4+3])
		}
	}
	if f.Radius > 0 {
		k := CachedGaussianKernel(f.Radius)
		alpha = convolve(alpha, w, h, 1, k, k)
	}

	shadow := image.NewRGBA(image.Rect(0, 0, w, h))
	ca := float32(f.Color.A) / 255
	for i, a := range alpha {
		sa := clampUint8(a * ca)
		if sa == 0 {
			continue
		}
		p := shadow.Pix[i*4 : i*4+4 : i*4+4]
		p[0] = premul(f.Color.R, sa)
		p[1] = premul(f.Color.G, sa)
		p[2] = premul(f.Color.B, sa)
		p[3] = sa
	}

	fg := intImage.Premultiply(src)
	fg.Rect = fg.Rect.Sub(b.Min)
	blend.Composite(shadow, fg, 0, 0, blend.Normal, 1)

	out := intImage.Unpremultiply(shadow)
	out.Rect = out.Rect.Add(b.Min)
	return out
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
