package filter

import (
	"image"

	intImage "github.com/gogpu/clove/internal/image"
)

// MaxBoxRadius is the largest radius BoxBlurFilter honors.
const MaxBoxRadius = 50

// BoxBlurFilter averages each pixel with its neighbors within Radius pixels,
// horizontally then vertically. Windows are truncated at the image edges.
type BoxBlurFilter struct {
	Radius float64
}

// NewBoxBlurFilter creates a box blur. The radius is truncated to an integer
// and clamped to [0, MaxBoxRadius].
func NewBoxBlurFilter(radius float64) *BoxBlurFilter {
	return &BoxBlurFilter{Radius: radius}
}

func (f *BoxBlurFilter) radius() int {
	if !(f.Radius > 0) {
		return 0
	}
	return int(min(f.Radius, MaxBoxRadius))
}

// Apply blurs src into a new image.
func (f *BoxBlurFilter) Apply(src *image.NRGBA) *image.NRGBA {
	r := f.radius()
	if r == 0 {
		return intImage.Clone(src)
	}

	p := intImage.Premultiply(src)
	tmp := image.NewRGBA(p.Bounds())
	w, h := p.Rect.Dx(), p.Rect.Dy()
	for y := 0; y < h; y++ {
		boxLine(tmp.Pix, p.Pix, y*p.Stride, w, 4, r)
	}
	for x := 0; x < w; x++ {
		boxLine(p.Pix, tmp.Pix, x*4, h, p.Stride, r)
	}
	return intImage.Unpremultiply(p)
}

// boxLine writes the running window average of n pixels starting at byte
// offset off, step bytes apart.
func boxLine(dst, src []uint8, off, n, step, radius int) {
	var sum [4]uint32
	lo, hi := 0, 0
	for i := 0; i < n; i++ {
		for ; hi < n && hi <= i+radius; hi++ {
			p := off + hi*step
			sum[0] += uint32(src[p])
			sum[1] += uint32(src[p+1])
			sum[2] += uint32(src[p+2])
			sum[3] += uint32(src[p+3])
		}
		for ; lo < i-radius; lo++ {
			p := off + lo*step
			sum[0] -= uint32(src[p])
			sum[1] -= uint32(src[p+1])
			sum[2] -= uint32(src[p+2])
			sum[3] -= uint32(src[p+3])
		}
		count := uint32(hi - lo)
		p := off + i*step
		for c := 0; c < 4; c++ {
			dst[p+c] = uint8((sum[c] + count/2) / count)
		}
	}
}

// BlurFilter applies a separable Gaussian blur. The radii are standard
// deviations in pixels; the kernel extends to three of them.
type BlurFilter struct {
	RadiusX float64
	RadiusY float64
}

// NewBlurFilter creates a Gaussian blur with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{RadiusX: radius, RadiusY: radius}
}

// NewBlurFilterXY creates a Gaussian blur with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{RadiusX: radiusX, RadiusY: radiusY}
}

// Apply blurs src into a new image.
func (f *BlurFilter) Apply(src *image.NRGBA) *image.NRGBA {
	if !(f.RadiusX > 0) && !(f.RadiusY > 0) {
		return intImage.Clone(src)
	}

	p := intImage.Premultiply(src)
	w, h := p.Rect.Dx(), p.Rect.Dy()
	buf := make([]float32, w*h*4)
	for y := 0; y < h; y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w*4]
		for i, v := range row {
			buf[y*w*4+i] = float32(v)
		}
	}

	out := convolve(buf, w, h, 4, CachedGaussianKernel(f.RadiusX), CachedGaussianKernel(f.RadiusY))

	for y := 0; y < h; y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w*4]
		for i := range row {
			row[i] = clampUint8(out[y*w*4+i])
		}
	}
	return intImage.Unpremultiply(p)
}
