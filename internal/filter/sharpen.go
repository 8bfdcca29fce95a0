package filter

import (
	"image"

	intImage "github.com/gogpu/clove/internal/image"
)

// SharpenFilter convolves RGB with the kernel
//
//	[ 0  -a   0 ]
//	[-a  1+4a -a]
//	[ 0  -a   0 ]
//
// where a is Amount. Alpha is preserved.
type SharpenFilter struct {
	Amount float64
}

// NewSharpenFilter creates a sharpen filter. Negative amounts act as zero.
func NewSharpenFilter(amount float64) *SharpenFilter {
	return &SharpenFilter{Amount: amount}
}

// Apply sharpens src into a new image.
func (f *SharpenFilter) Apply(src *image.NRGBA) *image.NRGBA {
	if !(f.Amount > 0) {
		return intImage.Clone(src)
	}
	a := float32(f.Amount)
	center := 1 + 4*a

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(b)
	at := func(x, y int) int {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return y*src.Stride + x*4
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := at(x, y)
			up, down, left, right := at(x, y-1), at(x, y+1), at(x-1, y), at(x+1, y)
			d := y*dst.Stride + x*4
			for c := 0; c < 3; c++ {
				v := center*float32(src.Pix[o+c]) -
					a*(float32(src.Pix[up+c])+float32(src.Pix[down+c])+
						float32(src.Pix[left+c])+float32(src.Pix[right+c]))
				dst.Pix[d+c] = clampUint8(v)
			}
			dst.Pix[d+3] = src.Pix[o+3]
		}
	}
	return dst
}
