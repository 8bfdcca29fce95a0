package filter

import (
	"image"
	"math"
)

// ColorMatrixFilter applies a 4x5 color transformation matrix to every
// pixel. The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are straight-alpha values in [0, 255]; the fifth column is a
// bias in the same range. Results are rounded and clamped.
type ColorMatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	Matrix [20]float32
}

// NewColorMatrixFilter creates a color matrix filter with the given matrix.
func NewColorMatrixFilter(matrix [20]float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: matrix}
}

// NewIdentityColorMatrix creates a color matrix filter that passes through unchanged.
func NewIdentityColorMatrix() *ColorMatrixFilter {
	return NewBrightnessFilter(0)
}

// NewBrightnessFilter scales RGB by 1+amount. amount is clamped to [-1, 1]:
// -1 is black, 0 unchanged, 1 twice as bright.
func NewBrightnessFilter(amount float64) *ColorMatrixFilter {
	f := float32(1 + clampF(amount, -1, 1))
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			f, 0, 0, 0, 0,
			0, f, 0, 0, 0,
			0, 0, f, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewContrastFilter stretches RGB around mid-gray by (1+amount)/(1-amount).
// amount is clamped to [-1, 0.99]: -1 is flat gray, 0 unchanged.
func NewContrastFilter(amount float64) *ColorMatrixFilter {
	a := clampF(amount, -1, 0.99)
	f := float32((1 + a) / (1 - a))
	offset := 127.5 * (1 - f)
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			f, 0, 0, 0, offset,
			0, f, 0, 0, offset,
			0, 0, f, 0, offset,
			0, 0, 0, 1, 0,
		},
	}
}

// Rec. 601 luma weights.
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// NewSaturationFilter blends each pixel between its luma (amount -1) and an
// oversaturated color (amount 1). amount is clamped to [-1, 1].
func NewSaturationFilter(amount float64) *ColorMatrixFilter {
	s := float32(1 + clampF(amount, -1, 1))
	inv := 1 - s
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			lumR*inv + s, lumG * inv, lumB * inv, 0, 0,
			lumR * inv, lumG*inv + s, lumB * inv, 0, 0,
			lumR * inv, lumG * inv, lumB*inv + s, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewGrayscaleFilter replaces RGB with the luma 0.299R + 0.587G + 0.114B.
func NewGrayscaleFilter() *ColorMatrixFilter {
	return NewSaturationFilter(-1)
}

// NewSepiaFilter creates a filter that applies sepia tone effect.
func NewSepiaFilter() *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			0.393, 0.769, 0.189, 0, 0,
			0.349, 0.686, 0.168, 0, 0,
			0.272, 0.534, 0.131, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewInvertFilter inverts RGB and keeps alpha.
func NewInvertFilter() *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			-1, 0, 0, 0, 255,
			0, -1, 0, 0, 255,
			0, 0, -1, 0, 255,
			0, 0, 0, 1, 0,
		},
	}
}

// NewHueRotateFilter rotates hue by degrees around the luma axis, using the
// matrix from the SVG feColorMatrix hueRotate type.
func NewHueRotateFilter(degrees float64) *ColorMatrixFilter {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	c, s := float32(cos), float32(sin)

	const (
		r = 0.213
		g = 0.715
		b = 0.072
	)
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			r + c*(1-r) - s*r, g - c*g - s*g, b - c*b + s*(1-b), 0, 0,
			r - c*r + s*0.143, g + c*(1-g) + s*0.140, b - c*b - s*0.283, 0, 0,
			r - c*r - s*(1-r), g - c*g + s*g, b + c*(1-b) + s*b, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewOpacityFilter multiplies alpha by factor.
func NewOpacityFilter(factor float64) *ColorMatrixFilter {
	f := float32(clampF(factor, 0, 1))
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			1, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, f, 0,
		},
	}
}

// Apply applies the color matrix transformation to the image.
func (f *ColorMatrixFilter) Apply(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	m := &f.Matrix
	w := b.Dx() * 4

	for y := 0; y < b.Dy(); y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for i := 0; i < w; i += 4 {
			r := float32(s[i+0])
			g := float32(s[i+1])
			bl := float32(s[i+2])
			a := float32(s[i+3])

			d[i+0] = clampUint8(m[0]*r + m[1]*g + m[2]*bl + m[3]*a + m[4])
			d[i+1] = clampUint8(m[5]*r + m[6]*g + m[7]*bl + m[8]*a + m[9])
			d[i+2] = clampUint8(m[10]*r + m[11]*g + m[12]*bl + m[13]*a + m[14])
			d[i+3] = clampUint8(m[15]*r + m[16]*g + m[17]*bl + m[18]*a + m[19])
		}
	}
	return dst
}

// Multiply returns a new filter that is the product of this filter and another.
// The result applies other first, then f.
func (f *ColorMatrixFilter) Multiply(other *ColorMatrixFilter) *ColorMatrixFilter {
	a := &f.Matrix
	b := &other.Matrix

	result := &ColorMatrixFilter{}
	r := &result.Matrix

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = a[row*5+0]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}

	return result
}

func clampUint8(v float32) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

func clampF(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
