// Package image holds the pixel plumbing behind clove layers: the
// straight/premultiplied alpha boundary, high-quality resampling and the
// raster codecs.
//
// Layer content is stored as straight (non-premultiplied) RGBA8 in an
// *image.NRGBA. The raster backend and the compositor work on premultiplied
// *image.RGBA. Conversions happen only at that boundary.
package image

import (
	"errors"
	"image"
	"image/draw"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// NewNRGBA allocates a transparent straight-alpha buffer with a tight stride.
func NewNRGBA(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

// premul scales a straight channel by alpha with rounding.
func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// unpremul recovers a straight channel from a premultiplied one.
// Channels that exceed alpha (resampling overshoot) are clamped.
func unpremul(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	if c >= a {
		return 255
	}
	return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// Premultiply converts a straight-alpha image into a new premultiplied image
// with the same bounds.
func Premultiply(src *image.NRGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	w := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for i := 0; i < w; i += 4 {
			a := s[i+3]
			switch a {
			case 0:
				// d is already zeroed
			case 255:
				copy(d[i:i+4], s[i:i+4])
			default:
				d[i] = premul(s[i], a)
				d[i+1] = premul(s[i+1], a)
				d[i+2] = premul(s[i+2], a)
				d[i+3] = a
			}
		}
	}
	return dst
}

// Unpremultiply converts a premultiplied image into a new straight-alpha
// image with the same bounds.
func Unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	w := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for i := 0; i < w; i += 4 {
			unpremulPixel(d[i:i+4], s[i:i+4])
		}
	}
	return dst
}

func unpremulPixel(d, s []uint8) {
	a := s[3]
	switch a {
	case 0:
		d[0], d[1], d[2], d[3] = 0, 0, 0, 0
	case 255:
		copy(d, s[:4])
	default:
		d[0] = unpremul(s[0], a)
		d[1] = unpremul(s[1], a)
		d[2] = unpremul(s[2], a)
		d[3] = a
	}
}

// Commit writes a rasterized premultiplied buffer back into the straight
// buffer it was derived from. before is the premultiplied snapshot taken
// prior to drawing; pixels whose premultiplied value did not change keep
// their original straight value, so repeated draw round-trips never
// accumulate quantization drift outside the painted area.
//
// All three images must share the same bounds.
func Commit(dst *image.NRGBA, before, after *image.RGBA) {
	b := dst.Bounds()
	w := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		p := before.Pix[y*before.Stride : y*before.Stride+w]
		q := after.Pix[y*after.Stride : y*after.Stride+w]
		for i := 0; i < w; i += 4 {
			if p[i] == q[i] && p[i+1] == q[i+1] && p[i+2] == q[i+2] && p[i+3] == q[i+3] {
				continue
			}
			unpremulPixel(d[i:i+4], q[i:i+4])
		}
	}
}

// ToNRGBA converts any image into a straight-alpha buffer anchored at the
// origin. An *image.NRGBA with a tight stride at the origin is copied
// directly.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		w := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], n.Pix[off:off+w])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Clone returns a deep copy of src.
func Clone(src *image.NRGBA) *image.NRGBA {
	dst := &image.NRGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}
