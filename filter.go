package clove

import (
	"image"

	"github.com/gogpu/clove/internal/filter"
	intImage "github.com/gogpu/clove/internal/image"
)

// Filter transforms a layer buffer into a new buffer of the same size.
// Implementations must not modify src.
type Filter interface {
	Apply(src *image.NRGBA) *image.NRGBA
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(src *image.NRGBA) *image.NRGBA

// Apply calls f(src).
func (f FilterFunc) Apply(src *image.NRGBA) *image.NRGBA { return f(src) }

// Chain returns a filter that applies filters in order.
func Chain(filters ...Filter) Filter {
	return FilterFunc(func(src *image.NRGBA) *image.NRGBA {
		out := src
		for _, f := range filters {
			out = f.Apply(out)
		}
		if out == src {
			return intImage.Clone(src)
		}
		return out
	})
}

// Blur returns a box blur. The radius is clamped to [0, 50] pixels.
func Blur(radius float64) Filter { return filter.NewBoxBlurFilter(radius) }

// GaussianBlur returns a separable Gaussian blur with standard deviation
// sigma in pixels.
func GaussianBlur(sigma float64) Filter { return filter.NewBlurFilter(sigma) }

// GaussianBlurXY is a Gaussian blur with separate horizontal and vertical
// radii.
func GaussianBlurXY(rx, ry float64) Filter { return filter.NewBlurFilterXY(rx, ry) }

// ColorMatrix applies a 4x5 row-major matrix to straight RGBA channels in
// [0, 255]. The fifth column is an offset in the same range.
func ColorMatrix(m [20]float32) Filter { return filter.NewColorMatrixFilter(m) }

// Grayscale replaces color with luma (0.299R + 0.587G + 0.114B).
func Grayscale() Filter { return filter.NewGrayscaleFilter() }

// Sepia applies a sepia tone.
func Sepia() Filter { return filter.NewSepiaFilter() }

// Invert inverts the color channels and keeps alpha.
func Invert() Filter { return filter.NewInvertFilter() }

// Brightness scales color by 1+amount, with amount in [-1, 1].
func Brightness(amount float64) Filter { return filter.NewBrightnessFilter(amount) }

// Contrast stretches color around mid-gray. amount is in [-1, 1); -1 gives
// flat gray.
func Contrast(amount float64) Filter { return filter.NewContrastFilter(amount) }

// Saturation moves color towards gray (amount -1) or away from it
// (amount 1).
func Saturation(amount float64) Filter { return filter.NewSaturationFilter(amount) }

// HueRotate rotates hue by the given degrees.
func HueRotate(degrees float64) Filter { return filter.NewHueRotateFilter(degrees) }

// Sharpen applies a 3x3 sharpening kernel of the given strength.
func Sharpen(amount float64) Filter { return filter.NewSharpenFilter(amount) }

// Fade multiplies alpha by factor.
func Fade(factor float64) Filter { return filter.NewOpacityFilter(factor) }

// DropShadow draws a blurred copy of the alpha channel in color c behind
// the content, offset by (dx, dy).
func DropShadow(dx, dy, blur float64, c Color) Filter {
	return filter.NewDropShadowFilter(dx, dy, blur, ToRGBA(c).NRGBA())
}
