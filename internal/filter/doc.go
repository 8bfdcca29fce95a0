// Package filter implements whole-image pixel filters for layer buffers.
//
// Every filter is a pure function from a straight-alpha *image.NRGBA to a
// new image of the same size:
//   - color matrices (brightness, contrast, saturation, hue rotation,
//     grayscale, sepia, invert, opacity)
//   - box and Gaussian blur, computed on premultiplied data so transparent
//     pixels do not bleed dark fringes into their neighbors
//   - sharpen (3x3 unsharp kernel)
//   - drop shadow
//
// Color matrix filters preserve alpha unless their matrix says otherwise.
package filter

import "image"

// Filter transforms an image into a new image of the same bounds. The
// source is never modified.
type Filter interface {
	Apply(src *image.NRGBA) *image.NRGBA
}
