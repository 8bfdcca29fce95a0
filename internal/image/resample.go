package image

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Lanczos3 is a windowed-sinc kernel with three lobes. It keeps edges
// sharper than CatmullRom at the cost of mild ringing, which the
// premultiplied clamp in Unpremultiply absorbs.
var Lanczos3 = &xdraw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t == 0 {
			return 1
		}
		if t >= 3 {
			return 0
		}
		x := math.Pi * t
		return 3 * math.Sin(x) * math.Sin(x/3) / (x * x)
	},
}

// Resample stretches src to width x height with the given scaler. Scaling
// runs on premultiplied data so that transparent pixels do not bleed their
// color into opaque neighbours. A nil scaler selects Lanczos3.
//
// When the size does not change a copy of src is returned.
func Resample(src *image.NRGBA, width, height int, scaler xdraw.Scaler) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return Clone(src), nil
	}
	if scaler == nil {
		scaler = Lanczos3
	}
	pre := Premultiply(src)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), pre, pre.Bounds(), xdraw.Src, nil)
	return Unpremultiply(dst), nil
}
