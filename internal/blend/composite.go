package blend

import (
	"image"

	"github.com/gogpu/clove/internal/parallel"
)

// Composite blends src onto dst with its top-left corner at (x, y) in dst
// coordinates. Both images are premultiplied. opacity is clamped to [0, 1]
// and scales the whole source uniformly before the blend function runs.
//
// Pixels of src that fall outside dst are skipped.
func Composite(dst, src *image.RGBA, x, y int, mode Mode, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	sb := src.Bounds()
	db := dst.Bounds()

	// Destination region covered by the source, clipped to dst.
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Intersect(db)
	if r.Empty() {
		return
	}

	fn := Get(mode)
	scale := uint32(math255(opacity))

	// Rows are independent, so large regions are split into bands.
	parallel.Rows(r.Min.Y, r.Max.Y, r.Dx(), func(y0, y1 int) {
		for dy := y0; dy < y1; dy++ {
			sy := sb.Min.Y + dy - y
			so := src.PixOffset(sb.Min.X+r.Min.X-x, sy)
			do := dst.PixOffset(r.Min.X, dy)
			for dx := r.Min.X; dx < r.Max.X; dx++ {
				s := src.Pix[so : so+4 : so+4]
				d := dst.Pix[do : do+4 : do+4]
				so += 4
				do += 4

				sr, sg, sbl, sa := s[0], s[1], s[2], s[3]
				if sa == 0 {
					continue
				}
				if scale < 255 {
					sr = scaleByte(sr, scale)
					sg = scaleByte(sg, scale)
					sbl = scaleByte(sbl, scale)
					sa = scaleByte(sa, scale)
				}
				d[0], d[1], d[2], d[3] = fn(sr, sg, sbl, sa, d[0], d[1], d[2], d[3])
			}
		}
	})
}

func math255(f float64) int {
	return int(f*255 + 0.5)
}

func scaleByte(c byte, scale uint32) byte {
	return byte((uint32(c)*scale + 127) / 255)
}
