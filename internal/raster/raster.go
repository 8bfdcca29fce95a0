// Package raster fills and strokes flattened paths onto premultiplied RGBA
// images.
//
// Coverage is computed by golang.org/x/image/vector, which accumulates the
// signed area of every subpath into one buffer. Overlapping subpaths of the
// same orientation therefore union, and the result follows the non-zero
// winding rule.
package raster

import (
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/clove/internal/path"
	"github.com/gogpu/clove/internal/stroke"
)

// ErrEmptyPath is returned when a path has nothing to fill.
var ErrEmptyPath = errors.New("raster: empty path")

// Rasterizer turns subpaths into coverage masks. The zero value is not
// usable; create one with NewRasterizer. A Rasterizer reuses its buffers
// between calls and is not safe for concurrent use.
type Rasterizer struct {
	z    *vector.Rasterizer
	mask *image.Alpha
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{z: vector.NewRasterizer(0, 0)}
}

// Fill paints src through the coverage of subs onto dst with source-over.
// Open subpaths are closed implicitly. src is sampled in dst coordinates.
// opacity is clamped to [0, 1] and scales the coverage.
func (r *Rasterizer) Fill(dst *image.RGBA, subs []path.Subpath, src image.Image, opacity float64) error {
	if len(subs) == 0 {
		return ErrEmptyPath
	}
	mask, at := r.Mask(subs, dst.Bounds())
	if mask == nil {
		return nil
	}
	applyOpacity(mask, opacity)
	xdraw.DrawMask(dst, mask.Bounds().Add(at), src, at, mask, image.Point{}, xdraw.Over)
	return nil
}

// Stroke expands subs with style and fills the outline.
func (r *Rasterizer) Stroke(dst *image.RGBA, subs []path.Subpath, style stroke.Style, src image.Image, opacity float64) error {
	if len(subs) == 0 {
		return ErrEmptyPath
	}
	outline := stroke.NewExpander(style).Expand(subs)
	if len(outline) == 0 {
		return nil
	}
	return r.Fill(dst, outline, src, opacity)
}

// Mask rasterizes subs clipped to clip. It returns the coverage mask, whose
// bounds start at the origin, and the position of the mask in clip's
// coordinate space. The mask is nil when nothing is covered.
//
// The returned mask is owned by r and is overwritten by the next call.
func (r *Rasterizer) Mask(subs []path.Subpath, clip image.Rectangle) (*image.Alpha, image.Point) {
	minP, maxP, ok := path.Bounds(subs)
	if !ok || !finite(minP) || !finite(maxP) {
		return nil, image.Point{}
	}
	box := image.Rect(
		clampInt(math.Floor(minP.X)-1), clampInt(math.Floor(minP.Y)-1),
		clampInt(math.Ceil(maxP.X)+1), clampInt(math.Ceil(maxP.Y)+1),
	).Intersect(clip)
	if box.Empty() {
		return nil, image.Point{}
	}

	w, h := box.Dx(), box.Dy()
	r.z.Reset(w, h)
	r.z.DrawOp = xdraw.Src
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	for _, s := range subs {
		if len(s.Points) < 2 {
			continue
		}
		p := s.Points[0]
		r.z.MoveTo(float32(p.X-ox), float32(p.Y-oy))
		for _, p := range s.Points[1:] {
			r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		r.z.ClosePath()
	}

	if r.mask == nil || cap(r.mask.Pix) < w*h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		r.mask.Pix = r.mask.Pix[:w*h]
		r.mask.Stride = w
		r.mask.Rect = image.Rect(0, 0, w, h)
	}
	r.z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})
	return r.mask, box.Min
}

func applyOpacity(mask *image.Alpha, opacity float64) {
	if opacity >= 1 {
		return
	}
	if !(opacity > 0) {
		clear(mask.Pix)
		return
	}
	s := uint32(math.Round(opacity * 255))
	for i, v := range mask.Pix {
		mask.Pix[i] = uint8((uint32(v)*s + 127) / 255)
	}
}

func finite(p path.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func clampInt(v float64) int {
	const limit = 1 << 30
	return int(math.Max(-limit, math.Min(limit, v)))
}
