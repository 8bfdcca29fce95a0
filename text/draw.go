package text

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Draw rasterizes every glyph of l into dst in color c.
//
// dst holds straight (non-premultiplied) alpha. Glyph coverage times the
// alpha of c is the source alpha. Pixels with zero alpha receive c
// directly; other pixels get a straight-alpha source-over blend. Glyph
// pixels outside dst are skipped.
//
// Glyphs without an outline (color bitmap glyphs) are skipped with a
// warning.
func Draw(dst *image.NRGBA, l *Layout, c color.NRGBA) error {
	if dst == nil || l == nil || c.A == 0 {
		return nil
	}
	g := glyphRasterizer{z: vector.NewRasterizer(0, 0)}
	for i := range l.Lines {
		for j := range l.Lines[i].Glyphs {
			if err := g.draw(dst, &l.Lines[i].Glyphs[j], c); err != nil {
				return err
			}
		}
	}
	return nil
}

// glyphRasterizer holds the scratch state reused across glyphs.
type glyphRasterizer struct {
	buf  sfnt.Buffer
	z    *vector.Rasterizer
	mask image.Alpha
}

func (gr *glyphRasterizer) draw(dst *image.NRGBA, g *Glyph, c color.NRGBA) error {
	if g.Font == nil {
		return nil
	}
	segs, err := g.Font.outline(&gr.buf, g.GID, toFixed(g.Size))
	if errors.Is(err, sfnt.ErrColoredGlyph) {
		Logger().Warn("text: glyph has no outline, skipped", "font", g.Font.name, "gid", g.GID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("text: load glyph %d of %q: %w", g.GID, g.Font.name, err)
	}
	if len(segs) == 0 {
		return nil
	}

	// Glyph origin; sfnt outlines have y growing down.
	ox := g.X + g.XOffset
	oy := g.Y - g.YOffset

	minX, minY, maxX, maxY := inkBounds(segs)
	box := image.Rect(
		int(math.Floor(ox+minX)), int(math.Floor(oy+minY)),
		int(math.Ceil(ox+maxX)), int(math.Ceil(oy+maxY)),
	)
	vis := box.Intersect(dst.Bounds())
	if vis.Empty() {
		return nil
	}

	mask := gr.fill(segs, box, float32(ox-float64(box.Min.X)), float32(oy-float64(box.Min.Y)))
	w := box.Dx()
	for y := vis.Min.Y; y < vis.Max.Y; y++ {
		mi := (y-box.Min.Y)*w + vis.Min.X - box.Min.X
		di := dst.PixOffset(vis.Min.X, y)
		for x := vis.Min.X; x < vis.Max.X; x++ {
			if cov := mask.Pix[mi]; cov != 0 {
				blendPixel(dst.Pix[di:di+4:di+4], c, cov)
			}
			mi++
			di += 4
		}
	}
	return nil
}

// fill rasterizes segs into a coverage mask the size of box. (dx, dy) is
// the glyph origin inside the mask.
func (gr *glyphRasterizer) fill(segs sfnt.Segments, box image.Rectangle, dx, dy float32) *image.Alpha {
	w, h := box.Dx(), box.Dy()
	z := gr.z
	z.Reset(w, h)
	z.DrawOp = draw.Src

	started := false
	for _, s := range segs {
		a := s.Args
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				z.ClosePath()
			}
			z.MoveTo(dx+f32(a[0].X), dy+f32(a[0].Y))
			started = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(dx+f32(a[0].X), dy+f32(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(dx+f32(a[0].X), dy+f32(a[0].Y), dx+f32(a[1].X), dy+f32(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(dx+f32(a[0].X), dy+f32(a[0].Y), dx+f32(a[1].X), dy+f32(a[1].Y), dx+f32(a[2].X), dy+f32(a[2].Y))
		}
	}
	if started {
		z.ClosePath()
	}

	m := &gr.mask
	if n := w * h; cap(m.Pix) >= n {
		m.Pix = m.Pix[:n]
	} else {
		m.Pix = make([]uint8, n)
	}
	m.Stride = w
	m.Rect = image.Rect(0, 0, w, h)
	z.Draw(m, m.Rect, image.Opaque, image.Point{})
	return m
}

// inkBounds returns the bounding box of all segment points relative to the
// glyph origin.
func inkBounds(segs sfnt.Segments) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		n := 1
		switch s.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for _, p := range s.Args[:n] {
			x, y := fromFixed(p.X), fromFixed(p.Y)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY
}

// blendPixel composites c at coverage cov onto the straight-alpha pixel p.
func blendPixel(p []uint8, c color.NRGBA, cov uint8) {
	sa := (uint32(cov)*uint32(c.A) + 127) / 255
	if sa == 0 {
		return
	}
	da := uint32(p[3])
	if da == 0 || sa == 255 {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, uint8(sa)
		return
	}

	// Straight-alpha source-over, all terms scaled by 255.
	inv := 255 - sa
	oa := sa*255 + da*inv
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa*255 + uint32(d)*da*inv + oa/2) / oa)
	}
	p[0], p[1], p[2] = mix(c.R, p[0]), mix(c.G, p[1]), mix(c.B, p[2])
	p[3] = uint8((oa + 127) / 255)
}

func f32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
