package clove

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync/atomic"

	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/clove/internal/image"
	"github.com/gogpu/clove/internal/raster"
	"github.com/gogpu/clove/text"
)

// LayerID identifies a layer. IDs are unique within the process and
// increase in creation order.
type LayerID uint64

var lastLayerID atomic.Uint64

func nextLayerID() LayerID {
	return LayerID(lastLayerID.Add(1))
}

// Layer is an independent straight-alpha pixel buffer with a position,
// opacity, blend mode and visibility. Layers are created by a Canvas and
// composited in creation order by Canvas.Merge.
//
// Every draw call renders into a premultiplied copy of the buffer and
// commits the copy only on success, so a failed draw leaves the layer
// unchanged.
//
// A Layer is not safe for concurrent use.
type Layer struct {
	id   LayerID
	name string
	buf  *Pixmap

	x, y      float64
	opacity   float64
	blend     BlendMode
	visible   bool
	baseW     int
	baseH     int
	overrideW *int
	overrideH *int

	fonts   *text.Registry
	canvasW int // for the FullPage text width policy

	rast *raster.Rasterizer
}

func newLayer(name string, width, height, canvasW int, fonts *text.Registry) (*Layer, error) {
	buf, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	l := &Layer{
		id:      nextLayerID(),
		name:    name,
		buf:     buf,
		opacity: 1,
		blend:   BlendNormal,
		visible: true,
		baseW:   width,
		baseH:   height,
		fonts:   fonts,
		canvasW: canvasW,
	}
	Logger().Debug("clove: layer created", "id", l.id, "name", name, "width", width, "height", height)
	return l, nil
}

// ID returns the layer's identifier.
func (l *Layer) ID() LayerID { return l.id }

// Name returns the name given at creation.
func (l *Layer) Name() string { return l.name }

// Width returns the effective width: the override if set, else the base
// width.
func (l *Layer) Width() int {
	if l.overrideW != nil {
		return *l.overrideW
	}
	return l.baseW
}

// Height returns the effective height.
func (l *Layer) Height() int {
	if l.overrideH != nil {
		return *l.overrideH
	}
	return l.baseH
}

// BaseSize returns the size the layer was created with.
func (l *Layer) BaseSize() (width, height int) { return l.baseW, l.baseH }

// SetWidth overrides the width and resamples the content to fit.
func (l *Layer) SetWidth(w int) error {
	return l.SetDimensions(w, l.Height())
}

// SetHeight overrides the height and resamples the content to fit.
func (l *Layer) SetHeight(h int) error {
	return l.SetDimensions(l.Width(), h)
}

// SetDimensions overrides both sides and resamples the content with a
// Lanczos3 filter. The content is stretched, not cropped.
func (l *Layer) SetDimensions(w, h int) error {
	if err := checkDimensions(w, h); err != nil {
		return err
	}
	if err := l.resize(w, h); err != nil {
		return err
	}
	l.overrideW, l.overrideH = &w, &h
	return nil
}

// ResetDimensions drops the size overrides and resamples back to the base
// size.
func (l *Layer) ResetDimensions() error {
	if err := l.resize(l.baseW, l.baseH); err != nil {
		return err
	}
	l.overrideW, l.overrideH = nil, nil
	return nil
}

func (l *Layer) resize(w, h int) error {
	if l.buf.Width() == w && l.buf.Height() == h {
		return nil
	}
	img, err := intImage.Resample(l.buf.NRGBA(), w, h, intImage.Lanczos3)
	if err != nil {
		return &DimensionsError{Width: w, Height: h}
	}
	Logger().Debug("clove: layer resized", "id", l.id, "name", l.name,
		"from_width", l.buf.Width(), "from_height", l.buf.Height(), "width", w, "height", h)
	l.buf = fromNRGBA(img)
	return nil
}

// SetPosition moves the layer's top-left corner on the canvas. Positions
// are rounded to whole pixels when compositing.
func (l *Layer) SetPosition(x, y float64) { l.x, l.y = x, y }

// Position returns the layer's top-left corner on the canvas.
func (l *Layer) Position() (x, y float64) { return l.x, l.y }

// SetOpacity sets the layer opacity, clamped to [0, 1].
func (l *Layer) SetOpacity(o float64) { l.opacity = clamp01(o) }

// Opacity returns the layer opacity.
func (l *Layer) Opacity() float64 { return l.opacity }

// SetBlendMode sets how the layer combines with the layers below it.
func (l *Layer) SetBlendMode(m BlendMode) { l.blend = m }

// BlendMode returns the layer's blend mode.
func (l *Layer) BlendMode() BlendMode { return l.blend }

// SetVisible shows or hides the layer. Hidden layers are skipped by Merge.
func (l *Layer) SetVisible(v bool) { l.visible = v }

// Visible reports whether the layer takes part in Merge.
func (l *Layer) Visible() bool { return l.visible }

// Fonts returns the font registry used by DrawText.
func (l *Layer) Fonts() *text.Registry { return l.fonts }

// SetFonts replaces the font registry used by DrawText.
func (l *Layer) SetFonts(r *text.Registry) { l.fonts = r }

// Pixmap returns a copy of the layer content.
func (l *Layer) Pixmap() *Pixmap { return l.buf.Clone() }

// Clear makes the whole layer transparent.
func (l *Layer) Clear() { l.buf.Clear() }

// Fill replaces every pixel with c. Gradients and patterns are sampled in
// layer coordinates.
func (l *Layer) Fill(c Color) {
	if rgba, ok := c.(RGBA); ok {
		l.buf.Fill(rgba)
		return
	}
	src := resolvePaint(c)
	if src == nil {
		l.buf.Clear()
		return
	}
	dst := l.buf.NRGBA()
	xdraw.Draw(dst, dst.Bounds(), src, image.Point{}, xdraw.Src)
}

// checkState verifies that the buffer matches the effective size.
func (l *Layer) checkState() error {
	if l.buf.Width() != l.Width() || l.buf.Height() != l.Height() {
		return &LayerStateError{
			ID:        l.id,
			WantWidth: l.Width(), WantHeight: l.Height(),
			GotWidth: l.buf.Width(), GotHeight: l.buf.Height(),
		}
	}
	return nil
}

// render runs fn on a premultiplied copy of the buffer and commits the
// result only if fn succeeds.
func (l *Layer) render(fn func(dst *image.RGBA) error) error {
	before := intImage.Premultiply(l.buf.NRGBA())
	after := image.NewRGBA(before.Rect)
	copy(after.Pix, before.Pix)
	if err := fn(after); err != nil {
		return err
	}
	intImage.Commit(l.buf.NRGBA(), before, after)
	return nil
}

// ImageOptions places an image on a layer. Width and Height resize the
// image when positive; when only one is set the other keeps the aspect
// ratio. Opacity is clamped to [0, 1]. Use ImageAt for an opaque,
// unscaled placement.
type ImageOptions struct {
	X, Y          float64
	Width, Height int
	Opacity       float64
}

// ImageAt returns options that draw an image unscaled and opaque at (x, y).
func ImageAt(x, y float64) ImageOptions {
	return ImageOptions{X: x, Y: y, Opacity: 1}
}

// DrawImage composites img onto the layer with source-over. The position
// is rounded to whole pixels.
func (l *Layer) DrawImage(img *Pixmap, opts ImageOptions) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidState)
	}
	src := img.NRGBA()
	if w, h, scale := scaledSize(img.Width(), img.Height(), opts.Width, opts.Height); scale {
		if err := checkDimensions(w, h); err != nil {
			return err
		}
		var err error
		if src, err = intImage.Resample(src, w, h, intImage.Lanczos3); err != nil {
			return &DimensionsError{Width: w, Height: h}
		}
	}
	opacity := clamp01(opts.Opacity)
	if opacity == 0 {
		return nil
	}
	pre := intImage.Premultiply(src)
	at := image.Pt(int(math.Round(opts.X)), int(math.Round(opts.Y)))
	mask := image.NewUniform(color.Alpha{A: unit8(opacity)})
	return l.render(func(dst *image.RGBA) error {
		xdraw.DrawMask(dst, pre.Bounds().Add(at), pre, image.Point{}, mask, image.Point{}, xdraw.Over)
		return nil
	})
}

func scaledSize(srcW, srcH, w, h int) (int, int, bool) {
	switch {
	case w > 0 && h > 0:
	case w > 0:
		h = max(1, int(math.Round(float64(srcH)*float64(w)/float64(srcW))))
	case h > 0:
		w = max(1, int(math.Round(float64(srcW)*float64(h)/float64(srcH))))
	default:
		return srcW, srcH, false
	}
	return w, h, w != srcW || h != srcH
}

// ApplyFilter replaces the layer content with f applied to it.
func (l *Layer) ApplyFilter(f Filter) error {
	if f == nil {
		return fmt.Errorf("%w: nil filter", ErrInvalidState)
	}
	out := f.Apply(l.buf.NRGBA())
	if out == nil || out.Bounds().Dx() != l.buf.Width() || out.Bounds().Dy() != l.buf.Height() {
		return fmt.Errorf("%w: filter changed the layer size", ErrInvalidState)
	}
	l.buf = fromNRGBA(out)
	return nil
}
