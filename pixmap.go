package clove

import (
	"bytes"
	"image"
	"image/color"

	intImage "github.com/gogpu/clove/internal/image"
)

// Pixmap is a rectangular buffer of straight-alpha RGBA8 pixels.
//
// Pixels are stored row by row with a stride of Width()*4 bytes.
// Pixmap implements image.Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap. Both sides must be in
// [1, MaxDimension].
func NewPixmap(width, height int) (*Pixmap, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// PixmapFromImage copies any image into a new pixmap. The result starts at
// the origin regardless of the image bounds.
func PixmapFromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	if err := checkDimensions(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	return fromNRGBA(intImage.ToNRGBA(img)), nil
}

// fromNRGBA adopts a tightly packed NRGBA image without copying.
func fromNRGBA(img *image.NRGBA) *Pixmap {
	b := img.Bounds()
	if img.Stride != b.Dx()*4 || b.Min != (image.Point{}) || len(img.Pix) != b.Dx()*b.Dy()*4 {
		img = intImage.ToNRGBA(img)
	}
	return &Pixmap{width: b.Dx(), height: b.Dy(), data: img.Pix}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data. Modifying it modifies the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// NRGBA returns an *image.NRGBA that shares memory with the pixmap.
func (p *Pixmap) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// NRGBAAt returns the pixel at (x, y). Pixels outside the pixmap are
// transparent.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	s := p.data[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// SetNRGBA sets the pixel at (x, y). Writes outside the pixmap are ignored.
func (p *Pixmap) SetNRGBA(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	s := p.data[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}

// Set implements draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c RGBA) {
	if len(p.data) == 0 {
		return
	}
	copy(p.data, []uint8{c.R, c.G, c.B, c.A})
	for filled := 4; filled < len(p.data); filled *= 2 {
		copy(p.data[filled:], p.data[:filled])
	}
}

// Clear makes every pixel transparent.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{
		width:  p.width,
		height: p.height,
		data:   bytes.Clone(p.data),
	}
}

// Equal reports whether p and q have the same size and pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.width == q.width && p.height == q.height && bytes.Equal(p.data, q.data)
}

// ToImage returns a copy of the pixmap as an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	return intImage.Clone(p.NRGBA())
}
