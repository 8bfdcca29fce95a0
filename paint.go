package clove

import (
	"fmt"
	"image"
	"image/color"
)

// infinite matches the bounds of image.Uniform so that unbounded sources
// never clip a draw.
var infinite = image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}

// resolvePaint turns a Color into a source image for the raster backend.
// Sources are sampled in layer coordinates. A nil Color resolves to a nil
// image, meaning nothing is painted.
func resolvePaint(c Color) image.Image {
	switch v := c.(type) {
	case nil:
		return nil
	case RGBA:
		return image.NewUniform(v.NRGBA())
	case HSLA:
		return image.NewUniform(v.ToRGBA().NRGBA())
	case NamedColor:
		return image.NewUniform(v.ToRGBA().NRGBA())
	case *LinearGradient:
		return gradientImage{v.ColorAt}
	case *RadialGradient:
		return gradientImage{v.ColorAt}
	case Pattern:
		if v.Tile == nil {
			return image.NewUniform(v.Color.NRGBA())
		}
		return tileImage{v.Tile.NRGBA()}
	default:
		panic(fmt.Sprintf("clove: unknown color type %T", c))
	}
}

// gradientImage samples a gradient at pixel centers.
type gradientImage struct {
	colorAt func(x, y float64) RGBA
}

func (gradientImage) ColorModel() color.Model { return color.NRGBAModel }
func (gradientImage) Bounds() image.Rectangle { return infinite }

func (g gradientImage) At(x, y int) color.Color {
	return g.colorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
}

// tileImage repeats a tile in both directions.
type tileImage struct {
	tile *image.NRGBA
}

func (tileImage) ColorModel() color.Model { return color.NRGBAModel }
func (tileImage) Bounds() image.Rectangle { return infinite }

func (t tileImage) At(x, y int) color.Color {
	w, h := t.tile.Rect.Dx(), t.tile.Rect.Dy()
	x %= w
	if x < 0 {
		x += w
	}
	y %= h
	if y < 0 {
		y += h
	}
	return t.tile.NRGBAAt(x, y)
}
