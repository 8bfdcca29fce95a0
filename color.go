package clove

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is anything that can paint: a flat color, a gradient or a pattern.
//
// The set of implementations is closed: RGBA, HSLA, NamedColor,
// *LinearGradient, *RadialGradient and Pattern.
type Color interface {
	isColor()
}

// RGBA is an 8-bit straight-alpha color.
type RGBA struct {
	R, G, B, A uint8
}

func (RGBA) isColor() {}

// RGB creates an opaque color.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// NewRGBA creates a color from all four components.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n)
}

// NRGBA returns c as a standard library color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// RGBA implements color.Color. The returned values are premultiplied.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c RGBA) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ToHSLA converts c to hue, saturation and lightness.
func (c RGBA) ToHSLA() HSLA {
	h, s, l := c.colorful().Hsl()
	return HSLA{H: h, S: s, L: l, A: float64(c.A) / 255}
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ParseHex parses a hex color.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'. Alpha defaults to 255.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, ok := hexDigit(hex[i])
			if !ok {
				return RGBA{}, &ColorValueError{Component: "hex", Value: s}
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, &ColorValueError{Component: "hex", Value: s}
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return RGBA{}, &ColorValueError{Component: "hex", Value: s}
	}
	return RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// MustHex is like ParseHex but panics on invalid input.
// It is intended for color constants.
func MustHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// HSLA is a color in hue, saturation, lightness and alpha.
// H is in degrees [0, 360], the other components are in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

func (HSLA) isColor() {}

// NewHSLA creates a validated HSLA color.
func NewHSLA(h, s, l, a float64) (HSLA, error) {
	switch {
	case !inRange(h, 0, 360):
		return HSLA{}, &ColorValueError{Component: "hue", Value: fmt.Sprint(h)}
	case !inRange(s, 0, 1):
		return HSLA{}, &ColorValueError{Component: "saturation", Value: fmt.Sprint(s)}
	case !inRange(l, 0, 1):
		return HSLA{}, &ColorValueError{Component: "lightness", Value: fmt.Sprint(l)}
	case !inRange(a, 0, 1):
		return HSLA{}, &ColorValueError{Component: "alpha", Value: fmt.Sprint(a)}
	}
	return HSLA{H: h, S: s, L: l, A: a}, nil
}

// HSL creates an opaque HSLA color without validation.
func HSL(h, s, l float64) HSLA {
	return HSLA{H: h, S: s, L: l, A: 1}
}

// ToRGBA converts c to 8-bit RGBA. Out of range components are wrapped
// (hue) or clamped.
func (c HSLA) ToRGBA() RGBA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, clamp01(c.S), clamp01(c.L)).Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: unit8(c.A)}
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// unit8 maps [0, 1] to [0, 255] with rounding.
func unit8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// ToRGBA returns the representative flat color of c: the color itself for
// flat colors, the first stop of a gradient (transparent without stops) and
// the base color of a pattern. A nil Color is transparent.
func ToRGBA(c Color) RGBA {
	switch v := c.(type) {
	case nil:
		return Transparent
	case RGBA:
		return v
	case HSLA:
		return v.ToRGBA()
	case NamedColor:
		return v.ToRGBA()
	case *LinearGradient:
		return v.firstStopColor()
	case *RadialGradient:
		return v.firstStopColor()
	case Pattern:
		return v.Color
	default:
		panic(fmt.Sprintf("clove: unknown color type %T", c))
	}
}
