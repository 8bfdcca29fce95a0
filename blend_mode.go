package clove

import (
	"fmt"
	"strings"

	"github.com/gogpu/clove/internal/blend"
)

// BlendMode selects how a layer combines with the layers below it.
// The modes follow the W3C Compositing and Blending specification and are
// applied before source-over alpha compositing.
type BlendMode uint8

const (
	BlendNormal     = BlendMode(blend.Normal)
	BlendMultiply   = BlendMode(blend.Multiply)
	BlendScreen     = BlendMode(blend.Screen)
	BlendOverlay    = BlendMode(blend.Overlay)
	BlendDarken     = BlendMode(blend.Darken)
	BlendLighten    = BlendMode(blend.Lighten)
	BlendColorDodge = BlendMode(blend.ColorDodge)
	BlendColorBurn  = BlendMode(blend.ColorBurn)
	BlendHardLight  = BlendMode(blend.HardLight)
	BlendSoftLight  = BlendMode(blend.SoftLight)
	BlendDifference = BlendMode(blend.Difference)
	BlendExclusion  = BlendMode(blend.Exclusion)
)

// String returns the mode name, such as "Multiply".
func (m BlendMode) String() string {
	return blend.Mode(m).String()
}

// Valid reports whether m is a known mode.
func (m BlendMode) Valid() bool {
	return blend.Mode(m).Valid()
}

// ParseBlendMode looks a mode up by name. Matching ignores case, spaces,
// hyphens and underscores, so "color-dodge" and "ColorDodge" are the same.
func ParseBlendMode(s string) (BlendMode, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
	for m := BlendNormal; m.Valid(); m++ {
		if strings.ToLower(m.String()) == key {
			return m, nil
		}
	}
	return BlendNormal, fmt.Errorf("%w %q", ErrInvalidBlendMode, s)
}
