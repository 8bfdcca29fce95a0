// Package blend implements the per-pixel compositing math used to merge
// layers: source-over plus the separable blend modes of the W3C Compositing
// and Blending Level 1 specification.
//
// All functions take and return premultiplied RGBA8 values.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

// Mode selects how a source pixel is combined with the backdrop.
type Mode uint8

const (
	Normal     Mode = iota // S + D*(1-Sa)
	Multiply               // S * D
	Screen                 // 1 - (1-S)*(1-D)
	Overlay                // HardLight with swapped layers
	Darken                 // min(S, D)
	Lighten                // max(S, D)
	ColorDodge             // D / (1 - S)
	ColorBurn              // 1 - (1 - D) / S
	HardLight              // Multiply or Screen depending on source
	SoftLight              // soft version of HardLight
	Difference             // |S - D|
	Exclusion              // S + D - 2*S*D

	modeCount
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m < modeCount }

// Func combines one premultiplied source pixel with one premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// channelFuncs maps each separable mode to B(Cs, Cb) on unpremultiplied
// channels.
var channelFuncs = [modeCount]func(s, d byte) byte{
	Multiply:   mulDiv255,
	Screen:     screen,
	Overlay:    overlay,
	Darken:     minByte,
	Lighten:    maxByte,
	ColorDodge: colorDodge,
	ColorBurn:  colorBurn,
	HardLight:  hardLight,
	SoftLight:  softLight,
	Difference: difference,
	Exclusion:  exclusion,
}

// Get returns the blend function for mode. Unknown modes fall back to
// source-over.
func Get(mode Mode) Func {
	if mode == Normal || !mode.Valid() {
		return SourceOver
	}
	ch := channelFuncs[mode]
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		return separable(sr, sg, sb, sa, dr, dg, db, da, ch)
	}
}

var modeNames = [modeCount]string{
	Normal:     "Normal",
	Multiply:   "Multiply",
	Screen:     "Screen",
	Overlay:    "Overlay",
	Darken:     "Darken",
	Lighten:    "Lighten",
	ColorDodge: "ColorDodge",
	ColorBurn:  "ColorBurn",
	HardLight:  "HardLight",
	SoftLight:  "SoftLight",
	Difference: "Difference",
	Exclusion:  "Exclusion",
}

// String returns the mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return "Unknown"
	}
	return modeNames[m]
}
