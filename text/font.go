package text

import (
	"bytes"
	"slices"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/clove/internal/cache"
)

// outlineCacheSize bounds the outlines kept per font.
const outlineCacheSize = 1024

// Weight selects a font weight variant.
type Weight int

const (
	WeightNormal Weight = iota
	WeightLight
	WeightBold
)

func (w Weight) String() string {
	switch w {
	case WeightNormal:
		return "Normal"
	case WeightLight:
		return "Light"
	case WeightBold:
		return "Bold"
	default:
		return unknownStr
	}
}

// Style selects an upright or italic variant.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	default:
		return unknownStr
	}
}

// Font is a parsed font registered under a logical name.
//
// The same data is held twice: go-text parses it for shaping and sfnt parses
// it for outlines and metrics. The go-text face is not safe for concurrent
// use and is only touched while the owning Registry is locked. Scaled
// glyph outlines are cached per font.
type Font struct {
	name     string
	face     *font.Face
	outlines *sfnt.Font
	glyphs   *cache.Cache[outlineKey, sfnt.Segments]
}

type outlineKey struct {
	gid  GlyphID
	size fixed.Int26_6
}

func parseFont(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{
		name:     name,
		face:     face,
		outlines: outlines,
		glyphs:   cache.New[outlineKey, sfnt.Segments](outlineCacheSize),
	}, nil
}

// outline returns the outline of gid scaled to size. The result is shared
// and must not be modified.
func (f *Font) outline(buf *sfnt.Buffer, gid GlyphID, size fixed.Int26_6) (sfnt.Segments, error) {
	load := func() (sfnt.Segments, error) {
		segs, err := f.outlines.LoadGlyph(buf, sfnt.GlyphIndex(gid), size, nil)
		if err != nil {
			return nil, err
		}
		return slices.Clone(segs), nil
	}
	if f.glyphs == nil {
		return load()
	}
	return f.glyphs.GetOrCreate(outlineKey{gid: gid, size: size}, load)
}

// Name returns the logical name the font was registered under.
func (f *Font) Name() string { return f.name }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.outlines.NumGlyphs() }

// metrics returns the ascent and descent in pixels at size. Descent is
// positive below the baseline.
func (f *Font) metrics(buf *sfnt.Buffer, size float64) (ascent, descent float64, err error) {
	m, err := f.outlines.Metrics(buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return 0, 0, err
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent), nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
