package text

import (
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedGlyph is one shaper output glyph in pixels. Offsets follow the
// shaper convention: YOffset grows upward.
type shapedGlyph struct {
	gid     font.GID
	cluster int // rune index into the paragraph
	advance float64
	xOffset float64
	yOffset float64
}

// shapedRun holds the glyphs of a run in visual order.
type shapedRun struct {
	run
	glyphs []shapedGlyph
}

// shapeLocked shapes every run of a paragraph. Each run is shaped with the
// whole paragraph as context so contextual forms at run edges are correct.
// The caller holds r.mu.
func (r *Registry) shapeLocked(f *Font, runes []rune, runs []run, size float64, lang language.Language) []shapedRun {
	// HarfBuzz scales by the ceiling of the requested size, so shape at an
	// integral size and scale the result back down.
	shapeSize := math.Ceil(size)
	scale := size / shapeSize

	out := make([]shapedRun, len(runs))
	for i, ru := range runs {
		script := ru.script
		if !strongScript(script) {
			script = language.Latin
		}
		dir := di.DirectionLTR
		if ru.dir == DirectionRTL {
			dir = di.DirectionRTL
		}

		o := r.shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  ru.start,
			RunEnd:    ru.end,
			Direction: dir,
			Face:      f.face,
			Size:      fixed.I(int(shapeSize)),
			Script:    script,
			Language:  lang,
		})

		glyphs := make([]shapedGlyph, len(o.Glyphs))
		for j, g := range o.Glyphs {
			glyphs[j] = shapedGlyph{
				gid:     g.GlyphID,
				cluster: g.ClusterIndex,
				advance: fromFixed(g.Advance) * scale,
				xOffset: fromFixed(g.XOffset) * scale,
				yOffset: fromFixed(g.YOffset) * scale,
			}
		}
		out[i] = shapedRun{run: ru, glyphs: glyphs}
	}
	return out
}
