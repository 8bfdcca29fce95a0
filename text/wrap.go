package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// grapheme is one user-perceived character of a paragraph.
type grapheme struct {
	start, end int // rune indices, end exclusive
	advance    float64
	canBreak   bool // a line break opportunity follows
	space      bool
	inked      bool // holds at least one glyph
}

// fitSlack absorbs float error when a line is filled exactly.
const fitSlack = 1e-6

// graphemeTable splits text into grapheme clusters and measures each one
// from the shaped glyphs. Glyph advances are attributed to the grapheme
// holding their cluster. letterSpacing is added once to every grapheme that
// holds a glyph, so graphemes merged into a ligature get none.
func graphemeTable(text string, runs []shapedRun, n int, letterSpacing float64) []grapheme {
	adv := make([]float64, n)
	inked := make([]bool, n)
	for _, sr := range runs {
		for _, g := range sr.glyphs {
			if g.cluster >= 0 && g.cluster < n {
				adv[g.cluster] += g.advance
				inked[g.cluster] = true
			}
		}
	}

	out := make([]grapheme, 0, n)
	pos := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		s := gr.Str()
		g := grapheme{start: pos, end: pos + utf8.RuneCountInString(s)}
		pos = g.end
		for j := g.start; j < min(g.end, n); j++ {
			g.advance += adv[j]
			if inked[j] && !g.inked {
				g.inked = true
				g.advance += letterSpacing
			}
		}
		g.canBreak = gr.LineBreak() != uniseg.LineDontBreak
		r, _ := utf8.DecodeRuneInString(s)
		g.space = unicode.IsSpace(r)
		out = append(out, g)
	}
	return out
}

// breakLines fills lines greedily and returns [start, end) grapheme index
// ranges. Every line takes at least one grapheme. A maxWidth of zero keeps
// the paragraph on one line.
//
// In WrapWord mode the line ends at the last break opportunity that fits,
// whitespace may hang past the edge, and a word wider than the line is
// split at grapheme boundaries.
func breakLines(gs []grapheme, maxWidth float64, mode WrapMode) [][2]int {
	if maxWidth <= 0 || len(gs) == 0 {
		return [][2]int{{0, len(gs)}}
	}

	var lines [][2]int
	start, lastOpp := 0, -1
	width := 0.0
	for i := 0; i < len(gs); i++ {
		g := gs[i]
		hang := mode == WrapWord && g.space
		if i > start && !hang && width+g.advance > maxWidth+fitSlack {
			end := i
			if mode == WrapWord && lastOpp >= start {
				end = lastOpp + 1
			}
			lines = append(lines, [2]int{start, end})
			start, lastOpp, width = end, -1, 0
			i = end - 1
			continue
		}
		width += g.advance
		if g.canBreak {
			lastOpp = i
		}
	}
	return append(lines, [2]int{start, len(gs)})
}

// visibleEnd returns the rune index where whitespace hanging at the end of
// the grapheme range rg begins, or the end of the range when nothing hangs.
func visibleEnd(gs []grapheme, rg [2]int) int {
	i := rg[1]
	for i > rg[0] && gs[i-1].space {
		i--
	}
	if i == rg[0] {
		return gs[rg[0]].start
	}
	return gs[i-1].end
}
