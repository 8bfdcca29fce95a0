package text

import (
	"fmt"
	"slices"

	"github.com/go-text/typesetting/language"
)

// GlyphID is a glyph index in a font.
type GlyphID uint16

// Glyph is a positioned glyph ready to draw.
type Glyph struct {
	GID  GlyphID
	Font *Font
	Size float64

	// Cluster is the byte offset in the source string of the first
	// character the glyph was shaped from.
	Cluster int

	// X is the pen position and Y the baseline, in destination pixels.
	X, Y float64

	// Advance is the horizontal advance including letter spacing.
	Advance float64

	// XOffset and YOffset are shaper adjustments from the pen position.
	// YOffset grows upward.
	XOffset, YOffset float64
}

// Line is one laid out line. Glyphs are in display order, left to right.
type Line struct {
	Baseline float64
	X        float64
	Width    float64
	Glyphs   []Glyph

	// Start and End delimit the line in the source string (bytes).
	Start, End int

	// Direction is the base direction of the paragraph the line belongs to.
	Direction Direction
}

// Bounds is the horizontal extent and height of a layout.
type Bounds struct {
	MinX, MaxX float64
	Height     float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Layout is the result of Registry.Layout.
type Layout struct {
	Lines  []Line
	Bounds Bounds

	// Ascent and Descent are the font metrics at the layout size.
	// Descent is positive.
	Ascent, Descent float64

	// LineHeight is the distance between consecutive baselines in pixels.
	LineHeight float64
}

// Width returns the width of the widest line.
func (l *Layout) Width() float64 {
	w := 0.0
	for i := range l.Lines {
		w = max(w, l.Lines[i].Width)
	}
	return w
}

// Layout shapes s and places it according to opts.
//
// Hard breaks ("\n", "\r\n", "\r") always start a new line. Each paragraph
// gets its direction from its first strong character, is split into bidi
// and script runs, shaped, wrapped at grapheme boundaries when
// opts.MaxWidth is set, and reordered for display.
//
// An unregistered family returns a *FontNotFoundError. An empty string
// returns a layout without lines.
func (r *Registry) Layout(s string, opts LayoutOptions) (*Layout, error) {
	opts = opts.withDefaults()

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.resolveLocked(opts.Family, opts.Weight, opts.Style)
	if err != nil {
		return nil, err
	}
	ascent, descent, err := f.metrics(&r.buf, opts.Size)
	if err != nil {
		return nil, fmt.Errorf("text: metrics of %q: %w", f.name, err)
	}

	l := &Layout{
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: opts.LineHeight * opts.Size,
	}
	if s == "" {
		return l, nil
	}

	lang := language.NewLanguage(opts.Language)
	for _, p := range splitParagraphs(s) {
		l.Lines = append(l.Lines, r.layoutParagraph(f, p, opts, lang)...)
	}
	l.place(opts)

	Logger().Debug("text: layout",
		"font", f.name, "size", opts.Size, "lines", len(l.Lines), "width", l.Bounds.Width())
	return l, nil
}

// layoutParagraph returns the lines of one paragraph with glyph X relative
// to the line start. Baselines and alignment are applied by place.
func (r *Registry) layoutParagraph(f *Font, p paragraph, opts LayoutOptions, lang language.Language) []Line {
	if p.text == "" {
		return []Line{{Start: p.offset, End: p.offset}}
	}

	runes := []rune(p.text)
	offsets := runeOffsets(p.text, len(runes))
	base := baseDirection(p.text)
	shaped := r.shapeLocked(f, runes, segment(p.text, runes, base), opts.Size, lang)
	gs := graphemeTable(p.text, shaped, len(runes), opts.LetterSpacing)

	graphemeOf := make([]int, len(runes))
	for i, g := range gs {
		for j := g.start; j < g.end; j++ {
			graphemeOf[j] = i
		}
	}

	ranges := breakLines(gs, opts.MaxWidth, opts.Wrap)
	lines := make([]Line, 0, len(ranges))
	for n, rg := range ranges {
		from, to := gs[rg[0]].start, gs[rg[1]-1].end
		line := Line{
			Start:     p.offset + offsets[from],
			End:       p.offset + offsets[to],
			Direction: base,
		}
		// Whitespace hanging at a soft break keeps its place in the source
		// range but is neither drawn nor measured.
		if opts.Wrap == WrapWord && n < len(ranges)-1 {
			to = visibleEnd(gs, rg)
		}

		spaced := make([]bool, rg[1]-rg[0])
		pen := 0.0
		for _, sr := range visualOrder(lineRuns(shaped, from, to)) {
			for _, g := range sr.glyphs {
				adv := g.advance
				if k := graphemeOf[g.cluster] - rg[0]; k >= 0 && k < len(spaced) && !spaced[k] {
					spaced[k] = true
					adv += opts.LetterSpacing
				}
				line.Glyphs = append(line.Glyphs, Glyph{
					GID:     GlyphID(g.gid), //nolint:gosec // glyph indices fit in 16 bits in sfnt fonts
					Font:    f,
					Size:    opts.Size,
					Cluster: p.offset + offsets[g.cluster],
					X:       pen,
					Advance: adv,
					XOffset: g.xOffset,
					YOffset: g.yOffset,
				})
				pen += adv
			}
		}
		line.Width = pen
		lines = append(lines, line)
	}
	return lines
}

// lineRuns returns the parts of runs whose glyph clusters fall in the rune
// range [from, to), in logical order.
func lineRuns(runs []shapedRun, from, to int) []shapedRun {
	out := make([]shapedRun, 0, len(runs))
	for _, sr := range runs {
		if sr.end <= from || sr.start >= to {
			continue
		}
		var glyphs []shapedGlyph
		for _, g := range sr.glyphs {
			if g.cluster >= from && g.cluster < to {
				glyphs = append(glyphs, g)
			}
		}
		if len(glyphs) > 0 {
			out = append(out, shapedRun{run: sr.run, glyphs: glyphs})
		}
	}
	return out
}

// visualOrder reorders logical runs for display with rule L2 of the
// bidirectional algorithm: from the highest level down to the lowest odd
// level, every maximal sequence of runs at that level or above is
// reversed. Glyphs inside a run are already in visual order.
func visualOrder(runs []shapedRun) []shapedRun {
	out := slices.Clone(runs)
	if len(out) == 0 {
		return out
	}
	hi, lo := out[0].level, out[0].level
	for _, r := range out[1:] {
		hi, lo = max(hi, r.level), min(lo, r.level)
	}
	lo |= 1
	for k := hi; k >= lo; k-- {
		for i := 0; i < len(out); {
			if out[i].level < k {
				i++
				continue
			}
			j := i
			for j < len(out) && out[j].level >= k {
				j++
			}
			slices.Reverse(out[i:j])
			i = j
		}
	}
	return out
}

// place assigns baselines and aligned x positions and computes the bounds.
func (l *Layout) place(opts LayoutOptions) {
	container := opts.Container
	if container <= 0 {
		container = l.Width()
	}

	for i := range l.Lines {
		ln := &l.Lines[i]
		ln.Baseline = opts.Y + l.Ascent + float64(i)*l.LineHeight
		ln.X = AlignOffset(opts.Align, opts.X, container, ln.Width)
		for j := range ln.Glyphs {
			ln.Glyphs[j].X += ln.X
			ln.Glyphs[j].Y = ln.Baseline
		}

		if i == 0 {
			l.Bounds.MinX, l.Bounds.MaxX = ln.X, ln.X+ln.Width
			continue
		}
		l.Bounds.MinX = min(l.Bounds.MinX, ln.X)
		l.Bounds.MaxX = max(l.Bounds.MaxX, ln.X+ln.Width)
	}
	if n := len(l.Lines); n > 0 {
		l.Bounds.Height = float64(n-1)*l.LineHeight + l.Ascent + l.Descent
	}
}

// runeOffsets returns the byte offset of every rune of s plus len(s).
func runeOffsets(s string, n int) []int {
	offsets := make([]int, 0, n+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
