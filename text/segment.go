package text

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// paragraph is a piece of the source text between hard line breaks.
type paragraph struct {
	text   string
	offset int // byte offset of text in the source string
}

// splitParagraphs splits s on "\n", "\r\n" and lone "\r". Adjacent breaks
// produce empty paragraphs, and a trailing break produces a final empty one.
func splitParagraphs(s string) []paragraph {
	var out []paragraph
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			out = append(out, paragraph{text: s[start:i], offset: start})
			start = i + 1
		case '\r':
			out = append(out, paragraph{text: s[start:i], offset: start})
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(out, paragraph{text: s[start:], offset: start})
}

// baseDirection returns the direction of the first strong character of s.
// Text without strong characters is left-to-right.
func baseDirection(s string) Direction {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}

// run is a maximal range of runes with one embedding level and one script.
type run struct {
	start, end int // rune indices into the paragraph, end exclusive
	dir        Direction
	level      uint8 // bidi embedding level; odd levels are right-to-left
	script     language.Script
}

// segment splits a paragraph into runs in logical order.
func segment(text string, runes []rune, base Direction) []run {
	if len(runes) == 0 {
		return nil
	}
	levels := runLevels(text, runes, base)
	scripts := runScripts(runes)

	runs := make([]run, 0, 4)
	cur := newRun(0, levels[0], scripts[0])
	for i := 1; i < len(runes); i++ {
		if levels[i] == cur.level && scripts[i] == cur.script {
			continue
		}
		cur.end = i
		runs = append(runs, cur)
		cur = newRun(i, levels[i], scripts[i])
	}
	cur.end = len(runes)
	return append(runs, cur)
}

func newRun(start int, level uint8, script language.Script) run {
	d := DirectionLTR
	if level%2 == 1 {
		d = DirectionRTL
	}
	return run{start: start, dir: d, level: level, script: script}
}

// runLevels resolves the embedding level of every rune with the Unicode
// bidirectional algorithm. Without explicit embeddings levels stay in 0..2:
// the paragraph level, one above it for text against the base direction,
// and 2 for numbers inside right-to-left text of a left-to-right paragraph.
// Runes the algorithm does not cover keep the paragraph level.
func runLevels(text string, runes []rune, base Direction) []uint8 {
	n := len(runes)
	var baseLevel, ltrLevel uint8
	def := bidi.LeftToRight
	if base == DirectionRTL {
		baseLevel, ltrLevel = 1, 2
		def = bidi.RightToLeft
	}
	levels := make([]uint8, n)
	for i := range levels {
		levels[i] = baseLevel
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(def)); err != nil {
		Logger().Debug("text: bidi setup failed", "err", err)
		return levels
	}
	o, err := p.Order()
	if err != nil {
		Logger().Debug("text: bidi ordering failed", "err", err)
		return levels
	}

	for i := 0; i < o.NumRuns(); i++ {
		r := o.Run(i)
		lvl := ltrLevel
		if r.Direction() == bidi.RightToLeft {
			lvl = 1
		}
		start, end := r.Pos()
		for j := max(start, 0); j <= end && j < n; j++ {
			levels[j] = lvl
		}
	}
	if base == DirectionLTR {
		raiseNumbers(runes, levels)
	}
	return levels
}

// raiseNumbers moves numbers that follow right-to-left text in a
// left-to-right paragraph to level 2, together with the separators, currency
// signs and marks that join them. Numbers after left-to-right text, or at
// the start of the paragraph, stay at level 0.
func raiseNumbers(runes []rune, levels []uint8) {
	n := len(runes)
	classes := make([]bidi.Class, n)
	for i, r := range runes {
		p, _ := bidi.LookupRune(r)
		classes[i] = p.Class()
	}
	isNum := func(i int) bool {
		return i >= 0 && i < n && levels[i] == 2 && (classes[i] == bidi.EN || classes[i] == bidi.AN)
	}

	prevStrong := bidi.L
	for i, c := range classes {
		switch c {
		case bidi.L, bidi.R, bidi.AL:
			prevStrong = c
		case bidi.EN:
			if levels[i] == 0 && prevStrong != bidi.L {
				levels[i] = 2
			}
		case bidi.AN:
			if levels[i] == 0 {
				levels[i] = 2
			}
		}
	}

	for i := 0; i < n; i++ {
		if levels[i] != 0 {
			continue
		}
		switch classes[i] {
		case bidi.CS, bidi.ES:
			if isNum(i-1) && isNum(i+1) {
				levels[i] = 2
			}
		case bidi.ET:
			j := i
			for j < n && classes[j] == bidi.ET && levels[j] == 0 {
				j++
			}
			if (isNum(i-1) && classes[i-1] == bidi.EN) || (isNum(j) && classes[j] == bidi.EN) {
				for k := i; k < j; k++ {
					levels[k] = 2
				}
			}
			i = j - 1
		case bidi.NSM:
			if i > 0 && levels[i-1] == 2 {
				levels[i] = 2
			}
		}
	}
}

// runScripts returns the script of every rune. Common, Inherited and
// unassigned runes take the script of the preceding rune; leading ones take
// the first real script in the paragraph.
func runScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	first := -1
	prev := language.Common
	for i, r := range runes {
		s := language.LookupScript(r)
		if !strongScript(s) {
			scripts[i] = prev
			continue
		}
		scripts[i] = s
		prev = s
		if first < 0 {
			first = i
		}
	}
	for i := 0; i < first; i++ {
		scripts[i] = scripts[first]
	}
	return scripts
}

func strongScript(s language.Script) bool {
	return s.Strong() && s != language.Unknown
}
