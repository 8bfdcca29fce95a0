package text

import "math"

const unknownStr = "Unknown"

// DefaultSize is the font size used when LayoutOptions.Size is not positive.
const DefaultSize = 16

// Align specifies horizontal alignment of each line within the container.
type Align int

const (
	// AlignLeft places every line at the layout x (default).
	AlignLeft Align = iota
	// AlignCenter centers every line in the container.
	AlignCenter
	// AlignRight puts the right edge of every line on the container edge.
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// WrapMode selects where lines may break when a maximum width is set.
type WrapMode int

const (
	// WrapGrapheme breaks at any grapheme cluster boundary (default).
	WrapGrapheme WrapMode = iota
	// WrapWord prefers UAX #14 line break opportunities and falls back to
	// grapheme boundaries for words wider than the line.
	WrapWord
)

func (m WrapMode) String() string {
	switch m {
	case WrapGrapheme:
		return "Grapheme"
	case WrapWord:
		return "Word"
	default:
		return unknownStr
	}
}

// Direction is the resolved direction of a paragraph or run.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// LayoutOptions configures Registry.Layout. The zero value lays out text in
// the default family at DefaultSize, on one line per paragraph, left-aligned
// at the origin.
type LayoutOptions struct {
	// Family is a registered family name. Empty means the registry default.
	Family string
	Weight Weight
	Style  Style

	// Size is the font size in pixels per em.
	Size float64

	// LetterSpacing is extra advance added after every grapheme cluster.
	LetterSpacing float64

	// LineHeight is the baseline distance as a multiple of Size.
	// Zero means 1.
	LineHeight float64

	// MaxWidth is the wrap width. Zero, negative and infinite values disable
	// wrapping.
	MaxWidth float64
	Wrap     WrapMode

	Align Align

	// Container is the width lines are aligned in. When it is not positive
	// the widest line is used, which makes alignment a no-op for single
	// lines.
	Container float64

	// X and Y are the top-left corner of the text box. The first baseline
	// sits at Y plus the font ascent.
	X, Y float64

	// Language is a BCP 47 tag passed to the shaper. Empty means "en".
	Language string
}

func (o LayoutOptions) withDefaults() LayoutOptions {
	if !(o.Size > 0) || math.IsInf(o.Size, 0) {
		o.Size = DefaultSize
	}
	if !(o.LineHeight > 0) || math.IsInf(o.LineHeight, 0) {
		o.LineHeight = 1
	}
	if !(o.MaxWidth > 0) || math.IsInf(o.MaxWidth, 0) {
		o.MaxWidth = 0
	}
	if math.IsNaN(o.LetterSpacing) || math.IsInf(o.LetterSpacing, 0) {
		o.LetterSpacing = 0
	}
	if math.IsNaN(o.Container) || math.IsInf(o.Container, 0) {
		o.Container = 0
	}
	if o.Language == "" {
		o.Language = "en"
	}
	return o
}

// AlignOffset returns the x of a line of lineWidth aligned in a container
// of the given width that starts at x.
func AlignOffset(align Align, x, container, lineWidth float64) float64 {
	switch align {
	case AlignCenter:
		return x + (container-lineWidth)/2
	case AlignRight:
		return x + container - lineWidth
	default:
		return x
	}
}
