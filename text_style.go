package clove

import "github.com/gogpu/clove/text"

// Text attributes shared with the text package.
type (
	FontWeight = text.Weight
	FontStyle  = text.Style
	TextAlign  = text.Align
	WrapMode   = text.WrapMode
)

const (
	WeightNormal = text.WeightNormal
	WeightLight  = text.WeightLight
	WeightBold   = text.WeightBold

	StyleNormal = text.StyleNormal
	StyleItalic = text.StyleItalic

	AlignLeft   = text.AlignLeft
	AlignCenter = text.AlignCenter
	AlignRight  = text.AlignRight

	WrapGrapheme = text.WrapGrapheme
	WrapWord     = text.WrapWord
)

// WidthKind selects how the container width of a text block is chosen.
type WidthKind int

const (
	// WidthNone uses the measured width of the text and never wraps.
	WidthNone WidthKind = iota
	// WidthMax wraps and aligns within TextWidth.Max pixels.
	WidthMax
	// WidthFullPage wraps and aligns within the canvas width.
	WidthFullPage
	// WidthLayer wraps and aligns within the layer's effective width.
	WidthLayer
)

func (k WidthKind) String() string {
	switch k {
	case WidthNone:
		return "None"
	case WidthMax:
		return "Max"
	case WidthFullPage:
		return "FullPage"
	case WidthLayer:
		return "Layer"
	default:
		return "Unknown"
	}
}

// TextWidth is the width policy of a text block.
type TextWidth struct {
	Kind WidthKind
	Max  float64
}

// NoWidth returns the policy that sizes the block to its text.
func NoWidth() TextWidth { return TextWidth{Kind: WidthNone} }

// MaxWidth returns the policy that wraps and aligns within w pixels.
func MaxWidth(w float64) TextWidth { return TextWidth{Kind: WidthMax, Max: w} }

// FullPageWidth returns the policy that wraps and aligns within the canvas.
func FullPageWidth() TextWidth { return TextWidth{Kind: WidthFullPage} }

// LayerWidth returns the policy that wraps and aligns within the layer.
func LayerWidth() TextWidth { return TextWidth{Kind: WidthLayer} }

// TextStyle describes how Layer.DrawText renders a string.
//
// The zero value draws 16px black text in the registry's default family,
// left-aligned with no width limit. TextStyle is a value type; the With
// methods return modified copies. Gradient and pattern colors paint with
// their representative color.
type TextStyle struct {
	Family        string
	Size          float64
	Weight        FontWeight
	Style         FontStyle
	Color         Color
	LetterSpacing float64
	LineHeight    float64 // multiple of Size
	Align         TextAlign
	Wrap          WrapMode
	Width         TextWidth
}

// DefaultTextStyle returns the style used by the zero value, spelled out.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Size:       text.DefaultSize,
		Color:      Black,
		LineHeight: 1,
		Width:      NoWidth(),
	}
}

// WithFamily returns a copy of the style with the given font family.
func (s TextStyle) WithFamily(family string) TextStyle {
	s.Family = family
	return s
}

// WithSize returns a copy of the style with the given size in pixels.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.Size = size
	return s
}

// WithWeight returns a copy of the style with the given weight.
func (s TextStyle) WithWeight(w FontWeight) TextStyle {
	s.Weight = w
	return s
}

// WithStyle returns a copy of the style with the given slant.
func (s TextStyle) WithStyle(st FontStyle) TextStyle {
	s.Style = st
	return s
}

// WithColor returns a copy of the style with the given color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// WithLetterSpacing returns a copy of the style with extra space after
// every grapheme.
func (s TextStyle) WithLetterSpacing(px float64) TextStyle {
	s.LetterSpacing = px
	return s
}

// WithLineHeight returns a copy of the style with the given line height,
// as a multiple of the size.
func (s TextStyle) WithLineHeight(h float64) TextStyle {
	s.LineHeight = h
	return s
}

// WithAlign returns a copy of the style with the given alignment.
func (s TextStyle) WithAlign(a TextAlign) TextStyle {
	s.Align = a
	return s
}

// WithWrap returns a copy of the style with the given wrap mode.
func (s TextStyle) WithWrap(m WrapMode) TextStyle {
	s.Wrap = m
	return s
}

// WithWidth returns a copy of the style with the given width policy.
func (s TextStyle) WithWidth(w TextWidth) TextStyle {
	s.Width = w
	return s
}

// color returns the text color; nil means black.
func (s TextStyle) color() RGBA {
	if s.Color == nil {
		return Black
	}
	return ToRGBA(s.Color)
}
