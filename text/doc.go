// Package text lays out and rasterizes Unicode text for clove.
//
// The pipeline runs in this order:
//
//   - Registry: the shared font store. It maps logical family names to parsed
//     fonts and serializes access to the shaping state with a mutex.
//   - Layout: splits the input on hard breaks, resolves bidi runs with
//     golang.org/x/text/unicode/bidi, splits runs by script, shapes them with
//     the HarfBuzz port from github.com/go-text/typesetting, wraps at grapheme
//     boundaries (github.com/rivo/uniseg) and places every glyph in visual order.
//   - Draw: loads glyph outlines with golang.org/x/image/font/sfnt, fills a
//     coverage mask with golang.org/x/image/vector and blends it into a
//     straight-alpha destination.
//
// # Example
//
//	reg := text.NewRegistry() // bundled Go fonts, "Go" is the default
//	l, err := reg.Layout("Hello, مرحبا", text.LayoutOptions{
//	    Size:     24,
//	    MaxWidth: 300,
//	    Align:    text.AlignRight,
//	})
//	if err != nil {
//	    return err
//	}
//	err = text.Draw(dst, l, color.NRGBA{A: 255})
//
// Glyph pen positions in a [Layout] are already in display order: for
// right-to-left text the glyph of the logically first character is the
// rightmost one on its line.
package text
