package clove

import "github.com/gogpu/clove/text"

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := clove.New(800, 600,
//	    clove.WithBackground(clove.White),
//	    clove.WithJPEGQuality(85),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	background  Color
	fonts       *text.Registry
	jpegQuality int
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		background:  Transparent,
		fonts:       nil, // text.NewRegistry() unless WithFontRegistry is given
		jpegQuality: DefaultJPEGQuality,
	}
}

// WithBackground sets the color painted below every layer. Gradients and
// patterns are allowed.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFontRegistry shares a font registry with the canvas. By default each
// canvas gets its own text.NewRegistry with the bundled Go fonts.
func WithFontRegistry(r *text.Registry) Option {
	return func(o *options) {
		o.fonts = r
	}
}

// WithJPEGQuality sets the quality used by Save for JPEG files.
// Values are clamped to [0, 100].
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.jpegQuality = max(0, min(q, 100))
	}
}
