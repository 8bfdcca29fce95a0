// Package clove provides a layered 2D canvas for Go.
//
// # Overview
//
// A Canvas holds a background and an ordered stack of layers. Each Layer is
// its own straight-alpha pixel buffer with a position, size, opacity, blend
// mode and visibility. Shapes, images, gradients and text are rasterized
// onto layers, and Merge composites the visible layers in creation order.
//
// Text goes through the text package: bidirectional runs, script itemization,
// HarfBuzz shaping, grapheme-aware line breaking and per-line alignment.
//
// # Quick Start
//
//	import "github.com/gogpu/clove"
//
//	c, err := clove.New(800, 600, clove.WithBackground(clove.White))
//	if err != nil {
//	    return err
//	}
//
//	shapes, _ := c.CreateLayer("shapes")
//	_ = shapes.FillRect(50, 50, 200, 150, clove.Red)
//
//	title, _ := c.CreateLayer("title")
//	title.SetBlendMode(clove.BlendMultiply)
//	_, _ = title.DrawText("Hello, مرحبا", 0, 20, clove.DefaultTextStyle().
//	    WithSize(48).
//	    WithAlign(clove.AlignCenter).
//	    WithWidth(clove.FullPageWidth()))
//
//	return c.Save("out.png")
//
// # Colors
//
// Color is a closed set of paints: RGBA, HSLA, NamedColor, *LinearGradient,
// *RadialGradient and Pattern. Anything that needs a single color (text,
// drop shadows) uses the representative color returned by ToRGBA.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
//
// Drawing coordinates are local to the layer. Layer positions are in canvas
// pixels and are rounded to whole pixels when compositing.
//
// # Errors
//
// Failures are reported as typed errors that match the package sentinels
// under errors.Is, for example *DimensionsError and ErrInvalidDimensions.
// A failed draw leaves the layer unchanged, and a failed Save leaves no file.
package clove
