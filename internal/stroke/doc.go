// Package stroke converts stroked polylines into filled outlines.
//
// The outline of a stroke is emitted as a set of simple polygons rather
// than one offset contour:
//   - one quad per segment
//   - one join piece per interior vertex
//   - one cap piece at each open end
//
// Every polygon is normalized to the same orientation, so filling them
// together with a non-zero rasterizer produces their union without seams or
// cancellation where pieces overlap.
//
// # Line Caps
//
//   - LineCapButt: flat cap ending exactly at the endpoint
//   - LineCapRound: semicircular cap with radius = width/2
//   - LineCapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, limited by the miter limit and falling
//     back to bevel beyond it
//   - LineJoinRound: circular piece at corners
//   - LineJoinBevel: straight line across the corner
//
// # Usage
//
//	style := stroke.Style{
//	    Width:      2.0,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 4.0,
//	}
//
//	subs := path.Flatten(elements, path.Tolerance)
//	outline := stroke.NewExpander(style).Expand(subs)
package stroke
