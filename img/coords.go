package img

import "fmt"

// PointF is a continuous image coordinate in pixels, x growing right and y
// growing down. Under the pixel-center convention the sample stored at
// integer index (ix, iy) sits at continuous position (ix+0.5, iy+0.5), so a
// w x h image spans [0, w] x [0, h].
type PointF struct {
	X, Y float64
}

// PixelCenter returns the continuous position of the sample stored at
// integer index (ix, iy).
func PixelCenter(ix, iy int) PointF {
	return PointF{X: float64(ix) + 0.5, Y: float64(iy) + 0.5}
}

// String returns the point as "(x, y)".
func (p PointF) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Domain identifies the coordinate domain a continuous point or keypoint
// was computed against: pixel dimensions plus color space. Coordinates are
// only comparable within one domain; consumers gate on Equal before mixing
// them.
type Domain struct {
	Width  int
	Height int
	Space  ColorSpace
}

// Contains reports whether p lies inside the domain's continuous extent
// [0, w] x [0, h].
func (d Domain) Contains(p PointF) bool {
	return p.X >= 0 && p.X <= float64(d.Width) && p.Y >= 0 && p.Y <= float64(d.Height)
}

// Equal reports whether two domains agree on size and color space.
func (d Domain) Equal(o Domain) bool { return d == o }

// String returns the domain as "640x480 srgb".
func (d Domain) String() string {
	return fmt.Sprintf("%dx%d %s", d.Width, d.Height, d.Space)
}
