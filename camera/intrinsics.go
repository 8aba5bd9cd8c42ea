package camera

import (
	"fmt"
	"math"

	"github.com/banshee-data/sightline/geom"
	"github.com/banshee-data/sightline/img"
	"github.com/banshee-data/sightline/semerr"
)

// Intrinsics is a validated pinhole camera: focal lengths and principal
// point in pixels, plus the sensor size the calibration was computed for.
// The principal point follows the pixel-center convention of img.PointF, so
// a cx of 320.0 sits on the left edge of pixel column 320. Values are
// immutable after construction.
type Intrinsics struct {
	fx, fy float64
	cx, cy float64
	width  int
	height int
}

// NewIntrinsics validates the pinhole parameters: fx and fy strictly
// positive and finite, cx and cy finite, width and height positive. The
// returned IntrinsicsError names the parameter, its value and the violated
// range.
func NewIntrinsics(fx, fy, cx, cy float64, width, height int) (Intrinsics, error) {
	for _, p := range [...]struct {
		name string
		v    float64
	}{{"fx", fx}, {"fy", fy}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v <= 0 {
			return Intrinsics{}, &semerr.IntrinsicsError{Param: p.name, Value: p.v, Constraint: "> 0 and finite"}
		}
	}
	for _, p := range [...]struct {
		name string
		v    float64
	}{{"cx", cx}, {"cy", cy}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return Intrinsics{}, &semerr.IntrinsicsError{Param: p.name, Value: p.v, Constraint: "finite"}
		}
	}
	if width <= 0 {
		return Intrinsics{}, &semerr.IntrinsicsError{Param: "width", Value: float64(width), Constraint: "> 0"}
	}
	if height <= 0 {
		return Intrinsics{}, &semerr.IntrinsicsError{Param: "height", Value: float64(height), Constraint: "> 0"}
	}
	return Intrinsics{fx: fx, fy: fy, cx: cx, cy: cy, width: width, height: height}, nil
}

// Fx returns the horizontal focal length in pixels.
func (in Intrinsics) Fx() float64 { return in.fx }

// Fy returns the vertical focal length in pixels.
func (in Intrinsics) Fy() float64 { return in.fy }

// Cx returns the principal point x coordinate in pixels.
func (in Intrinsics) Cx() float64 { return in.cx }

// Cy returns the principal point y coordinate in pixels.
func (in Intrinsics) Cy() float64 { return in.cy }

// Width returns the calibrated sensor width in pixels.
func (in Intrinsics) Width() int { return in.width }

// Height returns the calibrated sensor height in pixels.
func (in Intrinsics) Height() int { return in.height }

// Domain returns the image domain this camera produces: the calibrated
// sensor size under the given color space.
func (in Intrinsics) Domain(space img.ColorSpace) img.Domain {
	return img.Domain{Width: in.width, Height: in.height, Space: space}
}

// Project maps a camera-frame point onto the image plane:
// (fx*X/Z + cx, fy*Y/Z + cy). The camera frame looks along +Z, so points
// with Z <= 0 are at or behind the camera plane and return DepthError.
// The result is a continuous pixel-center coordinate and may fall outside
// the sensor; clip against Domain if only on-sensor points matter.
func (in Intrinsics) Project(p geom.Point[geom.Cam]) (img.PointF, error) {
	if !(p.Z > 0) {
		return img.PointF{}, &semerr.DepthError{Depth: p.Z}
	}
	return img.PointF{
		X: in.fx*p.X/p.Z + in.cx,
		Y: in.fy*p.Y/p.Z + in.cy,
	}, nil
}

// BackProject lifts a continuous pixel coordinate to the camera-frame point
// at the given depth along +Z. It is the algebraic inverse of Project: for
// depth > 0, projecting the result returns p up to float64 round-off.
// Non-positive depth returns DepthError.
func (in Intrinsics) BackProject(p img.PointF, depth float64) (geom.Point[geom.Cam], error) {
	if !(depth > 0) {
		return geom.Point[geom.Cam]{}, &semerr.DepthError{Depth: depth}
	}
	return geom.NewPoint[geom.Cam](
		(p.X-in.cx)/in.fx*depth,
		(p.Y-in.cy)/in.fy*depth,
		depth,
	), nil
}

// ProjectFrom projects a point expressed in an arbitrary frame by first
// moving it into the camera frame through the extrinsics. A free function
// because methods cannot introduce the source frame parameter.
func ProjectFrom[A geom.Frame](in Intrinsics, extrinsics geom.Pose[A, geom.Cam], p geom.Point[A]) (img.PointF, error) {
	return in.Project(extrinsics.Apply(p))
}

// String returns the focal lengths, principal point and sensor size.
func (in Intrinsics) String() string {
	return fmt.Sprintf("intrinsics f=(%g, %g) c=(%g, %g) %dx%d",
		in.fx, in.fy, in.cx, in.cy, in.width, in.height)
}
