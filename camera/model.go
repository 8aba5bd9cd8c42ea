package camera

import (
	"github.com/banshee-data/sightline/geom"
	"github.com/banshee-data/sightline/img"
	"github.com/banshee-data/sightline/semerr"
)

// Model pairs intrinsics with an optional lens distortion. A nil Distortion
// is an ideal pinhole. With a distortion attached, Project applies it in
// normalized image coordinates between the perspective divide and the pixel
// mapping, and BackProject undistorts on the way back, so the two remain
// inverses of each other.
type Model struct {
	Intrinsics Intrinsics
	Distortion DistortionModel
}

// DistortionType names the attached distortion model, NoneDistortionType
// for a bare pinhole.
func (m Model) DistortionType() DistortionType {
	if m.Distortion == nil {
		return NoneDistortionType
	}
	return m.Distortion.ModelType()
}

// Project maps a camera-frame point through the lens onto the image plane.
// Points with Z <= 0 return DepthError, as with Intrinsics.Project.
func (m Model) Project(p geom.Point[geom.Cam]) (img.PointF, error) {
	if !(p.Z > 0) {
		return img.PointF{}, &semerr.DepthError{Depth: p.Z}
	}
	x, y := p.X/p.Z, p.Y/p.Z
	if m.Distortion != nil {
		x, y = m.Distortion.Distort(x, y)
	}
	in := m.Intrinsics
	return img.PointF{X: in.fx*x + in.cx, Y: in.fy*y + in.cy}, nil
}

// BackProject lifts a continuous pixel coordinate through the lens to the
// camera-frame point at the given depth. Non-positive depth returns
// DepthError. Round trips with Project are exact to the Undistort
// iteration's precision.
func (m Model) BackProject(p img.PointF, depth float64) (geom.Point[geom.Cam], error) {
	if !(depth > 0) {
		return geom.Point[geom.Cam]{}, &semerr.DepthError{Depth: depth}
	}
	in := m.Intrinsics
	x := (p.X - in.cx) / in.fx
	y := (p.Y - in.cy) / in.fy
	if m.Distortion != nil {
		x, y = m.Distortion.Undistort(x, y)
	}
	return geom.NewPoint[geom.Cam](x*depth, y*depth, depth), nil
}
