package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/banshee-data/sightline/semerr"
)

// Pose is the rigid transform (SE(3)) taking coordinates in frame A to
// frame B: x_B = R*x_A + t, translation in meters. Endpoints are type
// parameters, so only transforms whose frames line up can compose, and
// Apply only accepts points already in A. Poses are immutable; the
// rotation was validated when it was constructed, which makes NewPose
// total.
type Pose[A, B Frame] struct {
	rot Rotation
	t   r3.Vector
}

// NewPose returns the transform with rotation r and translation t.
func NewPose[A, B Frame](r Rotation, t r3.Vector) Pose[A, B] {
	return Pose[A, B]{rot: r, t: t}
}

// Identity returns the identity transform of frame A onto itself.
func Identity[A Frame]() Pose[A, A] {
	return Pose[A, A]{rot: IdentityRotation()}
}

// Rotation returns the rotation part.
func (p Pose[A, B]) Rotation() Rotation { return p.rot }

// Translation returns the translation part in meters.
func (p Pose[A, B]) Translation() r3.Vector { return p.t }

// Apply transforms a point from frame A to frame B.
func (p Pose[A, B]) Apply(pt Point[A]) Point[B] {
	return Point[B]{p.rot.Apply(pt.Vector).Add(p.t)}
}

// ApplyVec transforms a plain vector as a position in A, for callers that
// have already left the typed world.
func (p Pose[A, B]) ApplyVec(v r3.Vector) r3.Vector {
	return p.rot.Apply(v).Add(p.t)
}

// Inverse returns the transform from B back to A. Exact up to the rotation
// representation: the rotation inverts by transpose, the translation
// reverses through it.
func (p Pose[A, B]) Inverse() Pose[B, A] {
	ri := p.rot.Inverse()
	return Pose[B, A]{rot: ri, t: ri.Apply(p.t).Mul(-1)}
}

// Compose chains two transforms that share the middle frame B, yielding
// the transform from A to C. Mismatched endpoints do not typecheck; this
// free function exists because methods cannot introduce the third frame.
func Compose[A, B, C Frame](ab Pose[A, B], bc Pose[B, C]) Pose[A, C] {
	return Pose[A, C]{
		rot: bc.rot.Mul(ab.rot),
		t:   bc.rot.Apply(ab.t).Add(bc.t),
	}
}

// Mat4 exports the pose as a 4x4 row-major homogeneous matrix
// (m00..m03, m10..m13, m20..m23, m30..m33), rotation in the upper-left
// block and translation in the last column.
func (p Pose[A, B]) Mat4() [16]float64 {
	m := &p.rot.m
	return [16]float64{
		m[0], m[1], m[2], p.t.X,
		m[3], m[4], m[5], p.t.Y,
		m[6], m[7], m[8], p.t.Z,
		0, 0, 0, 1,
	}
}

// PoseFromMat4 imports a 4x4 row-major homogeneous matrix, validating that
// every entry is finite, the upper-left block is a proper rotation
// (DefaultRotationTolerance) and the last row is [0 0 0 1].
func PoseFromMat4[A, B Frame](t [16]float64) (Pose[A, B], error) {
	for _, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Pose[A, B]{}, &semerr.RotationError{
				MaxDeviation: math.Inf(1),
				Tolerance:    DefaultRotationTolerance,
				Detail:       "non-finite entry",
			}
		}
	}
	if dev := lastRowDeviation(t); dev > DefaultRotationTolerance {
		return Pose[A, B]{}, &semerr.RotationError{
			MaxDeviation: dev,
			Tolerance:    DefaultRotationTolerance,
			Detail:       "homogeneous last row must be [0 0 0 1]",
		}
	}
	rot, err := NewRotation([9]float64{
		t[0], t[1], t[2],
		t[4], t[5], t[6],
		t[8], t[9], t[10],
	})
	if err != nil {
		return Pose[A, B]{}, err
	}
	return Pose[A, B]{rot: rot, t: r3.Vector{X: t[3], Y: t[7], Z: t[11]}}, nil
}

func lastRowDeviation(t [16]float64) float64 {
	dev := math.Abs(t[15] - 1)
	for _, v := range [3]float64{t[12], t[13], t[14]} {
		if a := math.Abs(v); a > dev {
			dev = a
		}
	}
	return dev
}

// String returns the pose endpoints and translation, e.g.
// "pose body->cam t=(0.1, 0, -0.05)".
func (p Pose[A, B]) String() string {
	return fmt.Sprintf("pose %s->%s t=(%g, %g, %g)",
		frameName[A](), frameName[B](), p.t.X, p.t.Y, p.t.Z)
}
