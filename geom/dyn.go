package geom

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/banshee-data/sightline/semerr"
)

// FrameID is a human-readable runtime frame name like "sensor/hesai-01" or
// "site/main-st-001", for rigs whose frame graph comes from configuration
// rather than code.
type FrameID string

// DynPose is a rigid transform whose endpoints are runtime values instead
// of types. It trades Pose's compile-time guarantee for flexibility: every
// composition and every narrowing back into the typed world is checked,
// and endpoint mismatches surface as FrameError rather than silently
// composing.
type DynPose struct {
	from FrameID
	to   FrameID
	rot  Rotation
	t    r3.Vector
}

// NewDynPose returns the transform from one named frame to another.
func NewDynPose(from, to FrameID, r Rotation, t r3.Vector) DynPose {
	return DynPose{from: from, to: to, rot: r, t: t}
}

// From returns the source frame name.
func (d DynPose) From() FrameID { return d.from }

// To returns the target frame name.
func (d DynPose) To() FrameID { return d.to }

// Rotation returns the rotation part.
func (d DynPose) Rotation() Rotation { return d.rot }

// Translation returns the translation part in meters.
func (d DynPose) Translation() r3.Vector { return d.t }

// ApplyVec transforms a position from the source to the target frame.
func (d DynPose) ApplyVec(v r3.Vector) r3.Vector {
	return d.rot.Apply(v).Add(d.t)
}

// Inverse returns the reversed transform.
func (d DynPose) Inverse() DynPose {
	ri := d.rot.Inverse()
	return DynPose{from: d.to, to: d.from, rot: ri, t: ri.Apply(d.t).Mul(-1)}
}

// ComposeDyn chains a transform a->b with b->c. The junction frames must
// match exactly; a mismatch is a FrameError.
func ComposeDyn(ab, bc DynPose) (DynPose, error) {
	if ab.to != bc.from {
		return DynPose{}, &semerr.FrameError{Got: string(ab.to), Want: string(bc.from)}
	}
	return DynPose{
		from: ab.from,
		to:   bc.to,
		rot:  bc.rot.Mul(ab.rot),
		t:    bc.rot.Apply(ab.t).Add(bc.t),
	}, nil
}

// Unbind erases a static pose's endpoints into their runtime names.
func Unbind[A, B Frame](p Pose[A, B]) DynPose {
	return DynPose{
		from: FrameID(frameName[A]()),
		to:   FrameID(frameName[B]()),
		rot:  p.rot,
		t:    p.t,
	}
}

// Bind narrows a dynamic pose into the typed world, checking both endpoint
// names against the frame types' names.
func Bind[A, B Frame](d DynPose) (Pose[A, B], error) {
	if want := FrameID(frameName[A]()); d.from != want {
		return Pose[A, B]{}, &semerr.FrameError{Got: string(d.from), Want: string(want)}
	}
	if want := FrameID(frameName[B]()); d.to != want {
		return Pose[A, B]{}, &semerr.FrameError{Got: string(d.to), Want: string(want)}
	}
	return Pose[A, B]{rot: d.rot, t: d.t}, nil
}

// String returns the pose endpoints and translation.
func (d DynPose) String() string {
	return fmt.Sprintf("pose %s->%s t=(%g, %g, %g)", d.from, d.to, d.t.X, d.t.Y, d.t.Z)
}
