package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Interpolate blends two transforms with the same endpoints: quaternion
// slerp along the shorter arc for the rotation, linear interpolation for
// the translation. s=0 returns p and s=1 returns q; values outside [0, 1]
// extrapolate along the same path. Used for resampling pose trajectories
// onto sensor timestamps.
func Interpolate[A, B Frame](p, q Pose[A, B], s float64) Pose[A, B] {
	qa := p.rot.Quat()
	qb := q.rot.Quat()

	dot := qa.Real*qb.Real + qa.Imag*qb.Imag + qa.Jmag*qb.Jmag + qa.Kmag*qb.Kmag
	if dot < 0 {
		qb = quat.Scale(-1, qb)
		dot = -dot
	}

	var qi quat.Number
	if dot > 1-1e-12 {
		// Nearly identical rotations: slerp degenerates, normalized lerp
		// is exact enough.
		qi = quat.Add(quat.Scale(1-s, qa), quat.Scale(s, qb))
	} else {
		theta := math.Acos(dot)
		sin := math.Sin(theta)
		qi = quat.Add(
			quat.Scale(math.Sin((1-s)*theta)/sin, qa),
			quat.Scale(math.Sin(s*theta)/sin, qb),
		)
	}
	qi = quat.Scale(1/quat.Abs(qi), qi)

	t := p.t.Mul(1 - s).Add(q.t.Mul(s))
	return Pose[A, B]{rot: rotationFromUnitQuat(qi), t: t}
}
