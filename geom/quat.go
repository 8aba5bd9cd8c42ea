package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/banshee-data/sightline/semerr"
)

// FromQuat converts a unit quaternion to a Rotation. The norm must lie
// within DefaultRotationTolerance of 1; a drifting quaternion fails with a
// RotationError carrying the deviation, and the caller decides whether
// renormalizing (quat.Scale(1/quat.Abs(q), q)) is legitimate for its data.
func FromQuat(q quat.Number) (Rotation, error) {
	n := quat.Abs(q)
	dev := math.Abs(n - 1)
	if math.IsNaN(n) {
		dev = math.Inf(1)
	}
	if dev > DefaultRotationTolerance {
		return Rotation{}, &semerr.RotationError{
			MaxDeviation: dev,
			Tolerance:    DefaultRotationTolerance,
			Detail:       "quaternion norm",
		}
	}
	return rotationFromUnitQuat(quat.Scale(1/n, q)), nil
}

// Quat returns the rotation as a unit quaternion with non-negative real
// part (the canonical representative of the double cover).
func (r Rotation) Quat() quat.Number {
	m := &r.m
	tr := m[0] + m[4] + m[8]
	var w, x, y, z float64
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		w = 0.25 * s
		x = (m[7] - m[5]) / s
		y = (m[2] - m[6]) / s
		z = (m[3] - m[1]) / s
	case m[0] > m[4] && m[0] > m[8]:
		s := math.Sqrt(1+m[0]-m[4]-m[8]) * 2
		w = (m[7] - m[5]) / s
		x = 0.25 * s
		y = (m[1] + m[3]) / s
		z = (m[2] + m[6]) / s
	case m[4] > m[8]:
		s := math.Sqrt(1+m[4]-m[0]-m[8]) * 2
		w = (m[2] - m[6]) / s
		x = (m[1] + m[3]) / s
		y = 0.25 * s
		z = (m[5] + m[7]) / s
	default:
		s := math.Sqrt(1+m[8]-m[0]-m[4]) * 2
		w = (m[3] - m[1]) / s
		x = (m[2] + m[6]) / s
		y = (m[5] + m[7]) / s
		z = 0.25 * s
	}
	if w < 0 {
		w, x, y, z = -w, -x, -y, -z
	}
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// rotationFromUnitQuat builds the matrix directly; q must be unit norm.
func rotationFromUnitQuat(q quat.Number) Rotation {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return Rotation{m: [9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	}}
}
