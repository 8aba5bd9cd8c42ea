package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/banshee-data/sightline/semerr"
)

// DefaultRotationTolerance bounds |R^T R - I| (max element) and |det R - 1|
// for matrices accepted as rotations. 1e-9 admits accumulated float64
// round-off from composing many exact rotations while rejecting anything
// meaningfully scaled, sheared or reflected. Measured calibration output
// is dirtier than this; validate it with NewRotationTol or repair it with
// NearestRotation.
const DefaultRotationTolerance = 1e-9

// Rotation is a proper 3D rotation, stored row-major. Values are validated
// at construction and never mutated, so holding a Rotation is proof of
// orthonormality. The zero value is not a valid rotation; obtain values
// from NewRotation, NewRotationTol, NearestRotation, FromQuat or the axis
// constructors.
type Rotation struct {
	m [9]float64
}

// NewRotation validates m (row-major) as a proper rotation within
// DefaultRotationTolerance.
func NewRotation(m [9]float64) (Rotation, error) {
	return NewRotationTol(m, DefaultRotationTolerance)
}

// NewRotationTol validates m (row-major) as a proper rotation within tol:
// every entry finite, |R^T R - I| max element and |det R - 1| both at most
// tol. The returned RotationError names the failed constraint and carries
// the observed deviation.
func NewRotationTol(m [9]float64, tol float64) (Rotation, error) {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rotation{}, &semerr.RotationError{
				MaxDeviation: math.Inf(1),
				Tolerance:    tol,
				Detail:       "non-finite entry",
			}
		}
	}

	if dev := orthonormalityDeviation(m); dev > tol {
		return Rotation{}, &semerr.RotationError{
			MaxDeviation: dev,
			Tolerance:    tol,
			Detail:       "orthonormality |R^T R - I|",
		}
	}

	if dev := math.Abs(det3(m) - 1); dev > tol {
		return Rotation{}, &semerr.RotationError{
			MaxDeviation: dev,
			Tolerance:    tol,
			Detail:       "determinant",
		}
	}

	return Rotation{m: m}, nil
}

// orthonormalityDeviation returns the largest |(R^T R - I)[i][j]|.
func orthonormalityDeviation(m [9]float64) float64 {
	var max float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// Column i dot column j of m.
			dot := m[i]*m[j] + m[3+i]*m[3+j] + m[6+i]*m[6+j]
			want := 0.0
			if i == j {
				want = 1.0
			}
			if dev := math.Abs(dot - want); dev > max {
				max = dev
			}
		}
	}
	return max
}

// det3 returns the determinant of a row-major 3x3 matrix.
func det3(m [9]float64) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// IdentityRotation returns the identity rotation.
func IdentityRotation() Rotation {
	return Rotation{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// RotX returns the rotation by angle radians about +X.
func RotX(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{m: [9]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// RotY returns the rotation by angle radians about +Y.
func RotY(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{m: [9]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// RotZ returns the rotation by angle radians about +Z.
func RotZ(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{m: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// Apply rotates v.
func (r Rotation) Apply(v r3.Vector) r3.Vector {
	m := &r.m
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns the composition r*o, the rotation that applies o first and
// r second. Both inputs are validated rotations, so the product is one.
func (r Rotation) Mul(o Rotation) Rotation {
	var p [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i*3+j] = r.m[i*3]*o.m[j] + r.m[i*3+1]*o.m[3+j] + r.m[i*3+2]*o.m[6+j]
		}
	}
	return Rotation{m: p}
}

// Inverse returns the inverse rotation, the transpose. Exact: no numeric
// error is introduced.
func (r Rotation) Inverse() Rotation {
	m := &r.m
	return Rotation{m: [9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Mat3 returns the rotation as a row-major array.
func (r Rotation) Mat3() [9]float64 { return r.m }

// String returns the rotation rows.
func (r Rotation) String() string {
	m := &r.m
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
