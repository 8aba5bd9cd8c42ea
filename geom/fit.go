package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/sightline/semerr"
)

// NearestRotation projects a row-major 3x3 matrix onto the closest proper
// rotation in the Frobenius sense: SVD, with the determinant of U*V^T
// correcting any reflection. Use it to repair measured calibration output
// that NewRotation rejects. The projection is unique only for full-rank
// input; degenerate input still yields some valid rotation.
func NearestRotation(m [9]float64) (Rotation, error) {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rotation{}, &semerr.RotationError{
				MaxDeviation: math.Inf(1),
				Tolerance:    DefaultRotationTolerance,
				Detail:       "non-finite entry",
			}
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(3, 3, m[:]), mat.SVDFull); !ok {
		return Rotation{}, &semerr.RotationError{
			MaxDeviation: math.Inf(1),
			Tolerance:    DefaultRotationTolerance,
			Detail:       "svd factorization failed",
		}
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var uvt mat.Dense
	uvt.Mul(&u, v.T())
	sign := math.Copysign(1, mat.Det(&uvt))

	var tmp, r mat.Dense
	tmp.Mul(&u, mat.NewDiagDense(3, []float64{1, 1, sign}))
	r.Mul(&tmp, v.T())

	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = r.At(i, j)
		}
	}
	// The projection is orthonormal to machine precision; validating it
	// here is a consistency check, not a user-facing gate.
	return NewRotation(out)
}
