package camera

import (
	"fmt"
	"math"

	"github.com/banshee-data/sightline/semerr"
)

// DistortionType is the name of a distortion model.
type DistortionType string

const (
	NoneDistortionType         = DistortionType("no_distortion")
	BrownConradyDistortionType = DistortionType("brown_conrady")
)

// DistortionModel maps between ideal and distorted normalized image
// coordinates, the (X/Z, Y/Z) plane between the perspective divide and the
// pixel mapping. Distort applies the lens; Undistort inverts it.
type DistortionModel interface {
	ModelType() DistortionType
	Distort(x, y float64) (float64, float64)
	Undistort(x, y float64) (float64, float64)
}

// Undistort iteration parameters. The fixed-point iteration contracts at
// roughly the distortion magnitude per pass, so undistortMaxIter passes
// reach float64 precision for any lens near the Brown-Conrady regime.
const (
	undistortMaxIter = 20
	undistortTol     = 1e-12
)

// BrownConrady is the radial-tangential distortion model for simple lenses
// not far from an ideal pinhole: three radial coefficients k1, k2, k3 and
// two tangential coefficients p1, p2. Values are immutable after
// construction.
type BrownConrady struct {
	k1, k2, k3 float64
	p1, p2     float64
}

var _ DistortionModel = BrownConrady{}

// NewBrownConrady validates that every coefficient is finite. Note the
// argument order groups the radial terms first; OpenCV calibration vectors
// are ordered (k1, k2, p1, p2, k3).
func NewBrownConrady(k1, k2, k3, p1, p2 float64) (BrownConrady, error) {
	for _, c := range [...]struct {
		name string
		v    float64
	}{{"k1", k1}, {"k2", k2}, {"k3", k3}, {"p1", p1}, {"p2", p2}} {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return BrownConrady{}, &semerr.IntrinsicsError{Param: c.name, Value: c.v, Constraint: "finite"}
		}
	}
	return BrownConrady{k1: k1, k2: k2, k3: k3, p1: p1, p2: p2}, nil
}

// Coefficients returns the radial and tangential coefficients.
func (bc BrownConrady) Coefficients() (k1, k2, k3, p1, p2 float64) {
	return bc.k1, bc.k2, bc.k3, bc.p1, bc.p2
}

// ModelType returns BrownConradyDistortionType.
func (bc BrownConrady) ModelType() DistortionType { return BrownConradyDistortionType }

// Distort maps an ideal normalized coordinate to where the lens actually
// images it.
func (bc BrownConrady) Distort(x, y float64) (float64, float64) {
	r2 := x*x + y*y
	radial := 1 + r2*(bc.k1+r2*(bc.k2+r2*bc.k3))
	xd := x*radial + 2*bc.p1*x*y + bc.p2*(r2+2*x*x)
	yd := y*radial + bc.p1*(r2+2*y*y) + 2*bc.p2*x*y
	return xd, yd
}

// Undistort inverts Distort by fixed-point iteration: at most
// undistortMaxIter passes, stopping early once an update falls below
// undistortTol. Inside the lens's calibrated field this recovers the ideal
// coordinate to float64 precision; far outside it the iteration returns
// its best estimate.
func (bc BrownConrady) Undistort(xd, yd float64) (float64, float64) {
	x, y := xd, yd
	for i := 0; i < undistortMaxIter; i++ {
		r2 := x*x + y*y
		radial := 1 + r2*(bc.k1+r2*(bc.k2+r2*bc.k3))
		nx := (xd - (2*bc.p1*x*y + bc.p2*(r2+2*x*x))) / radial
		ny := (yd - (bc.p1*(r2+2*y*y) + 2*bc.p2*x*y)) / radial
		dx, dy := nx-x, ny-y
		x, y = nx, ny
		if math.Abs(dx) <= undistortTol && math.Abs(dy) <= undistortTol {
			break
		}
	}
	return x, y
}

// String returns the coefficients, radial then tangential.
func (bc BrownConrady) String() string {
	return fmt.Sprintf("brown_conrady k=(%g, %g, %g) p=(%g, %g)", bc.k1, bc.k2, bc.k3, bc.p1, bc.p2)
}
