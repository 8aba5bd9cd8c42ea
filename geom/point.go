package geom

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Point is a 3D position in meters, tagged with the frame it is expressed
// in. Arithmetic between points of different frames does not typecheck;
// transforms between frames go through Pose.Apply. The embedded r3.Vector
// is the deliberate escape into plain vector math once frame bookkeeping
// is done.
type Point[F Frame] struct {
	r3.Vector
}

// NewPoint returns the point (x, y, z) in frame F.
func NewPoint[F Frame](x, y, z float64) Point[F] {
	return Point[F]{r3.Vector{X: x, Y: y, Z: z}}
}

// PointFromVec tags a plain vector with frame F.
func PointFromVec[F Frame](v r3.Vector) Point[F] {
	return Point[F]{v}
}

// Sub returns the displacement from o to p as a plain vector. Both points
// are in F, so the difference is frame-consistent but no longer a position.
func (p Point[F]) Sub(o Point[F]) r3.Vector {
	return p.Vector.Sub(o.Vector)
}

// String returns the point with its frame, e.g. "(1, 2, 3) cam".
func (p Point[F]) String() string {
	return fmt.Sprintf("(%g, %g, %g) %s", p.X, p.Y, p.Z, frameName[F]())
}
