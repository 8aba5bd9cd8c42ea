package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestInterpolate_Endpoints(t *testing.T) {
	p := NewPose[Body, World](RotZ(0.3), r3.Vector{X: 1})
	q := NewPose[Body, World](RotX(1.1), r3.Vector{Y: -2, Z: 5})

	if !mat4Close(Interpolate(p, q, 0).Mat4(), p.Mat4(), 1e-12) {
		t.Error("Interpolate(s=0) != p")
	}
	if !mat4Close(Interpolate(p, q, 1).Mat4(), q.Mat4(), 1e-12) {
		t.Error("Interpolate(s=1) != q")
	}
}

func TestInterpolate_Midpoint(t *testing.T) {
	p := NewPose[Body, World](RotZ(0), r3.Vector{})
	q := NewPose[Body, World](RotZ(math.Pi/2), r3.Vector{X: 2})

	mid := Interpolate(p, q, 0.5)
	if !rotationsClose(mid.Rotation(), RotZ(math.Pi/4), 1e-12) {
		t.Error("rotation midpoint is not the half angle")
	}
	if !vecClose(mid.Translation(), r3.Vector{X: 1}, 1e-12) {
		t.Errorf("translation midpoint = %v, want (1, 0, 0)", mid.Translation())
	}
}

func TestInterpolate_QuarterPointTranslation(t *testing.T) {
	p := NewPose[Body, World](IdentityRotation(), r3.Vector{X: 4, Y: 8})
	q := NewPose[Body, World](IdentityRotation(), r3.Vector{})

	at := Interpolate(p, q, 0.25)
	if !vecClose(at.Translation(), r3.Vector{X: 3, Y: 6}, 1e-12) {
		t.Errorf("translation at s=0.25 = %v, want (3, 6, 0)", at.Translation())
	}
}

func TestInterpolate_TakesShorterArc(t *testing.T) {
	// From -2.8 rad to +2.8 rad about Z, the shorter arc runs through pi,
	// not through zero.
	p := NewPose[Body, World](RotZ(-2.8), r3.Vector{})
	q := NewPose[Body, World](RotZ(2.8), r3.Vector{})

	mid := Interpolate(p, q, 0.5)
	if !rotationsClose(mid.Rotation(), RotZ(math.Pi), 1e-9) {
		t.Errorf("midpoint rotation:\n%s\nwant RotZ(pi):\n%s", mid.Rotation(), RotZ(math.Pi))
	}
}

func TestInterpolate_IdenticalPoses(t *testing.T) {
	p := NewPose[Body, World](RotX(0.9), r3.Vector{X: 1, Y: 2, Z: 3})
	mid := Interpolate(p, p, 0.5)
	if !mat4Close(mid.Mat4(), p.Mat4(), 1e-12) {
		t.Error("interpolating a pose with itself changed it")
	}
}

func TestInterpolate_ResultStaysValid(t *testing.T) {
	p := NewPose[Body, World](RotZ(0.3).Mul(RotY(-1.0)), r3.Vector{X: 1})
	q := NewPose[Body, World](RotX(2.0), r3.Vector{Y: 5})
	for _, s := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		r := Interpolate(p, q, s).Rotation()
		if _, err := NewRotation(r.Mat3()); err != nil {
			t.Errorf("interpolated rotation at s=%g invalid: %v", s, err)
		}
	}
}
