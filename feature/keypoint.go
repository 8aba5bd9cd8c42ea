package feature

import (
	"fmt"

	"github.com/banshee-data/sightline/img"
	"github.com/banshee-data/sightline/semerr"
)

// Keypoint is a detected interest point: a continuous pixel-center
// position, the image domain it was detected in, and the standard detector
// attributes. Keypoints from different domains are not comparable; the
// domain travels with the point so that gate cannot be skipped. Values are
// immutable after construction.
type Keypoint struct {
	pt       img.PointF
	domain   img.Domain
	size     float64
	angle    float64
	response float32
}

// NewKeypoint validates that pt lies inside the domain's continuous extent
// and returns the keypoint. Size is the diameter of the meaningful
// neighborhood in pixels, angle the orientation in radians, response the
// detector's strength score.
func NewKeypoint(pt img.PointF, d img.Domain, size, angle float64, response float32) (Keypoint, error) {
	if !d.Contains(pt) {
		return Keypoint{}, &semerr.BoundsError{X: pt.X, Y: pt.Y, Width: d.Width, Height: d.Height}
	}
	return Keypoint{pt: pt, domain: d, size: size, angle: angle, response: response}, nil
}

// Point returns the continuous pixel-center position.
func (k Keypoint) Point() img.PointF { return k.pt }

// Domain returns the image domain the keypoint was detected in.
func (k Keypoint) Domain() img.Domain { return k.domain }

// Size returns the neighborhood diameter in pixels.
func (k Keypoint) Size() float64 { return k.size }

// Angle returns the orientation in radians.
func (k Keypoint) Angle() float64 { return k.angle }

// Response returns the detector's strength score.
func (k Keypoint) Response() float32 { return k.response }

// Compatible reports whether two keypoints were detected in the same image
// domain, returning DomainError naming both domains when not. Callers gate
// on this before comparing positions or descriptors across images.
func (k Keypoint) Compatible(o Keypoint) error {
	if !k.domain.Equal(o.domain) {
		return &semerr.DomainError{A: k.domain.String(), B: o.domain.String()}
	}
	return nil
}

// String returns the position and domain, e.g. "keypoint (12.5, 7) in 640x480 srgb".
func (k Keypoint) String() string {
	return fmt.Sprintf("keypoint %s in %s", k.pt, k.domain)
}
