package semerr

import (
	"errors"
	"fmt"
)

// Kind classifies errors by the phase that raises them, so callers can
// branch on the failure category without matching every concrete type.
type Kind int

const (
	// KindConstruction marks errors raised when a constructor's input
	// fails a declared invariant.
	KindConstruction Kind = iota
	// KindConversion marks errors raised by fallible conversions between
	// representations (lifting, domain or metric cross-checks).
	KindConversion
	// KindPrecondition marks errors raised when an operation's runtime
	// precondition does not hold for otherwise valid values.
	KindPrecondition
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindConstruction:
		return "construction"
	case KindConversion:
		return "conversion"
	case KindPrecondition:
		return "precondition"
	default:
		return "unknown"
	}
}

// kinder is implemented by every error type in this package.
type kinder interface {
	Kind() Kind
}

// KindOf reports the Kind of err. The second return is false when err (or
// its wrap chain) does not originate from this taxonomy.
func KindOf(err error) (Kind, bool) {
	var k kinder
	if errors.As(err, &k) {
		return k.Kind(), true
	}
	return 0, false
}

// IsConstruction reports whether err is a construction-time invariant failure.
func IsConstruction(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConstruction
}

// IsConversion reports whether err is a conversion-time failure.
func IsConversion(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConversion
}

// IsPrecondition reports whether err is a runtime-precondition failure.
func IsPrecondition(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindPrecondition
}

// ShapeError reports a shape whose dimensions violate positivity.
type ShapeError struct {
	Axis  int   // offending axis index
	Dim   int   // offending dimension value
	Shape []int // full requested shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid shape %v: dimension %d must be > 0, got %d", e.Shape, e.Axis, e.Dim)
}

// Kind returns KindConstruction.
func (e *ShapeError) Kind() Kind { return KindConstruction }

// SizeError reports a storage slice whose length disagrees with the element
// count implied by a shape, or two parallel slices whose lengths disagree
// (nil Shape).
type SizeError struct {
	Len   int   // actual storage length
	Want  int   // element count implied by Shape
	Shape []int // shape the storage was validated against; nil for parallel-slice mismatches
}

func (e *SizeError) Error() string {
	if e.Shape == nil {
		return fmt.Sprintf("length mismatch: got %d elements, want %d", e.Len, e.Want)
	}
	return fmt.Sprintf("storage length mismatch: got %d elements, want %d for shape %v", e.Len, e.Want, e.Shape)
}

// Kind returns KindConstruction.
func (e *SizeError) Kind() Kind { return KindConstruction }

// StrideError reports strides that are inconsistent with a shape or its
// backing storage at construction time: wrong count, negative values, or a
// span exceeding the storage length.
type StrideError struct {
	Strides []int  // strides supplied
	Shape   []int  // shape they were validated against
	Detail  string // which consistency rule failed, with values
}

func (e *StrideError) Error() string {
	return fmt.Sprintf("invalid strides %v for shape %v: %s", e.Strides, e.Shape, e.Detail)
}

// Kind returns KindConstruction.
func (e *StrideError) Kind() Kind { return KindConstruction }

// MarkerError reports an axis-marker list whose length disagrees with the
// tensor's rank.
type MarkerError struct {
	Markers int // markers supplied
	Rank    int // tensor rank
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("axis marker count mismatch: %d markers for tensor of rank %d", e.Markers, e.Rank)
}

// Kind returns KindConstruction.
func (e *MarkerError) Kind() Kind { return KindConstruction }

// ContiguityError reports strides that are not exactly the canonical strides
// for the tensor's shape and layout. Operations requiring contiguity return
// it instead of copying on demand.
type ContiguityError struct {
	Strides []int // actual strides
	Want    []int // canonical strides for the shape and layout
}

func (e *ContiguityError) Error() string {
	return fmt.Sprintf("tensor not contiguous: strides %v, canonical %v", e.Strides, e.Want)
}

// Kind returns KindPrecondition.
func (e *ContiguityError) Kind() Kind { return KindPrecondition }

// ColorSpaceError reports a color-space mapping the operation cannot honor:
// an unknown space, a channel count that disagrees with what the space
// requires, or a conversion applied to a source space it is not defined for.
type ColorSpaceError struct {
	Space    string // offending color space name
	Channels int    // channel count supplied, for count mismatches
	Want     int    // channel count the space requires; 0 when the space is unknown
	Op       string // conversion that rejected the space, for source-space mismatches
}

func (e *ColorSpaceError) Error() string {
	switch {
	case e.Op != "":
		return fmt.Sprintf("%s is not defined for color space %s", e.Op, e.Space)
	case e.Want == 0:
		return fmt.Sprintf("unknown color space %q", e.Space)
	default:
		return fmt.Sprintf("color space %s requires %d channels, got %d", e.Space, e.Want, e.Channels)
	}
}

// Kind returns KindConversion when a conversion rejected its source space
// (Op set), KindConstruction otherwise.
func (e *ColorSpaceError) Kind() Kind {
	if e.Op != "" {
		return KindConversion
	}
	return KindConstruction
}

// LiftReason identifies which lifting precondition failed.
type LiftReason int

const (
	// LiftAxisMismatch: the tensor's axis markers are not (y, x, channel)
	// with the requested channel space.
	LiftAxisMismatch LiftReason = iota
	// LiftLayoutMismatch: the tensor is not contiguous row-major.
	LiftLayoutMismatch
	// LiftChannelMismatch: the channel axis length does not match the
	// channel count the target color space requires.
	LiftChannelMismatch
)

// String returns the string representation of LiftReason.
func (r LiftReason) String() string {
	switch r {
	case LiftAxisMismatch:
		return "axis mismatch"
	case LiftLayoutMismatch:
		return "layout mismatch"
	case LiftChannelMismatch:
		return "channel mismatch"
	default:
		return "unknown"
	}
}

// LiftError reports a failed Tensor→Image lift with the specific reason;
// lifting never fails generically.
type LiftError struct {
	Reason LiftReason
	Detail string // names the mismatching markers, strides or counts
}

func (e *LiftError) Error() string {
	return fmt.Sprintf("cannot lift tensor to image: %s: %s", e.Reason, e.Detail)
}

// Kind returns KindConversion.
func (e *LiftError) Kind() Kind { return KindConversion }

// RotationError reports a 3×3 matrix that is not orthonormal with
// determinant +1 within the stated tolerance.
type RotationError struct {
	MaxDeviation float64 // largest observed deviation from the constraint
	Tolerance    float64 // tolerance the check ran with
	Detail       string  // which constraint failed (orthonormality, determinant, finiteness)
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("invalid rotation: %s: deviation %.3g exceeds tolerance %.3g", e.Detail, e.MaxDeviation, e.Tolerance)
}

// Kind returns KindConstruction.
func (e *RotationError) Kind() Kind { return KindConstruction }

// IntrinsicsError reports a camera parameter outside its documented range.
type IntrinsicsError struct {
	Param      string  // parameter name (fx, fy, cx, cy, width, height, k1, ...)
	Value      float64 // offending value
	Constraint string  // documented range, e.g. "> 0 and finite"
}

func (e *IntrinsicsError) Error() string {
	return fmt.Sprintf("invalid camera intrinsics: %s = %g must be %s", e.Param, e.Value, e.Constraint)
}

// Kind returns KindConstruction.
func (e *IntrinsicsError) Kind() Kind { return KindConstruction }

// DepthError reports a projection or back-projection attempted with a
// non-positive depth. Projection never divides silently.
type DepthError struct {
	Depth float64
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("invalid depth %g: projection requires depth > 0", e.Depth)
}

// Kind returns KindPrecondition.
func (e *DepthError) Kind() Kind { return KindPrecondition }

// BoundsError reports a continuous coordinate outside an image domain.
type BoundsError struct {
	X, Y   float64 // offending coordinate
	Width  int     // domain width in pixels
	Height int     // domain height in pixels
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("point (%g, %g) outside image bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}

// Kind returns KindPrecondition.
func (e *BoundsError) Kind() Kind { return KindPrecondition }

// DomainError reports an operation across two incompatible image domains
// (different resolution, color space or coordinate convention).
type DomainError struct {
	A string // first domain, stringified
	B string // second domain, stringified
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("incompatible image domains: %s vs %s", e.A, e.B)
}

// Kind returns KindConversion.
func (e *DomainError) Kind() Kind { return KindConversion }

// MetricError reports a metric the descriptor representation cannot carry,
// or a distance computation requested under a metric a descriptor does not
// declare.
type MetricError struct {
	Requested string // metric the caller asked for
	Declared  string // metric the descriptor declares; empty when Requested itself is invalid
}

func (e *MetricError) Error() string {
	if e.Declared == "" {
		return fmt.Sprintf("invalid metric %q for this descriptor type", e.Requested)
	}
	return fmt.Sprintf("metric mismatch: requested %s, descriptor declares %s", e.Requested, e.Declared)
}

// Kind returns KindConstruction when the metric itself is invalid for the
// descriptor representation, KindConversion for mismatches.
func (e *MetricError) Kind() Kind {
	if e.Declared == "" {
		return KindConstruction
	}
	return KindConversion
}

// DimensionError reports descriptor dimensionalities that disagree.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("descriptor dimension mismatch: got %d, want %d", e.Got, e.Want)
}

// Kind returns KindConversion.
func (e *DimensionError) Kind() Kind { return KindConversion }

// FrameError reports dynamically-tagged pose endpoints that do not meet.
// Statically-tagged poses make this state unrepresentable; only the dynamic
// path can raise it.
type FrameError struct {
	Got  string // frame found at the junction
	Want string // frame required at the junction
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame mismatch: got %q, want %q", e.Got, e.Want)
}

// Kind returns KindPrecondition.
func (e *FrameError) Kind() Kind { return KindPrecondition }
